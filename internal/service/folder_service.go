package service

import (
	"context"
	"errors"
	"time"

	"notevault-be/internal/dto"
	"notevault-be/internal/entity"
	"notevault-be/internal/repository/specification"
	"notevault-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IFolderService interface {
	GetTree(ctx context.Context, userId uuid.UUID) ([]*dto.FolderTreeNode, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFolderRequest) (*dto.CreateFolderResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.FolderResponse, error)
	Rename(ctx context.Context, userId uuid.UUID, req *dto.RenameFolderRequest) error
	Move(ctx context.Context, userId uuid.UUID, req *dto.MoveFolderRequest) error
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type folderService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewFolderService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) IFolderService {
	return &folderService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (c *folderService) GetTree(ctx context.Context, userId uuid.UUID) ([]*dto.FolderTreeNode, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	folders, err := uow.FolderRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	nodes := make(map[uuid.UUID]*dto.FolderTreeNode, len(folders))
	for _, folder := range folders {
		nodes[folder.Id] = &dto.FolderTreeNode{
			Id:        folder.Id,
			Name:      folder.Name,
			ParentId:  folder.ParentId,
			Children:  make([]*dto.FolderTreeNode, 0),
			CreatedAt: folder.CreatedAt,
			UpdatedAt: folder.UpdatedAt,
		}
	}

	// Note counts per folder in a single pass
	notes, err := uow.NoteRepository().FindAll(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	for _, note := range notes {
		if note.FolderId == nil {
			continue
		}
		if node, ok := nodes[*note.FolderId]; ok {
			node.NoteCount++
		}
	}

	roots := make([]*dto.FolderTreeNode, 0)
	for _, folder := range folders {
		node := nodes[folder.Id]
		if folder.ParentId != nil {
			if parent, ok := nodes[*folder.ParentId]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
			// Orphaned reference, surface at root rather than hiding the folder
		}
		roots = append(roots, node)
	}

	return roots, nil
}

func (c *folderService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFolderRequest) (*dto.CreateFolderResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if req.ParentId != nil {
		parent, err := uow.FolderRepository().FindOne(ctx,
			specification.ByID{ID: *req.ParentId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, nil
		}
	}

	folder := entity.Folder{
		Id:        uuid.New(),
		Name:      req.Name,
		ParentId:  req.ParentId,
		UserId:    userId,
		CreatedAt: time.Now(),
	}

	if err := uow.FolderRepository().Create(ctx, &folder); err != nil {
		return nil, err
	}

	recordActivity(ctx, c.publisherService, userId, entity.ActionFolderCreated, "folder", &folder.Id, map[string]interface{}{
		"name": folder.Name,
	})

	return &dto.CreateFolderResponse{
		Id: folder.Id,
	}, nil
}

func (c *folderService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.FolderResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	folder, err := uow.FolderRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, nil
	}

	noteCount, err := uow.NoteRepository().Count(ctx,
		specification.ByFolderID{FolderID: folder.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}

	return &dto.FolderResponse{
		Id:        folder.Id,
		Name:      folder.Name,
		ParentId:  folder.ParentId,
		NoteCount: noteCount,
		CreatedAt: folder.CreatedAt,
		UpdatedAt: folder.UpdatedAt,
	}, nil
}

func (c *folderService) Rename(ctx context.Context, userId uuid.UUID, req *dto.RenameFolderRequest) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	folder, err := uow.FolderRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if folder == nil {
		return errors.New("folder not found")
	}

	now := time.Now()
	folder.Name = req.Name
	folder.UpdatedAt = &now

	return uow.FolderRepository().Update(ctx, folder)
}

func (c *folderService) Move(ctx context.Context, userId uuid.UUID, req *dto.MoveFolderRequest) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	folder, err := uow.FolderRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if folder == nil {
		return errors.New("folder not found")
	}

	if req.ParentId != nil {
		if *req.ParentId == folder.Id {
			return errors.New("folder cannot be its own parent")
		}

		parent, err := uow.FolderRepository().FindOne(ctx,
			specification.ByID{ID: *req.ParentId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return err
		}
		if parent == nil {
			return errors.New("target folder not found")
		}

		// Walk up from the target: moving under a descendant would cut the
		// subtree loose as an unreachable cycle
		currentId := parent.ParentId
		for currentId != nil {
			if *currentId == folder.Id {
				return errors.New("cannot move folder into its own subtree")
			}
			ancestor, err := uow.FolderRepository().FindOne(ctx,
				specification.ByID{ID: *currentId},
				specification.UserOwnedBy{UserID: userId},
			)
			if err != nil {
				return err
			}
			if ancestor == nil {
				break
			}
			currentId = ancestor.ParentId
		}
	}

	now := time.Now()
	folder.ParentId = req.ParentId
	folder.UpdatedAt = &now

	return uow.FolderRepository().Update(ctx, folder)
}

// Delete trashes the folder's notes and re-parents child folders onto the
// deleted folder's parent, so nothing silently disappears with it.
func (c *folderService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	folder, err := uow.FolderRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if folder == nil {
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.FolderRepository().Delete(ctx, id); err != nil {
		return err
	}

	children, err := uow.FolderRepository().FindAll(ctx,
		specification.ByParentID{ParentID: &id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	for _, child := range children {
		child.ParentId = folder.ParentId
		if err := uow.FolderRepository().Update(ctx, child); err != nil {
			return err
		}
	}

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.ByFolderID{FolderID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	for _, note := range notes {
		if err := uow.NoteRepository().Delete(ctx, note.Id); err != nil {
			return err
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	recordActivity(ctx, c.publisherService, userId, entity.ActionFolderDeleted, "folder", &id, map[string]interface{}{
		"name":          folder.Name,
		"trashed_notes": len(notes),
	})

	return nil
}
