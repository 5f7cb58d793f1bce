package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"notevault-be/internal/dto"
	"notevault-be/internal/entity"
	"notevault-be/internal/repository/memory"
	"notevault-be/internal/repository/specification"
	"notevault-be/internal/repository/unitofwork"
	"notevault-be/pkg/blockdoc"
	"notevault-be/pkg/events"
	pktNats "notevault-be/pkg/nats"
	"notevault-be/pkg/search"
	"notevault-be/pkg/utils"

	"github.com/google/uuid"
)

const noteExcerptLength = 160

var ErrNoteLocked = errors.New("note is locked")

// versionExcerpt renders a short plain-text preview of serialized content.
func versionExcerpt(content string) string {
	return utils.Excerpt(blockdoc.ToPlainText(content), noteExcerptLength)
}

// noteTitle derives a title for untitled notes from their content.
func noteTitle(title, content string) string {
	title = strings.TrimSpace(title)
	if title != "" {
		return title
	}
	if line := utils.FirstLine(blockdoc.ToPlainText(content)); line != "" {
		return utils.Excerpt(line, noteExcerptLength)
	}
	return "Untitled"
}

type INoteService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error)
	List(ctx context.Context, userId uuid.UUID, folderId, tagId *uuid.UUID) ([]dto.NoteListItem, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowNoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.UpdateNoteResponse, error)
	Move(ctx context.Context, userId uuid.UUID, req *dto.MoveNoteRequest) (*dto.MoveNoteResponse, error)
	Pin(ctx context.Context, userId uuid.UUID, req *dto.PinNoteRequest) error
	Trash(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	ListTrash(ctx context.Context, userId uuid.UUID) ([]dto.TrashedNoteResponse, error)
	Restore(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Purge(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Search(ctx context.Context, userId uuid.UUID, query string) ([]dto.SearchNoteResponse, error)
	Export(ctx context.Context, userId uuid.UUID, id uuid.UUID, format string) (*dto.ExportNoteResponse, error)
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	unlockStore      *memory.UnlockRepository
	eventPublisher   *pktNats.Publisher
	publisherService IPublisherService
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	unlockStore *memory.UnlockRepository,
	eventPublisher *pktNats.Publisher,
	publisherService IPublisherService,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		unlockStore:      unlockStore,
		eventPublisher:   eventPublisher,
		publisherService: publisherService,
	}
}

func (s *noteService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	event := events.NewEvent(eventType, data)
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
	}
}

// lockedNoteIds returns the set of the user's notes that carry a password lock.
func (s *noteService) lockedNoteIds(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (map[uuid.UUID]bool, error) {
	ids, err := uow.NoteLockRepository().FindNoteIdsForUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	locked := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		locked[id] = true
	}
	return locked, nil
}

// requireNoteAccess returns ErrNoteLocked when the note is locked and the
// user has no active unlock session for it.
func requireNoteAccess(ctx context.Context, uow unitofwork.UnitOfWork, unlockStore *memory.UnlockRepository, userId, noteId uuid.UUID) error {
	lock, err := uow.NoteLockRepository().FindByNoteId(ctx, noteId)
	if err != nil {
		return err
	}
	if lock == nil {
		return nil
	}
	if unlockStore != nil && unlockStore.IsUnlocked(userId, noteId) {
		return nil
	}
	return ErrNoteLocked
}

// buildBreadcrumb walks folder ancestry up to the root and returns the path
// root-first.
func (s *noteService) buildBreadcrumb(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, folderId *uuid.UUID) ([]dto.BreadcrumbItem, error) {
	breadcrumb := make([]dto.BreadcrumbItem, 0)
	currentId := folderId
	for currentId != nil {
		folder, err := uow.FolderRepository().FindOne(ctx,
			specification.ByID{ID: *currentId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if folder == nil {
			break
		}
		breadcrumb = append(breadcrumb, dto.BreadcrumbItem{Id: folder.Id, Name: folder.Name})
		currentId = folder.ParentId
	}

	for i, j := 0, len(breadcrumb)-1; i < j; i, j = i+1, j-1 {
		breadcrumb[i], breadcrumb[j] = breadcrumb[j], breadcrumb[i]
	}

	return breadcrumb, nil
}

func (s *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if req.FolderId != nil {
		folder, err := uow.FolderRepository().FindOne(ctx,
			specification.ByID{ID: *req.FolderId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if folder == nil {
			return nil, errors.New("folder not found")
		}
	}

	note := entity.Note{
		Id:        uuid.New(),
		Title:     noteTitle(req.Title, req.Content),
		Content:   req.Content,
		FolderId:  req.FolderId,
		UserId:    userId,
		Version:   1,
		CreatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	for _, tagId := range req.TagIds {
		tag, err := uow.TagRepository().FindOne(ctx,
			specification.ByID{ID: tagId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if tag == nil {
			return nil, errors.New("tag not found")
		}
		if err := uow.TagRepository().AttachToNote(ctx, note.Id, tagId); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, entity.ActionNoteCreated, map[string]interface{}{
		"note_id": note.Id,
		"user_id": userId,
		"title":   note.Title,
	})

	recordActivity(ctx, s.publisherService, userId, entity.ActionNoteCreated, "note", &note.Id, map[string]interface{}{
		"title": note.Title,
	})

	return &dto.CreateNoteResponse{Id: note.Id}, nil
}

func (s *noteService) List(ctx context.Context, userId uuid.UUID, folderId, tagId *uuid.UUID) ([]dto.NoteListItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.NoteOwnedByUser{UserID: userId},
		specification.PinnedFirst{},
	}
	if folderId != nil {
		specs = append(specs, specification.ByFolderID{FolderID: *folderId})
	}
	if tagId != nil {
		specs = append(specs, specification.ByTagID{TagID: *tagId})
	}

	notes, err := uow.NoteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	locked, err := s.lockedNoteIds(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	items := make([]dto.NoteListItem, 0, len(notes))
	for _, note := range notes {
		item := dto.NoteListItem{
			Id:        note.Id,
			Title:     note.Title,
			FolderId:  note.FolderId,
			Pinned:    note.Pinned,
			Locked:    locked[note.Id],
			CreatedAt: note.CreatedAt,
			UpdatedAt: note.UpdatedAt,
		}
		// Locked notes never leak content through their excerpt
		if !item.Locked {
			item.Excerpt = utils.Excerpt(blockdoc.ToPlainText(note.Content), noteExcerptLength)
		}
		items = append(items, item)
	}

	return items, nil
}

func (s *noteService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}

	lock, err := uow.NoteLockRepository().FindByNoteId(ctx, id)
	if err != nil {
		return nil, err
	}

	tags, err := uow.TagRepository().FindByNoteId(ctx, id)
	if err != nil {
		return nil, err
	}
	tagResponses := make([]dto.TagResponse, 0, len(tags))
	for _, tag := range tags {
		tagResponses = append(tagResponses, dto.TagResponse{
			Id:        tag.Id,
			Name:      tag.Name,
			Color:     tag.Color,
			CreatedAt: tag.CreatedAt,
		})
	}

	breadcrumb, err := s.buildBreadcrumb(ctx, uow, userId, note.FolderId)
	if err != nil {
		return nil, err
	}

	resp := &dto.ShowNoteResponse{
		Id:         note.Id,
		Title:      note.Title,
		Content:    note.Content,
		FolderId:   note.FolderId,
		Pinned:     note.Pinned,
		Version:    note.Version,
		Tags:       tagResponses,
		Breadcrumb: breadcrumb,
		CreatedAt:  note.CreatedAt,
		UpdatedAt:  note.UpdatedAt,
	}

	// A locked note without an active unlock session keeps its metadata
	// visible but withholds the body
	if lock != nil {
		resp.Locked = true
		if s.unlockStore == nil || !s.unlockStore.IsUnlocked(userId, id) {
			resp.Content = ""
		}
	}

	return resp, nil
}

// snapshotVersion persists the note's current state before it is overwritten.
func (s *noteService) snapshotVersion(ctx context.Context, uow unitofwork.UnitOfWork, note *entity.Note) error {
	version := entity.NoteVersion{
		Id:        uuid.New(),
		NoteId:    note.Id,
		Version:   note.Version,
		Title:     note.Title,
		Content:   note.Content,
		Excerpt:   versionExcerpt(note.Content),
		CreatedAt: time.Now(),
	}
	return uow.NoteVersionRepository().Create(ctx, &version)
}

func (s *noteService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.UpdateNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}

	if err := requireNoteAccess(ctx, uow, s.unlockStore, userId, note.Id); err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := s.snapshotVersion(ctx, uow, note); err != nil {
		return nil, err
	}

	now := time.Now()
	note.Title = noteTitle(req.Title, req.Content)
	note.Content = req.Content
	note.Version++
	note.UpdatedAt = &now

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, entity.ActionNoteUpdated, map[string]interface{}{
		"note_id": note.Id,
		"user_id": userId,
		"version": note.Version,
	})

	recordActivity(ctx, s.publisherService, userId, entity.ActionNoteUpdated, "note", &note.Id, map[string]interface{}{
		"version": note.Version,
	})

	return &dto.UpdateNoteResponse{Id: note.Id, Version: note.Version}, nil
}

func (s *noteService) Move(ctx context.Context, userId uuid.UUID, req *dto.MoveNoteRequest) (*dto.MoveNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}

	if req.FolderId != nil {
		folder, err := uow.FolderRepository().FindOne(ctx,
			specification.ByID{ID: *req.FolderId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if folder == nil {
			return nil, errors.New("target folder not found")
		}
	}

	now := time.Now()
	note.FolderId = req.FolderId
	note.UpdatedAt = &now

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.publisherService, userId, entity.ActionNoteMoved, "note", &note.Id, map[string]interface{}{
		"folder_id": req.FolderId,
	})

	return &dto.MoveNoteResponse{Id: note.Id}, nil
}

func (s *noteService) Pin(ctx context.Context, userId uuid.UUID, req *dto.PinNoteRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if note == nil {
		return errors.New("note not found")
	}

	now := time.Now()
	note.Pinned = req.Pinned
	note.UpdatedAt = &now

	return uow.NoteRepository().Update(ctx, note)
}

func (s *noteService) Trash(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if note == nil {
		return errors.New("note not found")
	}

	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvent(ctx, entity.ActionNoteDeleted, map[string]interface{}{
		"note_id": id,
		"user_id": userId,
	})

	recordActivity(ctx, s.publisherService, userId, entity.ActionNoteDeleted, "note", &id, map[string]interface{}{
		"title": note.Title,
	})

	return nil
}

func (s *noteService) ListTrash(ctx context.Context, userId uuid.UUID) ([]dto.TrashedNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.OnlyTrashed{},
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "deleted_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.TrashedNoteResponse, 0, len(notes))
	for _, note := range notes {
		item := dto.TrashedNoteResponse{
			Id:       note.Id,
			Title:    note.Title,
			FolderId: note.FolderId,
		}
		if note.DeletedAt != nil {
			item.DeletedAt = *note.DeletedAt
		}
		items = append(items, item)
	}

	return items, nil
}

func (s *noteService) Restore(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOneUnscoped(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if note == nil {
		return errors.New("note not found")
	}
	if !note.IsDeleted {
		return errors.New("note is not in trash")
	}

	if err := uow.NoteRepository().Restore(ctx, id); err != nil {
		return err
	}

	recordActivity(ctx, s.publisherService, userId, entity.ActionNoteRestored, "note", &id, map[string]interface{}{
		"title": note.Title,
	})

	return nil
}

// Purge hard-deletes a trashed note together with its versions, comments,
// lock and tag links. There is no way back.
func (s *noteService) Purge(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOneUnscoped(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if note == nil {
		return errors.New("note not found")
	}
	if !note.IsDeleted {
		return errors.New("note must be trashed before purging")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.NoteVersionRepository().DeleteByNoteId(ctx, id); err != nil {
		return err
	}
	if err := uow.CommentRepository().DeleteByNoteIdUnscoped(ctx, id); err != nil {
		return err
	}
	if err := uow.NoteLockRepository().DeleteByNoteId(ctx, id); err != nil {
		return err
	}
	if err := uow.TagRepository().DeleteLinksByNoteId(ctx, id); err != nil {
		return err
	}
	if err := uow.NoteRepository().DeleteUnscoped(ctx, id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	recordActivity(ctx, s.publisherService, userId, entity.ActionNotePurged, "note", &id, map[string]interface{}{
		"title": note.Title,
	})

	return nil
}

func (s *noteService) Search(ctx context.Context, userId uuid.UUID, query string) ([]dto.SearchNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	filters := search.ParseQuery(query)

	specs := []specification.Specification{
		specification.NoteOwnedByUser{UserID: userId},
	}
	if filters.FolderName != "" {
		specs = append(specs, specification.ByFolderName{Name: filters.FolderName})
	}
	if filters.NoteTitle != "" {
		specs = append(specs, specification.ByTitleLike{Title: filters.NoteTitle})
	}
	if filters.TagName != "" {
		specs = append(specs, specification.ByTagName{Name: filters.TagName})
	}
	if filters.SearchQuery != "" {
		specs = append(specs, specification.NoteSearchQuery{Query: filters.SearchQuery})
	}
	specs = append(specs, specification.OrderBy{Field: "notes.updated_at", Desc: true})

	notes, err := uow.NoteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	locked, err := s.lockedNoteIds(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(filters.SearchQuery)
	results := make([]dto.SearchNoteResponse, 0, len(notes))
	for _, note := range notes {
		isLocked := locked[note.Id]

		// Locked notes only match on their title. A hit that came from the
		// body would reveal content the lock is supposed to hide.
		if isLocked && term != "" && !strings.Contains(strings.ToLower(note.Title), term) {
			continue
		}

		item := dto.SearchNoteResponse{
			Id:        note.Id,
			Title:     note.Title,
			FolderId:  note.FolderId,
			Locked:    isLocked,
			CreatedAt: note.CreatedAt,
			UpdatedAt: note.UpdatedAt,
		}
		if !isLocked {
			item.Excerpt = utils.Excerpt(blockdoc.ToPlainText(note.Content), noteExcerptLength)
		}
		results = append(results, item)
	}

	return results, nil
}

func (s *noteService) Export(ctx context.Context, userId uuid.UUID, id uuid.UUID, format string) (*dto.ExportNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}

	if err := requireNoteAccess(ctx, uow, s.unlockStore, userId, note.Id); err != nil {
		return nil, err
	}

	var content, mimeType, normalized string
	switch strings.ToLower(format) {
	case "html":
		normalized = "html"
		content = blockdoc.ToHTML(note.Content)
		mimeType = "text/html"
	case "text", "txt":
		normalized = "text"
		content = blockdoc.ToPlainText(note.Content)
		mimeType = "text/plain"
	case "", "markdown", "md":
		normalized = "markdown"
		content = blockdoc.ToMarkdown(note.Content)
		mimeType = "text/markdown"
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}

	return &dto.ExportNoteResponse{
		Id:       note.Id,
		Title:    note.Title,
		Format:   normalized,
		Content:  content,
		MimeType: mimeType,
	}, nil
}
