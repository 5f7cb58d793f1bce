package service

import (
	"context"
	"time"

	"notevault-be/internal/dto"
	"notevault-be/internal/entity"
	"notevault-be/internal/repository/specification"
	"notevault-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const (
	statsCacheTTL      = 60 * time.Second
	statsWindowDays    = 14
	recentActivityRows = 10
)

type IStatsService interface {
	Overview(ctx context.Context, userId uuid.UUID) (*dto.StatsOverviewResponse, error)
	ActivityLog(ctx context.Context, userId uuid.UUID, action string, limit, offset int) (*dto.ActivityLogResponse, error)
}

type statsService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *cache.Cache
}

func NewStatsService(uowFactory unitofwork.RepositoryFactory) IStatsService {
	return &statsService{
		uowFactory: uowFactory,
		cache:      cache.New(statsCacheTTL, 5*time.Minute),
	}
}

// Overview is computed on read and cached briefly. The numbers feed a
// dashboard, so staleness of a minute is acceptable.
func (s *statsService) Overview(ctx context.Context, userId uuid.UUID) (*dto.StatsOverviewResponse, error) {
	cacheKey := "overview:" + userId.String()
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(*dto.StatsOverviewResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	totalNotes, err := uow.NoteRepository().Count(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	totalFolders, err := uow.FolderRepository().Count(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	totalTags, err := uow.TagRepository().Count(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	trashedNotes, err := uow.NoteRepository().Count(ctx,
		specification.OnlyTrashed{},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}

	pinnedNotes, err := uow.NoteRepository().Count(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.Filter("pinned", true),
	)
	if err != nil {
		return nil, err
	}

	totalComments, err := uow.CommentRepository().Count(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	since := time.Now().AddDate(0, 0, -statsWindowDays)

	created, err := uow.ActivityRepository().CountPerDay(ctx, userId, entity.ActionNoteCreated, since)
	if err != nil {
		return nil, err
	}

	updated, err := uow.ActivityRepository().CountPerDay(ctx, userId, entity.ActionNoteUpdated, since)
	if err != nil {
		return nil, err
	}

	createdPoints := make([]dto.DailyCountPoint, 0, len(created))
	for _, bucket := range created {
		createdPoints = append(createdPoints, dto.DailyCountPoint{Day: bucket.Day, Count: bucket.Count})
	}
	updatedPoints := make([]dto.DailyCountPoint, 0, len(updated))
	for _, bucket := range updated {
		updatedPoints = append(updatedPoints, dto.DailyCountPoint{Day: bucket.Day, Count: bucket.Count})
	}

	recent, err := uow.ActivityRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.Since{Value: since},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: recentActivityRows},
	)
	if err != nil {
		return nil, err
	}
	recentItems := make([]dto.ActivityLogItem, 0, len(recent))
	for _, event := range recent {
		item := dto.ActivityLogItem{
			Action:     event.Action,
			EntityType: event.EntityType,
			Metadata:   event.Metadata,
			CreatedAt:  event.CreatedAt,
		}
		if event.EntityId != nil {
			item.EntityId = event.EntityId.String()
		}
		recentItems = append(recentItems, item)
	}

	resp := &dto.StatsOverviewResponse{
		TotalNotes:        totalNotes,
		TotalFolders:      totalFolders,
		TotalTags:         totalTags,
		TotalComments:     totalComments,
		TrashedNotes:      trashedNotes,
		PinnedNotes:       pinnedNotes,
		NotesCreatedDaily: createdPoints,
		NotesUpdatedDaily: updatedPoints,
		RecentActivity:    recentItems,
		GeneratedAt:       time.Now(),
	}

	s.cache.Set(cacheKey, resp, cache.DefaultExpiration)

	return resp, nil
}

func (s *statsService) ActivityLog(ctx context.Context, userId uuid.UUID, action string, limit, offset int) (*dto.ActivityLogResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
	}
	if action != "" {
		specs = append(specs, specification.ByAction{Action: action})
	}

	total, err := uow.ActivityRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	specs = append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)

	events, err := uow.ActivityRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ActivityLogItem, 0, len(events))
	for _, event := range events {
		item := dto.ActivityLogItem{
			Action:     event.Action,
			EntityType: event.EntityType,
			Metadata:   event.Metadata,
			CreatedAt:  event.CreatedAt,
		}
		if event.EntityId != nil {
			item.EntityId = event.EntityId.String()
		}
		items = append(items, item)
	}

	return &dto.ActivityLogResponse{
		Items: items,
		Total: total,
	}, nil
}
