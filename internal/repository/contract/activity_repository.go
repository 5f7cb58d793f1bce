package contract

import (
	"context"
	"time"

	"notevault-be/internal/entity"
	"notevault-be/internal/repository/specification"

	"github.com/google/uuid"
)

// DailyCount is one bucket of the notes-per-day statistics series.
type DailyCount struct {
	Day   time.Time
	Count int64
}

type ActivityRepository interface {
	Create(ctx context.Context, event *entity.ActivityEvent) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityEvent, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	CountPerDay(ctx context.Context, userId uuid.UUID, action string, since time.Time) ([]DailyCount, error)
	DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error
}
