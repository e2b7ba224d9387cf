package ports

import (
	"context"

	"github.com/renato0307/tally/internal/domain"
)

// ActivityReader reads curated activity metadata
type ActivityReader interface {
	GetActivity(ctx context.Context, id int64) (*domain.Activity, error)
	ListActivities(ctx context.Context) ([]domain.Activity, error)
	ListActivitiesByID(ctx context.Context, ids []int64) ([]domain.Activity, error)
}

// ActivityWriter applies the curation feed.
// Automatic upserts never overwrite activities that were edited manually.
type ActivityWriter interface {
	UpsertActivities(ctx context.Context, activities []domain.Activity) (int, error)
}
