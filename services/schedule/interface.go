package schedule

import (
	"context"
	"fmt"

	scheduleRepo "skillhub/database/repository/schedule"
	"skillhub/models"

	"go.uber.org/zap"
)

// ScheduleService serves users' weekly workshop grids and the viewer's selection on them.
type ScheduleService interface {
	GetWeek(ctx context.Context, ownerID string) (*models.WeekLayout, error)
	CreateBlock(ctx context.Context, req models.CreateScheduleRequest) (*models.ScheduleBlock, error)
	DeleteBlock(ctx context.Context, ownerID, blockID string) error

	GetSelection(ctx context.Context, viewerID, ownerID string) (models.SelectionState, error)
	SelectBlock(ctx context.Context, viewerID, ownerID, blockID string) (models.SelectionState, error)
	DismissSelection(ctx context.Context, viewerID, ownerID string) (models.SelectionState, error)
}

// LayoutCache keeps computed weeks between requests. Get returns nil, nil on a miss.
type LayoutCache interface {
	Get(ctx context.Context, ownerID string) (*models.WeekLayout, error)
	Set(ctx context.Context, layout *models.WeekLayout) error
	Invalidate(ctx context.Context, ownerID string) error
}

// SelectionStore keeps each viewer's open detail view for a given owner's week.
type SelectionStore interface {
	Load(ctx context.Context, viewerID, ownerID string) (models.SelectionState, error)
	Save(ctx context.Context, viewerID, ownerID string, state models.SelectionState) error
}

// DefaultScheduleService implements ScheduleService.
type DefaultScheduleService struct {
	Repo       scheduleRepo.ScheduleRepository
	Cache      LayoutCache
	Selections SelectionStore
	Logger     *zap.Logger
}

func NewDefaultScheduleService(
	repo scheduleRepo.ScheduleRepository,
	cache LayoutCache,
	selections SelectionStore,
	logger *zap.Logger,
) (*DefaultScheduleService, error) {
	if repo == nil || cache == nil || selections == nil {
		return nil, fmt.Errorf("schedule service initialization error: one or more dependencies are nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultScheduleService{
		Repo:       repo,
		Cache:      cache,
		Selections: selections,
		Logger:     logger,
	}, nil
}
