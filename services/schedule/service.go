package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skillhub/models"

	"go.uber.org/zap"
)

// GetWeek returns the owner's laid-out week. An owner with no usable blocks
// yields an unscheduled layout together with ErrNoSchedule.
func (s *DefaultScheduleService) GetWeek(ctx context.Context, ownerID string) (*models.WeekLayout, error) {
	logger := s.Logger.With(zap.String("ownerID", ownerID))

	cached, err := s.Cache.Get(ctx, ownerID)
	if err != nil {
		logger.Warn("layout cache read failed", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	blocks, err := s.Repo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	layout, err := BuildWeek(ownerID, blocks)
	if errors.Is(err, ErrNoSchedule) {
		logWarnings(logger, layout.Warnings)
		return layout, err
	}
	if err != nil {
		// The axis is built from the same snapshot, so this only fires on a logic error.
		logger.DPanic("week layout failed", zap.Error(err), zap.Int("blocks", len(blocks)))
		return nil, err
	}
	layout.GeneratedAt = time.Now().UTC()
	logWarnings(logger, layout.Warnings)

	if err := s.Cache.Set(ctx, layout); err != nil {
		logger.Warn("layout cache write failed", zap.Error(err))
	}
	return layout, nil
}

func (s *DefaultScheduleService) CreateBlock(ctx context.Context, req models.CreateScheduleRequest) (*models.ScheduleBlock, error) {
	block := models.ScheduleBlock{
		Title:         req.Title,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Status:        req.Status,
		DaysOfWeek:    req.DaysOfWeek,
		WorkshopTitle: req.WorkshopTitle,
		OwnerID:       req.OwnerID,
	}
	if err := ValidateBlock(&block); err != nil {
		return nil, err
	}

	created, err := s.Repo.Create(ctx, block)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, req.OwnerID)
	s.Logger.Info("schedule block created",
		zap.String("ownerID", created.OwnerID),
		zap.String("blockID", created.ID),
	)
	return created, nil
}

func (s *DefaultScheduleService) DeleteBlock(ctx context.Context, ownerID, blockID string) error {
	if err := s.Repo.DeleteByID(ctx, ownerID, blockID); err != nil {
		return err
	}
	s.invalidate(ctx, ownerID)
	return nil
}

// GetSelection returns the viewer's detail-view state on the owner's current week.
// A stored selection for a block that has since left the grid reads as closed.
func (s *DefaultScheduleService) GetSelection(ctx context.Context, viewerID, ownerID string) (models.SelectionState, error) {
	selector, err := s.selector(ctx, viewerID, ownerID)
	if err != nil {
		return Closed(), err
	}
	return selector.State(), nil
}

// SelectBlock opens blockID, replacing any open selection. Unknown blocks are
// rejected with UnknownBlockSelectedError and the stored state is kept.
func (s *DefaultScheduleService) SelectBlock(ctx context.Context, viewerID, ownerID, blockID string) (models.SelectionState, error) {
	selector, err := s.selector(ctx, viewerID, ownerID)
	if err != nil {
		return Closed(), err
	}
	if err := selector.Select(blockID); err != nil {
		return selector.State(), err
	}
	if err := s.Selections.Save(ctx, viewerID, ownerID, selector.State()); err != nil {
		return selector.State(), fmt.Errorf("failed to save selection: %w", err)
	}
	return selector.State(), nil
}

func (s *DefaultScheduleService) DismissSelection(ctx context.Context, viewerID, ownerID string) (models.SelectionState, error) {
	state := Closed()
	if err := s.Selections.Save(ctx, viewerID, ownerID, state); err != nil {
		return state, fmt.Errorf("failed to save selection: %w", err)
	}
	return state, nil
}

func (s *DefaultScheduleService) selector(ctx context.Context, viewerID, ownerID string) (*Selector, error) {
	layout, err := s.GetWeek(ctx, ownerID)
	if err != nil && !errors.Is(err, ErrNoSchedule) {
		return nil, err
	}
	stored, err := s.Selections.Load(ctx, viewerID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load selection: %w", err)
	}
	return NewSelector(layout, stored), nil
}

func (s *DefaultScheduleService) invalidate(ctx context.Context, ownerID string) {
	if err := s.Cache.Invalidate(ctx, ownerID); err != nil {
		s.Logger.Warn("layout cache invalidation failed", zap.String("ownerID", ownerID), zap.Error(err))
	}
}

func logWarnings(logger *zap.Logger, warnings []models.LayoutWarning) {
	for _, w := range warnings {
		logger.Warn("schedule block skipped",
			zap.String("blockID", w.BlockID),
			zap.String("field", w.Field),
			zap.String("reason", w.Message),
		)
	}
}
