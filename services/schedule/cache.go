package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"skillhub/models"

	"github.com/go-redis/redis/v8"
)

const (
	layoutCachePrefix  = "weekLayout:"
	selectionKeyPrefix = "selection:"
)

type redisLayoutCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisLayoutCache stores week layouts as JSON under weekLayout:<ownerID>.
func NewRedisLayoutCache(client *redis.Client, ttl time.Duration) LayoutCache {
	return &redisLayoutCache{client: client, ttl: ttl}
}

func (c *redisLayoutCache) Get(ctx context.Context, ownerID string) (*models.WeekLayout, error) {
	data, err := c.client.Get(ctx, layoutCachePrefix+ownerID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var layout models.WeekLayout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("failed to unmarshal week layout: %w", err)
	}
	return &layout, nil
}

func (c *redisLayoutCache) Set(ctx context.Context, layout *models.WeekLayout) error {
	data, err := json.Marshal(layout)
	if err != nil {
		return fmt.Errorf("failed to marshal week layout: %w", err)
	}
	return c.client.Set(ctx, layoutCachePrefix+layout.OwnerID, data, c.ttl).Err()
}

func (c *redisLayoutCache) Invalidate(ctx context.Context, ownerID string) error {
	return c.client.Del(ctx, layoutCachePrefix+ownerID).Err()
}

type redisSelectionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSelectionStore keeps selections under selection:<viewerID>:<ownerID>,
// expiring after ttl of inactivity.
func NewRedisSelectionStore(client *redis.Client, ttl time.Duration) SelectionStore {
	return &redisSelectionStore{client: client, ttl: ttl}
}

func (s *redisSelectionStore) Load(ctx context.Context, viewerID, ownerID string) (models.SelectionState, error) {
	data, err := s.client.Get(ctx, selectionKey(viewerID, ownerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Closed(), nil
	}
	if err != nil {
		return Closed(), err
	}
	var state models.SelectionState
	if err := json.Unmarshal(data, &state); err != nil {
		return Closed(), fmt.Errorf("failed to unmarshal selection: %w", err)
	}
	return state, nil
}

func (s *redisSelectionStore) Save(ctx context.Context, viewerID, ownerID string, state models.SelectionState) error {
	key := selectionKey(viewerID, ownerID)
	if !state.Open {
		return s.client.Del(ctx, key).Err()
	}
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal selection: %w", err)
	}
	return s.client.Set(ctx, key, data, s.ttl).Err()
}

func selectionKey(viewerID, ownerID string) string {
	return selectionKeyPrefix + viewerID + ":" + ownerID
}
