// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"skillhub/models"
)

// ErrBlockNotFound is returned when no block matches the owner and id.
var ErrBlockNotFound = errors.New("schedule block not found")

func (r *mongoScheduleRepo) GetByOwnerID(ctx context.Context, ownerID string) ([]models.ScheduleBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}
	defer cursor.Close(ctx)

	blocks := []models.ScheduleBlock{}
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("failed to decode schedules: %w", err)
	}
	return blocks, nil
}

func (r *mongoScheduleRepo) GetByID(ctx context.Context, ownerID, blockID string) (*models.ScheduleBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var block models.ScheduleBlock
	err := r.coll.FindOne(ctx, bson.M{"ownerId": ownerID, "id": blockID}).Decode(&block)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *mongoScheduleRepo) Create(ctx context.Context, block models.ScheduleBlock) (*models.ScheduleBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if block.ID == "" {
		block.ID = uuid.New().String()
	}
	if block.CreatedAt.IsZero() {
		block.CreatedAt = time.Now().UTC()
	}
	if _, err := r.coll.InsertOne(ctx, block); err != nil {
		return nil, fmt.Errorf("failed to insert schedule: %w", err)
	}
	return &block, nil
}

func (r *mongoScheduleRepo) DeleteByID(ctx context.Context, ownerID, blockID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"ownerId": ownerID, "id": blockID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrBlockNotFound
	}
	return nil
}
