// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"skillhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository stores users' recurring workshop blocks.
type ScheduleRepository interface {
	GetByOwnerID(ctx context.Context, ownerID string) ([]models.ScheduleBlock, error)
	GetByID(ctx context.Context, ownerID, blockID string) (*models.ScheduleBlock, error)
	Create(ctx context.Context, block models.ScheduleBlock) (*models.ScheduleBlock, error)
	DeleteByID(ctx context.Context, ownerID, blockID string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a ScheduleRepository over the "schedules" collection.
func NewMongoScheduleRepo(db *mongo.Database) ScheduleRepository {
	return &mongoScheduleRepo{
		coll: db.Collection("schedules"),
	}
}
