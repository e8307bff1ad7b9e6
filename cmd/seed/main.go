// Command seed fills the schedules collection with a demo week and prints a
// bearer token for its owner.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"skillhub/config"
	"skillhub/database"
	scheduleRepo "skillhub/database/repository/schedule"
	"skillhub/models"
	"skillhub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func main() {
	ownerID := flag.String("owner", "demo-student", "owner id of the seeded blocks")
	reset := flag.Bool("reset", true, "remove the owner's existing blocks first")
	flag.Parse()

	config.LoadConfig()
	logger := utils.GetLogger()
	database.InitDB()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if *reset {
		res, err := database.DB().Collection("schedules").DeleteMany(ctx, bson.M{"ownerId": *ownerID})
		if err != nil {
			logger.Fatal("failed to clear schedules", zap.Error(err))
		}
		logger.Info("cleared schedules", zap.Int64("deleted", res.DeletedCount))
	}

	repo := scheduleRepo.NewMongoScheduleRepo(database.DB())
	if err := repo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("failed to ensure indexes", zap.Error(err))
	}

	for _, b := range demoWeek(*ownerID) {
		created, err := repo.Create(ctx, b)
		if err != nil {
			logger.Fatal("failed to insert block", zap.String("title", b.Title), zap.Error(err))
		}
		logger.Info("seeded block", zap.String("id", created.ID), zap.String("title", created.Title))
	}

	token, err := utils.GenerateToken(*ownerID, "student", 24*time.Hour)
	if err != nil {
		logger.Fatal("failed to sign token", zap.Error(err))
	}
	fmt.Println(token)

	if err := database.CloseDB(context.Background()); err != nil {
		logger.Warn("failed to disconnect", zap.Error(err))
	}
}

func demoWeek(ownerID string) []models.ScheduleBlock {
	block := func(title, workshop, start, end string, status models.ScheduleStatus, days ...string) models.ScheduleBlock {
		return models.ScheduleBlock{
			Title:         title,
			WorkshopTitle: workshop,
			StartTime:     start,
			EndTime:       end,
			Status:        status,
			DaysOfWeek:    days,
			OwnerID:       ownerID,
		}
	}
	return []models.ScheduleBlock{
		block("Morning wheel", "Pottery Basics", "7:00 AM", "8:00 AM", models.StatusActive, "Monday", "Wednesday", "Friday"),
		block("Glazing lab", "Pottery Basics", "6:00 PM", "7:30 PM", models.StatusActive, "Monday"),
		block("Figure drawing", "Life Drawing", "10:00 AM", "12:00 PM", models.StatusPaused, "Tuesday", "Thursday"),
		block("Darkroom", "Film Photography", "2:00 PM", "4:00 PM", models.StatusCanceled, "Saturday"),
		block("Open studio", "Pottery Basics", "11:30 AM", "1:00 PM", models.StatusActive, "Thursday"),
	}
}
