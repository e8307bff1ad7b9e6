package models

import "time"

// ScheduleStatus is the lifecycle state of a recurring workshop block.
type ScheduleStatus string

const (
	StatusActive   ScheduleStatus = "active"
	StatusPaused   ScheduleStatus = "paused"
	StatusCanceled ScheduleStatus = "canceled"
)

// ScheduleBlock is one recurring weekly workshop session for a user.
type ScheduleBlock struct {
	ID            string         `bson:"id" json:"id"`
	Title         string         `bson:"title" json:"title"`
	StartTime     string         `bson:"startTime" json:"startTime"` // e.g. "7:00 AM"
	EndTime       string         `bson:"endTime" json:"endTime"`     // e.g. "8:30 PM"
	Status        ScheduleStatus `bson:"status" json:"status"`
	DaysOfWeek    []string       `bson:"daysOfWeek" json:"daysOfWeek"` // "Sunday" ... "Saturday"
	WorkshopTitle string         `bson:"workshopTitle" json:"workshopTitle"`
	OwnerID       string         `bson:"ownerId" json:"ownerId"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
}

// CreateScheduleRequest is the payload for adding a block to a user's week.
type CreateScheduleRequest struct {
	Title         string         `json:"title" binding:"required"`
	StartTime     string         `json:"startTime" binding:"required"`
	EndTime       string         `json:"endTime" binding:"required"`
	Status        ScheduleStatus `json:"status" binding:"required"`
	DaysOfWeek    []string       `json:"daysOfWeek" binding:"required,min=1,max=7"`
	WorkshopTitle string         `json:"workshopTitle"`
	OwnerID       string         `json:"ownerId" binding:"required"`
}
