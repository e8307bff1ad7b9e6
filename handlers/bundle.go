// File: skillhub/handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Schedule endpoints
	GetWeekHandler          gin.HandlerFunc
	CreateBlockHandler      gin.HandlerFunc
	DeleteBlockHandler      gin.HandlerFunc
	GetSelectionHandler     gin.HandlerFunc
	SelectBlockHandler      gin.HandlerFunc
	DismissSelectionHandler gin.HandlerFunc

	// Health endpoint
	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle wires a ScheduleHandler's methods into a bundle.
func NewHandlerBundle(sh *ScheduleHandler, health gin.HandlerFunc) *HandlerBundle {
	return &HandlerBundle{
		GetWeekHandler:          sh.GetWeekHandler,
		CreateBlockHandler:      sh.CreateBlockHandler,
		DeleteBlockHandler:      sh.DeleteBlockHandler,
		GetSelectionHandler:     sh.GetSelectionHandler,
		SelectBlockHandler:      sh.SelectBlockHandler,
		DismissSelectionHandler: sh.DismissSelectionHandler,
		HealthHandler:           health,
	}
}
