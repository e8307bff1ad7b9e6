package routes

import (
	"time"

	"skillhub/handlers"
	"skillhub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterScheduleRoutes registers the weekly schedule endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedules")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.CreateBlockHandler)
		api.GET("/:ownerId/week", hb.GetWeekHandler)
		api.DELETE("/:ownerId/blocks/:blockId", hb.DeleteBlockHandler)

		api.GET("/:ownerId/selection", hb.GetSelectionHandler)
		api.PUT("/:ownerId/selection/:blockId", hb.SelectBlockHandler)
		api.DELETE("/:ownerId/selection", hb.DismissSelectionHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterScheduleRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
