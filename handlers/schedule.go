package handlers

import (
	"errors"
	"net/http"

	scheduleRepo "skillhub/database/repository/schedule"
	"skillhub/models"
	"skillhub/services/schedule"
	"skillhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler exposes the weekly schedule grid over HTTP.
type ScheduleHandler struct {
	Service schedule.ScheduleService
	Logger  *zap.Logger
}

func NewScheduleHandler(service schedule.ScheduleService, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{Service: service, Logger: logger}
}

// GetWeekHandler returns the owner's week. An owner without blocks gets a 200
// with "scheduled": false so the page can show its not-scheduled state.
func (h *ScheduleHandler) GetWeekHandler(c *gin.Context) {
	ownerID, ok := authorizedOwner(c)
	if !ok {
		return
	}

	layout, err := h.Service.GetWeek(c.Request.Context(), ownerID)
	if err != nil && !errors.Is(err, schedule.ErrNoSchedule) {
		h.Logger.Error("Failed to build week", zap.String("ownerID", ownerID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"week": layout})
}

func (h *ScheduleHandler) CreateBlockHandler(c *gin.Context) {
	var req models.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	if !canAccess(c, req.OwnerID) {
		utils.JSONError(c, http.StatusForbidden, "Access denied", "cannot edit another user's schedule")
		return
	}

	block, err := h.Service.CreateBlock(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, "Failed to create schedule block", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"schedule": block})
}

func (h *ScheduleHandler) DeleteBlockHandler(c *gin.Context) {
	ownerID, ok := authorizedOwner(c)
	if !ok {
		return
	}
	blockID := c.Param("blockId")

	if err := h.Service.DeleteBlock(c.Request.Context(), ownerID, blockID); err != nil {
		h.writeError(c, "Failed to delete schedule block", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule block deleted successfully"})
}

func (h *ScheduleHandler) GetSelectionHandler(c *gin.Context) {
	ownerID, ok := authorizedOwner(c)
	if !ok {
		return
	}
	state, err := h.Service.GetSelection(c.Request.Context(), c.GetString("viewerID"), ownerID)
	if err != nil {
		h.writeError(c, "Failed to load selection", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"selection": state})
}

func (h *ScheduleHandler) SelectBlockHandler(c *gin.Context) {
	ownerID, ok := authorizedOwner(c)
	if !ok {
		return
	}
	state, err := h.Service.SelectBlock(c.Request.Context(), c.GetString("viewerID"), ownerID, c.Param("blockId"))
	if err != nil {
		h.writeError(c, "Failed to select schedule block", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"selection": state})
}

func (h *ScheduleHandler) DismissSelectionHandler(c *gin.Context) {
	ownerID, ok := authorizedOwner(c)
	if !ok {
		return
	}
	state, err := h.Service.DismissSelection(c.Request.Context(), c.GetString("viewerID"), ownerID)
	if err != nil {
		h.writeError(c, "Failed to dismiss selection", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"selection": state})
}

func (h *ScheduleHandler) writeError(c *gin.Context, message string, err error) {
	var (
		malformed *schedule.MalformedTimeError
		badRange  *schedule.InvalidRangeError
		status    *schedule.UnknownStatusError
		weekday   *schedule.UnknownWeekdayError
		unknown   *schedule.UnknownBlockSelectedError
	)
	switch {
	case errors.As(err, &malformed), errors.As(err, &badRange), errors.As(err, &status), errors.As(err, &weekday):
		utils.JSONError(c, http.StatusBadRequest, message, err.Error())
	case errors.As(err, &unknown), errors.Is(err, scheduleRepo.ErrBlockNotFound):
		utils.JSONError(c, http.StatusNotFound, message, err.Error())
	default:
		h.Logger.Error(message, zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, message, err.Error())
	}
}

// authorizedOwner reads :ownerId and checks the viewer may see that owner's week.
func authorizedOwner(c *gin.Context) (string, bool) {
	ownerID := c.Param("ownerId")
	if ownerID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing owner ID in path", "")
		return "", false
	}
	if !canAccess(c, ownerID) {
		utils.JSONError(c, http.StatusForbidden, "Access denied", "cannot access another user's schedule")
		return "", false
	}
	return ownerID, true
}

func canAccess(c *gin.Context, ownerID string) bool {
	return c.GetString("viewerID") == ownerID || c.GetString("role") == "admin"
}
