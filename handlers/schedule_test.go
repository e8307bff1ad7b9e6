package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	scheduleRepo "skillhub/database/repository/schedule"
	"skillhub/handlers"
	"skillhub/models"
	"skillhub/routes"
	"skillhub/services/schedule"
	"skillhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubService struct {
	blocks    map[string][]models.ScheduleBlock
	selection models.SelectionState
	created   *models.CreateScheduleRequest
	failWith  error
}

func (s *stubService) GetWeek(_ context.Context, ownerID string) (*models.WeekLayout, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return schedule.BuildWeek(ownerID, s.blocks[ownerID])
}

func (s *stubService) CreateBlock(_ context.Context, req models.CreateScheduleRequest) (*models.ScheduleBlock, error) {
	s.created = &req
	block := models.ScheduleBlock{ID: "new", Title: req.Title, StartTime: req.StartTime, EndTime: req.EndTime,
		Status: req.Status, DaysOfWeek: req.DaysOfWeek, OwnerID: req.OwnerID}
	if err := schedule.ValidateBlock(&block); err != nil {
		return nil, err
	}
	return &block, nil
}

func (s *stubService) DeleteBlock(_ context.Context, ownerID, blockID string) error {
	for _, b := range s.blocks[ownerID] {
		if b.ID == blockID {
			return nil
		}
	}
	return scheduleRepo.ErrBlockNotFound
}

func (s *stubService) GetSelection(context.Context, string, string) (models.SelectionState, error) {
	return s.selection, nil
}

func (s *stubService) SelectBlock(ctx context.Context, _, ownerID, blockID string) (models.SelectionState, error) {
	layout, _ := s.GetWeek(ctx, ownerID)
	selector := schedule.NewSelector(layout, s.selection)
	if err := selector.Select(blockID); err != nil {
		return selector.State(), err
	}
	s.selection = selector.State()
	return s.selection, nil
}

func (s *stubService) DismissSelection(context.Context, string, string) (models.SelectionState, error) {
	s.selection = schedule.Dismiss(s.selection)
	return s.selection, nil
}

func newRouter(svc schedule.ScheduleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(utils.ErrorHandler())
	h := handlers.NewScheduleHandler(svc, zap.NewNop())
	routes.RegisterRoutes(r, handlers.NewHandlerBundle(h, handlers.HealthHandler))
	return r
}

func token(t *testing.T, subject, role string) string {
	t.Helper()
	tok, err := utils.GenerateToken(subject, role, time.Hour)
	require.NoError(t, err)
	return tok
}

func do(t *testing.T, r http.Handler, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func sampleBlocks() map[string][]models.ScheduleBlock {
	return map[string][]models.ScheduleBlock{
		"user-1": {
			{ID: "a", Title: "Wheel", StartTime: "7:00 AM", EndTime: "8:00 AM", Status: models.StatusActive,
				DaysOfWeek: []string{"Monday"}, OwnerID: "user-1"},
			{ID: "b", Title: "Glaze", StartTime: "6:00 PM", EndTime: "7:00 PM", Status: models.StatusPaused,
				DaysOfWeek: []string{"Monday", "Thursday"}, OwnerID: "user-1"},
		},
	}
}

func TestGetWeekHandler(t *testing.T) {
	r := newRouter(&stubService{blocks: sampleBlocks()})

	rec := do(t, r, http.MethodGet, "/api/schedules/user-1/week", token(t, "user-1", "student"), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Week models.WeekLayout `json:"week"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Week.Scheduled)
	assert.Equal(t, 420, body.Week.Axis.StartMinute)
	assert.Equal(t, 1200, body.Week.Axis.EndMinute)
	require.Len(t, body.Week.Days, 7)
	assert.Len(t, body.Week.Days[1].Blocks, 2)
	assert.Len(t, body.Week.Days[4].Blocks, 1)
}

func TestGetWeekHandlerNotScheduled(t *testing.T) {
	r := newRouter(&stubService{blocks: sampleBlocks()})

	rec := do(t, r, http.MethodGet, "/api/schedules/user-2/week", token(t, "user-2", "student"), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Week models.WeekLayout `json:"week"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Week.Scheduled)
	assert.Nil(t, body.Week.Axis)
}

func TestGetWeekHandlerAccess(t *testing.T) {
	r := newRouter(&stubService{blocks: sampleBlocks()})

	tests := []struct {
		name   string
		bearer string
		want   int
	}{
		{name: "no token", bearer: "", want: http.StatusUnauthorized},
		{name: "garbage token", bearer: "not-a-jwt", want: http.StatusUnauthorized},
		{name: "other student", bearer: token(t, "user-9", "student"), want: http.StatusForbidden},
		{name: "admin", bearer: token(t, "admin-1", "admin"), want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, r, http.MethodGet, "/api/schedules/user-1/week", tt.bearer, nil)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestGetWeekHandlerServiceFailure(t *testing.T) {
	r := newRouter(&stubService{failWith: errors.New("mongo down")})

	rec := do(t, r, http.MethodGet, "/api/schedules/user-1/week", token(t, "user-1", ""), nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to load schedule")
}

func TestCreateBlockHandler(t *testing.T) {
	svc := &stubService{blocks: sampleBlocks()}
	r := newRouter(svc)
	bearer := token(t, "user-1", "student")

	valid := models.CreateScheduleRequest{
		Title: "Throwing", StartTime: "9:00 AM", EndTime: "10:00 AM", Status: models.StatusActive,
		DaysOfWeek: []string{"Friday"}, OwnerID: "user-1",
	}
	rec := do(t, r, http.MethodPost, "/api/schedules", bearer, valid)
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.created)
	assert.Equal(t, "Throwing", svc.created.Title)

	missing := valid
	missing.DaysOfWeek = nil
	rec = do(t, r, http.MethodPost, "/api/schedules", bearer, missing)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	badTime := valid
	badTime.EndTime = "10 o'clock"
	rec = do(t, r, http.MethodPost, "/api/schedules", bearer, badTime)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "malformed time")

	badStatus := valid
	badStatus.Status = "archived"
	rec = do(t, r, http.MethodPost, "/api/schedules", bearer, badStatus)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	otherOwner := valid
	otherOwner.OwnerID = "user-2"
	rec = do(t, r, http.MethodPost, "/api/schedules", bearer, otherOwner)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteBlockHandler(t *testing.T) {
	r := newRouter(&stubService{blocks: sampleBlocks()})
	bearer := token(t, "user-1", "student")

	rec := do(t, r, http.MethodDelete, "/api/schedules/user-1/blocks/a", bearer, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, r, http.MethodDelete, "/api/schedules/user-1/blocks/nope", bearer, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSelectionHandlers(t *testing.T) {
	r := newRouter(&stubService{blocks: sampleBlocks()})
	bearer := token(t, "user-1", "student")

	var body struct {
		Selection models.SelectionState `json:"selection"`
	}

	rec := do(t, r, http.MethodPut, "/api/schedules/user-1/selection/a", bearer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, models.SelectionState{Open: true, BlockID: "a"}, body.Selection)

	rec = do(t, r, http.MethodPut, "/api/schedules/user-1/selection/b", bearer, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, r, http.MethodPut, "/api/schedules/user-1/selection/missing", bearer, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, r, http.MethodGet, "/api/schedules/user-1/selection", bearer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "b", body.Selection.BlockID)

	rec = do(t, r, http.MethodDelete, "/api/schedules/user-1/selection", bearer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Selection.Open)
}

func TestHealthHandler(t *testing.T) {
	r := newRouter(&stubService{})

	rec := do(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"healthy":false`)
}
