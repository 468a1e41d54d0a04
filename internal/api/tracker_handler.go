package api

import (
	"fmt"
	"net/http"
	"time"

	"alcyxob/fitplanner/internal/domain"
	"alcyxob/fitplanner/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type TrackerHandler struct {
	trackerService service.TrackerService
	logger         *zap.Logger
	now            func() time.Time
}

func NewTrackerHandler(trackerService service.TrackerService, logger *zap.Logger) *TrackerHandler {
	return &TrackerHandler{trackerService: trackerService, logger: logger, now: time.Now}
}

// --- DTOs ---

type CreateTrackedPlanRequest struct {
	GeneratedPlanID string   `json:"generatedPlanId" binding:"required"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        []string `json:"schedule"`
}

type LogProgressRequest struct {
	Date      string               `json:"date" binding:"required"`
	Completed bool                 `json:"completed"`
	Exercises []domain.ExerciseLog `json:"exercises"`
}

// --- Handler Methods ---

// GetOverview godoc
// @Summary Tracked plans plus the most recent generated plans
// @Tags Tracker
// @Security BearerAuth
// @Success 200 {object} service.Overview
// @Router /tracker [get]
func (h *TrackerHandler) GetOverview(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	overview, err := h.trackerService.Overview(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, h.logger, err, "Failed to load tracker overview")
		return
	}
	c.JSON(http.StatusOK, overview)
}

// CreateTrackedPlan godoc
// @Summary Start tracking a generated plan
// @Tags Tracker
// @Security BearerAuth
// @Param plan body CreateTrackedPlanRequest true "Source plan and schedule"
// @Success 201 {object} domain.TrackedPlan
// @Failure 400 {object} gin.H "Bad schedule, or plan has no day-by-day workouts"
// @Failure 404 {object} gin.H "Generated plan not found"
// @Router /tracker/plans [post]
func (h *TrackerHandler) CreateTrackedPlan(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req CreateTrackedPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	sourceID, err := primitive.ObjectIDFromHex(req.GeneratedPlanID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid generatedPlanId format.")
		return
	}

	plan, err := h.trackerService.CreateFromPlan(c.Request.Context(), userID, service.CreateTrackedPlanInput{
		GeneratedPlanID: sourceID,
		Name:            req.Name,
		Description:     req.Description,
		Schedule:        req.Schedule,
	})
	if err != nil {
		respondWithError(c, h.logger, err, "Failed to create tracked plan")
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// ListTrackedPlans godoc
// @Summary All tracked plans, newest first
// @Tags Tracker
// @Security BearerAuth
// @Success 200 {array} domain.TrackedPlan
// @Router /tracker/plans [get]
func (h *TrackerHandler) ListTrackedPlans(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	plans, err := h.trackerService.List(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, h.logger, err, "Failed to list tracked plans")
		return
	}
	if plans == nil {
		plans = []domain.TrackedPlan{}
	}
	c.JSON(http.StatusOK, plans)
}

// DeleteTrackedPlan godoc
// @Summary Stop tracking a plan
// @Tags Tracker
// @Security BearerAuth
// @Param id path string true "Tracked plan ID"
// @Success 204
// @Failure 404 {object} gin.H "Tracked plan not found"
// @Router /tracker/plans/{id} [delete]
func (h *TrackerHandler) DeleteTrackedPlan(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	planID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.trackerService.Delete(c.Request.Context(), userID, planID); err != nil {
		respondWithError(c, h.logger, err, "Failed to delete tracked plan")
		return
	}
	c.Status(http.StatusNoContent)
}

// LogProgress godoc
// @Summary Log one day's performance against a tracked plan
// @Description Without exercises, sets are pre-filled from the day's targets.
// @Tags Tracker
// @Security BearerAuth
// @Param id path string true "Tracked plan ID"
// @Param entry body LogProgressRequest true "Progress entry"
// @Success 201 {object} domain.ProgressEntry
// @Failure 400 {object} gin.H "Invalid entry or no workout that day"
// @Router /tracker/plans/{id}/progress [post]
func (h *TrackerHandler) LogProgress(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	planID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req LogProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, err := h.trackerService.LogProgress(c.Request.Context(), userID, planID, domain.ProgressEntry{
		Date:      req.Date,
		Completed: req.Completed,
		Exercises: req.Exercises,
	})
	if err != nil {
		respondWithError(c, h.logger, err, "Failed to log progress")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GetWeek godoc
// @Summary Workouts for each day of the Monday-first week containing date
// @Tags Tracker
// @Security BearerAuth
// @Param date query string false "Reference date YYYY-MM-DD (default today, UTC)"
// @Success 200 {array} schedule.Day
// @Router /tracker/week [get]
func (h *TrackerHandler) GetWeek(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	reference := h.now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := domain.ParseDate(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		reference = parsed
	}

	week, err := h.trackerService.Week(c.Request.Context(), userID, reference)
	if err != nil {
		respondWithError(c, h.logger, err, "Failed to load week")
		return
	}
	c.JSON(http.StatusOK, week)
}

// GetExerciseHistory godoc
// @Summary History and stats for one exercise of a tracked plan
// @Tags Tracker
// @Security BearerAuth
// @Param id path string true "Tracked plan ID"
// @Param name path string true "Exercise name"
// @Success 200 {object} progress.ExerciseReport
// @Router /tracker/plans/{id}/exercises/{name}/history [get]
func (h *TrackerHandler) GetExerciseHistory(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	planID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	report, err := h.trackerService.ExerciseHistory(c.Request.Context(), userID, planID, c.Param("name"))
	if err != nil {
		respondWithError(c, h.logger, err, "Failed to load exercise history")
		return
	}
	c.JSON(http.StatusOK, report)
}
