package api

import (
	"fmt"
	"net/http"
	"strconv"

	"alcyxob/fitplanner/internal/domain"
	"alcyxob/fitplanner/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PlanHandler struct {
	planService service.PlanService
	logger      *zap.Logger
}

func NewPlanHandler(planService service.PlanService, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{planService: planService, logger: logger}
}

// --- DTOs ---

type GeneratePlanRequest struct {
	FitnessLevel    domain.FitnessLevel  `json:"fitnessLevel" binding:"required,oneof=beginner intermediate advanced"`
	Goals           string               `json:"goals"`
	TimeAvailable   int                  `json:"timeAvailable" binding:"required"`
	Equipment       domain.EquipmentTier `json:"equipment" binding:"required,oneof=minimal basic full"`
	CustomEquipment []string             `json:"customEquipment"`
}

// --- Handler Methods ---

// GeneratePlan godoc
// @Summary Generate a workout plan from the caller's profile
// @Description Blocks until the generation job finishes, fails or times out.
// @Tags Plans
// @Security BearerAuth
// @Param preferences body GeneratePlanRequest true "Generation preferences"
// @Success 201 {object} domain.GeneratedPlan
// @Failure 409 {object} gin.H "Generation already running, or no profile"
// @Failure 502 {object} gin.H "Generation failed"
// @Failure 503 {object} gin.H "Generation not configured"
// @Failure 504 {object} gin.H "Generation timed out"
// @Router /plans/generate [post]
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	plan, err := h.planService.Generate(c.Request.Context(), userID, domain.GenerationPreferences{
		FitnessLevel:    req.FitnessLevel,
		Goals:           req.Goals,
		TimeAvailable:   req.TimeAvailable,
		Equipment:       req.Equipment,
		CustomEquipment: req.CustomEquipment,
	})
	if err != nil {
		respondWithError(c, h.logger, err, "Failed to generate plan")
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// ListPlans godoc
// @Summary Recent generated plans, newest first
// @Tags Plans
// @Security BearerAuth
// @Param limit query int false "Max plans (default 10, max 50)"
// @Success 200 {array} domain.GeneratedPlan
// @Router /plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			abortWithError(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	plans, err := h.planService.ListRecent(c.Request.Context(), userID, limit)
	if err != nil {
		respondWithError(c, h.logger, err, "Failed to list plans")
		return
	}
	if plans == nil {
		plans = []domain.GeneratedPlan{}
	}
	c.JSON(http.StatusOK, plans)
}

// GetPlan godoc
// @Summary One generated plan
// @Tags Plans
// @Security BearerAuth
// @Param planId path string true "Plan ID"
// @Success 200 {object} domain.GeneratedPlan
// @Failure 404 {object} gin.H "Plan not found"
// @Router /plans/{planId} [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	planID, ok := objectIDParam(c, "planId")
	if !ok {
		return
	}

	plan, err := h.planService.Get(c.Request.Context(), userID, planID)
	if err != nil {
		respondWithError(c, h.logger, err, "Failed to load plan")
		return
	}
	c.JSON(http.StatusOK, plan)
}

// GetPlanSections godoc
// @Summary The plan split at its top-level headings, each body rendered to HTML
// @Tags Plans
// @Security BearerAuth
// @Param planId path string true "Plan ID"
// @Success 200 {array} plantext.Section
// @Router /plans/{planId}/sections [get]
func (h *PlanHandler) GetPlanSections(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	planID, ok := objectIDParam(c, "planId")
	if !ok {
		return
	}

	sections, err := h.planService.Sections(c.Request.Context(), userID, planID)
	if err != nil {
		respondWithError(c, h.logger, err, "Failed to render plan sections")
		return
	}
	c.JSON(http.StatusOK, sections)
}

// ExportPlan godoc
// @Summary Export the plan as markdown to object storage
// @Tags Plans
// @Security BearerAuth
// @Param planId path string true "Plan ID"
// @Success 201 {object} service.PlanExportResult
// @Failure 503 {object} gin.H "Export storage not configured"
// @Router /plans/{planId}/export [post]
func (h *PlanHandler) ExportPlan(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	planID, ok := objectIDParam(c, "planId")
	if !ok {
		return
	}

	result, err := h.planService.Export(c.Request.Context(), userID, planID)
	if err != nil {
		respondWithError(c, h.logger, err, "Failed to export plan")
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GetLatestExport godoc
// @Summary Fresh download URL for the plan's most recent export
// @Tags Plans
// @Security BearerAuth
// @Param planId path string true "Plan ID"
// @Success 200 {object} service.PlanExportResult
// @Failure 404 {object} gin.H "Never exported"
// @Router /plans/{planId}/export [get]
func (h *PlanHandler) GetLatestExport(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	planID, ok := objectIDParam(c, "planId")
	if !ok {
		return
	}

	result, err := h.planService.LatestExport(c.Request.Context(), userID, planID)
	if err != nil {
		respondWithError(c, h.logger, err, "Failed to load plan export")
		return
	}
	c.JSON(http.StatusOK, result)
}
