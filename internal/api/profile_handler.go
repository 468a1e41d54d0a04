package api

import (
	"fmt"
	"net/http"

	"alcyxob/fitplanner/internal/domain"
	"alcyxob/fitplanner/internal/profileflow"
	"alcyxob/fitplanner/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profileService service.ProfileService
	logger         *zap.Logger
}

func NewProfileHandler(profileService service.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, logger: logger}
}

// --- DTOs ---

// ProfileRequest carries only shape checks; range checks live in domain.Profile.Validate.
type ProfileRequest struct {
	Name                string               `json:"name" binding:"required"`
	Age                 int                  `json:"age" binding:"required"`
	Gender              string               `json:"gender" binding:"required"`
	WeightKg            float64              `json:"weight" binding:"required"`
	HeightCm            float64              `json:"height" binding:"required"`
	ActivityLevel       domain.ActivityLevel `json:"activityLevel" binding:"required"`
	WorkoutDaysPerWeek  int                  `json:"workoutDaysPerWeek" binding:"required"`
	HealthConditions    string               `json:"healthConditions"`
	DietaryRestrictions string               `json:"dietaryRestrictions"`
}

type SetupRequest struct {
	Step   int               `json:"step" binding:"required"`
	Action string            `json:"action" binding:"required,oneof=next back submit"`
	Draft  profileflow.Draft `json:"draft"`
}

// --- Handler Methods ---

// GetProfile godoc
// @Summary Get the caller's profile
// @Tags Profile
// @Security BearerAuth
// @Success 200 {object} domain.Profile
// @Failure 404 {object} gin.H "No profile yet"
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.Get(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, h.logger, err, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SaveProfile godoc
// @Summary Create or replace the caller's profile
// @Tags Profile
// @Security BearerAuth
// @Param profile body ProfileRequest true "Profile"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} gin.H "Validation error"
// @Router /profile [put]
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	profile := &domain.Profile{
		Name:                req.Name,
		Age:                 req.Age,
		Gender:              req.Gender,
		WeightKg:            req.WeightKg,
		HeightCm:            req.HeightCm,
		ActivityLevel:       req.ActivityLevel,
		WorkoutDaysPerWeek:  req.WorkoutDaysPerWeek,
		HealthConditions:    req.HealthConditions,
		DietaryRestrictions: req.DietaryRestrictions,
	}
	saved, err := h.profileService.Save(c.Request.Context(), userID, profile)
	if err != nil {
		respondWithError(c, h.logger, err, "Failed to save profile")
		return
	}
	c.JSON(http.StatusOK, saved)
}

// StartSetup godoc
// @Summary Open the onboarding form, pre-filled from any saved profile
// @Tags Profile
// @Security BearerAuth
// @Success 200 {object} service.SetupResult
// @Router /profile/setup [get]
func (h *ProfileHandler) StartSetup(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.profileService.StartSetup(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, h.logger, err, "Failed to start profile setup")
		return
	}
	c.JSON(http.StatusOK, result)
}

// Setup godoc
// @Summary Apply next, back or submit to the onboarding form
// @Tags Profile
// @Security BearerAuth
// @Param setup body SetupRequest true "Current step, action and draft"
// @Success 200 {object} service.SetupResult
// @Failure 400 {object} gin.H "Invalid step, action or profile"
// @Router /profile/setup [post]
func (h *ProfileHandler) Setup(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req SetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	result, err := h.profileService.Setup(c.Request.Context(), userID, req.Step, req.Action, req.Draft)
	if err != nil {
		respondWithError(c, h.logger, err, "Failed to update profile setup")
		return
	}
	c.JSON(http.StatusOK, result)
}
