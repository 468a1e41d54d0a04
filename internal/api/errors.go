package api

import (
	"context"
	"errors"
	"net/http"

	"alcyxob/fitplanner/internal/domain"
	"alcyxob/fitplanner/internal/generation"
	"alcyxob/fitplanner/internal/profileflow"
	"alcyxob/fitplanner/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// nginx convention; nobody reads it since the client is gone.
const statusClientClosedRequest = 499

// statusFor maps service and domain sentinels to a status code and the
// message shown to the client. ok is false for unexpected errors.
func statusFor(err error) (code int, message string, ok bool) {
	switch {
	case errors.Is(err, domain.ErrInvalidProfile),
		errors.Is(err, domain.ErrInvalidPreferences),
		errors.Is(err, domain.ErrInvalidTrackedPlan),
		errors.Is(err, domain.ErrInvalidProgress),
		errors.Is(err, domain.ErrInvalidWeekday),
		errors.Is(err, profileflow.ErrInvalidStep),
		errors.Is(err, profileflow.ErrSubmitNotReachable),
		errors.Is(err, service.ErrUnknownAction),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrNoWorkoutForDay),
		errors.Is(err, service.ErrNoWorkoutsParsed):
		return http.StatusBadRequest, err.Error(), true

	case errors.Is(err, service.ErrAuthenticationFailed),
		errors.Is(err, service.ErrFederatedTokenInvalid),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrTokenRevoked):
		return http.StatusUnauthorized, err.Error(), true

	case errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, service.ErrPlanNotFound),
		errors.Is(err, service.ErrTrackedPlanNotFound),
		errors.Is(err, service.ErrExportNotFound):
		return http.StatusNotFound, err.Error(), true

	case errors.Is(err, service.ErrUserAlreadyExists),
		errors.Is(err, service.ErrGenerationInProgress),
		errors.Is(err, service.ErrProfileRequired):
		return http.StatusConflict, err.Error(), true

	case errors.Is(err, generation.ErrMissingCredential),
		errors.Is(err, service.ErrFederationNotConfigured),
		errors.Is(err, service.ErrExportUnavailable):
		return http.StatusServiceUnavailable, err.Error(), true

	case errors.Is(err, generation.ErrJobFailed):
		return http.StatusBadGateway, "plan generation failed", true
	case errors.Is(err, generation.ErrTransport):
		return http.StatusBadGateway, "could not reach the plan generation service", true
	case errors.Is(err, generation.ErrTimedOut):
		return http.StatusGatewayTimeout, "plan generation timed out", true
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "request timed out", true
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest, "request canceled", true
	}
	return http.StatusInternalServerError, "", false
}

// respondWithError writes the mapped error, logging anything unexpected.
func respondWithError(c *gin.Context, logger *zap.Logger, err error, fallback string) {
	code, message, ok := statusFor(err)
	if !ok {
		logger.Error(fallback,
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		message = fallback
	}
	_ = c.Error(err)
	abortWithError(c, code, message)
}
