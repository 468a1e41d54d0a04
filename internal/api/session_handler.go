package api

import (
	"io"
	"net/http"
	"time"

	"alcyxob/fitplanner/internal/service"
	"alcyxob/fitplanner/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	sessionEventName  = "session"
	heartbeatInterval = 25 * time.Second
)

type SessionHandler struct {
	authService service.AuthService
	hub         *session.Hub
	logger      *zap.Logger
}

func NewSessionHandler(authService service.AuthService, hub *session.Hub, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{authService: authService, hub: hub, logger: logger}
}

type SessionResponse struct {
	User    *UserResponse `json:"user"`
	Loading bool          `json:"loading"`
}

func mapSession(state session.State) SessionResponse {
	resp := SessionResponse{Loading: state.Loading}
	if state.User != nil {
		user := MapUserToResponse(state.User)
		resp.User = &user
	}
	return resp
}

// Current godoc
// @Summary Current session state
// @Tags Session
// @Security BearerAuth
// @Success 200 {object} SessionResponse
// @Router /session [get]
func (h *SessionHandler) Current(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	state, err := h.authService.CurrentSession(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, h.logger, err, "Could not load session")
		return
	}
	c.JSON(http.StatusOK, mapSession(state))
}

// Events streams session states as server-sent events until the client
// disconnects or the server shuts down.
func (h *SessionHandler) Events(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	// resolve Loading before the first event goes out
	if _, err := h.authService.CurrentSession(c.Request.Context(), userID); err != nil {
		respondWithError(c, h.logger, err, "Could not load session")
		return
	}

	states, err := h.hub.Watch(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusServiceUnavailable, "Server is shutting down")
		return
	}

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Stream(func(io.Writer) bool {
		select {
		case state, open := <-states:
			if !open {
				return false
			}
			c.SSEvent(sessionEventName, mapSession(state))
		case <-heartbeat.C:
			c.SSEvent("ping", "")
		}
		return true
	})
}
