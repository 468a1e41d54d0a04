package api

import (
	"net/http"

	"alcyxob/fitplanner/internal/service"
	"alcyxob/fitplanner/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Services bundles what the handlers depend on.
type Services struct {
	Auth    service.AuthService
	Profile service.ProfileService
	Plan    service.PlanService
	Tracker service.TrackerService
}

func SetupRoutes(
	router *gin.Engine,
	services Services,
	hub *session.Hub,
	gatherer prometheus.Gatherer,
	logger *zap.Logger,
) {
	authHandler := NewAuthHandler(services.Auth, logger)
	sessionHandler := NewSessionHandler(services.Auth, hub, logger)
	profileHandler := NewProfileHandler(services.Profile, logger)
	planHandler := NewPlanHandler(services.Plan, logger)
	trackerHandler := NewTrackerHandler(services.Tracker, logger)

	authMiddleware := AuthMiddleware(services.Auth)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.SignUp)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/google", authHandler.GoogleLogin)
			authGroup.POST("/logout", authMiddleware, authHandler.Logout)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/session", sessionHandler.Current)
		protected.GET("/session/events", sessionHandler.Events)

		profileGroup := protected.Group("/profile")
		{
			profileGroup.GET("", profileHandler.GetProfile)
			profileGroup.PUT("", profileHandler.SaveProfile)
			profileGroup.GET("/setup", profileHandler.StartSetup)
			profileGroup.POST("/setup", profileHandler.Setup)
		}

		planGroup := protected.Group("/plans")
		{
			planGroup.POST("/generate", planHandler.GeneratePlan)
			planGroup.GET("", planHandler.ListPlans)
			planGroup.GET("/:planId", planHandler.GetPlan)
			planGroup.GET("/:planId/sections", planHandler.GetPlanSections)
			planGroup.POST("/:planId/export", planHandler.ExportPlan)
			planGroup.GET("/:planId/export", planHandler.GetLatestExport)
		}

		trackerGroup := protected.Group("/tracker")
		{
			trackerGroup.GET("", trackerHandler.GetOverview)
			trackerGroup.GET("/week", trackerHandler.GetWeek)
			trackerGroup.POST("/plans", trackerHandler.CreateTrackedPlan)
			trackerGroup.GET("/plans", trackerHandler.ListTrackedPlans)
			trackerGroup.DELETE("/plans/:id", trackerHandler.DeleteTrackedPlan)
			trackerGroup.POST("/plans/:id/progress", trackerHandler.LogProgress)
			trackerGroup.GET("/plans/:id/exercises/:name/history", trackerHandler.GetExerciseHistory)
		}
	}
}
