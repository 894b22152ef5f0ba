package routes

import (
	"kreator-konnect-backend/handlers/metrics"
	"kreator-konnect-backend/middleware"

	"github.com/gin-gonic/gin"
)

func MetricsRoutes(r *gin.Engine) {
	earningsRoutes := r.Group("/api/earnings")
	earningsRoutes.Use(middleware.JWTAuth())
	{
		earningsRoutes.GET("/monthly", metrics.GetMonthlyEarnings)
	}

	subscribersRoutes := r.Group("/api/subscribers")
	subscribersRoutes.Use(middleware.JWTAuth())
	{
		subscribersRoutes.GET("/count", metrics.GetSubscriberCount)
	}
}
