package routes

import (
	"kreator-konnect-backend/handlers/payouts"
	"kreator-konnect-backend/middleware"

	"github.com/gin-gonic/gin"
)

func PayoutsRoutes(r *gin.Engine) {
	payoutsRoutes := r.Group("/api/payouts")
	payoutsRoutes.Use(middleware.JWTAuth())
	{
		payoutsRoutes.POST("", payouts.RequestPayout)
		payoutsRoutes.GET("", payouts.GetPayouts)
		payoutsRoutes.GET("/history", payouts.GetPayoutHistory)
	}
}
