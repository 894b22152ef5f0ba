package routes

import (
	"kreator-konnect-backend/handlers/subscriptions"
	"kreator-konnect-backend/middleware"

	"github.com/gin-gonic/gin"
)

func SubscriptionsRoutes(r *gin.Engine) {
	subscriptionRoutes := r.Group("/api/subscription")
	subscriptionRoutes.Use(middleware.JWTAuth())
	{
		subscriptionRoutes.POST("", subscriptions.Subscribe)
		subscriptionRoutes.GET("", subscriptions.GetSubscriptions)
		subscriptionRoutes.POST("/cancel", subscriptions.Cancel)
	}
}
