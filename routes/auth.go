package routes

import (
	"kreator-konnect-backend/handlers/auth"
	"kreator-konnect-backend/middleware"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	authRoutes := r.Group("/api/auth")
	{
		authRoutes.POST("/signup", auth.Signup)
		authRoutes.POST("/login", auth.Login)
		authRoutes.GET("/me", middleware.JWTAuth(), auth.Me)
	}
}
