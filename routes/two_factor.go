package routes

import (
	"kreator-konnect-backend/handlers/twofactor"
	"kreator-konnect-backend/middleware"

	"github.com/gin-gonic/gin"
)

func TwoFactorRoutes(r *gin.Engine) {
	twoFactorRoutes := r.Group("/api/2fa")
	twoFactorRoutes.Use(middleware.JWTAuth())
	{
		twoFactorRoutes.GET("/status", twofactor.GetStatus)
		twoFactorRoutes.POST("/send-code", twofactor.SendCode)
		twoFactorRoutes.POST("/verify", twofactor.Verify)
		twoFactorRoutes.POST("/disable", twofactor.Disable)
	}
}
