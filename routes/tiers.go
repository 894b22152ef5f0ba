package routes

import (
	"kreator-konnect-backend/handlers/tiers"
	"kreator-konnect-backend/middleware"

	"github.com/gin-gonic/gin"
)

func TiersRoutes(r *gin.Engine) {
	tiersRoutes := r.Group("/api/tiers")
	tiersRoutes.Use(middleware.JWTAuth())
	{
		tiersRoutes.POST("", tiers.CreateTier)

		// "me" shares the :creatorId slot.
		tiersRoutes.GET("/:creatorId", func(c *gin.Context) {
			if c.Param("creatorId") == "me" {
				tiers.GetMyTiers(c)
				return
			}
			tiers.GetCreatorTiers(c)
		})
	}
}
