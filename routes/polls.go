package routes

import (
	"kreator-konnect-backend/handlers/polls"
	"kreator-konnect-backend/middleware"

	"github.com/gin-gonic/gin"
)

func PollsRoutes(r *gin.Engine) {
	pollsRoutes := r.Group("/api/polls")
	pollsRoutes.Use(middleware.JWTAuth())
	{
		pollsRoutes.POST("/vote", polls.Vote)
	}
}
