package routes

import (
	"net/http"

	"kreator-konnect-backend/handlers/users"
	"kreator-konnect-backend/middleware"

	"github.com/gin-gonic/gin"
)

// Gin cannot mix static and param segments at the same tree level, so
// the /api/user/... surface keeps its original paths by dispatching on
// the first segment: known literals are the viewer's own resources,
// anything else is treated as a creator id.
func UsersRoutes(r *gin.Engine) {
	userRoutes := r.Group("/api/user")
	userRoutes.Use(middleware.JWTAuth())
	{
		userRoutes.GET("", users.SearchUsers)

		userRoutes.GET("/:creatorId", func(c *gin.Context) {
			switch c.Param("creatorId") {
			case "profile":
				users.GetProfile(c)
			case "posts":
				users.GetOwnPosts(c)
			case "activity":
				users.GetActivity(c)
			case "subscription-status":
				users.GetAnySubscriptionStatus(c)
			default:
				c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
			}
		})

		userRoutes.POST("/:action", func(c *gin.Context) {
			switch c.Param("action") {
			case "update-profile":
				users.UpdateProfile(c)
			case "profile-pic":
				users.UploadProfilePic(c)
			default:
				c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
			}
		})

		userRoutes.GET("/:creatorId/:resource", func(c *gin.Context) {
			switch c.Param("resource") {
			case "profile":
				users.GetCreatorProfile(c)
			case "posts":
				users.GetCreatorPosts(c)
			case "subscription-status":
				users.GetSubscriptionStatus(c)
			case "tiers":
				c.JSON(http.StatusNotImplemented, gin.H{"message": "This route is not fully implemented or may be redundant. Use /api/tiers/:creatorId"})
			default:
				c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
			}
		})
	}
}
