package routes

import (
	"kreator-konnect-backend/handlers/metrics"
	"kreator-konnect-backend/handlers/posts"
	"kreator-konnect-backend/handlers/posts/comments"
	"kreator-konnect-backend/handlers/posts/likes"
	"kreator-konnect-backend/middleware"

	"github.com/gin-gonic/gin"
)

func PostsRoutes(r *gin.Engine) {
	postsRoutes := r.Group("/api/posts")
	postsRoutes.Use(middleware.JWTAuth())
	{
		postsRoutes.POST("", posts.CreatePost)

		// "creator" (subscribed feed) and "metrics" share the :id slot.
		postsRoutes.GET("/:id", func(c *gin.Context) {
			switch c.Param("id") {
			case "creator":
				posts.GetSubscribedFeed(c)
			case "metrics":
				metrics.GetPostMetrics(c)
			default:
				posts.GetPostByID(c)
			}
		})
		postsRoutes.DELETE("/:id", posts.DeletePost)

		postsRoutes.POST("/:id/like", likes.ToggleLike)
		postsRoutes.POST("/:id/comments", comments.AddComment)
		postsRoutes.GET("/:id/comments", comments.GetComments)
	}

	r.GET("/api/exclusive-content", middleware.JWTAuth(), posts.GetExclusiveContent)
}
