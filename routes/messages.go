package routes

import (
	"kreator-konnect-backend/handlers/messages"
	"kreator-konnect-backend/middleware"

	"github.com/gin-gonic/gin"
)

func MessagesRoutes(r *gin.Engine) {
	messagesRoutes := r.Group("/api/messages")
	messagesRoutes.Use(middleware.JWTAuth())
	{
		messagesRoutes.POST("", messages.SendMessage)
		messagesRoutes.POST("/upload", messages.UploadAttachment)

		// "conversations" shares the :conversationId slot.
		messagesRoutes.GET("/:conversationId", func(c *gin.Context) {
			if c.Param("conversationId") == "conversations" {
				messages.GetConversations(c)
				return
			}
			messages.GetConversationMessages(c)
		})
	}
}
