package routes

import (
	"net/http"
	"time"

	"kreator-konnect-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter() *gin.Engine {

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded files are served directly from the uploads directory.
	r.Static("/uploads", utils.UploadsDir())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running...")
	})

	AuthRoutes(r)
	UsersRoutes(r)
	PostsRoutes(r)
	PollsRoutes(r)
	TiersRoutes(r)
	SubscriptionsRoutes(r)
	MessagesRoutes(r)
	PayoutsRoutes(r)
	TwoFactorRoutes(r)
	MetricsRoutes(r)

	return r
}
