package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/trellium-dev/trellium/internal/handlers"
	"github.com/trellium-dev/trellium/internal/middleware"
	"github.com/trellium-dev/trellium/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthCheck)

	auth := r.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
	}

	cards := r.Group("/cards")
	{
		cards.GET("", handlers.ListCards)
		cards.GET("/:card_id", handlers.GetCard)
		cards.POST("", middleware.AuthMiddleware(), handlers.CreateCard)
		cards.PUT("/:card_id", middleware.AuthMiddleware(), handlers.UpdateCard)
		cards.PATCH("/:card_id", middleware.AuthMiddleware(), handlers.UpdateCard)
		cards.DELETE("/:card_id", middleware.AuthMiddleware(), handlers.DeleteCard)

		// Comment endpoints
		cards.GET("/:card_id/comments", handlers.ListComments)
		cards.POST("/:card_id/comments", middleware.AuthMiddleware(), handlers.CreateComment)
		cards.PUT("/:card_id/comments/:comment_id", middleware.AuthMiddleware(), handlers.EditComment)
		cards.PATCH("/:card_id/comments/:comment_id", middleware.AuthMiddleware(), handlers.EditComment)
		cards.DELETE("/:card_id/comments/:comment_id", middleware.AuthMiddleware(), handlers.DeleteComment)
	}

	return r
}
