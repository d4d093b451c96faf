package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sleeptight/club-backend/internal/handler"
	"github.com/sleeptight/club-backend/internal/middleware"
	"github.com/sleeptight/club-backend/pkg/jwt"
)

// Handlers groups the API handlers for route wiring
type Handlers struct {
	Status     *handler.StatusHandler
	Auth       *handler.AuthHandler
	Post       *handler.PostHandler
	Comment    *handler.CommentHandler
	Message    *handler.MessageHandler
	Moderation *handler.ModerationHandler
}

// Setup configures all API routes
func Setup(router *gin.Engine, h Handlers, jwtManager *jwt.Manager, adminValidator middleware.TokenValidator) {
	api := router.Group("/api")
	auth := middleware.JWTAuth(jwtManager)
	admin := middleware.AdminAuth(adminValidator)

	api.GET("/status", h.Status.GetStatus)

	// Auth
	authGroup := api.Group("/auth")
	authGroup.POST("/signup", h.Auth.Signup)
	authGroup.POST("/login", h.Auth.Login)
	authGroup.GET("/me", auth, h.Auth.Me)

	// Posts and comments
	posts := api.Group("/posts")
	posts.GET("", h.Post.ListPosts)
	posts.POST("", auth, h.Post.CreatePost)
	posts.GET("/:id", h.Post.GetPost)
	posts.POST("/:id/comments", auth, h.Comment.CreateComment)

	// Direct messages
	messages := api.Group("/messages")
	messages.Use(auth)
	messages.POST("", h.Message.SendMessage)
	messages.GET("", h.Message.ListMessages)

	// Moderation (admin token, not member identity)
	mod := api.Group("/mod")
	mod.Use(admin)
	mod.GET("/pending", h.Moderation.ListPending)
	mod.POST("/approve", h.Moderation.Approve)
	mod.POST("/remove", h.Moderation.Remove)
	mod.GET("/logs", h.Moderation.Logs)

	adminGroup := api.Group("/admin")
	adminGroup.Use(admin)
	adminGroup.POST("/reset", h.Moderation.TriggerReset)
}
