package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authDelivery "saypal-backend/internal/auth/delivery"
	convDelivery "saypal-backend/internal/conversation/delivery"
	mediaDelivery "saypal-backend/internal/media/delivery"
	memoryDelivery "saypal-backend/internal/memory/delivery"
	palDelivery "saypal-backend/internal/pal/delivery"
	userDelivery "saypal-backend/internal/user/delivery"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	authHandler := authDelivery.NewAuthHandler(h.authUsecase)
	userHandler := userDelivery.NewUserHandler(h.userUsecase)
	palHandler := palDelivery.NewPalHandler(h.palUsecase)
	convHandler := convDelivery.NewConversationHandler(h.convUsecase)
	memoryHandler := memoryDelivery.NewMemoryHandler(h.memoryUsecase)
	mediaHandler := mediaDelivery.NewMediaHandler(h.mediaUsecase)

	authRequired := authDelivery.AuthMiddleware(h.authUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/discord", authHandler.DiscordSignIn)
			auth.POST("/discord/link", authRequired, authHandler.LinkDiscord)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authRequired, authHandler.Logout)
			auth.POST("/logout-all", authRequired, authHandler.LogoutAll)
			auth.GET("/me", authRequired, authHandler.Me)
		}

		// User routes (protected)
		users := api.Group("/users")
		users.Use(authRequired)
		{
			users.GET("", userHandler.List)
			users.GET("/:id", userHandler.GetByID)
			users.PUT("/me", userHandler.UpdateMe)
			users.DELETE("/me", userHandler.DeleteMe)
			users.GET("/discord/:discord_id/data", userHandler.GetDiscordData)
		}

		// Pal routes (protected)
		pals := api.Group("/pals")
		pals.Use(authRequired)
		{
			pals.POST("", palHandler.Create)
			pals.GET("/me", palHandler.Get)
			pals.GET("/discord/:discord_id", palHandler.GetByDiscordID)
			pals.PUT("/me", palHandler.Update)
			pals.DELETE("/me", palHandler.Delete)
		}

		// Conversation routes (protected)
		conversations := api.Group("/conversations")
		conversations.Use(authRequired)
		{
			conversations.POST("", convHandler.Create)
			conversations.GET("", convHandler.List)
			conversations.GET("/active", convHandler.GetActive)
			conversations.GET("/:id", convHandler.GetByID)
			conversations.PUT("/:id", convHandler.Update)
			conversations.DELETE("/:id", convHandler.Delete)
			conversations.POST("/:id/activate", convHandler.Activate)
			conversations.POST("/:id/messages", convHandler.AppendMessage)
			conversations.GET("/:id/messages", convHandler.ListMessages)
		}

		// Memory routes (protected)
		memories := api.Group("/memories")
		memories.Use(authRequired)
		{
			memories.POST("", memoryHandler.Create)
			memories.GET("", memoryHandler.List)
			memories.GET("/important", memoryHandler.ListImportant)
			memories.GET("/:id", memoryHandler.GetByID)
			memories.PUT("/:id", memoryHandler.Update)
			memories.DELETE("/:id", memoryHandler.Delete)
		}

		// Media routes (protected)
		media := api.Group("/media")
		media.Use(authRequired)
		{
			media.POST("", mediaHandler.Create)
			media.GET("", mediaHandler.List)
			media.GET("/:id", mediaHandler.GetByID)
			media.PUT("/:id", mediaHandler.Update)
			media.DELETE("/:id", mediaHandler.Delete)
		}
	}
}
