package api

import (
	"github.com/gin-gonic/gin"

	authUsecase "saypal-backend/internal/auth/usecase"
	convUsecase "saypal-backend/internal/conversation/usecase"
	mediaUsecase "saypal-backend/internal/media/usecase"
	memoryUsecase "saypal-backend/internal/memory/usecase"
	palUsecase "saypal-backend/internal/pal/usecase"
	userUsecase "saypal-backend/internal/user/usecase"
	"saypal-backend/pkg/config"
)

type Handler struct {
	authUsecase   authUsecase.AuthUsecase
	userUsecase   userUsecase.UserUsecase
	palUsecase    palUsecase.PalUsecase
	convUsecase   convUsecase.ConversationUsecase
	memoryUsecase memoryUsecase.MemoryUsecase
	mediaUsecase  mediaUsecase.MediaUsecase
	config        *config.Config
}

func NewHandler(
	authUc authUsecase.AuthUsecase,
	userUc userUsecase.UserUsecase,
	palUc palUsecase.PalUsecase,
	convUc convUsecase.ConversationUsecase,
	memoryUc memoryUsecase.MemoryUsecase,
	mediaUc mediaUsecase.MediaUsecase,
	cfg *config.Config,
) *Handler {
	return &Handler{
		authUsecase:   authUc,
		userUsecase:   userUc,
		palUsecase:    palUc,
		convUsecase:   convUc,
		memoryUsecase: memoryUc,
		mediaUsecase:  mediaUc,
		config:        cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h)

	return r.Run(addr)
}
