package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	paldomain "saypal-backend/internal/pal/domain"
	paldto "saypal-backend/internal/pal/dto"
	"saypal-backend/internal/pal/usecase"
)

type PalHandler struct {
	palUsecase usecase.PalUsecase
}

func NewPalHandler(palUsecase usecase.PalUsecase) *PalHandler {
	return &PalHandler{palUsecase: palUsecase}
}

func (h *PalHandler) Create(c *gin.Context) {
	var req paldto.CreatePalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pal, err := h.palUsecase.Create(c.GetString("userID"), &req)
	if err != nil {
		respondPalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, pal)
}

func (h *PalHandler) Get(c *gin.Context) {
	pal, err := h.palUsecase.GetByUserID(c.GetString("userID"))
	if err != nil {
		respondPalError(c, err)
		return
	}
	c.JSON(http.StatusOK, pal)
}

// GetByDiscordID serves the Discord bot's lookup path.
func (h *PalHandler) GetByDiscordID(c *gin.Context) {
	discordID, err := strconv.ParseInt(c.Param("discord_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid discord id"})
		return
	}

	pal, err := h.palUsecase.GetByDiscordID(discordID)
	if err != nil {
		respondPalError(c, err)
		return
	}
	c.JSON(http.StatusOK, pal)
}

func (h *PalHandler) Update(c *gin.Context) {
	var req paldto.UpdatePalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pal, err := h.palUsecase.Update(c.GetString("userID"), &req)
	if err != nil {
		respondPalError(c, err)
		return
	}

	c.JSON(http.StatusOK, pal)
}

func (h *PalHandler) Delete(c *gin.Context) {
	if err := h.palUsecase.Delete(c.GetString("userID")); err != nil {
		respondPalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pal deleted"})
}

func respondPalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, paldomain.ErrPalNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, paldomain.ErrPalExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
