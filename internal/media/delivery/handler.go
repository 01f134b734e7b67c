package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	mediadomain "saypal-backend/internal/media/domain"
	mediadto "saypal-backend/internal/media/dto"
	"saypal-backend/internal/media/usecase"
)

type MediaHandler struct {
	mediaUsecase usecase.MediaUsecase
}

func NewMediaHandler(mediaUsecase usecase.MediaUsecase) *MediaHandler {
	return &MediaHandler{mediaUsecase: mediaUsecase}
}

func (h *MediaHandler) Create(c *gin.Context) {
	var req mediadto.CreateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	media, err := h.mediaUsecase.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, media)
}

func (h *MediaHandler) List(c *gin.Context) {
	var mediaType *mediadomain.MediaType
	if t := c.Query("type"); t != "" {
		mt := mediadomain.MediaType(t)
		mediaType = &mt
	}
	limit, offset := pagination(c, 100)

	media, err := h.mediaUsecase.List(mediaType, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, mediadto.MediaListResponse{Media: media, Limit: limit, Offset: offset})
}

func (h *MediaHandler) GetByID(c *gin.Context) {
	media, err := h.mediaUsecase.GetByID(c.Param("id"))
	if err != nil {
		respondMediaError(c, err)
		return
	}
	c.JSON(http.StatusOK, media)
}

func (h *MediaHandler) Update(c *gin.Context) {
	var req mediadto.UpdateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	media, err := h.mediaUsecase.Update(c.Param("id"), &req)
	if err != nil {
		respondMediaError(c, err)
		return
	}

	c.JSON(http.StatusOK, media)
}

func (h *MediaHandler) Delete(c *gin.Context) {
	if err := h.mediaUsecase.Delete(c.Param("id")); err != nil {
		respondMediaError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "media deleted"})
}

func respondMediaError(c *gin.Context, err error) {
	if errors.Is(err, mediadomain.ErrMediaNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func pagination(c *gin.Context, defaultLimit int) (limit, offset int) {
	limit = defaultLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if parsed, err := strconv.Atoi(offsetStr); err == nil && parsed >= 0 {
			offset = parsed
		}
	}
	return limit, offset
}
