package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	memdomain "saypal-backend/internal/memory/domain"
	memdto "saypal-backend/internal/memory/dto"
	"saypal-backend/internal/memory/usecase"
)

type MemoryHandler struct {
	memoryUsecase usecase.MemoryUsecase
}

func NewMemoryHandler(memoryUsecase usecase.MemoryUsecase) *MemoryHandler {
	return &MemoryHandler{memoryUsecase: memoryUsecase}
}

func (h *MemoryHandler) Create(c *gin.Context) {
	var req memdto.CreateMemoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	memory, err := h.memoryUsecase.Create(c.GetString("userID"), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, memory)
}

func (h *MemoryHandler) List(c *gin.Context) {
	limit, offset := pagination(c, 100)

	memories, err := h.memoryUsecase.List(c.GetString("userID"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, memdto.MemoriesResponse{
		Memories: memories,
		Limit:    limit,
		Offset:   offset,
	})
}

// ListImportant returns the top memories at or above a minimum importance,
// most important first. Defaults: importance >= 7, 10 memories.
func (h *MemoryHandler) ListImportant(c *gin.Context) {
	minImportance := 7
	if s := c.Query("min_importance"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil && parsed >= 1 && parsed <= 10 {
			minImportance = parsed
		}
	}
	limit := 10
	if s := c.Query("limit"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	memories, err := h.memoryUsecase.ListImportant(c.GetString("userID"), minImportance, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, memdto.MemoriesResponse{Memories: memories, Limit: limit})
}

func (h *MemoryHandler) GetByID(c *gin.Context) {
	memory, err := h.memoryUsecase.GetByID(c.GetString("userID"), c.Param("id"))
	if err != nil {
		respondMemoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, memory)
}

func (h *MemoryHandler) Update(c *gin.Context) {
	var req memdto.UpdateMemoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	memory, err := h.memoryUsecase.Update(c.GetString("userID"), c.Param("id"), &req)
	if err != nil {
		respondMemoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, memory)
}

func (h *MemoryHandler) Delete(c *gin.Context) {
	if err := h.memoryUsecase.Delete(c.GetString("userID"), c.Param("id")); err != nil {
		respondMemoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "memory deleted"})
}

func respondMemoryError(c *gin.Context, err error) {
	if errors.Is(err, memdomain.ErrMemoryNotFound) {
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
