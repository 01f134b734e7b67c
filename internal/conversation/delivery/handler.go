package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	convdomain "saypal-backend/internal/conversation/domain"
	convdto "saypal-backend/internal/conversation/dto"
	"saypal-backend/internal/conversation/usecase"
)

type ConversationHandler struct {
	convUsecase usecase.ConversationUsecase
}

func NewConversationHandler(convUsecase usecase.ConversationUsecase) *ConversationHandler {
	return &ConversationHandler{convUsecase: convUsecase}
}

func (h *ConversationHandler) Create(c *gin.Context) {
	var req convdto.CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conv, err := h.convUsecase.Create(c.GetString("userID"), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, conv)
}

func (h *ConversationHandler) List(c *gin.Context) {
	var query convdto.ListConversationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	limit, offset := pagination(c, 100)

	convs, err := h.convUsecase.List(c.GetString("userID"), &query, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, convdto.ConversationsResponse{
		Conversations: convs,
		Limit:         limit,
		Offset:        offset,
	})
}

func (h *ConversationHandler) GetByID(c *gin.Context) {
	conv, err := h.convUsecase.GetByID(c.GetString("userID"), c.Param("id"))
	if err != nil {
		respondConversationError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

func (h *ConversationHandler) GetActive(c *gin.Context) {
	conv, err := h.convUsecase.GetActive(c.GetString("userID"))
	if err != nil {
		respondConversationError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

func (h *ConversationHandler) Update(c *gin.Context) {
	var req convdto.UpdateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conv, err := h.convUsecase.Update(c.GetString("userID"), c.Param("id"), &req)
	if err != nil {
		respondConversationError(c, err)
		return
	}

	c.JSON(http.StatusOK, conv)
}

func (h *ConversationHandler) Delete(c *gin.Context) {
	if err := h.convUsecase.Delete(c.GetString("userID"), c.Param("id")); err != nil {
		respondConversationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "conversation deleted"})
}

func (h *ConversationHandler) Activate(c *gin.Context) {
	conv, err := h.convUsecase.Activate(c.GetString("userID"), c.Param("id"))
	if err != nil {
		respondConversationError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

func (h *ConversationHandler) AppendMessage(c *gin.Context) {
	var req convdto.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.convUsecase.AppendMessage(c.GetString("userID"), c.Param("id"), &req)
	if err != nil {
		respondConversationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

func (h *ConversationHandler) ListMessages(c *gin.Context) {
	limit, offset := pagination(c, 100)

	msgs, err := h.convUsecase.ListMessages(c.GetString("userID"), c.Param("id"), limit, offset)
	if err != nil {
		respondConversationError(c, err)
		return
	}

	c.JSON(http.StatusOK, convdto.MessagesResponse{
		Messages: msgs,
		Limit:    limit,
		Offset:   offset,
	})
}

func respondConversationError(c *gin.Context, err error) {
	if errors.Is(err, convdomain.ErrConversationNotFound) || errors.Is(err, convdomain.ErrMessageNotFound) {
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
