package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	authdomain "saypal-backend/internal/auth/domain"
	userdto "saypal-backend/internal/user/dto"
	"saypal-backend/internal/user/usecase"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
}

func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

func (h *UserHandler) List(c *gin.Context) {
	limit, offset := pagination(c, 100)

	users, err := h.userUsecase.List(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, userdto.UserListResponse{Users: users, Limit: limit, Offset: offset})
}

func (h *UserHandler) GetByID(c *gin.Context) {
	user, err := h.userUsecase.GetByID(c.Param("id"))
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateMe updates the calling user's own profile.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req userdto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUsecase.Update(c.GetString("userID"), &req)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteMe removes the calling user's account and everything attached to it.
func (h *UserHandler) DeleteMe(c *gin.Context) {
	if err := h.userUsecase.Delete(c.GetString("userID")); err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

// GetDiscordData serves the aggregate bundle the Discord bot fetches per user.
func (h *UserHandler) GetDiscordData(c *gin.Context) {
	discordID, err := strconv.ParseInt(c.Param("discord_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid discord id"})
		return
	}

	data, err := h.userUsecase.GetDiscordData(discordID)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, authdomain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, authdomain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
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
