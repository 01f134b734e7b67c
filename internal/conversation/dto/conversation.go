package dto

import (
	"time"

	convdomain "saypal-backend/internal/conversation/domain"
)

type CreateConversationRequest struct {
	Title       *string  `json:"title,omitempty"`
	Topics      []string `json:"topics,omitempty"`
	DMChannelID *int64   `json:"dm_channel_id,omitempty"`
}

// UpdateConversationRequest enumerates every updatable field explicitly; a
// nil field means "leave unchanged". Activation is not updatable here; it
// goes through the activate endpoint so the exclusivity invariant holds.
type UpdateConversationRequest struct {
	Title       *string   `json:"title,omitempty"`
	Topics      *[]string `json:"topics,omitempty"`
	DMChannelID *int64    `json:"dm_channel_id,omitempty"`
	IsAnalyzed  *bool     `json:"is_analyzed,omitempty"`
}

type CreateMessageRequest struct {
	Content    string `json:"content" binding:"required"`
	IsFromUser bool   `json:"is_from_user"`
}

type ListConversationsQuery struct {
	Topic string     `form:"topic"`
	Start *time.Time `form:"start" time_format:"2006-01-02T15:04:05Z07:00"`
	End   *time.Time `form:"end" time_format:"2006-01-02T15:04:05Z07:00"`
}

type ConversationsResponse struct {
	Conversations []*convdomain.Conversation `json:"conversations"`
	Limit         int                        `json:"limit"`
	Offset        int                        `json:"offset"`
}

type MessagesResponse struct {
	Messages []*convdomain.Message `json:"messages"`
	Limit    int                   `json:"limit"`
	Offset   int                   `json:"offset"`
}
