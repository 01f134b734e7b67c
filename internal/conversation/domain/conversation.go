package domain

import "time"

// Conversation is one chat thread between a user and their pal. At most one
// conversation per user carries IsActive; the repository's Activate keeps
// that invariant transactional.
type Conversation struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"index;not null"`
	Title       *string   `json:"title,omitempty"`
	Topics      []string  `json:"topics" gorm:"serializer:json"`
	DMChannelID *int64    `json:"dm_channel_id,omitempty"`
	IsActive    bool      `json:"is_active" gorm:"default:false;index"`
	IsAnalyzed  bool      `json:"is_analyzed" gorm:"default:false"`
	Messages    []Message `json:"messages,omitempty" gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Message struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	ConversationID string    `json:"conversation_id" gorm:"index;not null"`
	Content        string    `json:"content" gorm:"not null"`
	IsFromUser     bool      `json:"is_from_user"`
	CreatedAt      time.Time `json:"created_at"`
}
