package repository

import (
	"time"

	convdomain "saypal-backend/internal/conversation/domain"
)

// ConversationRepository owns persistence for conversations and their
// messages. Lookups return (nil, nil) when no row matches.
type ConversationRepository interface {
	Create(conv *convdomain.Conversation) error
	FindByID(id string) (*convdomain.Conversation, error)
	FindByUser(userID string, limit, offset int) ([]*convdomain.Conversation, error)
	FindByTopic(userID, topic string, limit, offset int) ([]*convdomain.Conversation, error)
	FindByDateRange(userID string, start, end time.Time, limit, offset int) ([]*convdomain.Conversation, error)
	FindActive(userID string) (*convdomain.Conversation, error)
	Update(conv *convdomain.Conversation) error
	Delete(id string) error
	DeleteByUser(userID string) error

	// Activate flags the conversation active and clears the flag on every
	// other conversation of the user, plus the user's active-conversation
	// pointer, in one transaction. ErrConversationNotFound when the
	// conversation does not exist or belongs to another user.
	Activate(userID, conversationID string) error

	AppendMessage(msg *convdomain.Message) error
	FindMessages(conversationID string, limit, offset int) ([]*convdomain.Message, error)
}
