package dto

import (
	"time"

	authdomain "saypal-backend/internal/auth/domain"
	convdomain "saypal-backend/internal/conversation/domain"
	memdomain "saypal-backend/internal/memory/domain"
	paldomain "saypal-backend/internal/pal/domain"
)

// UpdateUserRequest carries partial profile updates. Every field is optional;
// nil means "leave unchanged". A non-nil Password re-hashes the credential and
// revokes every refresh token the user holds.
type UpdateUserRequest struct {
	Email              *string         `json:"email,omitempty" binding:"omitempty,email"`
	Name               *string         `json:"name,omitempty"`
	Password           *string         `json:"password,omitempty" binding:"omitempty,min=8"`
	Birthday           *time.Time      `json:"birthday,omitempty"`
	Occupation         *string         `json:"occupation,omitempty"`
	RelationshipStatus *string         `json:"relationship_status,omitempty"`
	Interests          *[]string       `json:"interests,omitempty"`
	PersonalityTraits  *map[string]any `json:"personality_traits,omitempty"`
	IsActive           *bool           `json:"is_active,omitempty"`
}

type UserListResponse struct {
	Users  []*authdomain.User `json:"users"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

// DiscordDataResponse bundles everything the Discord bot needs about a user in
// a single round trip.
type DiscordDataResponse struct {
	User                *authdomain.User           `json:"user"`
	Pal                 *paldomain.Pal             `json:"pal,omitempty"`
	ActiveConversation  *convdomain.Conversation   `json:"active_conversation,omitempty"`
	RecentConversations []*convdomain.Conversation `json:"recent_conversations"`
	ImportantMemories   []*memdomain.Memory        `json:"important_memories"`
}
