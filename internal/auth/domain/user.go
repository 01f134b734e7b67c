package domain

import "time"

// User is the account record shared by every feature. Email/password users,
// Discord-linked users, and accounts with both all live in the same table;
// the optional columns stay NULL for the flows that never set them.
type User struct {
	ID                   string         `json:"id" gorm:"primaryKey"`
	Email                *string        `json:"email,omitempty" gorm:"uniqueIndex"`
	HashedPassword       string         `json:"-"`
	DiscordID            *int64         `json:"discord_id,omitempty" gorm:"uniqueIndex"`
	Name                 string         `json:"name" gorm:"not null"`
	Birthday             *time.Time     `json:"birthday,omitempty"`
	Occupation           *string        `json:"occupation,omitempty"`
	RelationshipStatus   *string        `json:"relationship_status,omitempty"`
	Interests            []string       `json:"interests" gorm:"serializer:json"`
	PersonalityTraits    map[string]any `json:"personality_traits" gorm:"serializer:json"`
	TOTPSecret           string         `json:"-"`
	IsActive             bool           `json:"is_active" gorm:"default:true"`
	LastLogin            *time.Time     `json:"last_login,omitempty"`
	ActiveConversationID *string        `json:"active_conversation_id,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

// HasSecondFactor reports whether login must be gated behind TOTP before a
// refresh token may be issued.
func (u *User) HasSecondFactor() bool {
	return u.TOTPSecret != ""
}

// RefreshToken is a persisted, single-use credential. The composite primary
// key rejects duplicate (token, user) pairs at the database level.
type RefreshToken struct {
	Token  string `json:"token" gorm:"primaryKey"`
	UserID string `json:"user_id" gorm:"primaryKey;index"`
}
