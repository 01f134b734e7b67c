package domain

import (
	"errors"
	"time"
)

// DefaultRelationshipStatus is where every pal relationship starts.
const DefaultRelationshipStatus = "Just met"

// Pal is the user's companion profile. One pal per user; the unique index on
// UserID enforces it at the database level.
type Pal struct {
	ID                 string         `json:"id" gorm:"primaryKey"`
	UserID             string         `json:"user_id" gorm:"uniqueIndex;not null"`
	DiscordID          *int64         `json:"discord_id,omitempty" gorm:"index"`
	Name               string         `json:"name" gorm:"not null"`
	Personality        map[string]any `json:"personality" gorm:"serializer:json"`
	RelationshipStatus string         `json:"relationship_status" gorm:"not null"`
	AvatarURL          *string        `json:"avatar_url,omitempty"`
	Bio                *string        `json:"bio,omitempty"`
	Preferences        map[string]any `json:"preferences,omitempty" gorm:"serializer:json"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

var (
	ErrPalNotFound = errors.New("pal not found")
	ErrPalExists   = errors.New("user already has a pal")
)
