package domain

import (
	"errors"
	"time"
)

// MediaType classifies a media reference.
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
	MediaTypeAudio MediaType = "audio"
	MediaTypeGif   MediaType = "gif"
)

// Media is a reference to externally hosted content a pal can send in
// conversation. The backend stores only the URL, never the bytes.
type Media struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	URL         string    `json:"url" gorm:"not null"`
	Type        MediaType `json:"type" gorm:"not null;index"`
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var ErrMediaNotFound = errors.New("media not found")
