package domain

import (
	"errors"
	"time"
)

// Memory is a fact the pal remembers about its user. Importance ranks 1..10
// and drives which memories get pulled into conversation context.
type Memory struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	UserID     string    `json:"user_id" gorm:"index;not null"`
	Content    string    `json:"content" gorm:"not null"`
	Importance int       `json:"importance" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}

var ErrMemoryNotFound = errors.New("memory not found")
