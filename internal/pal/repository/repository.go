package repository

import paldomain "saypal-backend/internal/pal/domain"

// PalRepository owns persistence for pals. Lookups return (nil, nil) when no
// row matches.
type PalRepository interface {
	Create(pal *paldomain.Pal) error
	FindByUserID(userID string) (*paldomain.Pal, error)
	FindByDiscordID(discordID int64) (*paldomain.Pal, error)
	Update(pal *paldomain.Pal) error
	DeleteByUserID(userID string) error
}
