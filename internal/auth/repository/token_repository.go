package repository

import (
	"errors"

	"gorm.io/gorm"

	authdomain "saypal-backend/internal/auth/domain"
)

// tokenRepository implements TokenRepository on gorm.
type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(token *authdomain.RefreshToken) error {
	existing, err := r.Find(token.Token, token.UserID)
	if err != nil {
		return err
	}
	if existing != nil {
		return authdomain.ErrTokenExists
	}
	return r.db.Create(token).Error
}

func (r *tokenRepository) Find(token, userID string) (*authdomain.RefreshToken, error) {
	var stored authdomain.RefreshToken
	err := r.db.Where("token = ? AND user_id = ?", token, userID).First(&stored).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stored, nil
}

func (r *tokenRepository) Delete(token, userID string) error {
	return r.db.Where("token = ? AND user_id = ?", token, userID).
		Delete(&authdomain.RefreshToken{}).Error
}

func (r *tokenRepository) DeleteByUser(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&authdomain.RefreshToken{}).Error
}

// Rotate deletes the old token and inserts its replacement in one transaction.
// The delete doubles as a compare-and-delete: when two requests race on the
// same token, the row is gone for the second one and it gets ErrInvalidToken.
func (r *tokenRepository) Rotate(userID, oldToken string, newToken *authdomain.RefreshToken) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("token = ? AND user_id = ?", oldToken, userID).
			Delete(&authdomain.RefreshToken{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return authdomain.ErrInvalidToken
		}
		return tx.Create(newToken).Error
	})
}
