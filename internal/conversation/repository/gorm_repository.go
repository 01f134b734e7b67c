package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authdomain "saypal-backend/internal/auth/domain"
	convdomain "saypal-backend/internal/conversation/domain"
)

// gormConversationRepository implements ConversationRepository on gorm.
type gormConversationRepository struct {
	db *gorm.DB
}

func NewGormConversationRepository(db *gorm.DB) ConversationRepository {
	return &gormConversationRepository{db: db}
}

func (r *gormConversationRepository) Create(conv *convdomain.Conversation) error {
	if conv.ID == "" {
		conv.ID = uuid.New().String()
	}
	conv.CreatedAt = time.Now()
	conv.UpdatedAt = time.Now()
	return r.db.Create(conv).Error
}

func (r *gormConversationRepository) FindByID(id string) (*convdomain.Conversation, error) {
	var conv convdomain.Conversation
	err := r.db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).Where("id = ?", id).First(&conv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conv, nil
}

func (r *gormConversationRepository) FindByUser(userID string, limit, offset int) ([]*convdomain.Conversation, error) {
	return r.list(r.db.Where("user_id = ?", userID), limit, offset)
}

func (r *gormConversationRepository) FindByTopic(userID, topic string, limit, offset int) ([]*convdomain.Conversation, error) {
	// Topics are stored as a JSON array; match the serialized element.
	q := r.db.Where("user_id = ? AND topics LIKE ?", userID, `%"`+topic+`"%`)
	return r.list(q, limit, offset)
}

func (r *gormConversationRepository) FindByDateRange(userID string, start, end time.Time, limit, offset int) ([]*convdomain.Conversation, error) {
	q := r.db.Where("user_id = ? AND created_at BETWEEN ? AND ?", userID, start, end)
	return r.list(q, limit, offset)
}

func (r *gormConversationRepository) list(q *gorm.DB, limit, offset int) ([]*convdomain.Conversation, error) {
	var convs []*convdomain.Conversation
	err := q.Order("updated_at DESC").Limit(limit).Offset(offset).Find(&convs).Error
	return convs, err
}

func (r *gormConversationRepository) FindActive(userID string) (*convdomain.Conversation, error) {
	var conv convdomain.Conversation
	err := r.db.Where("user_id = ? AND is_active", userID).First(&conv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conv, nil
}

func (r *gormConversationRepository) Update(conv *convdomain.Conversation) error {
	conv.UpdatedAt = time.Now()
	return r.db.Save(conv).Error
}

func (r *gormConversationRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("conversation_id = ?", id).Delete(&convdomain.Message{}).Error; err != nil {
			return err
		}
		// Clear any active-conversation pointer referencing the deleted thread.
		if err := tx.Model(&authdomain.User{}).Where("active_conversation_id = ?", id).
			Update("active_conversation_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&convdomain.Conversation{}, "id = ?", id).Error
	})
}

func (r *gormConversationRepository) DeleteByUser(userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("conversation_id IN (?)",
			tx.Model(&convdomain.Conversation{}).Select("id").Where("user_id = ?", userID),
		).Delete(&convdomain.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&authdomain.User{}).Where("id = ?", userID).
			Update("active_conversation_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&convdomain.Conversation{}).Error
	})
}

func (r *gormConversationRepository) Activate(userID, conversationID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var conv convdomain.Conversation
		if err := tx.Where("id = ? AND user_id = ?", conversationID, userID).First(&conv).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return convdomain.ErrConversationNotFound
			}
			return err
		}

		now := time.Now()
		if err := tx.Model(&convdomain.Conversation{}).
			Where("user_id = ? AND is_active AND id <> ?", userID, conversationID).
			Updates(map[string]interface{}{"is_active": false, "updated_at": now}).Error; err != nil {
			return err
		}
		if err := tx.Model(&convdomain.Conversation{}).Where("id = ?", conversationID).
			Updates(map[string]interface{}{"is_active": true, "updated_at": now}).Error; err != nil {
			return err
		}
		return tx.Model(&authdomain.User{}).Where("id = ?", userID).
			Update("active_conversation_id", conversationID).Error
	})
}

func (r *gormConversationRepository) AppendMessage(msg *convdomain.Message) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	msg.CreatedAt = time.Now()
	return r.db.Create(msg).Error
}

func (r *gormConversationRepository) FindMessages(conversationID string, limit, offset int) ([]*convdomain.Message, error) {
	var msgs []*convdomain.Message
	err := r.db.Where("conversation_id = ?", conversationID).
		Order("created_at ASC").Limit(limit).Offset(offset).Find(&msgs).Error
	return msgs, err
}
