package usecase

import (
	convdomain "saypal-backend/internal/conversation/domain"
	convdto "saypal-backend/internal/conversation/dto"
	"saypal-backend/internal/conversation/repository"
)

// ConversationUsecase owns the business rules around conversations. Every
// operation is scoped to the calling user; a conversation owned by someone
// else is indistinguishable from a missing one.
type ConversationUsecase interface {
	Create(userID string, req *convdto.CreateConversationRequest) (*convdomain.Conversation, error)
	GetByID(userID, id string) (*convdomain.Conversation, error)
	List(userID string, query *convdto.ListConversationsQuery, limit, offset int) ([]*convdomain.Conversation, error)
	Update(userID, id string, req *convdto.UpdateConversationRequest) (*convdomain.Conversation, error)
	Delete(userID, id string) error
	Activate(userID, id string) (*convdomain.Conversation, error)
	GetActive(userID string) (*convdomain.Conversation, error)
	AppendMessage(userID, conversationID string, req *convdto.CreateMessageRequest) (*convdomain.Message, error)
	ListMessages(userID, conversationID string, limit, offset int) ([]*convdomain.Message, error)
}

type conversationUsecase struct {
	convRepo repository.ConversationRepository
}

func NewConversationUsecase(convRepo repository.ConversationRepository) ConversationUsecase {
	return &conversationUsecase{convRepo: convRepo}
}

func (u *conversationUsecase) Create(userID string, req *convdto.CreateConversationRequest) (*convdomain.Conversation, error) {
	topics := req.Topics
	if topics == nil {
		topics = []string{}
	}
	conv := &convdomain.Conversation{
		UserID:      userID,
		Title:       req.Title,
		Topics:      topics,
		DMChannelID: req.DMChannelID,
	}
	if err := u.convRepo.Create(conv); err != nil {
		return nil, err
	}
	return conv, nil
}

func (u *conversationUsecase) GetByID(userID, id string) (*convdomain.Conversation, error) {
	return u.owned(userID, id)
}

func (u *conversationUsecase) List(userID string, query *convdto.ListConversationsQuery, limit, offset int) ([]*convdomain.Conversation, error) {
	switch {
	case query != nil && query.Topic != "":
		return u.convRepo.FindByTopic(userID, query.Topic, limit, offset)
	case query != nil && query.Start != nil && query.End != nil:
		return u.convRepo.FindByDateRange(userID, *query.Start, *query.End, limit, offset)
	default:
		return u.convRepo.FindByUser(userID, limit, offset)
	}
}

// Update merges the explicit optional fields onto the stored conversation.
func (u *conversationUsecase) Update(userID, id string, req *convdto.UpdateConversationRequest) (*convdomain.Conversation, error) {
	conv, err := u.owned(userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		conv.Title = req.Title
	}
	if req.Topics != nil {
		conv.Topics = *req.Topics
	}
	if req.DMChannelID != nil {
		conv.DMChannelID = req.DMChannelID
	}
	if req.IsAnalyzed != nil {
		conv.IsAnalyzed = *req.IsAnalyzed
	}

	if err := u.convRepo.Update(conv); err != nil {
		return nil, err
	}
	return conv, nil
}

func (u *conversationUsecase) Delete(userID, id string) error {
	if _, err := u.owned(userID, id); err != nil {
		return err
	}
	return u.convRepo.Delete(id)
}

func (u *conversationUsecase) Activate(userID, id string) (*convdomain.Conversation, error) {
	if err := u.convRepo.Activate(userID, id); err != nil {
		return nil, err
	}
	return u.convRepo.FindByID(id)
}

func (u *conversationUsecase) GetActive(userID string) (*convdomain.Conversation, error) {
	conv, err := u.convRepo.FindActive(userID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, convdomain.ErrConversationNotFound
	}
	return conv, nil
}

func (u *conversationUsecase) AppendMessage(userID, conversationID string, req *convdto.CreateMessageRequest) (*convdomain.Message, error) {
	if _, err := u.owned(userID, conversationID); err != nil {
		return nil, err
	}
	msg := &convdomain.Message{
		ConversationID: conversationID,
		Content:        req.Content,
		IsFromUser:     req.IsFromUser,
	}
	if err := u.convRepo.AppendMessage(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (u *conversationUsecase) ListMessages(userID, conversationID string, limit, offset int) ([]*convdomain.Message, error) {
	if _, err := u.owned(userID, conversationID); err != nil {
		return nil, err
	}
	return u.convRepo.FindMessages(conversationID, limit, offset)
}

func (u *conversationUsecase) owned(userID, id string) (*convdomain.Conversation, error) {
	conv, err := u.convRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if conv == nil || conv.UserID != userID {
		return nil, convdomain.ErrConversationNotFound
	}
	return conv, nil
}
