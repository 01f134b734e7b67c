package domain

import "errors"

var (
	// ErrConversationNotFound also covers conversations owned by someone else;
	// callers can't probe other users' threads.
	ErrConversationNotFound = errors.New("conversation not found")
	ErrMessageNotFound      = errors.New("message not found")
)
