package project

import (
	"time"

	"github.com/google/uuid"
)

// Message is an immutable note in a stage's thread. AuthorID references a
// user owned by the identity service.
type Message struct {
	ID        uuid.UUID
	CreatedAt time.Time
	AuthorID  uuid.UUID
	Text      MessageText
}

// NewMessage validates text and stamps a new message with the clock's time.
func NewMessage(authorID uuid.UUID, text string, clock Clock) (Message, error) {
	body, err := NewMessageText(text)
	if err != nil {
		return Message{}, err
	}
	return Message{
		ID:        uuid.New(),
		CreatedAt: clock(),
		AuthorID:  authorID,
		Text:      body,
	}, nil
}
