package rental

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one entry of a rental's append-only message log, shared by
// user chat and auto-generated system notifications.
type ChatMessage struct {
	id       uuid.UUID
	authorID uuid.UUID
	text     string
	isSystem bool
	isRead   bool
	sentAt   time.Time
}

func newChatMessage(authorID uuid.UUID, text string, isSystem bool, now time.Time) (ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return ChatMessage{}, ErrEmptyMessage
	}
	if len(text) > MaxMessageLength {
		return ChatMessage{}, ErrMessageTooLong
	}
	return ChatMessage{
		id:       uuid.New(),
		authorID: authorID,
		text:     text,
		isSystem: isSystem,
		isRead:   false,
		sentAt:   now.UTC(),
	}, nil
}

func ReconstructChatMessage(id, authorID uuid.UUID, text string, isSystem, isRead bool, sentAt time.Time) ChatMessage {
	return ChatMessage{
		id:       id,
		authorID: authorID,
		text:     text,
		isSystem: isSystem,
		isRead:   isRead,
		sentAt:   sentAt,
	}
}

func (m ChatMessage) ID() uuid.UUID       { return m.id }
func (m ChatMessage) AuthorID() uuid.UUID { return m.authorID }
func (m ChatMessage) Text() string        { return m.text }
func (m ChatMessage) IsSystem() bool      { return m.isSystem }
func (m ChatMessage) IsRead() bool        { return m.isRead }
func (m ChatMessage) SentAt() time.Time   { return m.sentAt }
