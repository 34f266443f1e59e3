package messenger

import (
	"time"

	"github.com/google/uuid"

	"confide/internal/message"
)

// Item is one conversation entry after client-side decryption. Unreadable is
// the explicit failure state: decryption failed and the payload is withheld
// rather than rendered as garbage.
type Item struct {
	MessageID   uuid.UUID
	SenderID    uuid.UUID
	RecipientID uuid.UUID
	Plaintext   []byte
	Unreadable  bool
	CreatedAt   time.Time
	ReadAt      *time.Time
}

type ConversationPage struct {
	Items      []Item
	NextCursor *message.Cursor
}
