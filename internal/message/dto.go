package message

import (
	"time"

	"github.com/google/uuid"
)

// Input commands
type AppendCommand struct {
	SenderID    uuid.UUID
	RecipientID uuid.UUID
	Ciphertext  []byte
	Nonce       []byte
}

type ListConversationQuery struct {
	CallerID uuid.UUID
	OtherID  uuid.UUID
	Cursor   *Cursor
	Limit    int
}

// Output DTOs
type MessageDTO struct {
	ID          uuid.UUID
	SenderID    uuid.UUID
	RecipientID uuid.UUID
	Ciphertext  []byte
	Nonce       []byte
	CreatedAt   time.Time
	ReadAt      *time.Time
}

type ConversationPageDTO struct {
	Messages   []MessageDTO
	NextCursor *Cursor
}
