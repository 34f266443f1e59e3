package message

import (
	"context"

	"github.com/google/uuid"
)

type MessageUsecase interface {
	// Append stores a sealed message from an authenticated sender. The
	// usecase cannot and does not inspect plaintext.
	Append(ctx context.Context, cmd AppendCommand) (*MessageDTO, error)

	// ListConversation pages through the caller's thread with another
	// identity, ordered by server-assigned created_at ascending.
	ListConversation(ctx context.Context, q ListConversationQuery) (*ConversationPageDTO, error)

	// MarkRead transitions a message to read. Idempotent; only the
	// recipient may do it.
	MarkRead(ctx context.Context, messageID, readerID uuid.UUID) (*MessageDTO, error)
}
