package message

import (
	"context"
	"time"

	"github.com/google/uuid"

	"confide/internal/message/model"
)

// Cursor is a keyset pagination position: the (created_at, id) pair of the
// last message seen. Tolerates concurrent inserts without skipping or
// duplicating rows, unlike offset pagination.
type Cursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

type MessageRepository interface {
	// Append persists a ciphertext envelope. The database assigns id and
	// created_at; the at-rest layer (when enabled) is applied before the row
	// is written, and an at-rest failure aborts the write entirely.
	Append(ctx context.Context, msg *model.Message) error

	// ListConversation returns messages ascending by (created_at, id),
	// starting after cursor when non-nil. Payloads come back with the
	// at-rest layer removed and blob offloads rehydrated.
	ListConversation(ctx context.Context, conversationKey string, cursor *Cursor, limit int) ([]model.Message, error)

	// MarkRead sets read_at once. Re-marking is a no-op returning the row
	// as-is; ErrNotRecipient when reader is not the stored recipient.
	MarkRead(ctx context.Context, messageID, readerID uuid.UUID) (*model.Message, error)
}
