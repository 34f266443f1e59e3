package directory

import (
	"context"

	"github.com/google/uuid"

	"confide/internal/directory/model"
)

type KeyRepository interface {
	// UpsertPublicKey replaces the active entry for entry.UserID, bumping
	// key_version and archiving the superseded row in the same transaction.
	// Last write wins under concurrency.
	UpsertPublicKey(ctx context.Context, entry *model.KeyEntry) error

	GetPublicKey(ctx context.Context, userID uuid.UUID) (*model.KeyEntry, error)

	// ListKeyHistory returns superseded keys, newest first. Audit only.
	ListKeyHistory(ctx context.Context, userID uuid.UUID) ([]model.KeyEntryArchive, error)
}
