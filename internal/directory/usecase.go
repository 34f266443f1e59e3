package directory

import (
	"context"

	"github.com/google/uuid"
)

type DirectoryUsecase interface {
	// PutPublicKey overwrites the caller's entry unconditionally. The caller
	// identity is supplied by the fronting auth layer; there is no further
	// authorization here. Takes effect for all future lookups immediately.
	PutPublicKey(ctx context.Context, cmd PutPublicKeyCommand) (*KeyEntryDTO, error)

	// GetPublicKey returns the current entry, or ErrKeyNotFound when the
	// identity never enabled encryption. Not-found means "cannot message
	// securely" — callers must not retry it as a transient fault.
	GetPublicKey(ctx context.Context, identity uuid.UUID) (*KeyEntryDTO, error)

	KeyHistory(ctx context.Context, identity uuid.UUID) ([]KeyVersionDTO, error)
}
