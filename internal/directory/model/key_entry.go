package model

import (
	"time"

	"github.com/google/uuid"
)

// KeyEntry is the single active public key for an identity. Rotation
// overwrites it in place; superseded versions move to KeyEntryArchive.
type KeyEntry struct {
	UserID uuid.UUID `bun:",pk,type:uuid"`

	// X25519 — static encryption key, 32 bytes
	PublicKey []byte `bun:",notnull"`

	// Bumped on every rotation; lookups only ever see the latest.
	KeyVersion int64 `bun:",notnull,default:1"`

	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// KeyEntryArchive retains superseded keys for audit. Never served to lookups:
// ciphertext sealed under an old key is not re-encryptable server-side.
type KeyEntryArchive struct {
	ID     int64     `bun:",pk,autoincrement"`
	UserID uuid.UUID `bun:",notnull,type:uuid"`

	PublicKey  []byte `bun:",notnull"`
	KeyVersion int64  `bun:",notnull"`

	SupersededAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
