package directory

import (
	"time"

	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
type PutPublicKeyCommand struct {
	Identity  uuid.UUID
	PublicKey []byte // 32 bytes X25519
}

type KeyEntryDTO struct {
	Identity    uuid.UUID
	PublicKey   []byte
	KeyVersion  int64
	Fingerprint string
	UpdatedAt   time.Time
}

type KeyVersionDTO struct {
	KeyVersion   int64
	Fingerprint  string
	SupersededAt time.Time
}
