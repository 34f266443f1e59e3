package keyring

import (
	"context"
	"time"

	"github.com/google/uuid"

	"confide/pkg/cryptobox"
)

// Keyring manages the device's long-term identity keypair. The private key
// never leaves the backing keystore unencrypted and is only handed out as a
// cryptobox.PrivateKey, which refuses serialization.
type Keyring interface {
	// Initialize is idempotent: it returns the stored identity when one
	// exists, otherwise it generates a keypair, persists it, and registers
	// the public half with the key directory.
	Initialize(ctx context.Context, passphrase string) (*KeyInfoDTO, error)

	// Rotate generates a replacement keypair. The old envelope is archived
	// and the new one persisted locally before the directory is updated, so
	// a crash mid-rotation never leaves the directory pointing at a key the
	// device lost.
	Rotate(ctx context.Context, passphrase string) (*KeyInfoDTO, error)

	// Unlock decrypts and returns the current identity keypair.
	Unlock(passphrase string) (cryptobox.KeyPair, error)

	// ArchivedKeys returns superseded private keys oldest-first, for
	// decrypting ciphertext sealed against rotated-away keys.
	ArchivedKeys(passphrase string) ([]cryptobox.PrivateKey, error)
}

type KeyInfoDTO struct {
	Identity    uuid.UUID
	PublicKey   []byte
	Fingerprint string
	CreatedAt   time.Time
	Registered  bool
}
