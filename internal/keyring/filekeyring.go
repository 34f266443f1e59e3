package keyring

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"confide/internal/directory"
	"confide/pkg/cryptobox"
	"confide/pkg/errors"
	"confide/pkg/logger"
)

const (
	identityFile  = "identity.enc"
	archivePrefix = "identity-"
	archiveSuffix = ".enc"
	// Sortable and collision-free within a device.
	archiveStamp = "20060102T150405.000000000"
)

// storedIdentity is the plaintext inside the envelope. This is the one place
// where private key bytes are serialized, and only ever under the envelope.
type storedIdentity struct {
	Identity  uuid.UUID `json:"identity"`
	Public    []byte    `json:"public"`
	Private   []byte    `json:"private"`
	CreatedAt time.Time `json:"created_at"`
}

// FileKeyring keeps the identity keypair in an encrypted file under a scoped
// directory. A nil directory usecase means local-only operation; the public
// key is then registered out of band.
type FileKeyring struct {
	dir       string
	identity  uuid.UUID
	directory directory.DirectoryUsecase
	logger    logger.Logger
	mu        sync.Mutex
}

func NewFileKeyring(dir string, identity uuid.UUID, dirUC directory.DirectoryUsecase, logger logger.Logger) (*FileKeyring, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(errors.CodeFailedPrecondition, "cannot create keystore directory", err)
	}
	return &FileKeyring{dir: dir, identity: identity, directory: dirUC, logger: logger}, nil
}

func (k *FileKeyring) Initialize(ctx context.Context, passphrase string) (*KeyInfoDTO, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if stored, err := k.load(passphrase); err == nil {
		return k.toInfo(stored, false), nil
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	pair, err := cryptobox.GenerateKeyPair()
	if err != nil {
		k.logger.Error("keypair generation failed", "identity", k.identity, "err", err)
		return nil, errors.Internal("failed to generate identity keypair")
	}
	defer pair.Private.Wipe()

	stored := &storedIdentity{
		Identity:  k.identity,
		Public:    pair.Public.Bytes(),
		Private:   pair.Private.Bytes(),
		CreatedAt: time.Now().UTC(),
	}
	defer cryptobox.Zero(stored.Private)

	if err := k.persist(passphrase, stored); err != nil {
		return nil, err
	}

	registered, err := k.register(ctx, stored.Public)
	if err != nil {
		// The keypair is already safe on disk; surfacing the failure lets the
		// caller retry registration without minting another key.
		return nil, err
	}

	k.logger.Info("identity initialized",
		"identity", k.identity,
		"fingerprint", fingerprintOf(stored.Public),
		"registered", registered)
	return k.toInfo(stored, registered), nil
}

func (k *FileKeyring) Rotate(ctx context.Context, passphrase string) (*KeyInfoDTO, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	// Opening the current envelope proves the passphrase before anything is
	// touched on disk.
	old, err := k.load(passphrase)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.FailedPrecondition("no identity to rotate, initialize first")
		}
		return nil, err
	}
	cryptobox.Zero(old.Private)

	pair, err := cryptobox.GenerateKeyPair()
	if err != nil {
		k.logger.Error("keypair generation failed", "identity", k.identity, "err", err)
		return nil, errors.ErrRotationFailed(err)
	}
	defer pair.Private.Wipe()

	// Phase one: archive the old envelope and persist the new one locally.
	// Only then does the directory learn about the new key, so a crash in
	// between leaves the directory pointing at a key this device still holds.
	currentBlob, err := os.ReadFile(filepath.Join(k.dir, identityFile))
	if err != nil {
		return nil, errors.ErrKeyStorageUnavailable
	}
	archiveName := archivePrefix + old.CreatedAt.UTC().Format(archiveStamp) + archiveSuffix
	if err := os.WriteFile(filepath.Join(k.dir, archiveName), currentBlob, 0o600); err != nil {
		return nil, errors.ErrKeyStorageUnavailable
	}

	stored := &storedIdentity{
		Identity:  k.identity,
		Public:    pair.Public.Bytes(),
		Private:   pair.Private.Bytes(),
		CreatedAt: time.Now().UTC(),
	}
	defer cryptobox.Zero(stored.Private)

	if err := k.persist(passphrase, stored); err != nil {
		return nil, err
	}

	// Phase two: publish.
	registered, err := k.register(ctx, stored.Public)
	if err != nil {
		return nil, errors.ErrRotationFailed(err)
	}

	k.logger.Info("identity rotated",
		"identity", k.identity,
		"fingerprint", fingerprintOf(stored.Public),
		"registered", registered)
	return k.toInfo(stored, registered), nil
}

func (k *FileKeyring) Unlock(passphrase string) (cryptobox.KeyPair, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	stored, err := k.load(passphrase)
	if err != nil {
		if os.IsNotExist(err) {
			return cryptobox.KeyPair{}, errors.ErrKeyStorageUnavailable
		}
		return cryptobox.KeyPair{}, err
	}
	defer cryptobox.Zero(stored.Private)
	return pairFrom(stored)
}

func (k *FileKeyring) ArchivedKeys(passphrase string) ([]cryptobox.PrivateKey, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	entries, err := os.ReadDir(k.dir)
	if err != nil {
		return nil, errors.ErrKeyStorageUnavailable
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, archivePrefix) && strings.HasSuffix(name, archiveSuffix) {
			names = append(names, name)
		}
	}
	sort.Strings(names) // stamp format sorts oldest-first

	keys := make([]cryptobox.PrivateKey, 0, len(names))
	for _, name := range names {
		blob, err := os.ReadFile(filepath.Join(k.dir, name))
		if err != nil {
			return nil, errors.ErrKeyStorageUnavailable
		}
		raw, err := openEnvelope(passphrase, blob)
		if err != nil {
			return nil, err
		}
		var stored storedIdentity
		if err := json.Unmarshal(raw, &stored); err != nil {
			cryptobox.Zero(raw)
			return nil, errors.ErrKeyStorageUnavailable
		}
		cryptobox.Zero(raw)
		priv, err := cryptobox.ParsePrivateKey(stored.Private)
		cryptobox.Zero(stored.Private)
		if err != nil {
			return nil, errors.ErrKeyStorageUnavailable
		}
		keys = append(keys, priv)
	}
	return keys, nil
}

func (k *FileKeyring) load(passphrase string) (*storedIdentity, error) {
	blob, err := os.ReadFile(filepath.Join(k.dir, identityFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, errors.ErrKeyStorageUnavailable
	}
	raw, err := openEnvelope(passphrase, blob)
	if err != nil {
		return nil, err
	}
	defer cryptobox.Zero(raw)

	var stored storedIdentity
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, errors.ErrKeyStorageUnavailable
	}
	return &stored, nil
}

func (k *FileKeyring) persist(passphrase string, stored *storedIdentity) error {
	raw, err := json.Marshal(stored)
	if err != nil {
		return errors.ErrKeyStorageUnavailable
	}
	defer cryptobox.Zero(raw)

	blob, err := sealEnvelope(passphrase, raw)
	if err != nil {
		return errors.ErrKeyStorageUnavailable
	}
	if err := os.WriteFile(filepath.Join(k.dir, identityFile), blob, 0o600); err != nil {
		return errors.ErrKeyStorageUnavailable
	}
	return nil
}

func (k *FileKeyring) register(ctx context.Context, public []byte) (bool, error) {
	if k.directory == nil {
		return false, nil
	}
	_, err := k.directory.PutPublicKey(ctx, directory.PutPublicKeyCommand{
		Identity:  k.identity,
		PublicKey: public,
	})
	if err != nil {
		k.logger.Error("directory registration failed", "identity", k.identity, "err", err)
		return false, err
	}
	return true, nil
}

func (k *FileKeyring) toInfo(stored *storedIdentity, registered bool) *KeyInfoDTO {
	return &KeyInfoDTO{
		Identity:    stored.Identity,
		PublicKey:   append([]byte(nil), stored.Public...),
		Fingerprint: fingerprintOf(stored.Public),
		CreatedAt:   stored.CreatedAt,
		Registered:  registered,
	}
}

func pairFrom(stored *storedIdentity) (cryptobox.KeyPair, error) {
	pub, err := cryptobox.ParsePublicKey(stored.Public)
	if err != nil {
		return cryptobox.KeyPair{}, errors.ErrKeyStorageUnavailable
	}
	priv, err := cryptobox.ParsePrivateKey(stored.Private)
	if err != nil {
		return cryptobox.KeyPair{}, errors.ErrKeyStorageUnavailable
	}
	return cryptobox.KeyPair{Public: pub, Private: priv}, nil
}

func fingerprintOf(public []byte) string {
	pub, err := cryptobox.ParsePublicKey(public)
	if err != nil {
		return ""
	}
	return cryptobox.Fingerprint(pub)
}
