// Package blob stores oversized message payloads outside the database row.
// Payloads arrive already sealed (client layer plus optional at-rest layer),
// so the store holds opaque bytes only.
package blob

import (
	"context"
	"os"
	"path/filepath"
)

// Store is the interface for offloaded ciphertext payloads.
type Store interface {
	Save(ctx context.Context, id string, content []byte) error
	Get(ctx context.Context, id string) ([]byte, error)
	Delete(ctx context.Context, id string) error
}

// LocalStore implements Store on the local filesystem.
type LocalStore struct {
	BaseDir string
}

func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, err
	}
	return &LocalStore{BaseDir: baseDir}, nil
}

func (s *LocalStore) Save(_ context.Context, id string, content []byte) error {
	return os.WriteFile(filepath.Join(s.BaseDir, id+".bin"), content, 0o600)
}

func (s *LocalStore) Get(_ context.Context, id string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.BaseDir, id+".bin"))
}

func (s *LocalStore) Delete(_ context.Context, id string) error {
	if err := os.Remove(filepath.Join(s.BaseDir, id+".bin")); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
