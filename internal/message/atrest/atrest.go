// Package atrest implements the optional server-held encryption layer applied
// over already-client-encrypted message payloads before they reach the
// database. It defends against database compromise and is fully orthogonal to
// the client-level scheme: the server key never reaches clients, and clients
// never notice the layer exists.
package atrest

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// VersionChaCha20Poly1305 is the current blob format: a random 24-byte nonce
// prepended to an XChaCha20-Poly1305 seal of the payload.
const VersionChaCha20Poly1305 int16 = 1

var errCorruptBlob = errors.New("atrest: corrupt or truncated blob")

// Cipher seals and opens stored payloads. A nil Cipher is a valid identity
// passthrough (layer disabled).
type Cipher struct {
	aead interface {
		Seal(dst, nonce, plaintext, additionalData []byte) []byte
		Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error)
	}
}

// New builds a Cipher from the base64 server key held in config.
func New(encodedKey string) (*Cipher, error) {
	key, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("atrest: bad key encoding: %w", err)
	}
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("atrest: key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{aead: aead}, nil
}

// Seal encrypts a payload for storage and reports the format version written.
// On a nil Cipher the payload passes through untouched with a nil version.
func (c *Cipher) Seal(payload []byte) ([]byte, *int16, error) {
	if c == nil {
		return payload, nil, nil
	}

	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, err
	}

	sealed := c.aead.Seal(nonce, nonce, payload, nil)
	version := VersionChaCha20Poly1305
	return sealed, &version, nil
}

// Open reverses Seal for the given stored version. Unknown versions and
// authentication failures fail closed.
func (c *Cipher) Open(stored []byte, version *int16) ([]byte, error) {
	if version == nil {
		return stored, nil
	}
	if c == nil {
		return nil, errors.New("atrest: row is encrypted but no server key is configured")
	}
	if *version != VersionChaCha20Poly1305 {
		return nil, fmt.Errorf("atrest: unsupported version %d", *version)
	}
	if len(stored) < chacha20poly1305.NonceSizeX {
		return nil, errCorruptBlob
	}

	nonce, sealed := stored[:chacha20poly1305.NonceSizeX], stored[chacha20poly1305.NonceSizeX:]
	payload, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, errCorruptBlob
	}
	return payload, nil
}

// GenerateKey returns a fresh base64 server key, for provisioning.
func GenerateKey() (string, error) {
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(key), nil
}
