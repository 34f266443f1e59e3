package keyring

import (
	"crypto/rand"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"confide/pkg/errors"
)

// Current version of the encrypted blob format stored on disk.
const envelopeVersion = 1

// envelope is the on-disk JSON structure holding the ciphertext and KDF
// parameters.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }

// sealEnvelope derives a key from passphrase and seals raw into a JSON blob.
func sealEnvelope(passphrase string, raw []byte) ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	N, r, p := scryptParamsDefault()
	key, err := scrypt.Key([]byte(passphrase), salt, N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	// Zero nonce; the salt-bound key guarantees uniqueness.
	nonce := make([]byte, aead.NonceSize())
	ct := aead.Seal(nil, nonce, raw, salt)

	return json.Marshal(envelope{
		V:      envelopeVersion,
		Salt:   salt,
		N:      N,
		R:      r,
		P:      p,
		Cipher: ct,
	})
}

// openEnvelope opens the JSON blob using a key derived from passphrase.
// Undecodable blobs are storage faults; an AEAD failure means a wrong
// passphrase or tampering and maps to ErrKeyringLocked.
func openEnvelope(passphrase string, blob []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return nil, errors.ErrKeyStorageUnavailable
	}
	if env.V > envelopeVersion {
		return nil, fmt.Errorf("unsupported keystore version %d: %w", env.V, errors.ErrKeyStorageUnavailable)
	}

	key, err := scrypt.Key([]byte(passphrase), env.Salt, env.N, env.R, env.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, errors.ErrKeyStorageUnavailable
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, errors.ErrKeyStorageUnavailable
	}
	nonce := make([]byte, aead.NonceSize())
	raw, err := aead.Open(nil, nonce, env.Cipher, env.Salt)
	if err != nil {
		return nil, errors.ErrKeyringLocked
	}
	return raw, nil
}
