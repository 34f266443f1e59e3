// Package cryptobox implements authenticated public-key encryption between
// two identified parties on top of NaCl box (X25519 + XSalsa20-Poly1305).
// The same seal/open pair is used for direct messages and for handing group
// session keys to participants.
package cryptobox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"

	"golang.org/x/crypto/nacl/box"

	apperrors "confide/pkg/errors"
)

const (
	// KeySize is the length of both public and private keys.
	KeySize = 32
	// NonceSize is the length of the random nonce generated per Seal call.
	// Large enough that fresh random generation never needs coordination.
	NonceSize = 24
	// RoomKeySize matches the symmetric key size the realtime relay expects.
	RoomKeySize = 32
)

// ErrDecryptionFailed is returned by Open on any authentication failure:
// bit-flips, truncation, wrong key or wrong nonce are indistinguishable.
var ErrDecryptionFailed = errors.New("cryptobox: decryption failed")

// KeyPair holds a party's static X25519 keys. Only the public half may ever
// cross a process boundary.
type KeyPair struct {
	Public  PublicKey
	Private PrivateKey
}

// GenerateKeyPair returns a fresh X25519 key pair.
func GenerateKeyPair() (KeyPair, error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return KeyPair{}, err
	}
	return KeyPair{Public: PublicKey(*pub), Private: newPrivateKey(priv)}, nil
}

// Seal encrypts plaintext from sender to recipient. A fresh random nonce is
// generated for every call; it is returned alongside the ciphertext and must
// travel with it. Malformed keys fail closed with no partial output.
func Seal(plaintext []byte, senderPriv PrivateKey, recipientPub PublicKey) (ciphertext, nonce []byte, err error) {
	if !senderPriv.valid() {
		return nil, nil, apperrors.ErrMalformedPrivateKey
	}

	var n [NonceSize]byte
	if _, err := io.ReadFull(rand.Reader, n[:]); err != nil {
		return nil, nil, err
	}

	pub := [KeySize]byte(recipientPub)
	ciphertext = box.Seal(nil, plaintext, &n, &pub, senderPriv.raw())
	return ciphertext, n[:], nil
}

// Open decrypts and authenticates a sealed message. Failure is binary: any
// tampering, truncation or key mismatch yields ErrDecryptionFailed.
func Open(ciphertext, nonce []byte, senderPub PublicKey, recipientPriv PrivateKey) ([]byte, error) {
	if len(nonce) != NonceSize {
		return nil, apperrors.ErrMalformedNonce
	}
	if !recipientPriv.valid() {
		return nil, apperrors.ErrMalformedPrivateKey
	}

	var n [NonceSize]byte
	copy(n[:], nonce)

	pub := [KeySize]byte(senderPub)
	plaintext, ok := box.Open(nil, ciphertext, &n, &pub, recipientPriv.raw())
	if !ok {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

// GenerateRoomKey returns fresh random bytes sized for the relay transport.
// Callers own the lifetime and should Zero it once distributed.
func GenerateRoomKey() ([]byte, error) {
	key := make([]byte, RoomKeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// Fingerprint returns a short hex digest of a public key for display and
// audit logs.
func Fingerprint(pub PublicKey) string {
	sum := sha256.Sum256(pub[:])
	return hex.EncodeToString(sum[:10])
}
