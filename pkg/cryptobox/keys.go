package cryptobox

import (
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/curve25519"

	apperrors "confide/pkg/errors"
)

// ErrPrivateKeyNotSerializable is returned by every marshalling method on
// PrivateKey. Private key material must never end up in a JSON body, a log
// line or a database row by accident.
var ErrPrivateKeyNotSerializable = errors.New("cryptobox: private key is not serializable")

// PublicKey is a party's X25519 public key. It marshals as base64 text.
type PublicKey [KeySize]byte

// ParsePublicKey validates length and converts raw directory bytes.
func ParsePublicKey(b []byte) (PublicKey, error) {
	if len(b) != KeySize {
		return PublicKey{}, apperrors.ErrMalformedPublicKey
	}
	var pub PublicKey
	copy(pub[:], b)
	return pub, nil
}

func (p PublicKey) Bytes() []byte { return append([]byte(nil), p[:]...) }

func (p PublicKey) MarshalText() ([]byte, error) {
	return []byte(base64.StdEncoding.EncodeToString(p[:])), nil
}

func (p *PublicKey) UnmarshalText(text []byte) error {
	raw, err := base64.StdEncoding.DecodeString(string(text))
	if err != nil {
		return err
	}
	parsed, err := ParsePublicKey(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// PrivateKey wraps the private half of a key pair. The zero value is unusable
// and every serialization path is blocked; the only way out of the process is
// the explicit Bytes call used by the encrypted keystore.
type PrivateKey struct {
	k *[KeySize]byte
}

func newPrivateKey(raw *[KeySize]byte) PrivateKey {
	k := new([KeySize]byte)
	copy(k[:], raw[:])
	return PrivateKey{k: k}
}

// ParsePrivateKey reconstructs a private key from keystore bytes.
func ParsePrivateKey(b []byte) (PrivateKey, error) {
	if len(b) != KeySize {
		return PrivateKey{}, apperrors.ErrMalformedPrivateKey
	}
	var raw [KeySize]byte
	copy(raw[:], b)
	return newPrivateKey(&raw), nil
}

func (p PrivateKey) valid() bool { return p.k != nil }

func (p PrivateKey) raw() *[KeySize]byte { return p.k }

// Bytes returns a copy of the raw key for the keystore envelope. Callers
// must Zero the copy once it has been sealed.
func (p PrivateKey) Bytes() []byte {
	if p.k == nil {
		return nil
	}
	return append([]byte(nil), p.k[:]...)
}

// Wipe zeroes the underlying key material.
func (p PrivateKey) Wipe() {
	if p.k != nil {
		Zero(p.k[:])
	}
}

// Public derives the matching public key.
func (p PrivateKey) Public() (PublicKey, error) {
	if p.k == nil {
		return PublicKey{}, apperrors.ErrMalformedPrivateKey
	}
	pb, err := curve25519.X25519(p.k[:], curve25519.Basepoint)
	if err != nil {
		return PublicKey{}, err
	}
	return ParsePublicKey(pb)
}

func (p PrivateKey) String() string { return "cryptobox.PrivateKey(redacted)" }

func (p PrivateKey) MarshalJSON() ([]byte, error) { return nil, ErrPrivateKeyNotSerializable }

func (p PrivateKey) MarshalText() ([]byte, error) { return nil, ErrPrivateKeyNotSerializable }

func (p PrivateKey) MarshalBinary() ([]byte, error) { return nil, ErrPrivateKeyNotSerializable }

func (p PrivateKey) GobEncode() ([]byte, error) { return nil, ErrPrivateKeyNotSerializable }
