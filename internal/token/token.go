// Package token implements the session-token envelope: an AES-GCM
// ciphertext of a JSON payload, carried as base64url text. A token is either
// a well-formed unexpired payload or it is nothing; there is no partially
// valid state.
package token

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"github.com/visitdesk/visitdesk/internal/common"
)

// Claims is the payload embedded in a session token. Exp is a millisecond
// epoch timestamp. Role is carried for display only; authorization always
// re-resolves the user against the directory.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Exp    int64  `json:"exp"`
}

// ExpiresAt returns the expiry as a time.Time.
func (c Claims) ExpiresAt() time.Time {
	return time.UnixMilli(c.Exp)
}

// Codec seals and opens token envelopes with a symmetric key derived from
// injected secret material. It is safe for concurrent use.
type Codec struct {
	aead cipher.AEAD
}

// NewCodec derives a 256-bit AES key from the passphrase (SHA-256) and
// returns a codec over AES-GCM. The passphrase comes from configuration;
// an empty one is refused so a missing secret fails at startup, not at the
// first login.
func NewCodec(passphrase string) (*Codec, error) {
	if passphrase == "" {
		return nil, errors.New("token key is not configured")
	}
	key := sha256.Sum256([]byte(passphrase))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Codec{aead: aead}, nil
}

// Seal serializes v to JSON, encrypts it with a fresh random nonce and
// returns base64url(nonce || ciphertext).
func (c *Codec) Seal(v any) (string, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	sealed := c.aead.Seal(nonce, nonce, plaintext, nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Open reverses Seal into v. Any failure (bad encoding, ciphertext not
// produced by this codec, malformed JSON) comes back as
// common.ErrInvalidToken. Expiry is not checked here; that is the session
// service's call to make.
func (c *Codec) Open(s string, v any) error {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return common.ErrInvalidToken
	}
	if len(raw) < c.aead.NonceSize() {
		return common.ErrInvalidToken
	}
	nonce, ciphertext := raw[:c.aead.NonceSize()], raw[c.aead.NonceSize():]

	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return common.ErrInvalidToken
	}
	if err := json.Unmarshal(plaintext, v); err != nil {
		return common.ErrInvalidToken
	}
	return nil
}
