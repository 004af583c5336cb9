package filestore

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	apperrors "github.com/jrsteele09/go-storefront-client/internal/errors"
	"golang.org/x/crypto/chacha20poly1305"
)

// Versioned prefix so the algorithm can change without rewriting old files.
const sealedPrefixV1 = "v1:"

var errNotSealed = errors.New("value is not sealed")

// Sealer encrypts individual values with XChaCha20-Poly1305. The stored key
// name is bound as additional data so values cannot be swapped between keys.
type Sealer struct {
	key []byte
}

// NewSealer constructs a Sealer. Key must be 32 bytes.
func NewSealer(key []byte) (*Sealer, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("%w: need %d bytes, got %d", apperrors.ErrInvalidKey, chacha20poly1305.KeySize, len(key))
	}
	return &Sealer{key: append([]byte(nil), key...)}, nil
}

// Seal returns "v1:" + base64(nonce||ciphertext).
func (s *Sealer) Seal(name string, plaintext []byte) (string, error) {
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	sealed := aead.Seal(nonce, nonce, plaintext, []byte(name))
	return sealedPrefixV1 + base64.StdEncoding.EncodeToString(sealed), nil
}

// Open reverses Seal.
func (s *Sealer) Open(name, value string) ([]byte, error) {
	if !strings.HasPrefix(value, sealedPrefixV1) {
		return nil, errNotSealed
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(value, sealedPrefixV1))
	if err != nil {
		return nil, fmt.Errorf("decode sealed value: %w", err)
	}
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return nil, err
	}
	if len(raw) < aead.NonceSize() {
		return nil, errors.New("sealed value too short")
	}
	nonce, ct := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	return aead.Open(nil, nonce, ct, []byte(name))
}
