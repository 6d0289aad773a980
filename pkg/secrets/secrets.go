package secrets

import (
	"crypto/rand"
	"encoding/base32"
	"encoding/base64"
	"errors"
	"fmt"
)

// DefaultLength is the RFC 4226 recommended secret length in bytes.
const DefaultLength = 20

// Encoding identifies the wire form of a secret.
type Encoding int

const (
	// Binary is the raw byte form of a secret.
	Binary Encoding = iota
	// Base32 is RFC 4648 standard Base32, uppercase alphabet.
	Base32
	// Base64 is RFC 4648 standard Base64 with '=' padding.
	Base64
)

// String returns the lowercase name of the encoding.
func (e Encoding) String() string {
	switch e {
	case Binary:
		return "binary"
	case Base32:
		return "base32"
	case Base64:
		return "base64"
	default:
		return fmt.Sprintf("encoding(%d)", int(e))
	}
}

// Common errors returned by this package.
var (
	// ErrInvalidEncoding indicates an Encoding value outside the known set.
	ErrInvalidEncoding = errors.New("secrets: invalid encoding")
	// ErrInvalidLength indicates a non-positive secret length.
	ErrInvalidLength = errors.New("secrets: secret length must be at least 1 byte")
	// ErrSecretDecode indicates a secret payload that does not match its
	// declared encoding.
	ErrSecretDecode = errors.New("secrets: malformed secret")
)

// Generate returns n cryptographically random bytes encoded per enc.
// Entropy comes from the operating system CSPRNG (crypto/rand); this
// package never uses a seeded PRNG.
func Generate(n int, enc Encoding) ([]byte, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}

	raw := make([]byte, n)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("secrets: failed to read entropy: %w", err)
	}

	return Encode(raw, enc)
}

// Encode transcodes raw secret bytes into the given encoding.
// Binary returns the input unchanged.
func Encode(raw []byte, enc Encoding) ([]byte, error) {
	switch enc {
	case Binary:
		return raw, nil
	case Base32:
		out := make([]byte, base32.StdEncoding.EncodedLen(len(raw)))
		base32.StdEncoding.Encode(out, raw)
		return out, nil
	case Base64:
		out := make([]byte, base64.StdEncoding.EncodedLen(len(raw)))
		base64.StdEncoding.Encode(out, raw)
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidEncoding, enc)
	}
}

// Decode recovers the raw secret bytes from their encoded form. Decoding
// is strict: no case folding, whitespace stripping, or padding repair. A
// payload that does not match enc fails with ErrSecretDecode, and the
// error message names the encoding so callers can tell a misconfigured
// Encoding apart from a corrupted secret.
func Decode(secret []byte, enc Encoding) ([]byte, error) {
	switch enc {
	case Binary:
		return secret, nil
	case Base32:
		out := make([]byte, base32.StdEncoding.DecodedLen(len(secret)))
		n, err := base32.StdEncoding.Decode(out, secret)
		if err != nil {
			return nil, fmt.Errorf("%w: not valid base32: %v", ErrSecretDecode, err)
		}
		return out[:n], nil
	case Base64:
		out := make([]byte, base64.StdEncoding.DecodedLen(len(secret)))
		n, err := base64.StdEncoding.Decode(out, secret)
		if err != nil {
			return nil, fmt.Errorf("%w: not valid base64: %v", ErrSecretDecode, err)
		}
		return out[:n], nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidEncoding, enc)
	}
}
