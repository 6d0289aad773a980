package hotp

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/mbramson/two-factor-in-a-can/pkg/secrets"
)

// DefaultDigits is the token length used when Options.Digits is zero.
const DefaultDigits = 6

// ErrInvalidOptions indicates an Options field outside its valid range.
var ErrInvalidOptions = errors.New("hotp: invalid options")

// Options controls token generation. The zero value is ready to use:
// a binary secret and a 6-digit token.
type Options struct {
	// SecretEncoding declares how the secret argument is encoded.
	// Default: secrets.Binary.
	SecretEncoding secrets.Encoding

	// Digits is the token length. Default: 6. Lengths of 10 and above are
	// accepted but add no entropy: RFC 4226 truncation yields a 31-bit
	// integer, so the extra leading positions are always zero.
	Digits int
}

// withDefaults returns a copy of o with zero fields replaced by defaults.
func (o Options) withDefaults() Options {
	if o.Digits == 0 {
		o.Digits = DefaultDigits
	}
	return o
}

// validate checks o after defaults have been applied.
func (o Options) validate() error {
	if o.Digits < 1 {
		return fmt.Errorf("%w: digits must be at least 1, got %d", ErrInvalidOptions, o.Digits)
	}
	return nil
}

// Generate computes the RFC 4226 token for the given secret and counter.
// The secret is decoded per opts.SecretEncoding before use; a payload that
// does not match the declared encoding fails with secrets.ErrSecretDecode.
func Generate(secret []byte, counter uint64, opts Options) (string, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return "", err
	}

	key, err := secrets.Decode(secret, opts.SecretEncoding)
	if err != nil {
		return "", err
	}

	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(sha1.New, key)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	// RFC 4226 §5.3 dynamic truncation: the low nibble of the final digest
	// byte selects a 4-byte window, whose big-endian value is masked to
	// 31 bits.
	offset := sum[len(sum)-1] & 0x0f
	trunc := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff

	return format(trunc, opts.Digits), nil
}

// SameSecret reports whether code is the token the secret produces at the
// given counter. The comparison is constant-time once the lengths match;
// a length mismatch returns false immediately. Errors are reserved for
// bad options or an undecodable secret, never for a wrong token.
func SameSecret(secret []byte, code string, counter uint64, opts Options) (bool, error) {
	want, err := Generate(secret, counter, opts)
	if err != nil {
		return false, err
	}
	if len(code) != len(want) {
		return false, nil
	}
	return subtle.ConstantTimeCompare([]byte(code), []byte(want)) == 1, nil
}

// format reduces the truncated value modulo 10^digits and renders it as a
// left-zero-padded decimal string of exactly digits characters.
func format(trunc uint32, digits int) string {
	v := uint64(trunc)
	if digits < 10 {
		mod := uint64(1)
		for i := 0; i < digits; i++ {
			mod *= 10
		}
		v %= mod
	}
	// digits >= 10: 10^digits exceeds the 31-bit truncation range, so the
	// modulus leaves v untouched and the padding supplies leading zeros.
	return fmt.Sprintf("%0*d", digits, v)
}
