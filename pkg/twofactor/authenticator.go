package twofactor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mbramson/two-factor-in-a-can/pkg/hotp"
	"github.com/mbramson/two-factor-in-a-can/pkg/otpauth"
	"github.com/mbramson/two-factor-in-a-can/pkg/secrets"
	"github.com/mbramson/two-factor-in-a-can/pkg/totp"
)

// Type represents the OTP algorithm type.
type Type string

const (
	// TypeTOTP represents Time-based OTP (RFC 6238).
	TypeTOTP Type = "totp"
	// TypeHOTP represents Counter-based OTP (RFC 4226).
	TypeHOTP Type = "hotp"
)

// Common errors returned by the authenticator.
var (
	// ErrInvalidCode indicates the provided OTP code is invalid.
	ErrInvalidCode = errors.New("twofactor: invalid code")
	// ErrInvalidConfig indicates the configuration is invalid.
	ErrInvalidConfig = errors.New("twofactor: invalid configuration")
	// ErrNilAuthenticator indicates a nil authenticator was used.
	ErrNilAuthenticator = errors.New("twofactor: authenticator is nil")
)

// Config holds authenticator configuration.
type Config struct {
	// Type specifies the OTP type (TOTP or HOTP).
	Type Type
	// Secret is the shared secret (required), encoded per SecretEncoding.
	Secret []byte
	// SecretEncoding declares how Secret is encoded.
	// Default: secrets.Binary.
	SecretEncoding secrets.Encoding
	// Issuer is the name of the issuing organization (e.g., "MyApp").
	Issuer string
	// AccountName is the account identifier (e.g., "user@example.com").
	AccountName string
	// Digits specifies the number of digits in the OTP code.
	// Default: 6
	Digits int
	// Period specifies the time step in seconds for TOTP.
	// Default: 30
	Period int64
	// Counter specifies the counter value for HOTP generation.
	// Default: 0
	Counter uint64
	// Skew specifies the number of time intervals to check before and
	// after the current one during TOTP validation (tolerance for clock
	// drift). Default: 0, maximum totp.MaxWindowTokens.
	Skew int
	// Clock supplies the current time for TOTP. Default: time.Now.
	Clock func() time.Time
}

// validate checks that the configuration is valid.
func (c Config) validate() error {
	if c.Type != TypeTOTP && c.Type != TypeHOTP {
		return fmt.Errorf("%w: type must be 'totp' or 'hotp'", ErrInvalidConfig)
	}

	if len(c.Secret) == 0 {
		return fmt.Errorf("%w: secret must not be empty", ErrInvalidConfig)
	}

	// Fail at construction, not first use, when the secret does not match
	// its declared encoding.
	if _, err := secrets.Decode(c.Secret, c.SecretEncoding); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if c.Digits < 0 {
		return fmt.Errorf("%w: digits must be positive", ErrInvalidConfig)
	}

	if c.Period < 0 {
		return fmt.Errorf("%w: period must be positive", ErrInvalidConfig)
	}

	if c.Skew < 0 || c.Skew > totp.MaxWindowTokens {
		return fmt.Errorf("%w: skew must be between 0 and %d", ErrInvalidConfig, totp.MaxWindowTokens)
	}

	return nil
}

// Authenticator validates OTP codes.
// It is safe for concurrent use.
type Authenticator struct {
	cfg Config
}

// NewAuthenticator creates a new OTP authenticator.
// The configuration is validated and an error is returned if invalid.
func NewAuthenticator(cfg Config) (*Authenticator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Apply defaults
	if cfg.Digits == 0 {
		cfg.Digits = hotp.DefaultDigits
	}
	if cfg.Period == 0 {
		cfg.Period = totp.DefaultPeriod
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	return &Authenticator{cfg: cfg}, nil
}

// totpOptions returns the engine options for the configured TOTP window.
func (a *Authenticator) totpOptions() totp.Options {
	return totp.Options{
		SecretEncoding:         a.cfg.SecretEncoding,
		Digits:                 a.cfg.Digits,
		Period:                 a.cfg.Period,
		Clock:                  a.cfg.Clock,
		AcceptablePastTokens:   a.cfg.Skew,
		AcceptableFutureTokens: a.cfg.Skew,
	}
}

// hotpOptions returns the engine options for HOTP operations.
func (a *Authenticator) hotpOptions() hotp.Options {
	return hotp.Options{
		SecretEncoding: a.cfg.SecretEncoding,
		Digits:         a.cfg.Digits,
	}
}

// Authenticate validates an OTP code.
// For TOTP, it validates against the current time with skew tolerance.
// For HOTP, it validates against the configured counter value.
func (a *Authenticator) Authenticate(ctx context.Context, code string) error {
	if a == nil {
		return ErrNilAuthenticator
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if code == "" {
		return fmt.Errorf("%w: code must not be empty", ErrInvalidCode)
	}

	if a.cfg.Type == TypeTOTP {
		ok, err := totp.SameSecret(a.cfg.Secret, code, a.totpOptions())
		if err != nil {
			return fmt.Errorf("%w: validation failed: %v", ErrInvalidCode, err)
		}
		if !ok {
			return ErrInvalidCode
		}
		return nil
	}

	ok, err := hotp.SameSecret(a.cfg.Secret, code, a.cfg.Counter, a.hotpOptions())
	if err != nil {
		return fmt.Errorf("%w: validation failed: %v", ErrInvalidCode, err)
	}
	if !ok {
		return ErrInvalidCode
	}

	return nil
}

// ValidateCounter validates an HOTP code and returns the new counter value.
// This method is only valid for HOTP authenticators.
// The returned counter should be stored and used for the next validation.
func (a *Authenticator) ValidateCounter(ctx context.Context, code string, counter uint64) (uint64, error) {
	if a == nil {
		return 0, ErrNilAuthenticator
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if a.cfg.Type != TypeHOTP {
		return 0, fmt.Errorf("%w: ValidateCounter is only valid for HOTP", ErrInvalidConfig)
	}

	if code == "" {
		return 0, fmt.Errorf("%w: code must not be empty", ErrInvalidCode)
	}

	ok, err := hotp.SameSecret(a.cfg.Secret, code, counter, a.hotpOptions())
	if err != nil {
		return 0, fmt.Errorf("%w: validation failed: %v", ErrInvalidCode, err)
	}
	if !ok {
		return 0, ErrInvalidCode
	}

	// Return incremented counter
	return counter + 1, nil
}

// Generate generates an OTP code.
// For TOTP, it generates the code for the current time.
// For HOTP, a counter value must be provided.
func (a *Authenticator) Generate(counter ...uint64) (string, error) {
	if a == nil {
		return "", ErrNilAuthenticator
	}

	if a.cfg.Type == TypeTOTP {
		opts := a.totpOptions()
		opts.AcceptablePastTokens = 0
		opts.AcceptableFutureTokens = 0
		code, err := totp.Current(a.cfg.Secret, opts)
		if err != nil {
			return "", fmt.Errorf("twofactor: failed to generate TOTP code: %w", err)
		}
		return code, nil
	}

	// HOTP requires counter
	if len(counter) == 0 {
		return "", fmt.Errorf("twofactor: counter required for HOTP generation")
	}

	code, err := hotp.Generate(a.cfg.Secret, counter[0], a.hotpOptions())
	if err != nil {
		return "", fmt.Errorf("twofactor: failed to generate HOTP code: %w", err)
	}

	return code, nil
}

// ProvisioningURI returns the otpauth:// URI for QR code generation.
// This URI can be encoded as a QR code and scanned by authenticator apps.
// The secret is re-encoded to Base32 text, the form the URI format
// requires, regardless of the configured SecretEncoding.
func (a *Authenticator) ProvisioningURI() (string, error) {
	if a == nil {
		return "", ErrNilAuthenticator
	}

	raw, err := secrets.Decode(a.cfg.Secret, a.cfg.SecretEncoding)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	b32, err := secrets.Encode(raw, secrets.Base32)
	if err != nil {
		return "", err
	}

	key := otpauth.Key{
		Type:        otpauth.Type(a.cfg.Type),
		Issuer:      a.cfg.Issuer,
		AccountName: a.cfg.AccountName,
		Secret:      string(b32),
		Digits:      a.cfg.Digits,
		Period:      a.cfg.Period,
		Counter:     a.cfg.Counter,
	}
	return key.URL()
}
