package totp

import (
	"errors"
	"fmt"
	"time"

	"github.com/mbramson/two-factor-in-a-can/pkg/hotp"
	"github.com/mbramson/two-factor-in-a-can/pkg/secrets"
)

const (
	// DefaultPeriod is the interval length in seconds used when
	// Options.Period is zero.
	DefaultPeriod int64 = 30

	// MaxWindowTokens caps AcceptablePastTokens and AcceptableFutureTokens.
	// The verification scan costs one HMAC per window slot, so unbounded
	// windows would let a caller turn verification into a CPU sink.
	MaxWindowTokens = 10
)

// ErrInvalidOptions indicates an Options field outside its valid range.
var ErrInvalidOptions = errors.New("totp: invalid options")

// Options controls token generation and verification. The zero value is
// ready to use: a binary secret, 6 digits, 30-second intervals, the real
// clock, and no drift tolerance.
type Options struct {
	// SecretEncoding declares how the secret argument is encoded.
	// Default: secrets.Binary.
	SecretEncoding secrets.Encoding

	// Digits is the token length. Default: 6.
	Digits int

	// Period is the interval length in seconds. Default: 30.
	Period int64

	// Offset shifts the clock reading by a number of seconds before the
	// interval is derived. May be negative. Default: 0.
	Offset int64

	// Clock supplies the current time. Default: time.Now. Tests supply a
	// fixed clock for deterministic tokens.
	Clock func() time.Time

	// AcceptablePastTokens widens verification to accept tokens from this
	// many intervals in the past. Default: 0, maximum MaxWindowTokens.
	AcceptablePastTokens int

	// AcceptableFutureTokens widens verification to accept tokens from
	// this many intervals in the future. Default: 0, maximum
	// MaxWindowTokens.
	AcceptableFutureTokens int
}

// withDefaults returns a copy of o with zero fields replaced by defaults.
func (o Options) withDefaults() Options {
	if o.Period == 0 {
		o.Period = DefaultPeriod
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	return o
}

// validate checks o after defaults have been applied. Digit validation is
// left to the HOTP engine.
func (o Options) validate() error {
	if o.Period < 1 {
		return fmt.Errorf("%w: period must be positive, got %d", ErrInvalidOptions, o.Period)
	}
	if o.AcceptablePastTokens < 0 || o.AcceptableFutureTokens < 0 {
		return fmt.Errorf("%w: window sizes must be non-negative", ErrInvalidOptions)
	}
	if o.AcceptablePastTokens > MaxWindowTokens || o.AcceptableFutureTokens > MaxWindowTokens {
		return fmt.Errorf("%w: window sizes are capped at %d intervals", ErrInvalidOptions, MaxWindowTokens)
	}
	return nil
}

// hotpOptions projects the fields the HOTP engine consumes.
func (o Options) hotpOptions() hotp.Options {
	return hotp.Options{SecretEncoding: o.SecretEncoding, Digits: o.Digits}
}

// TimeInterval returns the number of whole periods elapsed at the
// (offset-shifted) clock reading since the Unix epoch. Division floors
// toward negative infinity, so for any integer k and fixed timestamp,
// shifting Offset by k*Period shifts the result by exactly k — including
// across zero for pre-epoch timestamps.
func TimeInterval(opts Options) (int64, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return 0, err
	}
	return floorDiv(opts.Clock().Unix()+opts.Offset, opts.Period), nil
}

// Current computes the token for the current interval by delegating to
// the HOTP engine with the interval as the counter. All HOTP options pass
// through unchanged.
func Current(secret []byte, opts Options) (string, error) {
	interval, err := TimeInterval(opts)
	if err != nil {
		return "", err
	}
	// A negative interval (pre-epoch clock) serializes as the same 8-byte
	// big-endian two's-complement pattern the reference algorithm packs.
	return hotp.Generate(secret, uint64(interval), opts.hotpOptions())
}

// SameSecret reports whether code is a token the secret produces within
// the configured drift window. Intervals from AcceptablePastTokens behind
// to AcceptableFutureTokens ahead of the current one are tried in order;
// the scan stops at the first match. With both window options zero the
// result is exactly a comparison against Current.
//
// The early exit means the time taken leaks which window slot matched.
// Callers that need full timing-attack resistance should scan with a
// window of zero per candidate interval themselves, paying the full cost
// every time.
func SameSecret(secret []byte, code string, opts Options) (bool, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return false, err
	}

	for k := -opts.AcceptablePastTokens; k <= opts.AcceptableFutureTokens; k++ {
		trial := opts
		trial.Offset = opts.Offset + int64(k)*opts.Period
		trial.AcceptablePastTokens = 0
		trial.AcceptableFutureTokens = 0

		interval, err := TimeInterval(trial)
		if err != nil {
			return false, err
		}
		ok, err := hotp.SameSecret(secret, code, uint64(interval), opts.hotpOptions())
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// floorDiv divides a by b rounding toward negative infinity. Go's native
// division truncates toward zero, which would put -1s and +29s in the
// same 30-second interval as 0s.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
