// Package totp implements time-based one-time passwords (RFC 6238).
//
// A TOTP token is an HOTP token whose counter is the number of fixed-size
// time intervals (30 seconds by default) elapsed since the Unix epoch.
// Both sides of an authentication compute the interval from their own
// clocks, so verification offers a sliding window to absorb clock drift.
//
//	code, err := totp.Current(secret, totp.Options{})
//
//	ok, err := totp.SameSecret(secret, userInput, totp.Options{
//	    AcceptablePastTokens:   1,
//	    AcceptableFutureTokens: 1,
//	})
//
// Time is read through Options.Clock, which defaults to time.Now. Tests
// inject a fixed clock instead of sleeping or monkey-patching:
//
//	opts := totp.Options{Clock: func() time.Time { return time.Unix(1234567890, 0) }}
package totp
