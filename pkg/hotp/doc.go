// Package hotp implements HMAC-based one-time passwords (RFC 4226).
//
// A token is derived from a shared secret and a 64-bit moving counter:
// the counter is serialized big-endian, HMAC-SHA1'd with the secret, and
// the digest is dynamically truncated to a 31-bit integer that is reduced
// modulo 10^digits and rendered as a left-zero-padded decimal string.
//
//	code, err := hotp.Generate(secret, counter, hotp.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ok, err := hotp.SameSecret(secret, userInput, counter, hotp.Options{})
//
// Tokens are strings, never integers: "007464" and "7464" are different
// tokens. Comparison in SameSecret is constant-time once lengths match.
package hotp
