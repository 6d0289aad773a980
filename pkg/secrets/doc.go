// Package secrets generates and transcodes the shared secrets used by the
// HOTP and TOTP engines.
//
// A secret is an opaque byte sequence, 20 bytes (160 bits) by default per
// the RFC 4226 recommendation. It can be carried in one of three encodings:
// raw binary, RFC 4648 Base32 (the form authenticator apps expect), or
// RFC 4648 Base64.
//
// Generate a fresh secret for a new enrollment:
//
//	secret, err := secrets.Generate(secrets.DefaultLength, secrets.Base32)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// secret is a 32-character Base32 string, e.g. "JBSWY3DPEHPK3PXP..."
//
// Decoding is strict: a payload that does not match its declared encoding
// fails with ErrSecretDecode rather than being repaired or truncated, so a
// misconfigured encoding is always distinguishable from a corrupted secret.
package secrets
