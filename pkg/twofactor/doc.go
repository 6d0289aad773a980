// Package twofactor provides a high-level two-factor authenticator over
// the HOTP (RFC 4226) and TOTP (RFC 6238) engines.
//
// TOTP (Time-based One-Time Password) codes change every 30 seconds and
// are the flavor used by authenticator apps like Google Authenticator.
// HOTP (HMAC-based One-Time Password) codes advance with a counter and
// appear in hardware tokens.
//
// # TOTP Example
//
//	secret, err := secrets.Generate(secrets.DefaultLength, secrets.Base32)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	auth, err := twofactor.NewAuthenticator(twofactor.Config{
//	    Type:           twofactor.TypeTOTP,
//	    Secret:         secret,
//	    SecretEncoding: secrets.Base32,
//	    Issuer:         "MyApp",
//	    AccountName:    "user@example.com",
//	    Skew:           1, // allow 1 interval of clock drift
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Display uri as a QR code for the user to scan, then validate
//	// codes from their authenticator app.
//	uri, _ := auth.ProvisioningURI()
//	err = auth.Authenticate(ctx, "123456")
//
// # HOTP Example
//
//	auth, err := twofactor.NewAuthenticator(twofactor.Config{
//	    Type:           twofactor.TypeHOTP,
//	    Secret:         secret,
//	    SecretEncoding: secrets.Base32,
//	})
//
//	// Validate a code and obtain the next counter to persist.
//	newCounter, err := auth.ValidateCounter(ctx, "123456", currentCounter)
//
// # Thread Safety
//
// An Authenticator is immutable after construction and safe for
// concurrent use; counter persistence between ValidateCounter calls is
// the caller's responsibility.
package twofactor
