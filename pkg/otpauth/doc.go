// Package otpauth builds otpauth:// provisioning URIs and QR codes for
// enrolling a shared secret into an authenticator app.
//
// The URI follows the Google Authenticator key-URI format:
//
//	key := otpauth.Key{
//	    Type:        otpauth.TypeTOTP,
//	    Issuer:      "MyApp",
//	    AccountName: "user@example.com",
//	    Secret:      base32Secret,
//	}
//	uri, err := key.URL()
//	png, err := key.QRCodePNG(256)
//
// The secret travels in the URI (and therefore the QR image) in clear
// Base32; treat both as sensitive material during enrollment.
package otpauth
