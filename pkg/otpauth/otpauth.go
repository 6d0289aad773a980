package otpauth

import (
	"errors"
	"fmt"
	"net/url"

	qrcode "github.com/skip2/go-qrcode"
)

// Type selects the otpauth URI flavor.
type Type string

const (
	// TypeTOTP provisions a time-based token.
	TypeTOTP Type = "totp"
	// TypeHOTP provisions a counter-based token.
	TypeHOTP Type = "hotp"
)

// ErrInvalidKey indicates a Key that cannot produce a valid URI.
var ErrInvalidKey = errors.New("otpauth: invalid key")

// Key holds the enrollment parameters encoded into a provisioning URI.
type Key struct {
	// Type is the token flavor. Default: TypeTOTP.
	Type Type
	// Issuer names the issuing organization, e.g. "MyApp".
	Issuer string
	// AccountName identifies the account, e.g. "user@example.com".
	AccountName string
	// Secret is the shared secret in Base32 text form (required).
	Secret string
	// Digits is the token length. Default: 6.
	Digits int
	// Period is the TOTP interval in seconds. Default: 30.
	Period int64
	// Counter is the initial HOTP counter. Only emitted for TypeHOTP.
	Counter uint64
}

// URL renders the key as an otpauth:// URI per the Google Authenticator
// key-URI format. The algorithm is always SHA1, the only one the engines
// speak and the one universally supported by authenticator apps.
func (k Key) URL() (string, error) {
	typ := k.Type
	if typ == "" {
		typ = TypeTOTP
	}
	if typ != TypeTOTP && typ != TypeHOTP {
		return "", fmt.Errorf("%w: unknown type %q", ErrInvalidKey, k.Type)
	}
	if k.Secret == "" {
		return "", fmt.Errorf("%w: secret is required", ErrInvalidKey)
	}

	digits := k.Digits
	if digits == 0 {
		digits = 6
	}

	v := url.Values{}
	v.Set("secret", k.Secret)
	v.Set("algorithm", "SHA1")
	v.Set("digits", fmt.Sprintf("%d", digits))
	if k.Issuer != "" {
		v.Set("issuer", k.Issuer)
	}

	switch typ {
	case TypeTOTP:
		period := k.Period
		if period == 0 {
			period = 30
		}
		v.Set("period", fmt.Sprintf("%d", period))
	case TypeHOTP:
		v.Set("counter", fmt.Sprintf("%d", k.Counter))
	}

	label := k.AccountName
	if k.Issuer != "" {
		label = fmt.Sprintf("%s:%s", k.Issuer, k.AccountName)
	}

	return fmt.Sprintf("otpauth://%s/%s?%s", typ, url.PathEscape(label), v.Encode()), nil
}

// QRCodePNG renders the provisioning URI as a size x size pixel PNG
// suitable for scanning by authenticator apps.
func (k Key) QRCodePNG(size int) ([]byte, error) {
	uri, err := k.URL()
	if err != nil {
		return nil, err
	}
	png, err := qrcode.Encode(uri, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("otpauth: failed to encode QR code: %w", err)
	}
	return png, nil
}
