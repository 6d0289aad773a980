package otpauth_test

import (
	"bytes"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbramson/two-factor-in-a-can/pkg/otpauth"
)

func TestURLDefaultsToTOTP(t *testing.T) {
	t.Parallel()

	key := otpauth.Key{
		Issuer:      "MyApp",
		AccountName: "user@example.com",
		Secret:      "JBSWY3DPEHPK3PXP",
	}

	uri, err := key.URL()
	require.NoError(t, err)

	parsed, err := url.Parse(uri)
	require.NoError(t, err)

	assert.Equal(t, "otpauth", parsed.Scheme)
	assert.Equal(t, "totp", parsed.Host)

	q := parsed.Query()
	assert.Equal(t, "JBSWY3DPEHPK3PXP", q.Get("secret"))
	assert.Equal(t, "MyApp", q.Get("issuer"))
	assert.Equal(t, "SHA1", q.Get("algorithm"))
	assert.Equal(t, "6", q.Get("digits"))
	assert.Equal(t, "30", q.Get("period"))
	assert.Empty(t, q.Get("counter"))
}

func TestURLHOTPCarriesCounter(t *testing.T) {
	t.Parallel()

	key := otpauth.Key{
		Type:        otpauth.TypeHOTP,
		Issuer:      "MyApp",
		AccountName: "user@example.com",
		Secret:      "JBSWY3DPEHPK3PXP",
		Counter:     42,
	}

	uri, err := key.URL()
	require.NoError(t, err)

	parsed, err := url.Parse(uri)
	require.NoError(t, err)

	assert.Equal(t, "hotp", parsed.Host)

	q := parsed.Query()
	assert.Equal(t, "42", q.Get("counter"))
	assert.Empty(t, q.Get("period"))
}

func TestURLLabelEscaping(t *testing.T) {
	t.Parallel()

	key := otpauth.Key{
		Issuer:      "My App",
		AccountName: "user@example.com",
		Secret:      "JBSWY3DPEHPK3PXP",
	}

	uri, err := key.URL()
	require.NoError(t, err)

	parsed, err := url.Parse(uri)
	require.NoError(t, err)

	// Label is Issuer:AccountName, path-escaped.
	assert.Equal(t, "/My App:user@example.com", parsed.Path)
}

func TestURLCustomDigitsAndPeriod(t *testing.T) {
	t.Parallel()

	key := otpauth.Key{
		AccountName: "user@example.com",
		Secret:      "JBSWY3DPEHPK3PXP",
		Digits:      8,
		Period:      60,
	}

	uri, err := key.URL()
	require.NoError(t, err)

	parsed, err := url.Parse(uri)
	require.NoError(t, err)

	q := parsed.Query()
	assert.Equal(t, "8", q.Get("digits"))
	assert.Equal(t, "60", q.Get("period"))
}

func TestURLValidation(t *testing.T) {
	t.Parallel()

	_, err := otpauth.Key{AccountName: "user@example.com"}.URL()
	assert.ErrorIs(t, err, otpauth.ErrInvalidKey)

	_, err = otpauth.Key{Type: "sms", Secret: "JBSWY3DPEHPK3PXP"}.URL()
	assert.ErrorIs(t, err, otpauth.ErrInvalidKey)
}

func TestQRCodePNG(t *testing.T) {
	t.Parallel()

	key := otpauth.Key{
		Issuer:      "MyApp",
		AccountName: "user@example.com",
		Secret:      "JBSWY3DPEHPK3PXP",
	}

	png, err := key.QRCodePNG(256)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")), "output is not a PNG")
}

func TestQRCodePNGInvalidKey(t *testing.T) {
	t.Parallel()

	_, err := otpauth.Key{}.QRCodePNG(256)
	assert.ErrorIs(t, err, otpauth.ErrInvalidKey)
}
