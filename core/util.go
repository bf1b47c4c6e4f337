package core

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// RandomBytes reads `n` bytes from the OS CSPRNG.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, errors.Wrap(err, "reading random bytes")
	}
	return b, nil
}

// URLSafeToken returns `n` random bytes encoded as unpadded base64url.
func URLSafeToken(n int) (string, error) {
	b, err := RandomBytes(n)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// NowFunc returns the current UTC time. It is replaced in tests.
type NowFunc func() time.Time

func UTCNow() time.Time { return time.Now().UTC() }
