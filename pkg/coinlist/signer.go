package coinlist

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
)

// Signer holds the credential pair used to authenticate requests.
// It is immutable once built and safe for concurrent use.
type Signer struct {
	accessKey string
	secret    []byte
}

// NewSigner validates the credentials and decodes the base64 secret once.
func NewSigner(accessKey, accessSecret string) (*Signer, error) {
	if accessKey == "" {
		return nil, fmt.Errorf("%w: empty access key", ErrInvalidCredentials)
	}

	encoded := strings.TrimSpace(accessSecret)
	if encoded == "" {
		return nil, fmt.Errorf("%w: empty access secret", ErrInvalidCredentials)
	}

	secret, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: decode access secret: %v", ErrInvalidCredentials, err)
	}

	return &Signer{
		accessKey: accessKey,
		secret:    secret,
	}, nil
}

// AccessKey returns the key sent in the CL-ACCESS-KEY header.
func (s *Signer) AccessKey() string {
	return s.accessKey
}

// Sign returns base64(HMAC-SHA256(secret, message)).
func (s *Signer) Sign(message string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// SigningMessage builds the exact byte string the exchange verifies.
// body must be the empty string when the request carries no payload.
func SigningMessage(timestamp, method, pathWithQuery, body string) string {
	var b strings.Builder
	b.Grow(len(timestamp) + len(method) + len(pathWithQuery) + len(body))
	b.WriteString(timestamp)
	b.WriteString(method)
	b.WriteString(pathWithQuery)
	b.WriteString(body)
	return b.String()
}
