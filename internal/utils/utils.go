package utils

import (
	"crypto/rand"
	"encoding/hex"
	"net/url"
)

// CorrectURLScheme prefixes https:// when the argument carries no usable
// scheme, so bare hostnames work as CLI input.
func CorrectURLScheme(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil && u.Scheme != "" && u.Host != "" {
		return rawURL
	}

	if parsed, err := url.Parse("https://" + rawURL); err == nil {
		return parsed.String()
	}

	return rawURL
}

func GenerateID() (string, error) {
	bytes := make([]byte, 20)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
