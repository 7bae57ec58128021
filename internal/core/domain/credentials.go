package domain

import "encoding/base64"

// APICredentials is one set of ad-network API credentials. Exactly one set
// is active per owner: saving a new set deactivates all previous ones.
type APICredentials struct {
	APIKey      string `json:"apiKey"`
	PublisherID string `json:"publisherId"`
	Endpoint    string `json:"endpoint"`
}

// EncodeKey applies the reversible storage encoding to an API key. This is
// obfuscation only and must not be treated as a security control; the stored
// value is plaintext-equivalent.
func EncodeKey(key string) string {
	return base64.StdEncoding.EncodeToString([]byte(key))
}

// DecodeKey inverts EncodeKey. A value that does not decode is returned
// unchanged, so a corrupt row degrades to a wrong key instead of an error.
func DecodeKey(encoded string) string {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return encoded
	}
	return string(raw)
}
