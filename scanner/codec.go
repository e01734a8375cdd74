package scanner

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrInvalidID is returned by DecodeID for tokens EncodeID cannot produce.
var ErrInvalidID = errors.New("invalid id")

// Unpadded URL alphabet; Strict rejects tokens with non-zero trailing bits
// so each path has exactly one accepted token.
var idEncoding = base64.RawURLEncoding.Strict()

// EncodeID maps a relative path to an opaque token made of [A-Za-z0-9_-].
// The path bytes are encoded as is: no case or Unicode normalization.
func EncodeID(path string) string {
	return idEncoding.EncodeToString([]byte(path))
}

// DecodeID reverses EncodeID.
func DecodeID(id string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidID)
	}
	b, err := idEncoding.DecodeString(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidID, id, err)
	}
	return string(b), nil
}
