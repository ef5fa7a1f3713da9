package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	return base64.URLEncoding.EncodeToString([]byte(strings.Join(fields, "|")))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), "|"), nil
}

// EncodeKeysetToken creates the continuation token for a listing of kind,
// pointing after the entity with lastID.
func EncodeKeysetToken(kind, lastID string) string {
	return EncodeMultiFieldToken(kind, lastID)
}

// DecodeKeysetToken returns the id a listing of kind should continue after.
// A token minted for a different kind is rejected.
func DecodeKeysetToken(token, kind string) (string, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return "", err
	}
	if len(parts) != 2 || parts[1] == "" {
		return "", fmt.Errorf("invalid pagination token format (fields)")
	}
	if parts[0] != kind {
		return "", fmt.Errorf("pagination token was issued for %s, not %s", parts[0], kind)
	}
	return parts[1], nil
}
