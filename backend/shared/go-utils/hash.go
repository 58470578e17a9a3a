// go-utils/hash.go

package utils

import (
	"crypto/sha256"
	"encoding/base64"
)

// HashToken is how one-time tokens are stored: never raw, always this digest.
func HashToken(raw string) string {
	hasher := sha256.New()
	hasher.Write([]byte(raw))
	return base64.URLEncoding.EncodeToString(hasher.Sum(nil))
}
