// go-utils/random.go

package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomString returns length hex characters from crypto/rand.
func RandomString(length int) string {
	bytes := make([]byte, (length+1)/2)
	_, err := rand.Read(bytes)
	if err != nil {
		panic(err) // crypto/rand never fails on supported platforms
	}
	return hex.EncodeToString(bytes)[:length]
}
