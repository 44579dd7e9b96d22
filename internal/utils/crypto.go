// internal/utils/crypto.go
package utils

import (
	"crypto/rand"
	"math/big"
)

const idCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRandomString returns a random lowercase alphanumeric string,
// used to suffix generated report identifiers.
func GenerateRandomString(length int) (string, error) {
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(idCharset))))
		if err != nil {
			return "", err
		}
		b[i] = idCharset[n.Int64()]
	}
	return string(b), nil
}
