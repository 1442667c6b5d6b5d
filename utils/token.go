package utils

import (
	"crypto/rand"
	"math/big"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomToken returns a crypto-random token; it gates password
// resets, so math/rand is not enough here.
func GenerateRandomToken(length int) string {
	token := make([]byte, length)
	for i := range token {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			panic(err) // crypto/rand failure means the host is broken
		}
		token[i] = charset[n.Int64()]
	}
	return string(token)
}
