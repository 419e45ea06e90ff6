package utils

import (
	"math/rand"
	"time"
)

var tokenRand = rand.New(rand.NewSource(time.Now().UnixNano()))

func GenerateRandomToken(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	token := make([]byte, length)
	for i := range token {
		token[i] = charset[tokenRand.Intn(len(charset))]
	}
	return string(token)
}
