package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewToken выдает случайный hex-токен сейва для игрока без своего.
// 16 символов достаточно против коллизий, а UUID-зависимость не нужна.
func NewToken() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate save token: " + err.Error())
	}
	return hex.EncodeToString(b)
}
