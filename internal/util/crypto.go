package util

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// 16 bytes = 128 bits of entropy, 32 hex characters.
const tokenBytes = 16

func GenerateToken() (string, error) {
	bytes := make([]byte, tokenBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

func ConstantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func IsBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

// CheckPassword accepts both bcrypt hashes and legacy plaintext phrases.
func CheckPassword(password, stored string) bool {
	if stored == "" {
		return false
	}
	if IsBcryptHash(stored) {
		return CheckPasswordHash(password, stored)
	}
	return ConstantTimeEqual(password, stored)
}
