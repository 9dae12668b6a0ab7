package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"github.com/roverent/roverent-backend/pkg/config"
)

// ErrInvalidHash signals a malformed stored password hash.
var ErrInvalidHash = fmt.Errorf("invalid password hash")

// HashPassword derives a PBKDF2-SHA256 hash for the provided password and
// returns it as "base64(salt):base64(key)".
func HashPassword(password string, cfg config.PasswordConfig) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	iterations, saltLen, keyLen := paramsFromConfig(cfg)

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, keyLen, sha256.New)

	encSalt := base64.StdEncoding.EncodeToString(salt)
	encKey := base64.StdEncoding.EncodeToString(key)

	return encSalt + ":" + encKey, nil
}

// VerifyPassword returns true when the password matches the encoded hash.
// The key length used for derivation is taken from the stored hash so that
// records written under older settings keep verifying.
func VerifyPassword(password, encoded string, cfg config.PasswordConfig) (bool, error) {
	parts := strings.Split(encoded, ":")
	if len(parts) != 2 {
		return false, ErrInvalidHash
	}

	salt, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return false, ErrInvalidHash
	}
	key, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return false, ErrInvalidHash
	}
	if len(salt) == 0 || len(key) == 0 {
		return false, ErrInvalidHash
	}

	iterations, _, _ := paramsFromConfig(cfg)
	computed := pbkdf2.Key([]byte(password), salt, iterations, len(key), sha256.New)

	if subtle.ConstantTimeCompare(key, computed) == 1 {
		return true, nil
	}
	return false, nil
}

func paramsFromConfig(cfg config.PasswordConfig) (iterations, saltLen, keyLen int) {
	iterations = clampInt(cfg.Iterations, 1_000, 10_000_000)
	saltLen = clampInt(cfg.SaltLen, 8, 64)
	keyLen = clampInt(cfg.KeyLen, 16, 64)
	return iterations, saltLen, keyLen
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
