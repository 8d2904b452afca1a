package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrMalformedHash    = errors.New("malformed password hash")
)

const (
	saltLen    = 16
	iterations = 310_000
	keyLen     = 32
)

// HashPassword derives a key with PBKDF2-SHA256 and stores it as "hash.salt",
// both hex encoded.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", ErrHashingFailed
	}

	derived := pbkdf2.Key([]byte(password), salt, iterations, keyLen, sha256.New)
	return hex.EncodeToString(derived) + "." + hex.EncodeToString(salt), nil
}

// ComparePassword checks a plaintext password against a stored "hash.salt" value.
func ComparePassword(stored, password string) error {
	if stored == "" || password == "" {
		return ErrInvalidPassword
	}

	hashHex, saltHex, ok := strings.Cut(stored, ".")
	if !ok {
		return ErrMalformedHash
	}

	want, err := hex.DecodeString(hashHex)
	if err != nil {
		return ErrMalformedHash
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return ErrMalformedHash
	}

	got := pbkdf2.Key([]byte(password), salt, iterations, keyLen, sha256.New)
	if subtle.ConstantTimeCompare(want, got) != 1 {
		return ErrComparisonFailed
	}

	return nil
}
