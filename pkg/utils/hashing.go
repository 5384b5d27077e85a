package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	scryptN      = 32768
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
	saltLen      = 16
)

// HashPassword derives an scrypt digest under a fresh random salt and
// encodes both as "hex(salt)$hex(digest)".
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	dk, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(salt) + "$" + hex.EncodeToString(dk), nil
}

// VerifyPassword re-derives the digest under the stored salt and compares
// in constant time. Any malformed stored value verifies as false.
func VerifyPassword(stored string, password string) bool {
	salt, want, err := decodeStoredHash(stored)
	if err != nil {
		return false
	}

	dk, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(dk, want) == 1
}

func decodeStoredHash(stored string) ([]byte, []byte, error) {
	parts := strings.SplitN(stored, "$", 2)
	if len(parts) != 2 {
		return nil, nil, errors.New("malformed password hash")
	}

	salt, err := hex.DecodeString(parts[0])
	if err != nil {
		return nil, nil, err
	}

	digest, err := hex.DecodeString(parts[1])
	if err != nil {
		return nil, nil, err
	}

	if len(digest) != scryptKeyLen {
		return nil, nil, errors.New("malformed password hash")
	}

	return salt, digest, nil
}
