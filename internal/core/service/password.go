package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is the fixed bcrypt work factor. It is part of the credential
// format: digests produced with it keep verifying across process restarts,
// so changing it only affects newly created hashes.
const hashCost = 10

var errEmptyPassword = errors.New("password must not be empty")

// PasswordHasher is the one-way salted hash primitive shared by registration
// and login. bcrypt embeds a per-call random salt in the digest.
type PasswordHasher struct{}

// Hash derives a digest from plaintext. Empty input is a caller bug and is
// rejected before bcrypt runs.
func (PasswordHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", errEmptyPassword
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches a previously produced digest.
func (PasswordHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
