package domain

import (
	"errors"
	"time"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User models a registered account. Email is the login key and is unique
// at the storage layer; PasswordHash is a bcrypt digest, never plaintext.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the proof of a successful credential check. It carries only
// what the session issuer needs to mint a token.
type Identity struct {
	ID    string
	Email string
}
