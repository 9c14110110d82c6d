package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher turns a password into its stored form and checks it back
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(password, stored string) bool
}

// PlainPasswordHasher stores passwords as-is and compares them exactly.
// Demo only.
type PlainPasswordHasher struct{}

func (PlainPasswordHasher) Hash(password string) (string, error) {
	return password, nil
}

func (PlainPasswordHasher) Matches(password, stored string) bool {
	return password == stored
}

// BcryptPasswordHasher stores bcrypt hashes
type BcryptPasswordHasher struct{}

func (BcryptPasswordHasher) Hash(password string) (string, error) {
	return HashPassword(password)
}

func (BcryptPasswordHasher) Matches(password, stored string) bool {
	return CheckPasswordHash(password, stored)
}

// NewPasswordHasher picks a hasher by name ("plain" or "bcrypt")
func NewPasswordHasher(mode string) (PasswordHasher, error) {
	switch mode {
	case "", "plain":
		return PlainPasswordHasher{}, nil
	case "bcrypt":
		return BcryptPasswordHasher{}, nil
	default:
		return nil, fmt.Errorf("unknown password hashing mode %q", mode)
	}
}

// HashPassword hashes a password with bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPasswordHash compares a password with a bcrypt hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
