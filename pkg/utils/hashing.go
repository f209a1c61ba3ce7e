package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const passwordHashCost = bcrypt.DefaultCost

var errEmptyPassword = errors.New("password must not be empty")

// HashPassword returns the bcrypt hash stored in accounts.password_hash.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePasswords is nil only when plain matches the stored hash.
func ComparePasswords(storedHash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plain))
}
