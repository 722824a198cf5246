package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// passwordCost is the bcrypt work factor for doctor and patient credentials.
var passwordCost = bcrypt.DefaultCost

// HashPassword returns the bcrypt hash stored on doctor and patient records.
// Passwords over 72 bytes fail with bcrypt.ErrPasswordTooLong.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
