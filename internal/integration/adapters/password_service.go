package adapters

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/rentaldesk/backend/internal/application/adapter"
)

const (
	minPasswordLength = 8
	// bcrypt ignores input past 72 bytes.
	maxPasswordLength = 72
)

var (
	errPasswordLength = errors.New("password must be between 8 and 72 characters")
	errPasswordMix    = errors.New("password must contain letters and digits")
)

type passwordService struct {
	cost int
}

// NewPasswordService creates a bcrypt password service. A cost outside
// bcrypt's range falls back to bcrypt.DefaultCost.
func NewPasswordService(cost int) adapter.PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &passwordService{cost: cost}
}

func (s *passwordService) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (s *passwordService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func (s *passwordService) ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return errPasswordLength
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return errPasswordMix
	}
	return nil
}
