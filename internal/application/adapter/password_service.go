package adapter

//go:generate mockgen -source=password_service.go -destination=mocks/mock_password_service.go -package=mocks

// PasswordService defines the interface for password hashing and verification.
type PasswordService interface {
	HashPassword(password string) (string, error)
	VerifyPassword(hashedPassword, password string) error
	ValidatePasswordStrength(password string) error
}
