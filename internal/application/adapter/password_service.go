// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

// PasswordService defines the interface for password hashing operations.
type PasswordService interface {
	// HashPassword hashes a plaintext password.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plaintext password against a hash.
	VerifyPassword(hash, password string) error

	// ValidatePasswordStrength checks minimum password requirements.
	ValidatePasswordStrength(password string) error
}
