// Package user defines the user entity and the field rules enforced
// during registration and login.
package user

import (
	"errors"
	"regexp"
	"time"
)

// MinPasswordLen is the minimum accepted password length.
const MinPasswordLen = 6

var (
	// ErrFieldsRequired is returned when name, email, or password is missing.
	ErrFieldsRequired = errors.New("name, email, and password are required")
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("a user with this email is already registered")
	// ErrInvalidEmail is returned when the email does not look like an address.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrPasswordTooShort is returned when the password is shorter than MinPasswordLen.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	// ErrNegativeBalance is returned when the initial balance is negative.
	ErrNegativeBalance = errors.New("initial balance cannot be negative")
	// ErrNotFound is returned when a user cannot be found.
	ErrNotFound = errors.New("user not found")
	// ErrCredentialsRequired is returned on login when email or password is missing.
	ErrCredentialsRequired = errors.New("email and password are required")
	// ErrIncorrectPassword is returned on login when the password does not match.
	ErrIncorrectPassword = errors.New("incorrect password")
	// ErrInsufficientFunds is returned when a balance is too low for a debit.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrBalanceUpdate is returned when a balance write hits an unknown user.
	// It should never surface as long as existence is checked first.
	ErrBalanceUpdate = errors.New("failed to update user balance")
)

// local@domain.tld, no whitespace or extra @ on either side
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User is the full user record as held by the store. The password is kept
// verbatim and must never leave the service layer.
type User struct {
	ID        int64
	Name      string
	Email     string
	Password  string
	IsFavored bool
	Balance   float64
	CreatedAt time.Time
}

// ValidEmail reports whether email matches the accepted address pattern.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
