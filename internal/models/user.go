package models

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// lockoutThreshold is the number of consecutive failed logins after which an
// account is locked until the next successful password check.
const lockoutThreshold = 5

const minPasswordLength = 8

var validate = validator.New()

// ValidationError reports a rejected field at a trust boundary.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// User is an application account. The stored credential is a bcrypt hash and
// is never the plaintext password. Email identity is case-insensitive while
// the stored address keeps its original casing.
type User struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Address      string    `json:"address,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`

	orders       []*Order
	failedLogins int
	locked       bool
}

// NewUser validates the registration input, hashes the password and returns
// the account. The plaintext password is not retained.
func NewUser(email, password, name, address string) (*User, error) {
	email = strings.TrimSpace(email)
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	if err := checkPasswordStrength(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(name),
		Address:      strings.TrimSpace(address),
		CreatedAt:    time.Now(),
	}, nil
}

func checkPasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return &ValidationError{Field: "password", Reason: fmt.Sprintf("must be at least %d characters", minPasswordLength)}
	}
	hasLetter, hasDigit := false, false
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return &ValidationError{Field: "password", Reason: "must contain letters and digits"}
	}
	return nil
}

// Key is the canonical identity used for lookups: the lowercased email.
func (u *User) Key() string {
	return strings.ToLower(u.Email)
}

// CheckPassword compares candidate against the stored hash. It returns false
// for a wrong password, never an error. A successful check resets the
// failed-login counter and unlocks the account.
func (u *User) CheckPassword(candidate string) bool {
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(candidate)); err != nil {
		return false
	}
	u.failedLogins = 0
	u.locked = false
	return true
}

// RecordFailedLogin bumps the consecutive-failure counter and reports whether
// the account is now locked.
func (u *User) RecordFailedLogin() bool {
	u.failedLogins++
	if u.failedLogins >= lockoutThreshold {
		u.locked = true
	}
	return u.locked
}

func (u *User) Locked() bool {
	return u.locked
}

func (u *User) FailedLogins() int {
	return u.failedLogins
}

// AddOrder appends order to the account history. History is append-only.
func (u *User) AddOrder(order *Order) {
	if order == nil {
		return
	}
	u.orders = append(u.orders, order)
}

// OrderHistory returns the orders in insertion order. The returned slice is a
// copy; appending to it does not touch the history.
func (u *User) OrderHistory() []*Order {
	history := make([]*Order, len(u.orders))
	copy(history, u.orders)
	return history
}
