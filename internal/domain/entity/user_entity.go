package entity

import (
	"errors"
	"strings"
)

var (
	ErrUserNameRequired  = errors.New("user name is required")
	ErrUserEmailRequired = errors.New("user email is required")
)

// User is an account owning shopping lists.
// ID stays empty until the user has been persisted.
type User struct {
	ID    string
	Name  string
	Email string
}

// NewUser builds an unpersisted user.
func NewUser(name, email string) (User, error) {
	if strings.TrimSpace(name) == "" {
		return User{}, ErrUserNameRequired
	}
	if strings.TrimSpace(email) == "" {
		return User{}, ErrUserEmailRequired
	}
	return User{Name: name, Email: email}, nil
}
