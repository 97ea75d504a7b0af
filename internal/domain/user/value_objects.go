package user

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	MinPasswordLength = 8
	// bcrypt ignores input beyond 72 bytes.
	MaxPasswordLength = 72
	maxEmailLength    = 254
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	ErrPasswordTooLong = fmt.Errorf("password must be at most %d bytes long", MaxPasswordLength)
	ErrMissingOfferer  = errors.New("pro user requires an offerer")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is the login of pro users and redactors.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if len(s) > maxEmailLength || !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	switch {
	case len(s) < MinPasswordLength:
		return Password{}, ErrPasswordTooWeak
	case len(s) > MaxPasswordLength:
		return Password{}, ErrPasswordTooLong
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
