package user

import (
	"regexp"
	"strings"

	"canteen-reservation/internal/pkg/errs"
)

const minPasswordLength = 8

var (
	ErrInvalidEmail    = invalid("invalid email format")
	ErrInvalidRole     = invalid("role must be one of AGENT, GESTIONNAIRE, ADMIN")
	ErrPasswordTooWeak = invalid("password must be at least 8 characters long")
	ErrNameRequired    = invalid("first and last name are required")
)

func invalid(msg string) error {
	return errs.Mark(errs.New(msg), errs.ErrValidation)
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail trims and lowercases the address; logins are case-insensitive.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
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
	if len([]rune(s)) < minPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
