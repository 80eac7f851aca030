package domain

import (
	"fmt"
	"strings"
	"time"
)

// User is an account created through sign-up. LegacyPassword holds the
// plain password of accounts written before hashing; it is cleared once the
// account signs in and gains a PasswordHash.
type User struct {
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"passwordHash,omitempty"`
	LegacyPassword string    `json:"password,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Session marks the signed-in user.
type Session struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email,omitempty"`
	IsAdmin    bool      `json:"isAdmin,omitempty"`
	SignedInAt time.Time `json:"signedInAt"`
}

// SignUpInput is the raw sign-up form.
type SignUpInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// MinPasswordLen is the shortest accepted sign-up password.
const MinPasswordLen = 6

// Validate checks the fields that do not depend on existing users.
func (in SignUpInput) Validate() error {
	if strings.TrimSpace(in.Username) == "" {
		return invalidField("username", "username is required", nil)
	}
	if in.Password != in.ConfirmPassword {
		return invalidField("password", "passwords do not match", nil)
	}
	if len(in.Password) < MinPasswordLen {
		return invalidField("password", fmt.Sprintf("password must be at least %d characters long", MinPasswordLen), nil)
	}
	if !strings.Contains(in.Email, "@") {
		return invalidField("email", "please enter a valid email address", nil)
	}
	return nil
}

// Theme is the display theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme accepts "light" or "dark", case-insensitively.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	}
	return "", invalidField("theme", fmt.Sprintf("%q is not light or dark", s), nil)
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
