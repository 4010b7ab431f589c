package domain

import (
	"net/mail"
	"strings"
	"time"
)

// User is an account that owns bookmarks.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	AvatarURL    string    `json:"avatar,omitempty"`
	AvatarID     string    `json:"-"` // asset id at the image host, kept for deletion
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RegisterInput carries the fields for account creation.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

const minPasswordLen = 8

// Validate checks the registration fields.
func (in *RegisterInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return Invalid("name is required")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return Invalid("email must be a valid address")
	}
	if len(in.Password) < minPasswordLen {
		return Invalid("password must be at least %d characters", minPasswordLen)
	}
	return nil
}

// Normalize lowercases the email and trims the name.
func (in *RegisterInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}
