package domain

import "time"

// User represents a rider account. Google accounts have no password hash;
// password accounts have no Google ID.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash *string   `json:"-"`
	GoogleID     *string   `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// HasPassword reports whether the account can sign in with email and password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// GoogleIdentity is the verified subset of a Google ID token.
type GoogleIdentity struct {
	Subject       string
	Email         string
	Name          string
	EmailVerified bool
}
