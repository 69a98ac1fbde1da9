package domain

import "time"

// User represents a registered account. Email is the unique key,
// case-sensitive as stored. Users are immutable after signup.
type User struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserSignup represents signup data
type UserSignup struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	FullName string `json:"fullName" validate:"required,max=255"`
}

// UserLogin represents login credentials
type UserLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// PublicUser is the client-visible projection of a User
type PublicUser struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// Public returns the client-visible projection
func (u *User) Public() PublicUser {
	return PublicUser{Email: u.Email, FullName: u.FullName}
}

// AuthResponse is returned from signup and login
type AuthResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}
