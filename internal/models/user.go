package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID  `db:"id"`            // Primary key
	Email        string     `db:"email"`         // Unique, stored lower-cased
	Username     string     `db:"username"`      // Unique username
	PasswordHash string     `db:"password_hash"` // bcrypt hash, never leaves the service layer
	FirstName    string     `db:"first_name"`
	LastName     string     `db:"last_name"`
	IsActive     bool       `db:"is_active"`     // Login is refused when false
	LastLoginAt  *time.Time `db:"last_login_at"` // Nil until the first successful login
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// User is the public projection of a user returned to clients
// swagger:model User
type User struct {
	// example: 3f0e1a52-2a0c-4b0e-9d55-6c2b8f1f7c11
	ID uuid.UUID `json:"id"`
	// example: john@example.com
	Email string `json:"email"`
	// example: john_doe
	Username string `json:"username"`
	// example: John
	FirstName string `json:"firstName"`
	// example: Doe
	LastName    string     `json:"lastName"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Public strips credential data from the record.
func (u *UserDB) Public() *User {
	return &User{
		ID:          u.UserID,
		Email:       u.Email,
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}
