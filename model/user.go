package model

import "time"

type User struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	// Never serialized into HTTP responses or cache entries.
	PasswordHash string    `json:"-" gorm:"column:password_hash"`
	Role         string    `json:"role" validate:"required,oneof=customer admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserRegistration is the inbound payload for user creation; the plain
// password never reaches the model stored or cached.
type UserRegistration struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=customer admin"`
}
