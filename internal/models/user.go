package models

import (
	"time"

	"jurisight/internal/workflow"
)

type User struct {
	ID           int64         `json:"id"`
	Email        string        `json:"email"`
	FullName     string        `json:"full_name"`
	PasswordHash string        `json:"-"`
	Role         workflow.Role `json:"role"`
	IsActive     bool          `json:"is_active"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// UserSummary is the author shape embedded in article responses.
type UserSummary struct {
	ID       int64         `json:"id"`
	FullName string        `json:"full_name"`
	Email    string        `json:"email"`
	Role     workflow.Role `json:"role"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}
