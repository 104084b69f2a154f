package dto

import "time"

// CreateLogRequest body for POST /api/logs.
type CreateLogRequest struct {
	UserEmail string `json:"user_email" validate:"required,email"`
	Role      string `json:"role,omitempty"`
	Action    string `json:"action" validate:"required"`
}

// LogResponse one activity trail entry.
type LogResponse struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"user_email"`
	Role      string    `json:"role"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}
