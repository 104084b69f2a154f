package entity

import "time"

// AuditLog records one back-office action for the activity trail.
type AuditLog struct {
	ID        string
	UserEmail string
	Role      string
	Action    string
	CreatedAt time.Time
}
