package repository

import (
	"context"

	"github.com/osvaldosurbakti/fng-admin/internal/domain/entity"
)

// AuditLogRepository is the persistence port for the activity trail.
type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	// ListRecent returns the latest entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.AuditLog, error)
}
