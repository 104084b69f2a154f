package postgres

import (
	"context"
	"fmt"

	"github.com/osvaldosurbakti/fng-admin/internal/domain/entity"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo implements the AuditLogRepository port over PostgreSQL.
// Insert-only, like the stock ledger.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository builds the persistence adapter for the activity trail.
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create appends one activity entry.
func (r *AuditLogRepo) Create(ctx context.Context, log *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, user_email, role, action, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, log.ID, log.UserEmail, log.Role, log.Action, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// ListRecent returns the latest entries, newest first.
func (r *AuditLogRepo) ListRecent(ctx context.Context, limit int) ([]*entity.AuditLog, error) {
	query := `
		SELECT id, user_email, role, action, created_at
		FROM audit_logs ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditLog
	for rows.Next() {
		var l entity.AuditLog
		if err := rows.Scan(&l.ID, &l.UserEmail, &l.Role, &l.Action, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
