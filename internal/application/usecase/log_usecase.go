package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osvaldosurbakti/fng-admin/internal/application/dto"
	"github.com/osvaldosurbakti/fng-admin/internal/domain"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/entity"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/repository"
)

// Default page size when listing the activity trail.
const defaultLogLimit = 200

// LogUseCase appends and lists the back-office activity trail.
type LogUseCase struct {
	repo repository.AuditLogRepository
}

// NewLogUseCase builds the use case.
func NewLogUseCase(repo repository.AuditLogRepository) *LogUseCase {
	return &LogUseCase{repo: repo}
}

// Record appends one entry. Role defaults to "user" when empty.
func (uc *LogUseCase) Record(ctx context.Context, userEmail, role, action string) error {
	if userEmail == "" || action == "" {
		return domain.ErrInvalidInput
	}
	if role == "" {
		role = entity.RoleUser
	}
	return uc.repo.Create(ctx, &entity.AuditLog{
		ID:        uuid.New().String(),
		UserEmail: userEmail,
		Role:      role,
		Action:    action,
		CreatedAt: time.Now(),
	})
}

// ListRecent returns the latest entries, newest first.
func (uc *LogUseCase) ListRecent(ctx context.Context, limit int) ([]dto.LogResponse, error) {
	if limit <= 0 || limit > defaultLogLimit {
		limit = defaultLogLimit
	}
	list, err := uc.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LogResponse, 0, len(list))
	for _, l := range list {
		items = append(items, dto.LogResponse{
			ID:        l.ID,
			UserEmail: l.UserEmail,
			Role:      l.Role,
			Action:    l.Action,
			CreatedAt: l.CreatedAt,
		})
	}
	return items, nil
}
