package repository

import (
	"context"

	"github.com/osvaldosurbakti/fng-admin/internal/domain/entity"
)

// UserRepository is the persistence port for back-office accounts.
// Lookups return (nil, nil) when the row does not exist.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
	Delete(ctx context.Context, id string) error
}
