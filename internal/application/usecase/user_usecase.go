package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/osvaldosurbakti/fng-admin/internal/application/dto"
	"github.com/osvaldosurbakti/fng-admin/internal/domain"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/entity"
	"github.com/osvaldosurbakti/fng-admin/internal/domain/repository"
)

// UserUseCase account management, superadmin-gated at the router.
// Superadmin accounts are protected: they cannot be created, demoted or
// deleted through the API.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase builds the use case.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create creates an admin or regular account.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Role == entity.RoleSuperadmin {
		return nil, domain.ErrForbidden
	}
	if !entity.ValidRole(in.Role) || len(in.Password) < 6 {
		return nil, domain.ErrInvalidInput
	}
	email := normalizeEmail(in.Email)
	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID returns an account or ErrUserNotFound.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// Update edits an account. actorID is the caller; only a superadmin editing
// their own account may keep the superadmin role, nobody can grant it.
func (uc *UserUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	// A superadmin cannot be demoted by anyone but themselves.
	if user.Role == entity.RoleSuperadmin && in.Role != entity.RoleSuperadmin && actorID != user.ID {
		return nil, domain.ErrForbidden
	}
	// The superadmin role cannot be granted to an existing account.
	if in.Role == entity.RoleSuperadmin && user.Role != entity.RoleSuperadmin {
		return nil, domain.ErrForbidden
	}

	email := normalizeEmail(in.Email)
	if email != user.Email {
		taken, err := uc.repo.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if taken != nil && taken.ID != id {
			return nil, domain.ErrEmailAlreadyExists
		}
	}

	user.Name = strings.TrimSpace(in.Name)
	user.Email = email
	user.Role = in.Role
	if in.Password != "" {
		if len(in.Password) < 6 {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List returns accounts with pagination.
func (uc *UserUseCase) List(ctx context.Context, limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete removes an account. Superadmins and the caller's own account are
// protected.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, id string) error {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if user.Role == entity.RoleSuperadmin {
		return domain.ErrForbidden
	}
	if user.ID == actorID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
