package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/collabmatch/backend/internal/auth"
	"github.com/collabmatch/backend/internal/domain"
	"github.com/collabmatch/backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetByID(ctx context.Context, claims *auth.Claims, id uuid.UUID) (*domain.User, error) {
	if err := auth.Authorize(claims, auth.AuthenticatedOnly()); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// List returns all users. Admin only.
func (s *UserService) List(ctx context.Context, claims *auth.Claims) ([]*domain.User, error) {
	if err := auth.Authorize(claims, auth.RoleOnly(domain.RoleAdmin)); err != nil {
		return nil, err
	}
	return s.userRepo.GetAll(ctx)
}

type UpdateUserInput struct {
	Username *string
	Email    *string
}

// Update mutates identity fields. Only the account owner may update;
// account type and role are not touchable through this path.
func (s *UserService) Update(ctx context.Context, claims *auth.Claims, id uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	if err := auth.Authorize(claims, auth.OwnerOnly(id)); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		if len(username) < 3 {
			return nil, fmt.Errorf("%w: username must be at least 3 characters", domain.ErrValidation)
		}
		user.Username = username
	}
	if input.Email != nil {
		emailAddr := strings.ToLower(strings.TrimSpace(*input.Email))
		if !strings.Contains(emailAddr, "@") {
			return nil, fmt.Errorf("%w: invalid email address", domain.ErrValidation)
		}
		user.Email = emailAddr
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, claims *auth.Claims, id uuid.UUID) error {
	if err := auth.Authorize(claims, auth.OwnerOnly(id)); err != nil {
		return err
	}

	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

// Deactivate flips the account off. There is no reactivation path, and
// outstanding tokens remain valid until they expire.
func (s *UserService) Deactivate(ctx context.Context, claims *auth.Claims, id uuid.UUID) error {
	if err := auth.Authorize(claims, auth.OwnerOnly(id)); err != nil {
		return err
	}

	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return s.userRepo.Deactivate(ctx, id)
}
