package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/collabmatch/backend/internal/domain"
	"github.com/collabmatch/backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WishlistService manages per-user bookmarks of influencer profiles.
// Every operation is scoped to the authenticated caller, so no further
// ownership checks are needed here.
type WishlistService struct {
	wishlistRepo repository.WishlistRepository
	profileRepo  repository.ProfileRepository
}

func NewWishlistService(wishlistRepo repository.WishlistRepository, profileRepo repository.ProfileRepository) *WishlistService {
	return &WishlistService{wishlistRepo: wishlistRepo, profileRepo: profileRepo}
}

func (s *WishlistService) Add(ctx context.Context, userID, profileID uuid.UUID) (*domain.WishlistItem, error) {
	if _, err := s.profileRepo.GetByID(ctx, profileID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	item := &domain.WishlistItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProfileID: profileID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.wishlistRepo.Create(ctx, item); err != nil {
		if errors.Is(err, domain.ErrDuplicateIdentity) {
			return nil, fmt.Errorf("%w: profile already in wishlist", domain.ErrValidation)
		}
		return nil, err
	}
	return item, nil
}

func (s *WishlistService) List(ctx context.Context, userID uuid.UUID) ([]*domain.WishlistItem, error) {
	return s.wishlistRepo.GetByUserID(ctx, userID)
}

func (s *WishlistService) Contains(ctx context.Context, userID, profileID uuid.UUID) (bool, error) {
	_, err := s.wishlistRepo.Find(ctx, userID, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *WishlistService) Remove(ctx context.Context, userID, profileID uuid.UUID) error {
	err := s.wishlistRepo.Delete(ctx, userID, profileID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

func (s *WishlistService) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.wishlistRepo.DeleteAll(ctx, userID)
}

func (s *WishlistService) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.wishlistRepo.Count(ctx, userID)
}
