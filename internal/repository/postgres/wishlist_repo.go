package postgres

import (
	"context"

	"github.com/collabmatch/backend/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) *wishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) Create(ctx context.Context, item *domain.WishlistItem) error {
	err := r.db.WithContext(ctx).Create(item).Error
	if isUniqueViolation(err) {
		return domain.ErrDuplicateIdentity
	}
	return err
}

func (r *wishlistRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.WishlistItem, error) {
	var items []*domain.WishlistItem
	err := r.db.WithContext(ctx).
		Preload("Profile").
		Order("created_at DESC").
		Find(&items, "user_id = ?", userID).Error
	return items, err
}

func (r *wishlistRepository) Find(ctx context.Context, userID, profileID uuid.UUID) (*domain.WishlistItem, error) {
	var item domain.WishlistItem
	err := r.db.WithContext(ctx).
		First(&item, "user_id = ? AND profile_id = ?", userID, profileID).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *wishlistRepository) Delete(ctx context.Context, userID, profileID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Delete(&domain.WishlistItem{}, "user_id = ? AND profile_id = ?", userID, profileID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *wishlistRepository) DeleteAll(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.WishlistItem{}, "user_id = ?", userID).Error
}

func (r *wishlistRepository) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.WishlistItem{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
