package postgres

import (
	"context"

	"github.com/collabmatch/backend/internal/domain"
	"github.com/collabmatch/backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *profileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.InfluencerProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.InfluencerProfile, error) {
	var profile domain.InfluencerProfile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetAll(ctx context.Context) ([]*domain.InfluencerProfile, error) {
	var profiles []*domain.InfluencerProfile
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&profiles).Error
	return profiles, err
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.InfluencerProfile, error) {
	var profiles []*domain.InfluencerProfile
	err := r.db.WithContext(ctx).Find(&profiles, "user_id = ?", userID).Error
	return profiles, err
}

func (r *profileRepository) Search(ctx context.Context, filter repository.ProfileFilter) ([]*domain.InfluencerProfile, error) {
	q := r.db.WithContext(ctx).Model(&domain.InfluencerProfile{})
	if filter.Location != "" {
		q = q.Where("location = ?", filter.Location)
	}
	if filter.MinFollowers > 0 {
		q = q.Where("followers >= ?", filter.MinFollowers)
	}
	if filter.Category != "" {
		// categories is a JSON array column
		q = q.Where("categories @> ?", `["`+filter.Category+`"]`)
	}

	var profiles []*domain.InfluencerProfile
	err := q.Order("followers DESC").Find(&profiles).Error
	return profiles, err
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.InfluencerProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.InfluencerProfile{}, "id = ?", id).Error
}
