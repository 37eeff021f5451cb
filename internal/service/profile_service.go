package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/collabmatch/backend/internal/auth"
	"github.com/collabmatch/backend/internal/domain"
	"github.com/collabmatch/backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

type ProfileInput struct {
	Age          int
	Gender       domain.Gender
	Location     string
	Followers    int
	Languages    []string
	Categories   []string
	ProfilePhoto string
}

func (in ProfileInput) validate() error {
	switch {
	case in.Age <= 0:
		return fmt.Errorf("%w: age must be positive", domain.ErrValidation)
	case !in.Gender.Valid():
		return fmt.Errorf("%w: gender must be male, female, or other", domain.ErrValidation)
	case in.Location == "":
		return fmt.Errorf("%w: location is required", domain.ErrValidation)
	case in.Followers < 0:
		return fmt.Errorf("%w: followers must be non-negative", domain.ErrValidation)
	case len(in.Languages) == 0:
		return fmt.Errorf("%w: at least one language is required", domain.ErrValidation)
	case len(in.Categories) == 0:
		return fmt.Errorf("%w: at least one category is required", domain.ErrValidation)
	case in.ProfilePhoto == "":
		return fmt.Errorf("%w: profile photo is required", domain.ErrValidation)
	}
	return nil
}

// Create makes a profile owned by the caller. Only influencer accounts
// may hold profiles; the owner always comes from the verified claims,
// never from the request body.
func (s *ProfileService) Create(ctx context.Context, claims *auth.Claims, input ProfileInput) (*domain.InfluencerProfile, error) {
	if err := auth.Authorize(claims, auth.AuthenticatedOnly()); err != nil {
		return nil, err
	}
	if claims.AccountType != domain.AccountInfluencer {
		return nil, domain.ErrForbidden
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	profile := &domain.InfluencerProfile{
		ID:           uuid.New(),
		UserID:       claims.UserID,
		Age:          input.Age,
		Gender:       input.Gender,
		Location:     input.Location,
		Followers:    input.Followers,
		Languages:    datatypes.NewJSONSlice(input.Languages),
		Categories:   datatypes.NewJSONSlice(input.Categories),
		ProfilePhoto: input.ProfilePhoto,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) GetByID(ctx context.Context, id uuid.UUID) (*domain.InfluencerProfile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) List(ctx context.Context) ([]*domain.InfluencerProfile, error) {
	return s.profileRepo.GetAll(ctx)
}

func (s *ProfileService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.InfluencerProfile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

func (s *ProfileService) Search(ctx context.Context, filter repository.ProfileFilter) ([]*domain.InfluencerProfile, error) {
	return s.profileRepo.Search(ctx, filter)
}

// Update requires the caller to own the profile. Absent profiles are
// NotFound; someone else's profile is Forbidden — the distinction is
// deliberate and preserved up through the API layer.
func (s *ProfileService) Update(ctx context.Context, claims *auth.Claims, id uuid.UUID, input ProfileInput) (*domain.InfluencerProfile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if err := auth.Authorize(claims, auth.OwnerOnly(profile.UserID)); err != nil {
		return nil, err
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	profile.Age = input.Age
	profile.Gender = input.Gender
	profile.Location = input.Location
	profile.Followers = input.Followers
	profile.Languages = datatypes.NewJSONSlice(input.Languages)
	profile.Categories = datatypes.NewJSONSlice(input.Categories)
	profile.ProfilePhoto = input.ProfilePhoto
	profile.UpdatedAt = time.Now()

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) Delete(ctx context.Context, claims *auth.Claims, id uuid.UUID) error {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}

	if err := auth.Authorize(claims, auth.OwnerOnly(profile.UserID)); err != nil {
		return err
	}
	return s.profileRepo.Delete(ctx, id)
}
