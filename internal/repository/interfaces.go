package repository

import (
	"context"
	"time"

	"github.com/collabmatch/backend/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	Deactivate(ctx context.Context, id uuid.UUID) error

	SetResetToken(ctx context.Context, id uuid.UUID, token string, expires time.Time) error
	// ConsumeResetToken atomically replaces the password hash and clears the
	// reset credential for the user whose unexpired token matches. Returns
	// domain.ErrResetTokenInvalid when no row matches — wrong, consumed, or
	// expired tokens are indistinguishable.
	ConsumeResetToken(ctx context.Context, token, newHash string, now time.Time) error
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.InfluencerProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InfluencerProfile, error)
	GetAll(ctx context.Context) ([]*domain.InfluencerProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.InfluencerProfile, error)
	Search(ctx context.Context, filter ProfileFilter) ([]*domain.InfluencerProfile, error)
	Update(ctx context.Context, profile *domain.InfluencerProfile) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProfileFilter narrows profile searches. Zero values mean "no filter".
type ProfileFilter struct {
	Location     string
	MinFollowers int
	Category     string
}

type WishlistRepository interface {
	Create(ctx context.Context, item *domain.WishlistItem) error
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.WishlistItem, error)
	Find(ctx context.Context, userID, profileID uuid.UUID) (*domain.WishlistItem, error)
	Delete(ctx context.Context, userID, profileID uuid.UUID) error
	DeleteAll(ctx context.Context, userID uuid.UUID) error
	Count(ctx context.Context, userID uuid.UUID) (int64, error)
}

type Repositories struct {
	User     UserRepository
	Profile  ProfileRepository
	Wishlist WishlistRepository
}
