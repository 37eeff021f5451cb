package service

import (
	"github.com/collabmatch/backend/internal/auth"
	"github.com/collabmatch/backend/internal/config"
	"github.com/collabmatch/backend/internal/email"
	"github.com/collabmatch/backend/internal/repository"
)

type Services struct {
	Auth     *AuthService
	User     *UserService
	Profile  *ProfileService
	Wishlist *WishlistService
}

func NewServices(repos *repository.Repositories, mailer email.Sender, cfg *config.Config) *Services {
	hasher := auth.NewHasher(cfg.BcryptCost)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenLifetime)

	return &Services{
		Auth:     NewAuthService(repos.User, hasher, tokens, mailer, cfg),
		User:     NewUserService(repos.User),
		Profile:  NewProfileService(repos.Profile),
		Wishlist: NewWishlistService(repos.Wishlist, repos.Profile),
	}
}
