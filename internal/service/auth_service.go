package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/collabmatch/backend/internal/auth"
	"github.com/collabmatch/backend/internal/config"
	"github.com/collabmatch/backend/internal/domain"
	"github.com/collabmatch/backend/internal/email"
	"github.com/collabmatch/backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const resetTokenBytes = 20 // 160 bits, hex-encoded to 40 chars

type AuthService struct {
	userRepo repository.UserRepository
	hasher   *auth.Hasher
	tokens   *auth.TokenManager
	mailer   email.Sender
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, hasher *auth.Hasher, tokens *auth.TokenManager, mailer email.Sender, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		mailer:   mailer,
		cfg:      cfg,
	}
}

type RegisterInput struct {
	Username    string
	Password    string
	Email       string
	AccountType domain.AccountType
}

type LoginInput struct {
	Username string
	Password string
}

type LoginResult struct {
	User  *domain.User
	Token string
}

// Register creates a new user with a hashed password. No token is issued;
// the caller must log in separately.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(input.Username)
	emailAddr := strings.ToLower(strings.TrimSpace(input.Email))

	if len(username) < 3 {
		return nil, fmt.Errorf("%w: username must be at least 3 characters", domain.ErrValidation)
	}
	if len(input.Password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", domain.ErrValidation)
	}
	if !strings.Contains(emailAddr, "@") {
		return nil, fmt.Errorf("%w: invalid email address", domain.ErrValidation)
	}
	if !input.AccountType.Valid() {
		return nil, fmt.Errorf("%w: account type must be influencer or company", domain.ErrValidation)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        emailAddr,
		PasswordHash: hash,
		AccountType:  input.AccountType,
		Role:         domain.RoleUser,
		Active:       true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login collapses unknown-username and wrong-password into a single
// InvalidCredentials outcome to prevent username enumeration.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Verify(input.Password, user.PasswordHash); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Token: token}, nil
}

// ChangePassword replaces the password after verifying the current one.
// Outstanding tokens stay valid until natural expiry.
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, current, newPassword string) error {
	if len(newPassword) < 6 {
		return fmt.Errorf("%w: new password must be at least 6 characters", domain.ErrValidation)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}

	if err := s.hasher.Verify(current, user.PasswordHash); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	user.UpdatedAt = time.Now()
	return s.userRepo.Update(ctx, user)
}

// RequestPasswordReset generates a single-use reset token valid for one
// hour and mails the reset link. Unknown emails return nil so the
// response cannot be used to enumerate accounts. A persisted token whose
// mail could not be delivered surfaces as ErrEmailDelivery.
func (s *AuthService) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(emailAddr)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}
	token := hex.EncodeToString(buf)
	expires := time.Now().Add(time.Hour)

	if err := s.userRepo.SetResetToken(ctx, user.ID, token, expires); err != nil {
		return err
	}

	body := "You are receiving this because you (or someone else) have requested the reset of the password for your account.\n\n" +
		"Please click on the following link, or paste this into your browser to complete the process:\n\n" +
		fmt.Sprintf("%s/reset/%s\n\n", s.cfg.ResetBaseURL, token) +
		"If you did not request this, please ignore this email and your password will remain unchanged."

	if err := s.mailer.Send(user.Email, "Password Reset", body); err != nil {
		log.Printf("ERROR [auth.RequestPasswordReset] reset mail for %s not delivered: %v", user.ID, err)
		return domain.ErrEmailDelivery
	}

	return nil
}

// CompletePasswordReset consumes the token and installs the new password
// in one conditional update. A reused, expired, or unknown token fails
// with ErrResetTokenInvalid; the token is single-use.
func (s *AuthService) CompletePasswordReset(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return domain.ErrResetTokenInvalid
	}
	if len(newPassword) < 6 {
		return fmt.Errorf("%w: new password must be at least 6 characters", domain.ErrValidation)
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	return s.userRepo.ConsumeResetToken(ctx, token, hash, time.Now())
}

func (s *AuthService) VerifyToken(tokenString string) (*auth.Claims, error) {
	return s.tokens.Verify(tokenString)
}
