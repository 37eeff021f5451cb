package auth

import (
	"errors"
	"time"

	"github.com/collabmatch/backend/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the verified identity carried by a bearer token.
type Claims struct {
	UserID      uuid.UUID
	Role        domain.Role
	AccountType domain.AccountType
}

// TokenManager issues and verifies HS256 bearer tokens. Tokens are valid
// for the configured lifetime and cannot be revoked early: password
// changes and deactivation do not invalidate outstanding tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the user, expiring ttl from now.
func (t *TokenManager) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": string(user.Role),
		"acct": string(user.AccountType),
		"iat":  now.Unix(),
		"exp":  now.Add(t.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks signature and expiry and decodes the claim set. It does
// not consult the credential store, so a token outlives deletion or
// deactivation of its subject until natural expiry.
func (t *TokenManager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	role, ok := mapClaims["role"].(string)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	acct, _ := mapClaims["acct"].(string)

	return &Claims{
		UserID:      userID,
		Role:        domain.Role(role),
		AccountType: domain.AccountType(acct),
	}, nil
}
