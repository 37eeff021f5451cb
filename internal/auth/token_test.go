package auth_test

import (
	"testing"
	"time"

	"github.com/collabmatch/backend/internal/auth"
	"github.com/collabmatch/backend/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *domain.User {
	return &domain.User{
		ID:          uuid.New(),
		Username:    "tokenuser",
		Email:       "tokenuser@example.com",
		AccountType: domain.AccountInfluencer,
		Role:        domain.RoleUser,
		Active:      true,
	}
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	tm := auth.NewTokenManager("unit-test-secret", time.Hour)
	user := testUser()

	token, err := tm.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleUser, claims.Role)
	assert.Equal(t, domain.AccountInfluencer, claims.AccountType)
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	tm := auth.NewTokenManager("unit-test-secret", -time.Minute)

	token, err := tm.Issue(testUser())
	require.NoError(t, err)

	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	issuer := auth.NewTokenManager("secret-a", time.Hour)
	verifier := auth.NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenManager_RejectsMalformedToken(t *testing.T) {
	tm := auth.NewTokenManager("unit-test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := tm.Verify(token)
		assert.ErrorIs(t, err, domain.ErrUnauthorized, "token %q should be rejected", token)
	}
}

func TestTokenManager_TokenSurvivesSubjectChanges(t *testing.T) {
	// Verification is purely signature + expiry; there is no revocation,
	// so tokens stay valid after password changes or deactivation.
	tm := auth.NewTokenManager("unit-test-secret", time.Hour)
	user := testUser()

	token, err := tm.Issue(user)
	require.NoError(t, err)

	user.PasswordHash = "rotated"
	user.Active = false

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}
