package auth_test

import (
	"testing"

	"github.com/collabmatch/backend/internal/auth"
	"github.com/collabmatch/backend/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()

	userClaims := &auth.Claims{UserID: ownerID, Role: domain.RoleUser}
	adminClaims := &auth.Claims{UserID: otherID, Role: domain.RoleAdmin}

	tests := []struct {
		name    string
		claims  *auth.Claims
		req     auth.Requirement
		wantErr error
	}{
		{name: "public without claims", claims: nil, req: auth.Public()},
		{name: "public with claims", claims: userClaims, req: auth.Public()},
		{name: "authenticated with claims", claims: userClaims, req: auth.AuthenticatedOnly()},
		{name: "authenticated without claims", claims: nil, req: auth.AuthenticatedOnly(), wantErr: domain.ErrUnauthorized},
		{name: "owner match", claims: userClaims, req: auth.OwnerOnly(ownerID)},
		{name: "owner mismatch", claims: userClaims, req: auth.OwnerOnly(otherID), wantErr: domain.ErrForbidden},
		{name: "owner without claims", claims: nil, req: auth.OwnerOnly(ownerID), wantErr: domain.ErrUnauthorized},
		{name: "role match", claims: adminClaims, req: auth.RoleOnly(domain.RoleAdmin)},
		{name: "role mismatch", claims: userClaims, req: auth.RoleOnly(domain.RoleAdmin), wantErr: domain.ErrForbidden},
		{name: "role without claims", claims: nil, req: auth.RoleOnly(domain.RoleAdmin), wantErr: domain.ErrUnauthorized},
		// An admin role does not bypass ownership checks.
		{name: "admin is not owner", claims: adminClaims, req: auth.OwnerOnly(ownerID), wantErr: domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.Authorize(tt.claims, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
