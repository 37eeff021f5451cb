package auth

import (
	"github.com/collabmatch/backend/internal/domain"
	"github.com/google/uuid"
)

type requirementKind int

const (
	reqPublic requirementKind = iota
	reqAuthenticated
	reqOwner
	reqRole
)

// Requirement is a resource's declared access rule.
type Requirement struct {
	kind  requirementKind
	owner uuid.UUID
	role  domain.Role
}

func Public() Requirement { return Requirement{kind: reqPublic} }

func AuthenticatedOnly() Requirement { return Requirement{kind: reqAuthenticated} }

func OwnerOnly(owner uuid.UUID) Requirement { return Requirement{kind: reqOwner, owner: owner} }

func RoleOnly(role domain.Role) Requirement { return Requirement{kind: reqRole, role: role} }

// Authorize decides whether the caller satisfies the requirement.
// A missing caller is Unauthorized; a present caller with insufficient
// ownership or role is Forbidden. Callers must keep these distinct from
// NotFound rather than collapsing them.
func Authorize(claims *Claims, req Requirement) error {
	if req.kind == reqPublic {
		return nil
	}
	if claims == nil {
		return domain.ErrUnauthorized
	}
	switch req.kind {
	case reqOwner:
		if claims.UserID != req.owner {
			return domain.ErrForbidden
		}
	case reqRole:
		if claims.Role != req.role {
			return domain.ErrForbidden
		}
	}
	return nil
}
