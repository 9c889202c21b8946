// internal/authz/identity.go
package authz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DroneHQio/dronehq-app/internal/domain"
	"github.com/DroneHQio/dronehq-app/internal/model"
	"github.com/google/uuid"
)

// Identity is the effective principal for a single request. It is
// resolved from stored memberships on every request and never trusted
// from the client.
type Identity struct {
	UserID         uuid.UUID
	Email          string
	Role           model.Role
	OrganizationID *uuid.UUID
	ClassID        *uuid.UUID
}

// IsSuperAdmin reports whether the identity has platform-wide access.
func (id *Identity) IsSuperAdmin() bool {
	return id.Role == model.RoleSuperAdmin
}

// MembershipFinder is the slice of the membership repository the
// resolver needs.
type MembershipFinder interface {
	FindApprovedByUser(ctx context.Context, userID uuid.UUID) (*model.Membership, error)
	FindSuperAdminByUser(ctx context.Context, userID uuid.UUID) (*model.Membership, error)
}

// Resolver maps an authenticated user to their effective identity.
//
// Resolution order: the bootstrap admin email wins, then a stored
// super_admin row, then the user's approved membership. A user with no
// approved membership is an unaffiliated pilot.
type Resolver struct {
	memberships     MembershipFinder
	superAdminEmail string
}

func NewResolver(memberships MembershipFinder, superAdminEmail string) *Resolver {
	return &Resolver{
		memberships:     memberships,
		superAdminEmail: strings.ToLower(superAdminEmail),
	}
}

func (r *Resolver) Resolve(ctx context.Context, userID uuid.UUID, email string) (*Identity, error) {
	id := &Identity{
		UserID: userID,
		Email:  email,
	}

	if r.superAdminEmail != "" && strings.EqualFold(email, r.superAdminEmail) {
		id.Role = model.RoleSuperAdmin
		return id, nil
	}

	if _, err := r.memberships.FindSuperAdminByUser(ctx, userID); err == nil {
		id.Role = model.RoleSuperAdmin
		return id, nil
	} else if !errors.Is(err, domain.ErrMembershipNotFound) {
		return nil, fmt.Errorf("resolving super admin: %w", err)
	}

	m, err := r.memberships.FindApprovedByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrMembershipNotFound) {
			// Pending or no membership at all. Either way the user
			// operates as an unaffiliated pilot until approved.
			id.Role = model.RolePilot
			return id, nil
		}
		return nil, fmt.Errorf("resolving membership: %w", err)
	}

	id.Role = m.Role
	id.OrganizationID = m.OrganizationID
	id.ClassID = m.ClassID
	return id, nil
}
