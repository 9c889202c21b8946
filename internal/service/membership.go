// internal/service/membership.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/DroneHQio/dronehq-app/internal/authz"
	"github.com/DroneHQio/dronehq-app/internal/config"
	"github.com/DroneHQio/dronehq-app/internal/domain"
	"github.com/DroneHQio/dronehq-app/internal/email"
	"github.com/DroneHQio/dronehq-app/internal/email/mailer"
	"github.com/DroneHQio/dronehq-app/internal/model"
	"github.com/DroneHQio/dronehq-app/internal/repository"
	"github.com/google/uuid"
)

// MembershipService owns the approval workflow. Every operation takes
// the caller's resolved identity and enforces authorization before
// touching rows; handlers pass identities through and nothing else.
type MembershipService struct {
	repo         repository.MembershipRepositoryIface
	classRepo    repository.ClassRepositoryIface
	orgRepo      repository.OrganizationRepositoryIface
	userRepo     repository.UserRepositoryIface
	gate         *authz.Gate
	audit        authz.AuditLogger
	emailService *email.Service
	config       *config.Config
}

func NewMembershipService(
	repo repository.MembershipRepositoryIface,
	classRepo repository.ClassRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
	userRepo repository.UserRepositoryIface,
	gate *authz.Gate,
	audit authz.AuditLogger,
	emailService *email.Service,
	config *config.Config,
) *MembershipService {
	return &MembershipService{
		repo:         repo,
		classRepo:    classRepo,
		orgRepo:      orgRepo,
		userRepo:     userRepo,
		gate:         gate,
		audit:        audit,
		emailService: emailService,
		config:       config,
	}
}

// ListPending returns the approval queue the caller may act on.
func (s *MembershipService) ListPending(ctx context.Context, id *authz.Identity) ([]*model.Membership, error) {
	switch {
	case id.IsSuperAdmin():
		// Super admins review per organization; without one there is
		// no queue to show.
		return nil, nil
	case id.Role == model.RoleOrgAdmin && id.OrganizationID != nil:
		return s.repo.FindPendingByOrganization(ctx, *id.OrganizationID)
	case id.Role == model.RoleTeacher && id.OrganizationID != nil:
		pending, err := s.repo.FindPendingByOrganization(ctx, *id.OrganizationID)
		if err != nil {
			return nil, err
		}
		// Teachers only see students joining their own classes.
		classes, err := s.classRepo.FindByTeacher(ctx, id.UserID)
		if err != nil {
			return nil, err
		}
		taught := make(map[uuid.UUID]bool, len(classes))
		for _, c := range classes {
			taught[c.ID] = true
		}
		var out []*model.Membership
		for _, m := range pending {
			if m.ClassID != nil && taught[*m.ClassID] {
				out = append(out, m)
			}
		}
		return out, nil
	default:
		return nil, domain.ErrForbidden
	}
}

// ListPendingForOrganization is the super admin view of one tenant's queue.
func (s *MembershipService) ListPendingForOrganization(ctx context.Context, id *authz.Identity, orgID uuid.UUID) ([]*model.Membership, error) {
	if !s.gate.CanManageOrganization(id, orgID) {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindPendingByOrganization(ctx, orgID)
}

// Approve grants a pending membership. For students joining a class
// the capacity check counts approved rows at approval time, so a
// signup that never completes cannot hold a seat.
func (s *MembershipService) Approve(ctx context.Context, id *authz.Identity, membershipID uuid.UUID, req *http.Request) (*model.Membership, error) {
	m, err := s.repo.FindByID(ctx, membershipID)
	if err != nil {
		return nil, err
	}

	var class *model.Class
	if m.ClassID != nil {
		class, err = s.classRepo.FindByID(ctx, *m.ClassID)
		if err != nil {
			return nil, err
		}
	}

	allowed := s.gate.CanApproveMembership(id, m, class)
	s.logDecision(ctx, id, model.PermissionApproveMember, "membership", m.ID.String(), allowed, req)
	if !allowed {
		return nil, domain.ErrForbidden
	}

	if m.Approved {
		return nil, domain.ErrAlreadyApproved
	}

	now := time.Now().UTC()
	m.Approved = true
	m.ApprovedByID = &id.UserID
	m.ApprovedAt = &now

	// The repository re-checks capacity and writes both rows inside a
	// single transaction, so concurrent approvals cannot oversubscribe
	// a class.
	if err := s.repo.Approve(ctx, m, class); err != nil {
		return nil, err
	}

	if m.Role == model.RoleTeacher {
		s.activateClasses(ctx, m.UserID)
	}

	s.notifyApproved(ctx, m)

	return m, nil
}

// activateClasses flips a newly approved teacher's classes live so
// their codes start admitting students. Failures are logged rather
// than rolling back the approval; the teacher can still activate a
// class by hand.
func (s *MembershipService) activateClasses(ctx context.Context, teacherID uuid.UUID) {
	classes, err := s.classRepo.FindByTeacher(ctx, teacherID)
	if err != nil {
		slog.WarnContext(ctx, "failed to load classes for approved teacher", "error", err)
		return
	}
	for _, c := range classes {
		if c.Active {
			continue
		}
		c.Active = true
		if err := s.classRepo.Update(ctx, c); err != nil {
			slog.WarnContext(ctx, "failed to activate class", "error", err, "classID", c.ID)
		}
	}
}

// Reject removes a pending membership. Nothing else was created for
// the applicant's request, so deletion is the whole operation.
func (s *MembershipService) Reject(ctx context.Context, id *authz.Identity, membershipID uuid.UUID, req *http.Request) error {
	m, err := s.repo.FindByID(ctx, membershipID)
	if err != nil {
		return err
	}

	var class *model.Class
	if m.ClassID != nil {
		class, err = s.classRepo.FindByID(ctx, *m.ClassID)
		if err != nil {
			return err
		}
	}

	allowed := s.gate.CanApproveMembership(id, m, class)
	s.logDecision(ctx, id, model.PermissionApproveMember, "membership", m.ID.String(), allowed, req)
	if !allowed {
		return domain.ErrForbidden
	}

	if m.Approved {
		return domain.ErrAlreadyApproved
	}

	return s.repo.Delete(ctx, m.ID)
}

// RequestJoin creates a pending membership for an existing account.
// A principal holds at most one membership.
func (s *MembershipService) RequestJoin(ctx context.Context, id *authz.Identity, resolved *ResolvedCode, role model.Role) (*model.Membership, error) {
	if role != model.RoleTeacher && role != model.RoleStudent {
		return nil, domain.ErrInvalidInput
	}
	if resolved.Kind == CodeKindClass && role != model.RoleStudent {
		return nil, fmt.Errorf("%w: class codes are for students", domain.ErrInvalidInput)
	}

	if _, err := s.repo.FindAnyByUser(ctx, id.UserID); err == nil {
		return nil, domain.ErrMembershipExists
	} else if !errors.Is(err, domain.ErrMembershipNotFound) {
		return nil, err
	}

	m := &model.Membership{
		UserID:         id.UserID,
		OrganizationID: &resolved.Organization.ID,
		Role:           role,
		Approved:       false,
	}
	if resolved.Kind == CodeKindClass {
		m.ClassID = &resolved.Class.ID
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// ListMembers returns the memberships of the caller's organization.
func (s *MembershipService) ListMembers(ctx context.Context, id *authz.Identity, orgID uuid.UUID) ([]*model.Membership, error) {
	if !s.gate.CanManageOrganization(id, orgID) && !(id.OrganizationID != nil && *id.OrganizationID == orgID && id.Role == model.RoleTeacher) {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByOrganization(ctx, orgID)
}

// GrantSuperAdmin promotes a user to platform administrator. Only the
// bootstrap admin account may grant or revoke this role.
func (s *MembershipService) GrantSuperAdmin(ctx context.Context, id *authz.Identity, targetEmail string, req *http.Request) error {
	allowed := s.gate.CanGrantSuperAdmin(id) && id.Email == s.config.SuperAdminEmail
	s.logDecision(ctx, id, model.PermissionGrantSuperAdmin, "user", targetEmail, allowed, req)
	if !allowed {
		return domain.ErrForbidden
	}

	target, err := s.userRepo.FindByEmail(ctx, targetEmail)
	if err != nil {
		return err
	}

	if _, err := s.repo.FindSuperAdminByUser(ctx, target.ID); err == nil {
		return nil // already a super admin
	} else if !errors.Is(err, domain.ErrMembershipNotFound) {
		return err
	}

	now := time.Now().UTC()
	m := &model.Membership{
		UserID:       target.ID,
		Role:         model.RoleSuperAdmin,
		Approved:     true,
		ApprovedByID: &id.UserID,
		ApprovedAt:   &now,
	}
	return s.repo.Create(ctx, m)
}

// RevokeSuperAdmin removes a user's platform administrator role.
func (s *MembershipService) RevokeSuperAdmin(ctx context.Context, id *authz.Identity, targetEmail string, req *http.Request) error {
	allowed := s.gate.CanGrantSuperAdmin(id) && id.Email == s.config.SuperAdminEmail
	s.logDecision(ctx, id, model.PermissionRevokeSuperAdmin, "user", targetEmail, allowed, req)
	if !allowed {
		return domain.ErrForbidden
	}

	target, err := s.userRepo.FindByEmail(ctx, targetEmail)
	if err != nil {
		return err
	}

	m, err := s.repo.FindSuperAdminByUser(ctx, target.ID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, m.ID)
}

func (s *MembershipService) logDecision(ctx context.Context, id *authz.Identity, permission, resourceType, resourceID string, allowed bool, req *http.Request) {
	if s.audit == nil {
		return
	}
	_ = s.audit.LogDecision(ctx, id, permission, resourceType, resourceID, allowed, s.gate.ScopeFor(id), nil, req)
}

func (s *MembershipService) notifyApproved(ctx context.Context, m *model.Membership) {
	if s.emailService == nil || m.OrganizationID == nil {
		return
	}

	user, err := s.userRepo.FindByID(ctx, m.UserID)
	if err != nil {
		slog.WarnContext(ctx, "failed to load user for approval notice", "error", err)
		return
	}
	org, err := s.orgRepo.FindByID(ctx, *m.OrganizationID)
	if err != nil {
		slog.WarnContext(ctx, "failed to load organization for approval notice", "error", err)
		return
	}

	data := mailer.MembershipApprovedTemplateData{
		FirstName:        user.FirstName,
		OrganizationName: org.Name,
		Role:             string(m.Role),
		LoginLink:        fmt.Sprintf("%s/login", s.config.BaseURL),
	}
	if err := mailer.SendMembershipApprovedEmail(s.emailService, user.Email, data); err != nil {
		slog.ErrorContext(ctx, "failed to send approval notice", "error", err)
	}
}
