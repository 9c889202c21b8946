// internal/service/class.go
package service

import (
	"context"
	"strings"

	"github.com/DroneHQio/dronehq-app/internal/authz"
	"github.com/DroneHQio/dronehq-app/internal/domain"
	"github.com/DroneHQio/dronehq-app/internal/model"
	"github.com/DroneHQio/dronehq-app/internal/repository"
	"github.com/google/uuid"
)

const defaultMaxStudents = 30

// ClassService manages class codes inside an organization.
type ClassService struct {
	repo           repository.ClassRepositoryIface
	membershipRepo repository.MembershipRepositoryIface
	tenantService  *TenantService
	gate           *authz.Gate
}

func NewClassService(
	repo repository.ClassRepositoryIface,
	membershipRepo repository.MembershipRepositoryIface,
	tenantService *TenantService,
	gate *authz.Gate,
) *ClassService {
	return &ClassService{
		repo:           repo,
		membershipRepo: membershipRepo,
		tenantService:  tenantService,
		gate:           gate,
	}
}

type CreateClassInput struct {
	ClassName   string `json:"class_name"`
	MaxStudents int    `json:"max_students"`
}

// Create provisions a class with a fresh code. The class starts
// inactive; its code admits nobody until the teacher activates it.
func (s *ClassService) Create(ctx context.Context, id *authz.Identity, input CreateClassInput) (*model.Class, error) {
	if id.OrganizationID == nil {
		return nil, domain.ErrForbidden
	}
	if !s.gate.CanManageClasses(id, *id.OrganizationID) {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(input.ClassName) == "" {
		return nil, domain.ErrInvalidInput
	}

	code, err := s.tenantService.GenerateClassCode(ctx, input.ClassName)
	if err != nil {
		return nil, err
	}

	maxStudents := input.MaxStudents
	if maxStudents <= 0 {
		maxStudents = defaultMaxStudents
	}

	class := &model.Class{
		OrganizationID: *id.OrganizationID,
		TeacherID:      id.UserID,
		ClassName:      input.ClassName,
		Code:           code,
		MaxStudents:    maxStudents,
		Active:         false,
	}

	if err := s.repo.Create(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

// SetActive flips whether the class code admits new students.
func (s *ClassService) SetActive(ctx context.Context, id *authz.Identity, classID uuid.UUID, active bool) (*model.Class, error) {
	class, err := s.repo.FindByID(ctx, classID)
	if err != nil {
		return nil, err
	}

	if !s.canManageClass(id, class) {
		return nil, domain.ErrForbidden
	}

	class.Active = active
	if err := s.repo.Update(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

// List returns the classes the caller may see.
func (s *ClassService) List(ctx context.Context, id *authz.Identity) ([]*model.Class, error) {
	switch id.Role {
	case model.RoleSuperAdmin, model.RoleOrgAdmin:
		if id.OrganizationID == nil {
			return nil, domain.ErrForbidden
		}
		return s.repo.FindByOrganization(ctx, *id.OrganizationID)
	case model.RoleTeacher:
		return s.repo.FindByTeacher(ctx, id.UserID)
	default:
		return nil, domain.ErrForbidden
	}
}

// Roster returns the approved students of a class.
func (s *ClassService) Roster(ctx context.Context, id *authz.Identity, classID uuid.UUID) ([]*model.Membership, error) {
	class, err := s.repo.FindByID(ctx, classID)
	if err != nil {
		return nil, err
	}

	if !s.canManageClass(id, class) {
		return nil, domain.ErrForbidden
	}

	members, err := s.membershipRepo.FindByOrganization(ctx, class.OrganizationID)
	if err != nil {
		return nil, err
	}

	var roster []*model.Membership
	for _, m := range members {
		if m.Approved && m.ClassID != nil && *m.ClassID == classID {
			roster = append(roster, m)
		}
	}
	return roster, nil
}

// Delete removes a class. Its code stops resolving immediately.
func (s *ClassService) Delete(ctx context.Context, id *authz.Identity, classID uuid.UUID) error {
	class, err := s.repo.FindByID(ctx, classID)
	if err != nil {
		return err
	}

	if !s.canManageClass(id, class) {
		return domain.ErrForbidden
	}

	return s.repo.Delete(ctx, classID)
}

// canManageClass allows the owning teacher and the tenant's admins.
func (s *ClassService) canManageClass(id *authz.Identity, class *model.Class) bool {
	if s.gate.CanManageOrganization(id, class.OrganizationID) {
		return true
	}
	return id.Role == model.RoleTeacher && class.TeacherID == id.UserID
}
