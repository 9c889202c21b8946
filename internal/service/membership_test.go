package service_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/DroneHQio/dronehq-app/internal/authz"
	"github.com/DroneHQio/dronehq-app/internal/config"
	"github.com/DroneHQio/dronehq-app/internal/domain"
	"github.com/DroneHQio/dronehq-app/internal/mocks"
	"github.com/DroneHQio/dronehq-app/internal/model"
	"github.com/DroneHQio/dronehq-app/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type membershipMocks struct {
	repo      *mocks.MockMembershipRepositoryIface
	classRepo *mocks.MockClassRepositoryIface
	orgRepo   *mocks.MockOrganizationRepositoryIface
	userRepo  *mocks.MockUserRepositoryIface
}

func newMembershipService(ctrl *gomock.Controller, cfg *config.Config) (*service.MembershipService, membershipMocks) {
	m := membershipMocks{
		repo:      mocks.NewMockMembershipRepositoryIface(ctrl),
		classRepo: mocks.NewMockClassRepositoryIface(ctrl),
		orgRepo:   mocks.NewMockOrganizationRepositoryIface(ctrl),
		userRepo:  mocks.NewMockUserRepositoryIface(ctrl),
	}
	svc := service.NewMembershipService(
		m.repo,
		m.classRepo,
		m.orgRepo,
		m.userRepo,
		authz.NewGate(),
		nil,
		nil,
		cfg,
	)
	return svc, m
}

func TestApprove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	adminID := uuid.New()
	admin := &authz.Identity{UserID: adminID, Role: model.RoleOrgAdmin, OrganizationID: &orgID}
	req := httptest.NewRequest("POST", "/api/memberships/approve", nil)

	t.Run("approves a pending student when the class has room", func(t *testing.T) {
		svc, m := newMembershipService(ctrl, &config.Config{})

		classID := uuid.New()
		class := &model.Class{ID: classID, OrganizationID: orgID, TeacherID: uuid.New(), MaxStudents: 30, CurrentStudents: 3}
		pending := &model.Membership{
			ID:             uuid.New(),
			UserID:         uuid.New(),
			OrganizationID: &orgID,
			Role:           model.RoleStudent,
			ClassID:        &classID,
		}

		gomock.InOrder(
			m.repo.EXPECT().FindByID(gomock.Any(), pending.ID).Return(pending, nil),
			m.classRepo.EXPECT().FindByID(gomock.Any(), classID).Return(class, nil),
			m.repo.EXPECT().Approve(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, mem *model.Membership, c *model.Class) error {
					assert.True(t, mem.Approved)
					assert.Equal(t, adminID, *mem.ApprovedByID)
					assert.NotNil(t, mem.ApprovedAt)
					// The class travels with the write so capacity is
					// re-checked in the same transaction.
					assert.Equal(t, classID, c.ID)
					return nil
				}),
		)

		approved, err := svc.Approve(context.Background(), admin, pending.ID, req)

		assert.NoError(t, err)
		assert.True(t, approved.Approved)
	})

	t.Run("approving a teacher activates their classes", func(t *testing.T) {
		svc, m := newMembershipService(ctrl, &config.Config{})

		teacherUserID := uuid.New()
		pending := &model.Membership{
			ID:             uuid.New(),
			UserID:         teacherUserID,
			OrganizationID: &orgID,
			Role:           model.RoleTeacher,
		}
		dormant := &model.Class{ID: uuid.New(), OrganizationID: orgID, TeacherID: teacherUserID, Active: false}
		live := &model.Class{ID: uuid.New(), OrganizationID: orgID, TeacherID: teacherUserID, Active: true}

		gomock.InOrder(
			m.repo.EXPECT().FindByID(gomock.Any(), pending.ID).Return(pending, nil),
			m.repo.EXPECT().Approve(gomock.Any(), gomock.Any(), nil).Return(nil),
			m.classRepo.EXPECT().FindByTeacher(gomock.Any(), teacherUserID).
				Return([]*model.Class{dormant, live}, nil),
			// Only the dormant class needs a write.
			m.classRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, c *model.Class) error {
					assert.Equal(t, dormant.ID, c.ID)
					assert.True(t, c.Active)
					return nil
				}),
		)

		approved, err := svc.Approve(context.Background(), admin, pending.ID, req)

		assert.NoError(t, err)
		assert.True(t, approved.Approved)
	})

	t.Run("rejects when the class is already full", func(t *testing.T) {
		svc, m := newMembershipService(ctrl, &config.Config{})

		classID := uuid.New()
		class := &model.Class{ID: classID, OrganizationID: orgID, TeacherID: uuid.New(), MaxStudents: 2}
		pending := &model.Membership{
			ID:             uuid.New(),
			OrganizationID: &orgID,
			Role:           model.RoleStudent,
			ClassID:        &classID,
		}

		m.repo.EXPECT().FindByID(gomock.Any(), pending.ID).Return(pending, nil)
		m.classRepo.EXPECT().FindByID(gomock.Any(), classID).Return(class, nil)
		m.repo.EXPECT().Approve(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.ErrClassFull)

		_, err := svc.Approve(context.Background(), admin, pending.ID, req)

		assert.ErrorIs(t, err, domain.ErrClassFull)
	})

	t.Run("already approved memberships cannot be approved twice", func(t *testing.T) {
		svc, m := newMembershipService(ctrl, &config.Config{})

		pending := &model.Membership{ID: uuid.New(), OrganizationID: &orgID, Role: model.RoleTeacher, Approved: true}
		m.repo.EXPECT().FindByID(gomock.Any(), pending.ID).Return(pending, nil)

		_, err := svc.Approve(context.Background(), admin, pending.ID, req)

		assert.ErrorIs(t, err, domain.ErrAlreadyApproved)
	})

	t.Run("admins of another tenant are denied", func(t *testing.T) {
		svc, m := newMembershipService(ctrl, &config.Config{})

		otherOrg := uuid.New()
		outsider := &authz.Identity{UserID: uuid.New(), Role: model.RoleOrgAdmin, OrganizationID: &otherOrg}
		pending := &model.Membership{ID: uuid.New(), OrganizationID: &orgID, Role: model.RoleStudent}

		m.repo.EXPECT().FindByID(gomock.Any(), pending.ID).Return(pending, nil)

		_, err := svc.Approve(context.Background(), outsider, pending.ID, req)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestReject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	admin := &authz.Identity{UserID: uuid.New(), Role: model.RoleOrgAdmin, OrganizationID: &orgID}
	req := httptest.NewRequest("POST", "/api/memberships/reject", nil)

	t.Run("deletes the pending row", func(t *testing.T) {
		svc, m := newMembershipService(ctrl, &config.Config{})

		pending := &model.Membership{ID: uuid.New(), OrganizationID: &orgID, Role: model.RoleStudent}
		gomock.InOrder(
			m.repo.EXPECT().FindByID(gomock.Any(), pending.ID).Return(pending, nil),
			m.repo.EXPECT().Delete(gomock.Any(), pending.ID).Return(nil),
		)

		assert.NoError(t, svc.Reject(context.Background(), admin, pending.ID, req))
	})

	t.Run("approved memberships cannot be rejected", func(t *testing.T) {
		svc, m := newMembershipService(ctrl, &config.Config{})

		pending := &model.Membership{ID: uuid.New(), OrganizationID: &orgID, Role: model.RoleStudent, Approved: true}
		m.repo.EXPECT().FindByID(gomock.Any(), pending.ID).Return(pending, nil)

		err := svc.Reject(context.Background(), admin, pending.ID, req)

		assert.ErrorIs(t, err, domain.ErrAlreadyApproved)
	})
}

func TestRequestJoin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	org := &model.Organization{ID: orgID, Name: "Lincoln High"}
	pilot := &authz.Identity{UserID: uuid.New(), Role: model.RolePilot}

	t.Run("creates a pending membership from an organization code", func(t *testing.T) {
		svc, m := newMembershipService(ctrl, &config.Config{})

		gomock.InOrder(
			m.repo.EXPECT().FindAnyByUser(gomock.Any(), pilot.UserID).Return(nil, domain.ErrMembershipNotFound),
			m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, mem *model.Membership) error {
					assert.False(t, mem.Approved)
					assert.Equal(t, orgID, *mem.OrganizationID)
					assert.Nil(t, mem.ClassID)
					return nil
				}),
		)

		resolved := &service.ResolvedCode{Kind: service.CodeKindOrganization, Organization: org}
		mem, err := svc.RequestJoin(context.Background(), pilot, resolved, model.RoleTeacher)

		assert.NoError(t, err)
		assert.Equal(t, model.RoleTeacher, mem.Role)
	})

	t.Run("class codes bind the membership to the class", func(t *testing.T) {
		svc, m := newMembershipService(ctrl, &config.Config{})

		class := &model.Class{ID: uuid.New(), OrganizationID: orgID}
		gomock.InOrder(
			m.repo.EXPECT().FindAnyByUser(gomock.Any(), pilot.UserID).Return(nil, domain.ErrMembershipNotFound),
			m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, mem *model.Membership) error {
					assert.Equal(t, class.ID, *mem.ClassID)
					return nil
				}),
		)

		resolved := &service.ResolvedCode{Kind: service.CodeKindClass, Organization: org, Class: class}
		_, err := svc.RequestJoin(context.Background(), pilot, resolved, model.RoleStudent)

		assert.NoError(t, err)
	})

	t.Run("class codes are for students only", func(t *testing.T) {
		svc, _ := newMembershipService(ctrl, &config.Config{})

		resolved := &service.ResolvedCode{Kind: service.CodeKindClass, Organization: org, Class: &model.Class{ID: uuid.New()}}
		_, err := svc.RequestJoin(context.Background(), pilot, resolved, model.RoleTeacher)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("one membership per principal", func(t *testing.T) {
		svc, m := newMembershipService(ctrl, &config.Config{})

		existing := &model.Membership{ID: uuid.New(), UserID: pilot.UserID, OrganizationID: &orgID}
		m.repo.EXPECT().FindAnyByUser(gomock.Any(), pilot.UserID).Return(existing, nil)

		resolved := &service.ResolvedCode{Kind: service.CodeKindOrganization, Organization: org}
		_, err := svc.RequestJoin(context.Background(), pilot, resolved, model.RoleStudent)

		assert.ErrorIs(t, err, domain.ErrMembershipExists)
	})

	t.Run("only teacher and student roles may be requested", func(t *testing.T) {
		svc, _ := newMembershipService(ctrl, &config.Config{})

		resolved := &service.ResolvedCode{Kind: service.CodeKindOrganization, Organization: org}
		_, err := svc.RequestJoin(context.Background(), pilot, resolved, model.RoleOrgAdmin)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestGrantSuperAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{SuperAdminEmail: "root@dronehq.io"}
	bootstrap := &authz.Identity{UserID: uuid.New(), Email: "root@dronehq.io", Role: model.RoleSuperAdmin}
	req := httptest.NewRequest("POST", "/api/admin/super-admins", nil)

	t.Run("bootstrap admin grants the role", func(t *testing.T) {
		svc, m := newMembershipService(ctrl, cfg)

		target := &model.User{ID: uuid.New(), Email: "ops@dronehq.io"}
		gomock.InOrder(
			m.userRepo.EXPECT().FindByEmail(gomock.Any(), target.Email).Return(target, nil),
			m.repo.EXPECT().FindSuperAdminByUser(gomock.Any(), target.ID).Return(nil, domain.ErrMembershipNotFound),
			m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, mem *model.Membership) error {
					assert.Equal(t, model.RoleSuperAdmin, mem.Role)
					assert.True(t, mem.Approved)
					assert.Nil(t, mem.OrganizationID)
					return nil
				}),
		)

		assert.NoError(t, svc.GrantSuperAdmin(context.Background(), bootstrap, target.Email, req))
	})

	t.Run("granting twice is a no-op", func(t *testing.T) {
		svc, m := newMembershipService(ctrl, cfg)

		target := &model.User{ID: uuid.New(), Email: "ops@dronehq.io"}
		existing := &model.Membership{ID: uuid.New(), UserID: target.ID, Role: model.RoleSuperAdmin, Approved: true}
		gomock.InOrder(
			m.userRepo.EXPECT().FindByEmail(gomock.Any(), target.Email).Return(target, nil),
			m.repo.EXPECT().FindSuperAdminByUser(gomock.Any(), target.ID).Return(existing, nil),
		)

		assert.NoError(t, svc.GrantSuperAdmin(context.Background(), bootstrap, target.Email, req))
	})

	t.Run("a granted super admin may not grant further", func(t *testing.T) {
		svc, _ := newMembershipService(ctrl, cfg)

		granted := &authz.Identity{UserID: uuid.New(), Email: "ops@dronehq.io", Role: model.RoleSuperAdmin}
		err := svc.GrantSuperAdmin(context.Background(), granted, "someone@example.com", req)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestRevokeSuperAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{SuperAdminEmail: "root@dronehq.io"}
	bootstrap := &authz.Identity{UserID: uuid.New(), Email: "root@dronehq.io", Role: model.RoleSuperAdmin}
	req := httptest.NewRequest("DELETE", "/api/admin/super-admins", nil)

	svc, m := newMembershipService(ctrl, cfg)

	target := &model.User{ID: uuid.New(), Email: "ops@dronehq.io"}
	existing := &model.Membership{ID: uuid.New(), UserID: target.ID, Role: model.RoleSuperAdmin, Approved: true}
	gomock.InOrder(
		m.userRepo.EXPECT().FindByEmail(gomock.Any(), target.Email).Return(target, nil),
		m.repo.EXPECT().FindSuperAdminByUser(gomock.Any(), target.ID).Return(existing, nil),
		m.repo.EXPECT().Delete(gomock.Any(), existing.ID).Return(nil),
	)

	assert.NoError(t, svc.RevokeSuperAdmin(context.Background(), bootstrap, target.Email, req))
}
