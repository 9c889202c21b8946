package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/DroneHQio/dronehq-app/internal/authz"
	"github.com/DroneHQio/dronehq-app/internal/domain"
	"github.com/DroneHQio/dronehq-app/internal/mocks"
	"github.com/DroneHQio/dronehq-app/internal/model"
	"github.com/DroneHQio/dronehq-app/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newClassService(t *testing.T, ctrl *gomock.Controller) (*service.ClassService, *mocks.MockClassRepositoryIface, *mocks.MockMembershipRepositoryIface) {
	t.Helper()

	classRepo := mocks.NewMockClassRepositoryIface(ctrl)
	membershipRepo := mocks.NewMockMembershipRepositoryIface(ctrl)

	// The tenant service only generates class codes here, so it shares
	// the class repo's CodeExists expectations.
	orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	cacheService := service.NewCacheService(service.CacheConfig{
		TTL:         5 * time.Minute,
		CleanupFreq: time.Minute,
	})
	t.Cleanup(cacheService.Close)
	tenant := service.NewTenantService(orgRepo, classRepo, userRepo, cacheService)

	return service.NewClassService(classRepo, membershipRepo, tenant, authz.NewGate()), classRepo, membershipRepo
}

func TestCreateClass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	teacher := &authz.Identity{UserID: uuid.New(), Role: model.RoleTeacher, OrganizationID: &orgID}

	t.Run("provisions an inactive class with a fresh code", func(t *testing.T) {
		svc, classRepo, _ := newClassService(t, ctrl)

		classRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
		classRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *model.Class) error {
				assert.Equal(t, orgID, c.OrganizationID)
				assert.Equal(t, teacher.UserID, c.TeacherID)
				assert.False(t, c.Active)
				assert.Equal(t, 30, c.MaxStudents)
				assert.Regexp(t, `^DRONEB\d{3}$`, c.Code)
				return nil
			})

		class, err := svc.Create(context.Background(), teacher, service.CreateClassInput{ClassName: "Drone Basics"})

		assert.NoError(t, err)
		assert.Equal(t, "Drone Basics", class.ClassName)
	})

	t.Run("students may not create classes", func(t *testing.T) {
		svc, _, _ := newClassService(t, ctrl)

		student := &authz.Identity{UserID: uuid.New(), Role: model.RoleStudent, OrganizationID: &orgID}
		_, err := svc.Create(context.Background(), student, service.CreateClassInput{ClassName: "Drone Basics"})

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unaffiliated callers may not create classes", func(t *testing.T) {
		svc, _, _ := newClassService(t, ctrl)

		loner := &authz.Identity{UserID: uuid.New(), Role: model.RoleTeacher}
		_, err := svc.Create(context.Background(), loner, service.CreateClassInput{ClassName: "Drone Basics"})

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestSetActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	teacherID := uuid.New()
	teacher := &authz.Identity{UserID: teacherID, Role: model.RoleTeacher, OrganizationID: &orgID}

	t.Run("owning teacher activates the code", func(t *testing.T) {
		svc, classRepo, _ := newClassService(t, ctrl)

		class := &model.Class{ID: uuid.New(), OrganizationID: orgID, TeacherID: teacherID, Active: false}
		gomock.InOrder(
			classRepo.EXPECT().FindByID(gomock.Any(), class.ID).Return(class, nil),
			classRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, c *model.Class) error {
					assert.True(t, c.Active)
					return nil
				}),
		)

		updated, err := svc.SetActive(context.Background(), teacher, class.ID, true)

		assert.NoError(t, err)
		assert.True(t, updated.Active)
	})

	t.Run("another teacher is denied", func(t *testing.T) {
		svc, classRepo, _ := newClassService(t, ctrl)

		class := &model.Class{ID: uuid.New(), OrganizationID: orgID, TeacherID: uuid.New()}
		classRepo.EXPECT().FindByID(gomock.Any(), class.ID).Return(class, nil)

		_, err := svc.SetActive(context.Background(), teacher, class.ID, true)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestRoster(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	teacherID := uuid.New()
	teacher := &authz.Identity{UserID: teacherID, Role: model.RoleTeacher, OrganizationID: &orgID}

	svc, classRepo, membershipRepo := newClassService(t, ctrl)

	classID := uuid.New()
	otherClassID := uuid.New()
	class := &model.Class{ID: classID, OrganizationID: orgID, TeacherID: teacherID}

	members := []*model.Membership{
		{ID: uuid.New(), OrganizationID: &orgID, ClassID: &classID, Role: model.RoleStudent, Approved: true},
		{ID: uuid.New(), OrganizationID: &orgID, ClassID: &classID, Role: model.RoleStudent, Approved: false},
		{ID: uuid.New(), OrganizationID: &orgID, ClassID: &otherClassID, Role: model.RoleStudent, Approved: true},
		{ID: uuid.New(), OrganizationID: &orgID, Role: model.RoleTeacher, Approved: true},
	}

	classRepo.EXPECT().FindByID(gomock.Any(), classID).Return(class, nil)
	membershipRepo.EXPECT().FindByOrganization(gomock.Any(), orgID).Return(members, nil)

	roster, err := svc.Roster(context.Background(), teacher, classID)

	assert.NoError(t, err)
	// Only approved students of this class make the roster.
	assert.Len(t, roster, 1)
	assert.Equal(t, members[0].ID, roster[0].ID)
}
