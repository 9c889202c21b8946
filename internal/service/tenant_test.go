package service_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DroneHQio/dronehq-app/internal/domain"
	"github.com/DroneHQio/dronehq-app/internal/mocks"
	"github.com/DroneHQio/dronehq-app/internal/model"
	"github.com/DroneHQio/dronehq-app/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTenantService(t *testing.T, ctrl *gomock.Controller) (
	*service.TenantService,
	*mocks.MockOrganizationRepositoryIface,
	*mocks.MockClassRepositoryIface,
	*mocks.MockUserRepositoryIface,
) {
	t.Helper()

	orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
	classRepo := mocks.NewMockClassRepositoryIface(ctrl)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	cacheService := service.NewCacheService(service.CacheConfig{
		TTL:         5 * time.Minute,
		CleanupFreq: time.Minute,
	})
	t.Cleanup(cacheService.Close)

	return service.NewTenantService(orgRepo, classRepo, userRepo, cacheService), orgRepo, classRepo, userRepo
}

func TestGenerateJoinCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	codeShape := regexp.MustCompile(`^[A-Z0-9]{6}\d{3}$`)

	t.Run("derives prefix from the organization name", func(t *testing.T) {
		svc, orgRepo, _, _ := newTenantService(t, ctrl)
		orgRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil)

		code, err := svc.GenerateJoinCode(context.Background(), "Lincoln High School")

		assert.NoError(t, err)
		assert.Regexp(t, codeShape, code)
		assert.Equal(t, "LINCOL", code[:6])
	})

	t.Run("pads short names to a fixed shape", func(t *testing.T) {
		svc, orgRepo, _, _ := newTenantService(t, ctrl)
		orgRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil)

		code, err := svc.GenerateJoinCode(context.Background(), "Fly 2")

		assert.NoError(t, err)
		assert.Len(t, code, 9)
		assert.Equal(t, "FLY2XX", code[:6])
	})

	t.Run("redraws the suffix on collision", func(t *testing.T) {
		svc, orgRepo, _, _ := newTenantService(t, ctrl)
		gomock.InOrder(
			orgRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(true, nil),
			orgRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil),
		)

		code, err := svc.GenerateJoinCode(context.Background(), "Lincoln High School")

		assert.NoError(t, err)
		assert.Regexp(t, codeShape, code)
	})

	t.Run("gives up after bounded attempts", func(t *testing.T) {
		svc, orgRepo, _, _ := newTenantService(t, ctrl)
		orgRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(true, nil).Times(10)

		_, err := svc.GenerateJoinCode(context.Background(), "Lincoln High School")

		assert.Error(t, err)
	})
}

func TestGenerateClassCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, classRepo, _ := newTenantService(t, ctrl)
	classRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil)

	code, err := svc.GenerateClassCode(context.Background(), "Drone Basics 101")

	assert.NoError(t, err)
	assert.Regexp(t, `^DRONEB\d{3}$`, code)
}

func TestGeneratePilotID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, userRepo := newTenantService(t, ctrl)
	userRepo.EXPECT().PilotIDExists(gomock.Any(), gomock.Any()).Return(false, nil)

	pilotID, err := svc.GeneratePilotID(context.Background())

	assert.NoError(t, err)
	assert.Regexp(t, `^P[0-9A-Z]{8}$`, pilotID)
}

func TestValidateCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	org := &model.Organization{ID: orgID, Name: "Lincoln High", Code: "LINCOL123"}

	t.Run("class codes resolve before organization codes", func(t *testing.T) {
		svc, orgRepo, classRepo, _ := newTenantService(t, ctrl)
		class := &model.Class{ID: uuid.New(), OrganizationID: orgID, Code: "DRONEB456", Active: true}

		classRepo.EXPECT().FindByCode(gomock.Any(), "DRONEB456").Return(class, nil)
		orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(org, nil)

		resolved, err := svc.ValidateCode(context.Background(), "DRONEB456")

		assert.NoError(t, err)
		assert.Equal(t, service.CodeKindClass, resolved.Kind)
		assert.Equal(t, class.ID, resolved.Class.ID)
		assert.Equal(t, orgID, resolved.Organization.ID)
	})

	t.Run("inactive class code is rejected", func(t *testing.T) {
		svc, _, classRepo, _ := newTenantService(t, ctrl)
		class := &model.Class{ID: uuid.New(), OrganizationID: orgID, Code: "DRONEB456", Active: false}

		classRepo.EXPECT().FindByCode(gomock.Any(), "DRONEB456").Return(class, nil)

		_, err := svc.ValidateCode(context.Background(), "DRONEB456")

		assert.ErrorIs(t, err, domain.ErrCodeInactive)
	})

	t.Run("falls through to organization codes", func(t *testing.T) {
		svc, orgRepo, classRepo, _ := newTenantService(t, ctrl)

		classRepo.EXPECT().FindByCode(gomock.Any(), "LINCOL123").Return(nil, domain.ErrClassNotFound)
		orgRepo.EXPECT().FindByCode(gomock.Any(), "LINCOL123").Return(org, nil)

		resolved, err := svc.ValidateCode(context.Background(), "lincol123 ")

		assert.NoError(t, err)
		assert.Equal(t, service.CodeKindOrganization, resolved.Kind)
		assert.Nil(t, resolved.Class)
	})

	t.Run("unknown code", func(t *testing.T) {
		svc, orgRepo, classRepo, _ := newTenantService(t, ctrl)

		classRepo.EXPECT().FindByCode(gomock.Any(), "NOPE99999").Return(nil, domain.ErrClassNotFound)
		orgRepo.EXPECT().FindByCode(gomock.Any(), "NOPE99999").Return(nil, domain.ErrOrganizationNotFound)

		_, err := svc.ValidateCode(context.Background(), "NOPE99999")

		assert.ErrorIs(t, err, domain.ErrCodeNotFound)
	})

	t.Run("empty code is invalid", func(t *testing.T) {
		svc, _, _, _ := newTenantService(t, ctrl)

		_, err := svc.ValidateCode(context.Background(), "   ")

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("successful resolutions are cached", func(t *testing.T) {
		svc, orgRepo, classRepo, _ := newTenantService(t, ctrl)

		classRepo.EXPECT().FindByCode(gomock.Any(), "LINCOL123").Return(nil, domain.ErrClassNotFound).Times(1)
		orgRepo.EXPECT().FindByCode(gomock.Any(), "LINCOL123").Return(org, nil).Times(1)

		for i := 0; i < 2; i++ {
			resolved, err := svc.ValidateCode(context.Background(), "LINCOL123")
			assert.NoError(t, err)
			assert.Equal(t, service.CodeKindOrganization, resolved.Kind)
		}
	})
}

func TestCreateOrganization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creator := uuid.New()

	t.Run("provisions a tenant with a fresh join code", func(t *testing.T) {
		svc, orgRepo, _, _ := newTenantService(t, ctrl)

		orgRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
		orgRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, org *model.Organization) error {
				assert.Equal(t, "Lincoln High", org.Name)
				assert.Equal(t, model.BillingTrial, org.BillingStatus)
				assert.Equal(t, creator, org.CreatedByID)
				assert.Regexp(t, `^LINCOL\d{3}$`, org.Code)
				return nil
			})

		org, err := svc.CreateOrganization(context.Background(), "Lincoln High", model.PlanStarter, creator)

		assert.NoError(t, err)
		assert.NotNil(t, org)
	})

	t.Run("blank name is invalid", func(t *testing.T) {
		svc, _, _, _ := newTenantService(t, ctrl)

		_, err := svc.CreateOrganization(context.Background(), "  ", model.PlanStarter, creator)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
