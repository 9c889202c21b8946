package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/DroneHQio/dronehq-app/internal/authz"
	"github.com/DroneHQio/dronehq-app/internal/domain"
	"github.com/DroneHQio/dronehq-app/internal/mocks"
	"github.com/DroneHQio/dronehq-app/internal/model"
	"github.com/DroneHQio/dronehq-app/internal/repository"
	"github.com/DroneHQio/dronehq-app/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCreateLicense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	pilot := &authz.Identity{UserID: uuid.New(), Role: model.RoleSoloPilot, OrganizationID: &orgID}

	t.Run("records a license with parsed dates", func(t *testing.T) {
		repo := mocks.NewMockLicenseRepositoryIface(ctrl)
		svc := service.NewLicenseService(repo, authz.NewGate())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, l *model.License) error {
				assert.Equal(t, pilot.UserID, l.UserID)
				assert.Equal(t, orgID, *l.OrganizationID)
				assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), *l.IssueDate)
				assert.Equal(t, time.Date(2027, 3, 14, 0, 0, 0, 0, time.UTC), *l.ExpirationDate)
				return nil
			})

		license, err := svc.Create(context.Background(), pilot, service.LicenseInput{
			PilotName:        "Ava Reyes",
			LicenseType:      "Part 107",
			LicenseNumber:    "4521339",
			IssueDate:        "2025-03-14",
			ExpirationDate:   "2027-03-14",
			IssuingAuthority: "FAA",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Part 107", license.LicenseType)
	})

	t.Run("license type is required", func(t *testing.T) {
		repo := mocks.NewMockLicenseRepositoryIface(ctrl)
		svc := service.NewLicenseService(repo, authz.NewGate())

		_, err := svc.Create(context.Background(), pilot, service.LicenseInput{PilotName: "Ava Reyes"})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("malformed dates are rejected", func(t *testing.T) {
		repo := mocks.NewMockLicenseRepositoryIface(ctrl)
		svc := service.NewLicenseService(repo, authz.NewGate())

		_, err := svc.Create(context.Background(), pilot, service.LicenseInput{
			LicenseType:    "Part 107",
			ExpirationDate: "14/03/2027",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("open-ended licenses keep nil dates", func(t *testing.T) {
		repo := mocks.NewMockLicenseRepositoryIface(ctrl)
		svc := service.NewLicenseService(repo, authz.NewGate())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, l *model.License) error {
				assert.Nil(t, l.IssueDate)
				assert.Nil(t, l.ExpirationDate)
				return nil
			})

		_, err := svc.Create(context.Background(), pilot, service.LicenseInput{LicenseType: "Recreational"})

		assert.NoError(t, err)
	})
}

func TestGetLicense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pilot := &authz.Identity{UserID: uuid.New(), Role: model.RolePilot}

	t.Run("returns an in-scope license", func(t *testing.T) {
		repo := mocks.NewMockLicenseRepositoryIface(ctrl)
		svc := service.NewLicenseService(repo, authz.NewGate())

		license := &model.License{ID: uuid.New(), UserID: pilot.UserID, LicenseType: "Part 107"}
		repo.EXPECT().FindByID(gomock.Any(), license.ID, gomock.Any()).Return(license, nil)

		got, err := svc.Get(context.Background(), pilot, license.ID)

		assert.NoError(t, err)
		assert.Equal(t, license.ID, got.ID)
	})

	t.Run("out-of-scope rows read as not found", func(t *testing.T) {
		repo := mocks.NewMockLicenseRepositoryIface(ctrl)
		svc := service.NewLicenseService(repo, authz.NewGate())

		otherID := uuid.New()
		repo.EXPECT().FindByID(gomock.Any(), otherID, gomock.Any()).Return(nil, domain.ErrLicenseNotFound)

		_, err := svc.Get(context.Background(), pilot, otherID)

		assert.ErrorIs(t, err, domain.ErrLicenseNotFound)
	})
}

func TestExpiringLicenses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pilot := &authz.Identity{UserID: uuid.New(), Role: model.RoleSoloPilot}

	repo := mocks.NewMockLicenseRepositoryIface(ctrl)
	svc := service.NewLicenseService(repo, authz.NewGate())

	soon := time.Now().UTC().AddDate(0, 0, 12)
	expiring := []*model.License{{ID: uuid.New(), UserID: pilot.UserID, ExpirationDate: &soon}}

	repo.EXPECT().FindExpiring(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ repository.ScopeFunc, within time.Duration) ([]*model.License, error) {
			// The heads-up view looks 30 days out.
			assert.Equal(t, 30*24*time.Hour, within)
			return expiring, nil
		})

	got, err := svc.Expiring(context.Background(), pilot)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestUpdateLicense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pilot := &authz.Identity{UserID: uuid.New(), Role: model.RolePilot}

	t.Run("replaces the stored fields", func(t *testing.T) {
		repo := mocks.NewMockLicenseRepositoryIface(ctrl)
		svc := service.NewLicenseService(repo, authz.NewGate())

		existing := &model.License{ID: uuid.New(), UserID: pilot.UserID, LicenseType: "Part 107", LicenseNumber: "4521339"}
		gomock.InOrder(
			repo.EXPECT().FindByID(gomock.Any(), existing.ID, gomock.Any()).Return(existing, nil),
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, l *model.License) error {
					assert.Equal(t, "4521340", l.LicenseNumber)
					assert.Equal(t, time.Date(2029, 1, 2, 0, 0, 0, 0, time.UTC), *l.ExpirationDate)
					return nil
				}),
		)

		updated, err := svc.Update(context.Background(), pilot, existing.ID, service.LicenseInput{
			LicenseType:    "Part 107",
			LicenseNumber:  "4521340",
			ExpirationDate: "2029-01-02",
		})

		assert.NoError(t, err)
		assert.Equal(t, "4521340", updated.LicenseNumber)
	})

	t.Run("malformed dates leave the row untouched", func(t *testing.T) {
		repo := mocks.NewMockLicenseRepositoryIface(ctrl)
		svc := service.NewLicenseService(repo, authz.NewGate())

		existing := &model.License{ID: uuid.New(), UserID: pilot.UserID, LicenseType: "Part 107"}
		repo.EXPECT().FindByID(gomock.Any(), existing.ID, gomock.Any()).Return(existing, nil)

		_, err := svc.Update(context.Background(), pilot, existing.ID, service.LicenseInput{
			LicenseType:    "Part 107",
			ExpirationDate: "soon",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestDeleteLicense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pilot := &authz.Identity{UserID: uuid.New(), Role: model.RolePilot}

	repo := mocks.NewMockLicenseRepositoryIface(ctrl)
	svc := service.NewLicenseService(repo, authz.NewGate())

	existing := &model.License{ID: uuid.New(), UserID: pilot.UserID, LicenseType: "Part 107"}
	gomock.InOrder(
		repo.EXPECT().FindByID(gomock.Any(), existing.ID, gomock.Any()).Return(existing, nil),
		repo.EXPECT().Delete(gomock.Any(), existing.ID).Return(nil),
	)

	assert.NoError(t, svc.Delete(context.Background(), pilot, existing.ID))
}
