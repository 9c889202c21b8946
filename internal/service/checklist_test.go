package service_test

import (
	"context"
	"testing"

	"github.com/DroneHQio/dronehq-app/internal/authz"
	"github.com/DroneHQio/dronehq-app/internal/domain"
	"github.com/DroneHQio/dronehq-app/internal/mocks"
	"github.com/DroneHQio/dronehq-app/internal/model"
	"github.com/DroneHQio/dronehq-app/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestChecklistTemplate(t *testing.T) {
	svc := service.NewChecklistService(nil, authz.NewGate())

	t.Run("pre-flight template", func(t *testing.T) {
		items, err := svc.Template(model.ChecklistPreFlight)

		assert.NoError(t, err)
		assert.NotEmpty(t, items)
		for _, item := range items {
			assert.False(t, item.Completed)
		}
	})

	t.Run("post-flight template", func(t *testing.T) {
		items, err := svc.Template(model.ChecklistPostFlight)

		assert.NoError(t, err)
		assert.NotEmpty(t, items)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := svc.Template(model.ChecklistType("mid-flight"))

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestSubmitChecklist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	pilot := &authz.Identity{UserID: uuid.New(), Role: model.RoleStudent, OrganizationID: &orgID}

	completed := model.ChecklistItems{
		{Item: "Weather conditions checked", Completed: true},
		{Item: "Battery fully charged", Completed: true},
	}

	t.Run("stores a fully completed checklist", func(t *testing.T) {
		repo := mocks.NewMockChecklistRepositoryIface(ctrl)
		svc := service.NewChecklistService(repo, authz.NewGate())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *model.Checklist) error {
				assert.Equal(t, pilot.UserID, c.UserID)
				assert.Equal(t, orgID, *c.OrganizationID)
				assert.False(t, c.CompletedAt.IsZero())
				return nil
			})

		checklist, err := svc.Submit(context.Background(), pilot, service.SubmitChecklistInput{
			ChecklistType: model.ChecklistPreFlight,
			DroneModel:    "DJI Mini 4 Pro",
			Date:          "2026-08-14",
			Items:         completed,
		})

		assert.NoError(t, err)
		assert.Equal(t, model.ChecklistPreFlight, checklist.ChecklistType)
	})

	t.Run("an unchecked item rejects the submission", func(t *testing.T) {
		svc := service.NewChecklistService(nil, authz.NewGate())

		_, err := svc.Submit(context.Background(), pilot, service.SubmitChecklistInput{
			ChecklistType: model.ChecklistPreFlight,
			Items: model.ChecklistItems{
				{Item: "Weather conditions checked", Completed: true},
				{Item: "Propellers inspected for damage", Completed: false},
			},
		})

		assert.ErrorIs(t, err, domain.ErrChecklistIncomplete)
	})

	t.Run("empty checklists are invalid", func(t *testing.T) {
		svc := service.NewChecklistService(nil, authz.NewGate())

		_, err := svc.Submit(context.Background(), pilot, service.SubmitChecklistInput{
			ChecklistType: model.ChecklistPreFlight,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown checklist type", func(t *testing.T) {
		svc := service.NewChecklistService(nil, authz.NewGate())

		_, err := svc.Submit(context.Background(), pilot, service.SubmitChecklistInput{
			ChecklistType: model.ChecklistType("mid-flight"),
			Items:         completed,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("bad date", func(t *testing.T) {
		svc := service.NewChecklistService(nil, authz.NewGate())

		_, err := svc.Submit(context.Background(), pilot, service.SubmitChecklistInput{
			ChecklistType: model.ChecklistPostFlight,
			Date:          "last tuesday",
			Items:         completed,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
