package service_test

import (
	"context"
	"strings"
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

func TestCreateInventoryItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	admin := &authz.Identity{UserID: uuid.New(), Role: model.RoleOrgAdmin, OrganizationID: &orgID}

	t.Run("creates an item with defaults", func(t *testing.T) {
		repo := mocks.NewMockInventoryRepositoryIface(ctrl)
		svc := service.NewInventoryService(repo, authz.NewGate())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item *model.InventoryItem) error {
				assert.Equal(t, model.ConditionExcellent, item.ConditionStatus)
				assert.Equal(t, model.CheckoutAvailable, item.CheckoutStatus)
				assert.Equal(t, orgID, *item.OrganizationID)
				return nil
			})

		item, err := svc.Create(context.Background(), admin, service.InventoryItemInput{Name: "DJI Mavic 3"})

		assert.NoError(t, err)
		assert.Equal(t, "DJI Mavic 3", item.Name)
	})

	t.Run("students may not manage equipment", func(t *testing.T) {
		repo := mocks.NewMockInventoryRepositoryIface(ctrl)
		svc := service.NewInventoryService(repo, authz.NewGate())

		student := &authz.Identity{UserID: uuid.New(), Role: model.RoleStudent, OrganizationID: &orgID}
		_, err := svc.Create(context.Background(), student, service.InventoryItemInput{Name: "DJI Mavic 3"})

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("name is required", func(t *testing.T) {
		repo := mocks.NewMockInventoryRepositoryIface(ctrl)
		svc := service.NewInventoryService(repo, authz.NewGate())

		_, err := svc.Create(context.Background(), admin, service.InventoryItemInput{Name: "  "})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestCheckoutCheckin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	pilot := &authz.Identity{UserID: uuid.New(), Role: model.RoleStudent, OrganizationID: &orgID}

	t.Run("checkout marks the item as taken", func(t *testing.T) {
		repo := mocks.NewMockInventoryRepositoryIface(ctrl)
		svc := service.NewInventoryService(repo, authz.NewGate())

		item := &model.InventoryItem{ID: uuid.New(), OrganizationID: &orgID, Name: "Battery pack", CheckoutStatus: model.CheckoutAvailable}
		gomock.InOrder(
			repo.EXPECT().FindByID(gomock.Any(), item.ID, gomock.Any()).Return(item, nil),
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, it *model.InventoryItem) error {
					assert.Equal(t, model.CheckoutCheckedOut, it.CheckoutStatus)
					assert.Equal(t, pilot.UserID, *it.CheckedOutByID)
					return nil
				}),
		)

		_, err := svc.Checkout(context.Background(), pilot, item.ID)

		assert.NoError(t, err)
	})

	t.Run("checked out items cannot be taken again", func(t *testing.T) {
		repo := mocks.NewMockInventoryRepositoryIface(ctrl)
		svc := service.NewInventoryService(repo, authz.NewGate())

		holder := uuid.New()
		item := &model.InventoryItem{ID: uuid.New(), CheckoutStatus: model.CheckoutCheckedOut, CheckedOutByID: &holder}
		repo.EXPECT().FindByID(gomock.Any(), item.ID, gomock.Any()).Return(item, nil)

		_, err := svc.Checkout(context.Background(), pilot, item.ID)

		assert.ErrorIs(t, err, domain.ErrItemNotAvailable)
	})

	t.Run("the holder checks their item back in", func(t *testing.T) {
		repo := mocks.NewMockInventoryRepositoryIface(ctrl)
		svc := service.NewInventoryService(repo, authz.NewGate())

		item := &model.InventoryItem{
			ID:             uuid.New(),
			CheckoutStatus: model.CheckoutCheckedOut,
			CheckedOutByID: &pilot.UserID,
		}
		gomock.InOrder(
			repo.EXPECT().FindByID(gomock.Any(), item.ID, gomock.Any()).Return(item, nil),
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, it *model.InventoryItem) error {
					assert.Equal(t, model.CheckoutAvailable, it.CheckoutStatus)
					assert.Nil(t, it.CheckedOutByID)
					return nil
				}),
		)

		_, err := svc.Checkin(context.Background(), pilot, item.ID)

		assert.NoError(t, err)
	})

	t.Run("a student cannot check in someone else's item", func(t *testing.T) {
		repo := mocks.NewMockInventoryRepositoryIface(ctrl)
		svc := service.NewInventoryService(repo, authz.NewGate())

		holder := uuid.New()
		item := &model.InventoryItem{ID: uuid.New(), CheckoutStatus: model.CheckoutCheckedOut, CheckedOutByID: &holder}
		repo.EXPECT().FindByID(gomock.Any(), item.ID, gomock.Any()).Return(item, nil)

		_, err := svc.Checkin(context.Background(), pilot, item.ID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestImportCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	admin := &authz.Identity{UserID: uuid.New(), Role: model.RoleOrgAdmin, OrganizationID: &orgID}

	t.Run("imports rows with aliased headers", func(t *testing.T) {
		repo := mocks.NewMockInventoryRepositoryIface(ctrl)
		svc := service.NewInventoryService(repo, authz.NewGate())

		csvData := strings.Join([]string{
			"Item Name,Category,Serial,Price,Condition",
			`DJI Mavic 3,drone,SN-001,$2199.00,good`,
			`"Battery, spare",battery,SN-002,129.99,excellent`,
		}, "\n")

		var imported []*model.InventoryItem
		repo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, items []*model.InventoryItem) error {
				imported = items
				return nil
			})

		result, err := svc.ImportCSV(context.Background(), admin, strings.NewReader(csvData))

		assert.NoError(t, err)
		assert.Equal(t, 2, result.Imported)
		assert.Equal(t, 0, result.Skipped)
		assert.Len(t, imported, 2)
		assert.Equal(t, "DJI Mavic 3", imported[0].Name)
		assert.Equal(t, "SN-001", imported[0].SerialNumber)
		assert.Equal(t, 2199.00, *imported[0].PurchasePrice)
		assert.Equal(t, model.ConditionGood, imported[0].ConditionStatus)
		assert.Equal(t, "Battery, spare", imported[1].Name)
	})

	t.Run("bad rows are skipped and reported", func(t *testing.T) {
		repo := mocks.NewMockInventoryRepositoryIface(ctrl)
		svc := service.NewInventoryService(repo, authz.NewGate())

		csvData := strings.Join([]string{
			"name,price",
			"DJI Mavic 3,2199.00",
			",100.00",
			"Controller,not-a-number",
		}, "\n")

		repo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)

		result, err := svc.ImportCSV(context.Background(), admin, strings.NewReader(csvData))

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Imported)
		assert.Equal(t, 2, result.Skipped)
		assert.Len(t, result.Errors, 2)
	})

	t.Run("header without a name column is rejected", func(t *testing.T) {
		repo := mocks.NewMockInventoryRepositoryIface(ctrl)
		svc := service.NewInventoryService(repo, authz.NewGate())

		_, err := svc.ImportCSV(context.Background(), admin, strings.NewReader("category,price\ndrone,100"))

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("students may not import", func(t *testing.T) {
		repo := mocks.NewMockInventoryRepositoryIface(ctrl)
		svc := service.NewInventoryService(repo, authz.NewGate())

		student := &authz.Identity{UserID: uuid.New(), Role: model.RoleStudent, OrganizationID: &orgID}
		_, err := svc.ImportCSV(context.Background(), student, strings.NewReader("name\nDJI"))

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
