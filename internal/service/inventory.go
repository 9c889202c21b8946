// internal/service/inventory.go
package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/DroneHQio/dronehq-app/internal/authz"
	"github.com/DroneHQio/dronehq-app/internal/domain"
	"github.com/DroneHQio/dronehq-app/internal/model"
	"github.com/DroneHQio/dronehq-app/internal/repository"
	"github.com/google/uuid"
)

// importBatchSize bounds memory while importing large CSV files.
const importBatchSize = 50

// InventoryService manages fleet equipment: drones, batteries,
// controllers and the paperwork around them.
type InventoryService struct {
	repo repository.InventoryRepositoryIface
	gate *authz.Gate
}

func NewInventoryService(repo repository.InventoryRepositoryIface, gate *authz.Gate) *InventoryService {
	return &InventoryService{repo: repo, gate: gate}
}

// scope widens reads to the whole tenant for any member: equipment is
// shared, unlike personal flight logs.
func (s *InventoryService) scope(id *authz.Identity) repository.ScopeFunc {
	switch {
	case id.IsSuperAdmin():
		return authz.ScopeAll().Apply("created_by")
	case id.OrganizationID != nil:
		return authz.ScopeOrganization(*id.OrganizationID).Apply("created_by")
	default:
		return authz.ScopeSelf(id.UserID).Apply("created_by")
	}
}

// canManage restricts writes to admins, teachers and solo pilots.
func (s *InventoryService) canManage(id *authz.Identity) bool {
	switch id.Role {
	case model.RoleSuperAdmin, model.RoleOrgAdmin, model.RoleTeacher, model.RoleSoloPilot, model.RolePilot:
		return true
	default:
		return false
	}
}

type InventoryItemInput struct {
	Name               string   `json:"name"`
	Category           string   `json:"category"`
	Model              string   `json:"model"`
	SerialNumber       string   `json:"serial_number"`
	Manufacturer       string   `json:"manufacturer"`
	PurchaseDate       string   `json:"purchase_date"`
	PurchasePrice      *float64 `json:"purchase_price"`
	ConditionStatus    string   `json:"condition_status"`
	Location           string   `json:"location"`
	Notes              string   `json:"notes"`
	RegistrationNumber string   `json:"registration_number"`
	ExpirationDate     string   `json:"expiration_date"`
	MaintenanceDue     string   `json:"maintenance_due"`
	InsuranceValue     *float64 `json:"insurance_value"`
}

func (in InventoryItemInput) toModel(id *authz.Identity) *model.InventoryItem {
	condition := model.ConditionStatus(in.ConditionStatus)
	if condition == "" {
		condition = model.ConditionExcellent
	}

	return &model.InventoryItem{
		OrganizationID:     id.OrganizationID,
		CreatedByID:        id.UserID,
		Name:               in.Name,
		Category:           in.Category,
		Model:              in.Model,
		SerialNumber:       in.SerialNumber,
		Manufacturer:       in.Manufacturer,
		PurchaseDate:       in.PurchaseDate,
		PurchasePrice:      in.PurchasePrice,
		ConditionStatus:    condition,
		CheckoutStatus:     model.CheckoutAvailable,
		Location:           in.Location,
		Notes:              in.Notes,
		RegistrationNumber: in.RegistrationNumber,
		ExpirationDate:     in.ExpirationDate,
		MaintenanceDue:     in.MaintenanceDue,
		InsuranceValue:     in.InsuranceValue,
	}
}

// Create adds a single inventory item.
func (s *InventoryService) Create(ctx context.Context, id *authz.Identity, input InventoryItemInput) (*model.InventoryItem, error) {
	if !s.canManage(id) {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	item := input.toModel(id)
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Get fetches one item within the caller's scope.
func (s *InventoryService) Get(ctx context.Context, id *authz.Identity, itemID uuid.UUID) (*model.InventoryItem, error) {
	return s.repo.FindByID(ctx, itemID, s.scope(id))
}

// List pages through in-scope items.
func (s *InventoryService) List(ctx context.Context, id *authz.Identity, offset, limit int) ([]*model.InventoryItem, int64, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.List(ctx, s.scope(id), offset, limit)
}

// Update edits an item.
func (s *InventoryService) Update(ctx context.Context, id *authz.Identity, itemID uuid.UUID, input InventoryItemInput) (*model.InventoryItem, error) {
	if !s.canManage(id) {
		return nil, domain.ErrForbidden
	}

	item, err := s.repo.FindByID(ctx, itemID, s.scope(id))
	if err != nil {
		return nil, err
	}

	item.Name = input.Name
	item.Category = input.Category
	item.Model = input.Model
	item.SerialNumber = input.SerialNumber
	item.Manufacturer = input.Manufacturer
	item.PurchaseDate = input.PurchaseDate
	item.PurchasePrice = input.PurchasePrice
	if input.ConditionStatus != "" {
		item.ConditionStatus = model.ConditionStatus(input.ConditionStatus)
	}
	item.Location = input.Location
	item.Notes = input.Notes
	item.RegistrationNumber = input.RegistrationNumber
	item.ExpirationDate = input.ExpirationDate
	item.MaintenanceDue = input.MaintenanceDue
	item.InsuranceValue = input.InsuranceValue

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an item.
func (s *InventoryService) Delete(ctx context.Context, id *authz.Identity, itemID uuid.UUID) error {
	if !s.canManage(id) {
		return domain.ErrForbidden
	}

	item, err := s.repo.FindByID(ctx, itemID, s.scope(id))
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, item.ID)
}

// Checkout marks an available item as taken by the caller.
func (s *InventoryService) Checkout(ctx context.Context, id *authz.Identity, itemID uuid.UUID) (*model.InventoryItem, error) {
	item, err := s.repo.FindByID(ctx, itemID, s.scope(id))
	if err != nil {
		return nil, err
	}

	if item.CheckoutStatus != model.CheckoutAvailable {
		return nil, domain.ErrItemNotAvailable
	}

	now := time.Now().UTC()
	item.CheckoutStatus = model.CheckoutCheckedOut
	item.CheckedOutByID = &id.UserID
	item.CheckedOutAt = &now
	item.CheckedInAt = nil

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Checkin returns a checked-out item. The holder or a manager may do it.
func (s *InventoryService) Checkin(ctx context.Context, id *authz.Identity, itemID uuid.UUID) (*model.InventoryItem, error) {
	item, err := s.repo.FindByID(ctx, itemID, s.scope(id))
	if err != nil {
		return nil, err
	}

	if item.CheckoutStatus != model.CheckoutCheckedOut {
		return nil, domain.ErrItemNotCheckedOut
	}

	holder := item.CheckedOutByID != nil && *item.CheckedOutByID == id.UserID
	if !holder && !s.canManage(id) {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	item.CheckoutStatus = model.CheckoutAvailable
	item.CheckedOutByID = nil
	item.CheckedInAt = &now

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ImportResult summarizes a CSV import.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// csvColumns maps accepted header names to canonical fields. Headers
// are matched case-insensitively with spaces and underscores ignored.
var csvColumns = map[string]string{
	"name":               "name",
	"itemname":           "name",
	"category":           "category",
	"model":              "model",
	"serialnumber":       "serial_number",
	"serial":             "serial_number",
	"manufacturer":       "manufacturer",
	"purchasedate":       "purchase_date",
	"purchaseprice":      "purchase_price",
	"price":              "purchase_price",
	"condition":          "condition",
	"conditionstatus":    "condition",
	"location":           "location",
	"notes":              "notes",
	"registrationnumber": "registration_number",
	"faaregistration":    "registration_number",
	"expirationdate":     "expiration_date",
	"maintenancedue":     "maintenance_due",
	"insurancevalue":     "insurance_value",
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "")
	h = strings.ReplaceAll(h, "_", "")
	return h
}

// ImportCSV bulk-loads inventory from a CSV stream. The first row must
// be a header naming at least a name column. Rows that fail to parse
// are skipped and reported; parsed rows are inserted in batches.
func (s *InventoryService) ImportCSV(ctx context.Context, id *authz.Identity, r io.Reader) (*ImportResult, error) {
	if !s.canManage(id) {
		return nil, domain.ErrForbidden
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read CSV header", domain.ErrInvalidInput)
	}

	fields := make(map[int]string, len(header))
	for i, h := range header {
		if canonical, ok := csvColumns[normalizeHeader(h)]; ok {
			fields[i] = canonical
		}
	}

	nameSeen := false
	for _, f := range fields {
		if f == "name" {
			nameSeen = true
			break
		}
	}
	if !nameSeen {
		return nil, fmt.Errorf("%w: CSV header has no name column", domain.ErrInvalidInput)
	}

	result := &ImportResult{}
	batch := make([]*model.InventoryItem, 0, importBatchSize)
	line := 1

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := s.repo.CreateBatch(ctx, batch); err != nil {
			return err
		}
		result.Imported += len(batch)
		batch = batch[:0]
		return nil
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		item, err := s.recordToItem(id, fields, record)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		batch = append(batch, item)
		if len(batch) >= importBatchSize {
			if err := flush(); err != nil {
				return nil, err
			}
		}
	}

	if err := flush(); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *InventoryService) recordToItem(id *authz.Identity, fields map[int]string, record []string) (*model.InventoryItem, error) {
	item := &model.InventoryItem{
		OrganizationID:  id.OrganizationID,
		CreatedByID:     id.UserID,
		ConditionStatus: model.ConditionExcellent,
		CheckoutStatus:  model.CheckoutAvailable,
	}

	for i, canonical := range fields {
		if i >= len(record) {
			continue
		}
		value := strings.TrimSpace(record[i])
		if value == "" {
			continue
		}

		switch canonical {
		case "name":
			item.Name = value
		case "category":
			item.Category = value
		case "model":
			item.Model = value
		case "serial_number":
			item.SerialNumber = value
		case "manufacturer":
			item.Manufacturer = value
		case "purchase_date":
			item.PurchaseDate = value
		case "purchase_price":
			price, err := strconv.ParseFloat(strings.TrimPrefix(value, "$"), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid purchase price %q", value)
			}
			item.PurchasePrice = &price
		case "condition":
			item.ConditionStatus = model.ConditionStatus(strings.ToLower(value))
		case "location":
			item.Location = value
		case "notes":
			item.Notes = value
		case "registration_number":
			item.RegistrationNumber = value
		case "expiration_date":
			item.ExpirationDate = value
		case "maintenance_due":
			item.MaintenanceDue = value
		case "insurance_value":
			insured, err := strconv.ParseFloat(strings.TrimPrefix(value, "$"), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid insurance value %q", value)
			}
			item.InsuranceValue = &insured
		}
	}

	if item.Name == "" {
		return nil, errors.New("missing name")
	}

	return item, nil
}
