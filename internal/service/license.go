// internal/service/license.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/DroneHQio/dronehq-app/internal/authz"
	"github.com/DroneHQio/dronehq-app/internal/domain"
	"github.com/DroneHQio/dronehq-app/internal/model"
	"github.com/DroneHQio/dronehq-app/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// expiringWindow is how far ahead the expiring-licenses view looks.
const expiringWindow = 30 * 24 * time.Hour

// LicenseService tracks pilot certifications and their expirations.
type LicenseService struct {
	repo     repository.LicenseRepositoryIface
	gate     *authz.Gate
	validate *validator.Validate
}

func NewLicenseService(repo repository.LicenseRepositoryIface, gate *authz.Gate) *LicenseService {
	return &LicenseService{
		repo:     repo,
		gate:     gate,
		validate: validator.New(),
	}
}

type LicenseInput struct {
	PilotName        string `json:"pilot_name"`
	LicenseType      string `json:"license_type" validate:"required"`
	LicenseNumber    string `json:"license_number"`
	IssueDate        string `json:"issue_date"`
	ExpirationDate   string `json:"expiration_date"`
	IssuingAuthority string `json:"issuing_authority"`
	Notes            string `json:"notes"`
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", domain.ErrInvalidInput, value)
	}
	return &t, nil
}

// Create records a license for the caller.
func (s *LicenseService) Create(ctx context.Context, id *authz.Identity, input LicenseInput) (*model.License, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	issued, err := parseDate(input.IssueDate)
	if err != nil {
		return nil, err
	}
	expires, err := parseDate(input.ExpirationDate)
	if err != nil {
		return nil, err
	}

	license := &model.License{
		UserID:           id.UserID,
		OrganizationID:   id.OrganizationID,
		PilotName:        input.PilotName,
		LicenseType:      input.LicenseType,
		LicenseNumber:    input.LicenseNumber,
		IssueDate:        issued,
		ExpirationDate:   expires,
		IssuingAuthority: input.IssuingAuthority,
		Notes:            input.Notes,
	}

	if err := s.repo.Create(ctx, license); err != nil {
		return nil, err
	}
	return license, nil
}

// Get fetches one license within the caller's scope.
func (s *LicenseService) Get(ctx context.Context, id *authz.Identity, licenseID uuid.UUID) (*model.License, error) {
	return s.repo.FindByID(ctx, licenseID, s.gate.ScopeFor(id).Apply("user_id"))
}

// List pages through in-scope licenses.
func (s *LicenseService) List(ctx context.Context, id *authz.Identity, offset, limit int) ([]*model.License, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.List(ctx, s.gate.ScopeFor(id).Apply("user_id"), offset, limit)
}

// Expiring returns in-scope licenses expiring within 30 days,
// including already expired ones.
func (s *LicenseService) Expiring(ctx context.Context, id *authz.Identity) ([]*model.License, error) {
	return s.repo.FindExpiring(ctx, s.gate.ScopeFor(id).Apply("user_id"), expiringWindow)
}

// Update edits a license the caller's scope reaches.
func (s *LicenseService) Update(ctx context.Context, id *authz.Identity, licenseID uuid.UUID, input LicenseInput) (*model.License, error) {
	license, err := s.repo.FindByID(ctx, licenseID, s.gate.ScopeFor(id).Apply("user_id"))
	if err != nil {
		return nil, err
	}

	issued, err := parseDate(input.IssueDate)
	if err != nil {
		return nil, err
	}
	expires, err := parseDate(input.ExpirationDate)
	if err != nil {
		return nil, err
	}

	license.PilotName = input.PilotName
	license.LicenseType = input.LicenseType
	license.LicenseNumber = input.LicenseNumber
	license.IssueDate = issued
	license.ExpirationDate = expires
	license.IssuingAuthority = input.IssuingAuthority
	license.Notes = input.Notes

	if err := s.repo.Update(ctx, license); err != nil {
		return nil, err
	}
	return license, nil
}

// Delete removes a license the caller's scope reaches.
func (s *LicenseService) Delete(ctx context.Context, id *authz.Identity, licenseID uuid.UUID) error {
	license, err := s.repo.FindByID(ctx, licenseID, s.gate.ScopeFor(id).Apply("user_id"))
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, license.ID)
}
