// internal/service/checklist.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/DroneHQio/dronehq-app/internal/authz"
	"github.com/DroneHQio/dronehq-app/internal/domain"
	"github.com/DroneHQio/dronehq-app/internal/model"
	"github.com/DroneHQio/dronehq-app/internal/repository"
	"github.com/google/uuid"
)

// Standard checklist templates. Organizations start from these; the
// submitted items may differ when a pilot adds their own.
var checklistTemplates = map[model.ChecklistType][]string{
	model.ChecklistPreFlight: {
		"Weather conditions checked",
		"Airspace restrictions verified",
		"Battery fully charged",
		"Propellers inspected for damage",
		"Firmware up to date",
		"Memory card inserted with free space",
		"Home point set",
		"Flight area clear of people",
	},
	model.ChecklistPostFlight: {
		"Battery removed and stored",
		"Aircraft inspected for damage",
		"Propellers removed or secured",
		"Flight logged",
		"Media files backed up",
		"Equipment packed and stored",
	},
}

// ChecklistService manages pre- and post-flight checklists.
type ChecklistService struct {
	repo repository.ChecklistRepositoryIface
	gate *authz.Gate
}

func NewChecklistService(repo repository.ChecklistRepositoryIface, gate *authz.Gate) *ChecklistService {
	return &ChecklistService{repo: repo, gate: gate}
}

// Template returns the standard item list for a checklist type.
func (s *ChecklistService) Template(checklistType model.ChecklistType) ([]model.ChecklistItem, error) {
	names, ok := checklistTemplates[checklistType]
	if !ok {
		return nil, fmt.Errorf("%w: unknown checklist type %q", domain.ErrInvalidInput, checklistType)
	}

	items := make([]model.ChecklistItem, len(names))
	for i, name := range names {
		items[i] = model.ChecklistItem{Item: name}
	}
	return items, nil
}

type SubmitChecklistInput struct {
	ChecklistType model.ChecklistType  `json:"checklist_type"`
	PilotName     string               `json:"pilot_name"`
	DroneModel    string               `json:"drone_model"`
	Location      string               `json:"location"`
	Date          string               `json:"date"`
	Items         model.ChecklistItems `json:"items"`
	Notes         string               `json:"notes"`
}

// Submit records a completed checklist. Every item must be checked
// off; an incomplete checklist is rejected rather than stored.
func (s *ChecklistService) Submit(ctx context.Context, id *authz.Identity, input SubmitChecklistInput) (*model.Checklist, error) {
	if input.ChecklistType != model.ChecklistPreFlight && input.ChecklistType != model.ChecklistPostFlight {
		return nil, fmt.Errorf("%w: unknown checklist type", domain.ErrInvalidInput)
	}
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("%w: checklist has no items", domain.ErrInvalidInput)
	}

	for _, item := range input.Items {
		if !item.Completed {
			return nil, domain.ErrChecklistIncomplete
		}
	}

	date := time.Now().UTC()
	if input.Date != "" {
		parsed, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date", domain.ErrInvalidInput)
		}
		date = parsed
	}

	checklist := &model.Checklist{
		UserID:         id.UserID,
		OrganizationID: id.OrganizationID,
		ChecklistType:  input.ChecklistType,
		PilotName:      input.PilotName,
		DroneModel:     input.DroneModel,
		Location:       input.Location,
		Date:           date,
		Items:          input.Items,
		Notes:          input.Notes,
		CompletedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, checklist); err != nil {
		return nil, err
	}
	return checklist, nil
}

// Get fetches one checklist within the caller's scope.
func (s *ChecklistService) Get(ctx context.Context, id *authz.Identity, checklistID uuid.UUID) (*model.Checklist, error) {
	return s.repo.FindByID(ctx, checklistID, s.gate.ScopeFor(id).Apply("user_id"))
}

// List pages through in-scope checklists.
func (s *ChecklistService) List(ctx context.Context, id *authz.Identity, offset, limit int) ([]*model.Checklist, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.List(ctx, s.gate.ScopeFor(id).Apply("user_id"), offset, limit)
}

// Delete removes a checklist the caller's scope reaches.
func (s *ChecklistService) Delete(ctx context.Context, id *authz.Identity, checklistID uuid.UUID) error {
	checklist, err := s.repo.FindByID(ctx, checklistID, s.gate.ScopeFor(id).Apply("user_id"))
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, checklist.ID)
}
