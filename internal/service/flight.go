// internal/service/flight.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DroneHQio/dronehq-app/internal/authz"
	"github.com/DroneHQio/dronehq-app/internal/domain"
	"github.com/DroneHQio/dronehq-app/internal/model"
	"github.com/DroneHQio/dronehq-app/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// FlightService manages flight logs and in-progress flights. Plan
// limits and billing suspension are checked on every write.
type FlightService struct {
	repo     repository.FlightRepositoryIface
	orgRepo  repository.OrganizationRepositoryIface
	gate     *authz.Gate
	validate *validator.Validate
	now      func() time.Time
}

func NewFlightService(
	repo repository.FlightRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
	gate *authz.Gate,
) *FlightService {
	return &FlightService{
		repo:     repo,
		orgRepo:  orgRepo,
		gate:     gate,
		validate: validator.New(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

type FlightLogInput struct {
	Date           string `json:"date" validate:"required"`
	PilotName      string `json:"pilot_name"`
	DroneModel     string `json:"drone_model" validate:"required"`
	Location       string `json:"location"`
	Weather        string `json:"weather"`
	FlightDuration int    `json:"flight_duration" validate:"gte=0"`
	TakeoffTime    string `json:"takeoff_time"`
	LandingTime    string `json:"landing_time"`
	Notes          string `json:"notes"`
}

// checkWriteAllowed enforces billing state and the monthly plan limit
// before a new log is accepted.
func (s *FlightService) checkWriteAllowed(ctx context.Context, id *authz.Identity, countNew bool) error {
	if id.OrganizationID == nil {
		return nil
	}

	org, err := s.orgRepo.FindByID(ctx, *id.OrganizationID)
	if err != nil {
		return err
	}

	if org.Suspended() {
		return domain.ErrOrganizationSuspended
	}

	if countNew {
		if limit := org.FlightLimit(); limit > 0 {
			count, err := s.repo.CountForUserInMonth(ctx, id.UserID, s.now())
			if err != nil {
				return err
			}
			if count >= int64(limit) {
				return domain.ErrFlightLimitReached
			}
		}
	}

	return nil
}

// Create records a completed flight.
func (s *FlightService) Create(ctx context.Context, id *authz.Identity, input FlightLogInput) (*model.FlightLog, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date", domain.ErrInvalidInput)
	}

	if err := s.checkWriteAllowed(ctx, id, true); err != nil {
		return nil, err
	}

	flight := &model.FlightLog{
		UserID:         id.UserID,
		OrganizationID: id.OrganizationID,
		Date:           date,
		PilotName:      input.PilotName,
		DroneModel:     input.DroneModel,
		Location:       input.Location,
		Weather:        input.Weather,
		FlightDuration: input.FlightDuration,
		TakeoffTime:    input.TakeoffTime,
		LandingTime:    input.LandingTime,
		Notes:          input.Notes,
	}

	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, err
	}
	return flight, nil
}

// Get fetches one flight within the caller's scope.
func (s *FlightService) Get(ctx context.Context, id *authz.Identity, flightID uuid.UUID) (*model.FlightLog, error) {
	return s.repo.FindByID(ctx, flightID, s.gate.ScopeFor(id).Apply("user_id"))
}

// List pages through in-scope flights.
func (s *FlightService) List(ctx context.Context, id *authz.Identity, offset, limit int) ([]*model.FlightLog, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.List(ctx, s.gate.ScopeFor(id).Apply("user_id"), offset, limit)
}

// Update edits a flight the caller can already reach through their
// scope. Owner and organization never change on update.
func (s *FlightService) Update(ctx context.Context, id *authz.Identity, flightID uuid.UUID, input FlightLogInput) (*model.FlightLog, error) {
	flight, err := s.repo.FindByID(ctx, flightID, s.gate.ScopeFor(id).Apply("user_id"))
	if err != nil {
		return nil, err
	}

	if err := s.checkWriteAllowed(ctx, id, false); err != nil {
		return nil, err
	}

	if input.Date != "" {
		date, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date", domain.ErrInvalidInput)
		}
		flight.Date = date
	}
	flight.PilotName = input.PilotName
	flight.DroneModel = input.DroneModel
	flight.Location = input.Location
	flight.Weather = input.Weather
	flight.FlightDuration = input.FlightDuration
	flight.TakeoffTime = input.TakeoffTime
	flight.LandingTime = input.LandingTime
	flight.Notes = input.Notes

	if err := s.repo.Update(ctx, flight); err != nil {
		return nil, err
	}
	return flight, nil
}

// Delete removes a flight the caller's scope reaches.
func (s *FlightService) Delete(ctx context.Context, id *authz.Identity, flightID uuid.UUID) error {
	flight, err := s.repo.FindByID(ctx, flightID, s.gate.ScopeFor(id).Apply("user_id"))
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, flight.ID)
}

type StartFlightInput struct {
	DroneModel string   `json:"drone_model" validate:"required"`
	Location   string   `json:"location"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

// Start opens an active flight. One at a time per pilot.
func (s *FlightService) Start(ctx context.Context, id *authz.Identity, input StartFlightInput) (*model.ActiveFlight, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	if err := s.checkWriteAllowed(ctx, id, true); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindActiveByUser(ctx, id.UserID); err == nil {
		return nil, domain.ErrFlightInProgress
	} else if !errors.Is(err, domain.ErrNoActiveFlight) {
		return nil, err
	}

	flight := &model.ActiveFlight{
		UserID:         id.UserID,
		OrganizationID: id.OrganizationID,
		DroneModel:     input.DroneModel,
		Location:       input.Location,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		StartedAt:      s.now(),
	}

	if err := s.repo.CreateActive(ctx, flight); err != nil {
		return nil, err
	}
	return flight, nil
}

// Active returns the caller's in-progress flight if any.
func (s *FlightService) Active(ctx context.Context, id *authz.Identity) (*model.ActiveFlight, error) {
	return s.repo.FindActiveByUser(ctx, id.UserID)
}

// End closes the caller's active flight and materializes a log with
// the elapsed duration.
func (s *FlightService) End(ctx context.Context, id *authz.Identity, notes string) (*model.FlightLog, error) {
	active, err := s.repo.FindActiveByUser(ctx, id.UserID)
	if err != nil {
		return nil, err
	}

	ended := s.now()
	duration := int(ended.Sub(active.StartedAt).Round(time.Minute) / time.Minute)
	if duration < 1 {
		duration = 1
	}

	flight := &model.FlightLog{
		UserID:         active.UserID,
		OrganizationID: active.OrganizationID,
		Date:           active.StartedAt,
		DroneModel:     active.DroneModel,
		Location:       active.Location,
		FlightDuration: duration,
		TakeoffTime:    active.StartedAt.Format("15:04"),
		LandingTime:    ended.Format("15:04"),
		Notes:          notes,
	}

	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, err
	}

	if err := s.repo.DeleteActive(ctx, active.ID); err != nil {
		return nil, err
	}

	return flight, nil
}
