// internal/handler/flight.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/DroneHQio/dronehq-app/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// FlightHandler serves flight log and live flight endpoints.
type FlightHandler struct {
	flightService *service.FlightService
}

func NewFlightHandler(flightService *service.FlightService) *FlightHandler {
	return &FlightHandler{flightService: flightService}
}

// CreateHandler records a completed flight.
func (h *FlightHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var input service.FlightLogInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	flight, err := h.flightService.Create(r.Context(), id, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, flight)
}

// GetHandler fetches a single flight.
func (h *FlightHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	flightID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid flight ID")
		return
	}

	flight, err := h.flightService.Get(r.Context(), id, flightID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, flight)
}

// ListHandler pages through the caller's visible flights.
func (h *FlightHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	offset, limit := pagination(r)
	flights, total, err := h.flightService.List(r.Context(), id, offset, limit)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Items:        flights,
		Total:        total,
	})
}

// UpdateHandler edits a flight.
func (h *FlightHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	flightID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid flight ID")
		return
	}

	var input service.FlightLogInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	flight, err := h.flightService.Update(r.Context(), id, flightID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, flight)
}

// DeleteHandler removes a flight.
func (h *FlightHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	flightID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid flight ID")
		return
	}

	if err := h.flightService.Delete(r.Context(), id, flightID); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// StartHandler opens a live flight for the caller.
func (h *FlightHandler) StartHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var input service.StartFlightInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	active, err := h.flightService.Start(r.Context(), id, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, active)
}

// ActiveHandler returns the caller's in-progress flight.
func (h *FlightHandler) ActiveHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	active, err := h.flightService.Active(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, active)
}

type EndFlightInput struct {
	Notes string `json:"notes"`
}

// EndHandler closes the caller's live flight and returns the resulting log.
func (h *FlightHandler) EndHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	// The body is optional; an empty request ends the flight with no notes.
	var input EndFlightInput
	_ = json.NewDecoder(r.Body).Decode(&input)
	defer r.Body.Close()

	flight, err := h.flightService.End(r.Context(), id, input.Notes)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, flight)
}
