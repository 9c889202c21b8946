// internal/handler/license.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/DroneHQio/dronehq-app/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// LicenseHandler serves pilot certification endpoints.
type LicenseHandler struct {
	licenseService *service.LicenseService
}

func NewLicenseHandler(licenseService *service.LicenseService) *LicenseHandler {
	return &LicenseHandler{licenseService: licenseService}
}

// CreateHandler records a license for the caller.
func (h *LicenseHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var input service.LicenseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	license, err := h.licenseService.Create(r.Context(), id, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, license)
}

// GetHandler fetches a single license.
func (h *LicenseHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	licenseID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid license ID")
		return
	}

	license, err := h.licenseService.Get(r.Context(), id, licenseID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, license)
}

// ListHandler pages through the caller's visible licenses.
func (h *LicenseHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	offset, limit := pagination(r)
	licenses, total, err := h.licenseService.List(r.Context(), id, offset, limit)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Items:        licenses,
		Total:        total,
	})
}

// ExpiringHandler lists licenses expiring within the next 30 days.
func (h *LicenseHandler) ExpiringHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	licenses, err := h.licenseService.Expiring(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Items:        licenses,
		Total:        int64(len(licenses)),
	})
}

// UpdateHandler edits a license.
func (h *LicenseHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	licenseID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid license ID")
		return
	}

	var input service.LicenseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	license, err := h.licenseService.Update(r.Context(), id, licenseID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, license)
}

// DeleteHandler removes a license.
func (h *LicenseHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	licenseID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid license ID")
		return
	}

	if err := h.licenseService.Delete(r.Context(), id, licenseID); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
