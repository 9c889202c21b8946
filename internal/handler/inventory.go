// internal/handler/inventory.go
package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/DroneHQio/dronehq-app/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxImportSize caps CSV uploads at 10 MB.
const maxImportSize = 10 << 20

// InventoryHandler serves equipment tracking endpoints.
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// CreateHandler adds a single inventory item.
func (h *InventoryHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var input service.InventoryItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	item, err := h.inventoryService.Create(r.Context(), id, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, item)
}

// GetHandler fetches a single item.
func (h *InventoryHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	item, err := h.inventoryService.Get(r.Context(), id, itemID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, item)
}

// ListHandler pages through the caller's visible inventory.
func (h *InventoryHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	offset, limit := pagination(r)
	items, total, err := h.inventoryService.List(r.Context(), id, offset, limit)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Items:        items,
		Total:        total,
	})
}

// UpdateHandler edits an item.
func (h *InventoryHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var input service.InventoryItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	item, err := h.inventoryService.Update(r.Context(), id, itemID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, item)
}

// DeleteHandler removes an item.
func (h *InventoryHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	if err := h.inventoryService.Delete(r.Context(), id, itemID); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// CheckoutHandler marks an item as taken by the caller.
func (h *InventoryHandler) CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	item, err := h.inventoryService.Checkout(r.Context(), id, itemID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, item)
}

// CheckinHandler returns a checked-out item.
func (h *InventoryHandler) CheckinHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	item, err := h.inventoryService.Checkin(r.Context(), id, itemID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, item)
}

// ImportHandler bulk-loads inventory from an uploaded CSV. It accepts
// either a multipart form with a "file" field or a raw CSV body.
func (h *InventoryHandler) ImportHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var src io.Reader
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImportSize); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid multipart upload")
			return
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Missing file field")
			return
		}
		defer file.Close()
		src = file
	} else {
		src = http.MaxBytesReader(w, r.Body, maxImportSize)
		defer r.Body.Close()
	}

	result, err := h.inventoryService.ImportCSV(r.Context(), id, src)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}
