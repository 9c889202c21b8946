// internal/handler/checklist.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/DroneHQio/dronehq-app/internal/model"
	"github.com/DroneHQio/dronehq-app/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ChecklistHandler serves checklist endpoints.
type ChecklistHandler struct {
	checklistService *service.ChecklistService
}

func NewChecklistHandler(checklistService *service.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{checklistService: checklistService}
}

// TemplateHandler returns the standard item list for a checklist type.
func (h *ChecklistHandler) TemplateHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := identity(w, r); !ok {
		return
	}

	checklistType := model.ChecklistType(chi.URLParam(r, "type"))
	items, err := h.checklistService.Template(checklistType)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":             true,
		"checklist_type": checklistType,
		"items":          items,
	})
}

// SubmitHandler records a completed checklist.
func (h *ChecklistHandler) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var input service.SubmitChecklistInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	checklist, err := h.checklistService.Submit(r.Context(), id, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, checklist)
}

// GetHandler fetches a single checklist.
func (h *ChecklistHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	checklistID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid checklist ID")
		return
	}

	checklist, err := h.checklistService.Get(r.Context(), id, checklistID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, checklist)
}

// ListHandler pages through the caller's visible checklists.
func (h *ChecklistHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	offset, limit := pagination(r)
	checklists, total, err := h.checklistService.List(r.Context(), id, offset, limit)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Items:        checklists,
		Total:        total,
	})
}

// DeleteHandler removes a checklist.
func (h *ChecklistHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	checklistID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid checklist ID")
		return
	}

	if err := h.checklistService.Delete(r.Context(), id, checklistID); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
