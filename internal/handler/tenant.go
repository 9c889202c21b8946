// internal/handler/tenant.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/DroneHQio/dronehq-app/internal/domain"
	"github.com/DroneHQio/dronehq-app/internal/model"
	"github.com/DroneHQio/dronehq-app/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// TenantHandler serves organization and join code endpoints.
type TenantHandler struct {
	tenantService *service.TenantService
}

func NewTenantHandler(tenantService *service.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// ValidateCodeHandler resolves a join code for signup forms. It is the
// one unauthenticated tenant endpoint.
func (h *TenantHandler) ValidateCodeHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	resolved, err := h.tenantService.ValidateCode(r.Context(), code)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	// Signup forms need the target's name and kind, not the whole row.
	resp := map[string]interface{}{
		"ok":           true,
		"kind":         resolved.Kind,
		"organization": resolved.Organization.Name,
	}
	if resolved.Class != nil {
		resp["class"] = resolved.Class.ClassName
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// GetOrganizationHandler returns the caller's organization.
func (h *TenantHandler) GetOrganizationHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	orgID, ok := h.resolveOrgID(w, r)
	if !ok {
		return
	}

	if !id.IsSuperAdmin() && (id.OrganizationID == nil || *id.OrganizationID != orgID) {
		respondWithError(w, http.StatusNotFound, domain.ErrOrganizationNotFound.Error())
		return
	}

	org, err := h.tenantService.GetOrganization(r.Context(), orgID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, org)
}

type UpdateOrganizationInput struct {
	Name          string        `json:"name"`
	Settings      model.JSONMap `json:"settings"`
	BillingStatus string        `json:"billing_status"`
}

// UpdateOrganizationHandler edits tenant settings. Billing status
// changes are reserved for super admins.
func (h *TenantHandler) UpdateOrganizationHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	orgID, ok := h.resolveOrgID(w, r)
	if !ok {
		return
	}

	admin := id.IsSuperAdmin() || (id.Role == model.RoleOrgAdmin && id.OrganizationID != nil && *id.OrganizationID == orgID)
	if !admin {
		respondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	var input UpdateOrganizationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	org, err := h.tenantService.GetOrganization(r.Context(), orgID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	if input.Name != "" {
		org.Name = input.Name
	}
	if input.Settings != nil {
		org.Settings = input.Settings
	}
	if input.BillingStatus != "" {
		if !id.IsSuperAdmin() {
			respondWithError(w, http.StatusForbidden, "Only platform admins may change billing status")
			return
		}
		org.BillingStatus = model.BillingStatus(input.BillingStatus)
	}

	if err := h.tenantService.UpdateOrganization(r.Context(), org); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, org)
}

// ListOrganizationsHandler pages through all tenants. Super admin only.
func (h *TenantHandler) ListOrganizationsHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	if !id.IsSuperAdmin() {
		respondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	offset, limit := pagination(r)
	orgs, total, err := h.tenantService.ListOrganizations(r.Context(), offset, limit)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Items:        orgs,
		Total:        total,
	})
}

// resolveOrgID reads the org from the URL, falling back to the
// caller's own organization.
func (h *TenantHandler) resolveOrgID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		id, ok := identity(w, r)
		if !ok {
			return uuid.Nil, false
		}
		if id.OrganizationID == nil {
			respondWithError(w, http.StatusNotFound, domain.ErrOrganizationNotFound.Error())
			return uuid.Nil, false
		}
		return *id.OrganizationID, true
	}

	orgID, err := uuid.Parse(raw)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return uuid.Nil, false
	}
	return orgID, true
}

// pagination reads offset/limit query parameters.
func pagination(r *http.Request) (int, int) {
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return offset, limit
}
