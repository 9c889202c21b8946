// internal/handler/membership.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/DroneHQio/dronehq-app/internal/model"
	"github.com/DroneHQio/dronehq-app/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MembershipHandler serves the approval workflow endpoints.
type MembershipHandler struct {
	membershipService *service.MembershipService
	tenantService     *service.TenantService
}

func NewMembershipHandler(membershipService *service.MembershipService, tenantService *service.TenantService) *MembershipHandler {
	return &MembershipHandler{
		membershipService: membershipService,
		tenantService:     tenantService,
	}
}

// ListPendingHandler returns the caller's approval queue.
func (h *MembershipHandler) ListPendingHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	pending, err := h.membershipService.ListPending(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Items:        pending,
		Total:        int64(len(pending)),
	})
}

// ApproveHandler grants a pending membership.
func (h *MembershipHandler) ApproveHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	membershipID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid membership ID")
		return
	}

	m, err := h.membershipService.Approve(r.Context(), id, membershipID, r)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, m)
}

// RejectHandler removes a pending membership.
func (h *MembershipHandler) RejectHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	membershipID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid membership ID")
		return
	}

	if err := h.membershipService.Reject(r.Context(), id, membershipID, r); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

type JoinRequestInput struct {
	Code string `json:"code"`
	Role string `json:"role"`
}

// RequestJoinHandler lets an existing account request membership via a
// join or class code.
func (h *MembershipHandler) RequestJoinHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var input JoinRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	resolved, err := h.tenantService.ValidateCode(r.Context(), input.Code)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	m, err := h.membershipService.RequestJoin(r.Context(), id, resolved, model.Role(input.Role))
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, m)
}

// ListMembersHandler returns the memberships of an organization.
func (h *MembershipHandler) ListMembersHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	orgID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	members, err := h.membershipService.ListMembers(r.Context(), id, orgID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Items:        members,
		Total:        int64(len(members)),
	})
}

type SuperAdminInput struct {
	Email string `json:"email"`
}

// GrantSuperAdminHandler promotes a user to platform administrator.
func (h *MembershipHandler) GrantSuperAdminHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var input SuperAdminInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.membershipService.GrantSuperAdmin(r.Context(), id, input.Email, r); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// RevokeSuperAdminHandler removes a user's platform administrator role.
func (h *MembershipHandler) RevokeSuperAdminHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var input SuperAdminInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.membershipService.RevokeSuperAdmin(r.Context(), id, input.Email, r); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
