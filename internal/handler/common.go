package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DroneHQio/dronehq-app/internal/authz"
	"github.com/DroneHQio/dronehq-app/internal/domain"
	"github.com/DroneHQio/dronehq-app/internal/middleware"
)

type ErrorResponse struct { // TypeGen: ErrorResponse
	BaseResponse
	Error   string    `json:"error"`
	Details *[]string `json:"details,omitempty"`
	Code    *string   `json:"error_code,omitempty"`
	Link    *string   `json:"error_link,omitempty"`
}

type BaseResponse struct { // TypeGen: DefaultResponse
	Ok bool `json:"ok"`
}

// ListResponse wraps paginated collections.
type ListResponse struct {
	BaseResponse
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// If encoding fails, logs the error and sends a plain text response
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// identity pulls the resolved identity from the request, writing a 401
// when the middleware did not run.
func identity(w http.ResponseWriter, r *http.Request) (*authz.Identity, bool) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
	}
	return id, ok
}

// respondWithDomainError maps domain sentinels to HTTP status codes.
// Scoped lookups already return not-found for rows outside the
// caller's scope, so nothing here leaks resource existence.
func respondWithDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		respondWithError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrUnauthorized):
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrOrganizationNotFound),
		errors.Is(err, domain.ErrMembershipNotFound),
		errors.Is(err, domain.ErrClassNotFound),
		errors.Is(err, domain.ErrCodeNotFound),
		errors.Is(err, domain.ErrFlightNotFound),
		errors.Is(err, domain.ErrNoActiveFlight),
		errors.Is(err, domain.ErrChecklistNotFound),
		errors.Is(err, domain.ErrLicenseNotFound),
		errors.Is(err, domain.ErrItemNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrMembershipExists),
		errors.Is(err, domain.ErrAlreadyApproved),
		errors.Is(err, domain.ErrFlightInProgress),
		errors.Is(err, domain.ErrItemNotAvailable),
		errors.Is(err, domain.ErrItemNotCheckedOut),
		errors.Is(err, domain.ErrClassFull):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrFlightLimitReached),
		errors.Is(err, domain.ErrOrganizationSuspended):
		respondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, domain.ErrCodeInactive),
		errors.Is(err, domain.ErrChecklistIncomplete):
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
