// internal/handler/auth.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/DroneHQio/dronehq-app/internal/domain"
	"github.com/DroneHQio/dronehq-app/internal/model"
	"github.com/DroneHQio/dronehq-app/internal/service"
	chmw "github.com/go-chi/chi/v5/middleware"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

type SignupResponse struct {
	BaseResponse
	User       *model.User       `json:"user" sanitize:"user"`
	Membership *model.Membership `json:"membership,omitempty"`
	Token      string            `json:"token"`
}

func (h *AuthHandler) signupError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "User registration error", "error", err, "requestID", chmw.GetReqID(r.Context()))
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		respondWithError(w, http.StatusConflict, "Email already exists")
	case errors.Is(err, domain.ErrPasswordsDoNotMatch):
		respondWithError(w, http.StatusBadRequest, "Passwords do not match")
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrCodeNotFound):
		respondWithError(w, http.StatusNotFound, "Code not found")
	case errors.Is(err, domain.ErrCodeInactive):
		respondWithError(w, http.StatusUnprocessableEntity, "Code is not active")
	case errors.Is(err, domain.ErrPasswordTooWeak):
		respondWithError(w, http.StatusBadRequest, "Password does not meet requirements")
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// SignupSoloHandler registers an independent pilot with a personal
// organization.
func (h *AuthHandler) SignupSoloHandler(w http.ResponseWriter, r *http.Request) {
	var input service.SoloSignupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.userService.SignupSolo(r.Context(), input)
	if err != nil {
		h.signupError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, SignupResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         output.User,
		Membership:   output.Membership,
		Token:        output.Token,
	})
}

// SignupOrganizationHandler registers a new tenant and its first admin.
func (h *AuthHandler) SignupOrganizationHandler(w http.ResponseWriter, r *http.Request) {
	var input service.OrgSignupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.userService.SignupOrganization(r.Context(), input)
	if err != nil {
		h.signupError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, SignupResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         output.User,
		Membership:   output.Membership,
		Token:        output.Token,
	})
}

// SignupWithCodeHandler registers a teacher or student via a join or
// class code. The resulting membership is pending approval.
func (h *AuthHandler) SignupWithCodeHandler(w http.ResponseWriter, r *http.Request) {
	var input service.JoinSignupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.userService.SignupWithCode(r.Context(), input)
	if err != nil {
		h.signupError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, SignupResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         output.User,
		Membership:   output.Membership,
		Token:        output.Token,
	})
}

type LoginResponse struct {
	BaseResponse
	User  *model.User `json:"user,omitempty" sanitize:"user"`
	Token string      `json:"token,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.userService.Authenticate(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "User login error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			respondWithJSON(w, http.StatusUnauthorized, LoginResponse{
				Error: "Invalid email or password",
			})
		case errors.Is(err, domain.ErrUnauthorized):
			respondWithError(w, http.StatusForbidden, "Account suspended")
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, LoginResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         output.User,
		Token:        output.Token,
	})
}

func (h *AuthHandler) VerifyHandler(w http.ResponseWriter, r *http.Request) {
	var input service.VerifyInput

	query := r.URL.Query()
	input.Code = query.Get("code")
	input.UserID = query.Get("user")

	if err := h.userService.VerifyEmail(r.Context(), input); err != nil {
		slog.ErrorContext(r.Context(), "User verification error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respondWithError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrInvalidVerificationCode):
			respondWithError(w, http.StatusBadRequest, "Invalid verification code")
		case errors.Is(err, domain.ErrAlreadyVerified):
			respondWithError(w, http.StatusBadRequest, "User already verified")
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "User verified successfully"})
}

// MeHandler returns the caller's resolved identity.
func (h *AuthHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":              true,
		"user_id":         id.UserID,
		"email":           id.Email,
		"role":            id.Role,
		"organization_id": id.OrganizationID,
		"class_id":        id.ClassID,
	})
}

// ProfileHandler returns the caller's profile.
func (h *AuthHandler) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(r.Context(), id.UserID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}

// UpdateProfileHandler applies profile edits for the caller.
func (h *AuthHandler) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var input service.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	profile, err := h.userService.UpdateProfile(r.Context(), id.UserID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}
