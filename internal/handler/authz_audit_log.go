package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/DroneHQio/dronehq-app/internal/repository"
	"github.com/DroneHQio/dronehq-app/internal/service"
)

// AuthzAuditLogHandler handles API requests related to authorization audit logs
type AuthzAuditLogHandler struct {
	auditLogService *service.AuthzAuditLogService
}

// NewAuthzAuditLogHandler creates a new audit log handler
func NewAuthzAuditLogHandler(auditLogService *service.AuthzAuditLogService) *AuthzAuditLogHandler {
	return &AuthzAuditLogHandler{
		auditLogService: auditLogService,
	}
}

// GetAuditLogs handles requests to retrieve audit logs with filtering.
// Super admin only.
func (h *AuthzAuditLogHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	if !id.IsSuperAdmin() {
		respondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	params := repository.QueryParams{}

	// Apply filters from query parameters
	if subjectID := r.URL.Query().Get("subject_id"); subjectID != "" {
		params.SubjectID = subjectID
	}

	if subjectRole := r.URL.Query().Get("subject_role"); subjectRole != "" {
		params.SubjectRole = subjectRole
	}

	if permission := r.URL.Query().Get("permission"); permission != "" {
		params.Permission = permission
	}

	if resourceType := r.URL.Query().Get("resource_type"); resourceType != "" {
		params.ResourceType = resourceType
	}

	if resourceID := r.URL.Query().Get("resource_id"); resourceID != "" {
		params.ResourceID = resourceID
	}

	if resultStr := r.URL.Query().Get("result"); resultStr != "" {
		result, err := strconv.ParseBool(resultStr)
		if err == nil {
			params.Result = &result
		}
	}

	if startTimeStr := r.URL.Query().Get("start_time"); startTimeStr != "" {
		startTime, err := time.Parse(time.RFC3339, startTimeStr)
		if err == nil {
			params.StartTime = startTime
		}
	}

	if endTimeStr := r.URL.Query().Get("end_time"); endTimeStr != "" {
		endTime, err := time.Parse(time.RFC3339, endTimeStr)
		if err == nil {
			params.EndTime = endTime
		}
	}

	// Pagination
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err == nil && limit > 0 {
			params.Limit = limit
		}
	}

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err == nil && offset >= 0 {
			params.Offset = offset
		}
	}

	// Query logs
	logs, total, err := h.auditLogService.GetAuditLogs(r.Context(), params)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve audit logs")
		return
	}

	respondWithJSON(w, http.StatusOK, struct {
		Logs  interface{} `json:"logs"`
		Total int64       `json:"total"`
	}{
		Logs:  logs,
		Total: total,
	})
}
