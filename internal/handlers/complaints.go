package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/carebridge/hcms-server/internal/middleware"
	"github.com/carebridge/hcms-server/internal/models"
)

// Complaints is the slice of the complaint service the handlers need.
type Complaints interface {
	Create(ctx context.Context, userID int64, req *models.ComplaintCreateRequest) (*models.Complaint, error)
	ListForUser(ctx context.Context, userID int64) ([]models.Complaint, error)
	Resolve(ctx context.Context, complaintID, userID int64) error
	Stats(ctx context.Context, userID int64) (*models.ComplaintStats, error)
}

// ComplaintHandler handles complaint-related HTTP endpoints
type ComplaintHandler struct {
	complaints Complaints
	logger     *zap.SugaredLogger
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(complaints Complaints, logger *zap.SugaredLogger) *ComplaintHandler {
	return &ComplaintHandler{complaints: complaints, logger: logger}
}

// Create handles POST /complaints
func (h *ComplaintHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	var req models.ComplaintCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !req.Category.Valid() {
		respondError(w, http.StatusBadRequest, "Category must be one of: complaint, request, suggestion")
		return
	}

	complaint, err := h.complaints.Create(r.Context(), userID, &req)
	if err != nil {
		h.logger.Errorw("Failed to create complaint", "error", err, "user_id", userID)
		respondError(w, http.StatusInternalServerError, "Failed to create complaint")
		return
	}

	respondJSON(w, http.StatusCreated, complaint)
}

// List handles GET /complaints
func (h *ComplaintHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	complaints, err := h.complaints.ListForUser(r.Context(), userID)
	if err != nil {
		h.logger.Errorw("Failed to list complaints", "error", err, "user_id", userID)
		respondError(w, http.StatusInternalServerError, "Failed to list complaints")
		return
	}

	respondJSON(w, http.StatusOK, complaints)
}

// Stats handles GET /complaints/stats
func (h *ComplaintHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	stats, err := h.complaints.Stats(r.Context(), userID)
	if err != nil {
		h.logger.Errorw("Failed to fetch complaint stats", "error", err, "user_id", userID)
		respondError(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// Resolve handles POST /complaints/{id}/resolve.
// The response is a success message whether or not the caller owned the
// complaint; ownership is enforced inside the conditional update.
func (h *ComplaintHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	complaintID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid complaint id")
		return
	}

	if err := h.complaints.Resolve(r.Context(), complaintID, userID); err != nil {
		h.logger.Errorw("Failed to resolve complaint", "error", err, "complaint_id", complaintID)
		respondError(w, http.StatusInternalServerError, "Failed to resolve complaint")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Complaint marked as resolved"})
}
