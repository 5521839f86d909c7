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

// Comments is the slice of the comment service the handlers need.
type Comments interface {
	Add(ctx context.Context, complaintID, authorID int64, content string) (*models.Comment, error)
	ListFor(ctx context.Context, complaintID int64) ([]models.Comment, error)
}

// CommentHandler handles comment endpoints. Writing a comment requires a
// bearer token; reading a complaint's thread does not. The asymmetry is
// deliberate and enforced at route registration, not here.
type CommentHandler struct {
	comments Comments
	logger   *zap.SugaredLogger
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(comments Comments, logger *zap.SugaredLogger) *CommentHandler {
	return &CommentHandler{comments: comments, logger: logger}
}

// Create handles POST /comments
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	var req models.CommentCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment, err := h.comments.Add(r.Context(), req.ComplaintID, authorID, req.Content)
	if err != nil {
		h.logger.Errorw("Failed to add comment", "error", err, "complaint_id", req.ComplaintID)
		respondError(w, http.StatusInternalServerError, "Failed to add comment")
		return
	}

	respondJSON(w, http.StatusCreated, comment)
}

// ListForComplaint handles GET /complaints/{id}/comments
func (h *CommentHandler) ListForComplaint(w http.ResponseWriter, r *http.Request) {
	complaintID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid complaint id")
		return
	}

	comments, err := h.comments.ListFor(r.Context(), complaintID)
	if err != nil {
		h.logger.Errorw("Failed to list comments", "error", err, "complaint_id", complaintID)
		respondError(w, http.StatusInternalServerError, "Failed to list comments")
		return
	}

	respondJSON(w, http.StatusOK, comments)
}
