package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/carebridge/hcms-server/internal/models"
)

// ComplaintService handles the complaint lifecycle
type ComplaintService struct {
	db     Store
	logger *zap.SugaredLogger
}

// NewComplaintService creates a new complaint service
func NewComplaintService(db Store, logger *zap.SugaredLogger) *ComplaintService {
	return &ComplaintService{db: db, logger: logger}
}

const complaintColumns = `id, user_id, hospital_id, category, department, description, status, attachment_url, created_at, resolved_at`

// Create files a new complaint for the user. Status starts as Open and
// resolved_at as null. HospitalID is an external reference and is not
// validated against any hospital registry.
func (s *ComplaintService) Create(ctx context.Context, userID int64, req *models.ComplaintCreateRequest) (*models.Complaint, error) {
	now := time.Now()

	c := models.Complaint{
		UserID:        userID,
		HospitalID:    req.HospitalID,
		Category:      req.Category,
		Department:    req.Department,
		Description:   req.Description,
		Status:        models.StatusOpen,
		AttachmentURL: req.AttachmentURL,
		CreatedAt:     now,
	}

	query := `
		INSERT INTO complaints (user_id, hospital_id, category, department, description, status, attachment_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := s.db.QueryRow(ctx, query,
		c.UserID, c.HospitalID, c.Category,
		c.Department, c.Description, c.Status,
		c.AttachmentURL, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		return nil, fmt.Errorf("insert complaint: %w", err)
	}

	s.logger.Infow("Complaint created",
		"complaint_id", c.ID,
		"user_id", userID,
		"category", c.Category,
	)

	return &c, nil
}

// ListForUser returns all complaints owned by the user, newest first.
func (s *ComplaintService) ListForUser(ctx context.Context, userID int64) ([]models.Complaint, error) {
	query := `SELECT ` + complaintColumns + `
		FROM complaints
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	defer rows.Close()

	complaints := []models.Complaint{}
	for rows.Next() {
		var c models.Complaint
		if err := rows.Scan(&c.ID, &c.UserID, &c.HospitalID, &c.Category,
			&c.Department, &c.Description, &c.Status,
			&c.AttachmentURL, &c.CreatedAt, &c.ResolvedAt); err != nil {
			return nil, fmt.Errorf("scan complaint: %w", err)
		}
		complaints = append(complaints, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}

	return complaints, nil
}

// Resolve marks the complaint Resolved and stamps resolved_at, but only if
// it is owned by the caller. The update is filtered by both id and user_id;
// when no row matches (wrong owner or nonexistent id) the call still
// succeeds — the API has always reported success here, so the miss is only
// logged.
func (s *ComplaintService) Resolve(ctx context.Context, complaintID, userID int64) error {
	query := `
		UPDATE complaints
		SET status = $1, resolved_at = $2
		WHERE id = $3 AND user_id = $4
	`

	tag, err := s.db.Exec(ctx, query, models.StatusResolved, time.Now(), complaintID, userID)
	if err != nil {
		return fmt.Errorf("resolve complaint: %w", err)
	}

	if tag.RowsAffected() == 0 {
		s.logger.Warnw("Resolve matched no rows",
			"complaint_id", complaintID,
			"user_id", userID,
		)
	}

	return nil
}

// Stats returns the user's complaint counts by status bucket. Statuses are
// fetched once and classified in application logic, so pending, solved and
// unsolved always partition total even when rows carry status strings this
// API never writes.
func (s *ComplaintService) Stats(ctx context.Context, userID int64) (*models.ComplaintStats, error) {
	rows, err := s.db.Query(ctx, `SELECT status FROM complaints WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("complaint stats: %w", err)
	}
	defer rows.Close()

	var stats models.ComplaintStats
	for rows.Next() {
		var status models.Status
		if err := rows.Scan(&status); err != nil {
			return nil, fmt.Errorf("scan status: %w", err)
		}

		stats.Total++
		switch status.Bucket() {
		case models.BucketPending:
			stats.Pending++
		case models.BucketSolved:
			stats.Solved++
		case models.BucketUnsolved:
			stats.Unsolved++
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("complaint stats: %w", err)
	}

	return &stats, nil
}
