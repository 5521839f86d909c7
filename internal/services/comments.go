package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/carebridge/hcms-server/internal/models"
)

// CommentService handles complaint comment threads. Comments are
// append-only: there is no edit or delete.
type CommentService struct {
	db     Store
	logger *zap.SugaredLogger
}

// NewCommentService creates a new comment service
func NewCommentService(db Store, logger *zap.SugaredLogger) *CommentService {
	return &CommentService{db: db, logger: logger}
}

// Add appends a comment to a complaint's thread. The complaint id is taken
// as given: no existence check, and any authenticated user may comment on
// any complaint.
func (s *CommentService) Add(ctx context.Context, complaintID, authorID int64, content string) (*models.Comment, error) {
	c := models.Comment{
		ComplaintID: complaintID,
		AuthorID:    authorID,
		Content:     content,
		Timestamp:   time.Now(),
	}

	query := `
		INSERT INTO comments (complaint_id, author_id, content, timestamp)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := s.db.QueryRow(ctx, query, c.ComplaintID, c.AuthorID, c.Content, c.Timestamp).Scan(&c.ID)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	return &c, nil
}

// ListFor returns the complaint's comments, oldest first.
func (s *CommentService) ListFor(ctx context.Context, complaintID int64) ([]models.Comment, error) {
	query := `
		SELECT id, complaint_id, author_id, content, timestamp
		FROM comments
		WHERE complaint_id = $1
		ORDER BY timestamp ASC
	`

	rows, err := s.db.Query(ctx, query, complaintID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.ComplaintID, &c.AuthorID, &c.Content, &c.Timestamp); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return comments, nil
}
