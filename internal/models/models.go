// Package models defines the data structures used across the application.
// These map to the PostgreSQL schema.
package models

import "time"

// Category classifies a complaint submission. Only these three values are
// accepted on the write path.
type Category string

const (
	CategoryComplaint  Category = "complaint"
	CategoryRequest    Category = "request"
	CategorySuggestion Category = "suggestion"
)

// Valid reports whether the category is one of the accepted values.
func (c Category) Valid() bool {
	switch c {
	case CategoryComplaint, CategoryRequest, CategorySuggestion:
		return true
	}
	return false
}

// Status is the lifecycle state of a complaint. The API only ever writes
// Open and Resolved, but rows touched outside the API (migrations, manual
// fixes) may carry other strings, so read paths must treat Status as open.
type Status string

const (
	StatusOpen     Status = "Open"
	StatusResolved Status = "Resolved"
)

// Bucket is the stats classification of a status.
type Bucket int

const (
	BucketPending Bucket = iota
	BucketSolved
	BucketUnsolved
)

// Bucket maps a status to its stats bucket. Total over all strings:
// anything that is neither Open nor Resolved counts as unsolved.
func (s Status) Bucket() Bucket {
	switch s {
	case StatusOpen:
		return BucketPending
	case StatusResolved:
		return BucketSolved
	default:
		return BucketUnsolved
	}
}

// User is a registered account. Users are never mutated or deleted.
type User struct {
	ID           int64   `json:"id" db:"id"`
	Email        string  `json:"email" db:"email"`
	PasswordHash string  `json:"-" db:"password_hash"`
	Role         string  `json:"role" db:"role"`
	Language     *string `json:"language,omitempty" db:"language"`
	IsAnonymous  *bool   `json:"isAnonymous,omitempty" db:"is_anonymous"`
}

// Complaint is a filed complaint, request, or suggestion against a hospital.
// UserID never changes after creation; ResolvedAt is nil until resolution.
type Complaint struct {
	ID            int64      `json:"id" db:"id"`
	UserID        int64      `json:"userId" db:"user_id"`
	HospitalID    int64      `json:"hospitalId" db:"hospital_id"`
	Category      Category   `json:"category" db:"category"`
	Department    *string    `json:"department" db:"department"`
	Description   *string    `json:"description" db:"description"`
	Status        Status     `json:"status" db:"status"`
	AttachmentURL *string    `json:"attachmentUrl" db:"attachment_url"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	ResolvedAt    *time.Time `json:"resolvedAt" db:"resolved_at"`
}

// Comment is an append-only annotation on a complaint. The complaint is
// referenced by id only; existence is not checked on the write path.
type Comment struct {
	ID          int64     `json:"id" db:"id"`
	ComplaintID int64     `json:"complaintId" db:"complaint_id"`
	AuthorID    int64     `json:"authorId" db:"author_id"`
	Content     string    `json:"content" db:"content"`
	Timestamp   time.Time `json:"timestamp" db:"timestamp"`
}

// ComplaintStats aggregates a user's complaints by status bucket.
// Pending+Solved+Unsolved always equals Total.
type ComplaintStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Solved   int64 `json:"solved"`
	Unsolved int64 `json:"unsolved"`
}

// RegisterRequest is the request body for creating an account
type RegisterRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	Role        string  `json:"role"`
	Language    *string `json:"language,omitempty"`
	IsAnonymous *bool   `json:"isAnonymous,omitempty"`
}

// LoginRequest is the request body for obtaining an access token
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ComplaintCreateRequest is the request body for filing a complaint
type ComplaintCreateRequest struct {
	HospitalID    int64    `json:"hospitalId"`
	Category      Category `json:"category"`
	Department    *string  `json:"department,omitempty"`
	Description   *string  `json:"description,omitempty"`
	AttachmentURL *string  `json:"attachmentUrl,omitempty"`
}

// CommentCreateRequest is the request body for adding a comment
type CommentCreateRequest struct {
	ComplaintID int64  `json:"complaintId"`
	Content     string `json:"content"`
}

// HealthStatus represents the server health check response
type HealthStatus struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Uptime   string `json:"uptime"`
	Database string `json:"database,omitempty"`
}
