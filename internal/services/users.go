package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/carebridge/hcms-server/internal/auth"
	"github.com/carebridge/hcms-server/internal/models"
)

// UserService handles registration and login
type UserService struct {
	db         Store
	tokens     *auth.TokenManager
	bcryptCost int
	logger     *zap.SugaredLogger
}

// NewUserService creates a new user service
func NewUserService(db Store, tokens *auth.TokenManager, bcryptCost int, logger *zap.SugaredLogger) *UserService {
	return &UserService{db: db, tokens: tokens, bcryptCost: bcryptCost, logger: logger}
}

// Register creates a new user account and returns its id.
// Returns ErrDuplicateEmail if the email already has an account. Emails are
// matched byte-exact; no case normalization happens here or at login.
func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (int64, error) {
	var existing int64
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, req.Email).Scan(&existing)
	if err == nil {
		return 0, ErrDuplicateEmail
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	query := `
		INSERT INTO users (email, password_hash, role, language, is_anonymous)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err = s.db.QueryRow(ctx, query, req.Email, hash, req.Role, req.Language, req.IsAnonymous).Scan(&id)
	if err != nil {
		// Lost the race between the lookup above and the insert.
		if isUniqueViolation(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}

	s.logger.Infow("User registered", "user_id", id, "role", req.Role)
	return id, nil
}

// Login verifies the credentials and issues an access token.
// Any failure is ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	var (
		id   int64
		hash string
	)
	err := s.db.QueryRow(ctx, `SELECT id, password_hash FROM users WHERE email = $1`, email).Scan(&id, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("lookup user: %w", err)
	}

	if !auth.VerifyPassword(password, hash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(id)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}
