package handlers_test

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/carebridge/hcms-server/internal/auth"
	"github.com/carebridge/hcms-server/internal/handlers"
	"github.com/carebridge/hcms-server/internal/middleware"
	"github.com/carebridge/hcms-server/internal/models"
)

// Fake implementations of the handler service interfaces. Each method
// delegates to an optional function field so tests script only what they
// exercise.

type fakeUsers struct {
	registerFn func(ctx context.Context, req *models.RegisterRequest) (int64, error)
	loginFn    func(ctx context.Context, email, password string) (string, error)
}

func (f *fakeUsers) Register(ctx context.Context, req *models.RegisterRequest) (int64, error) {
	if f.registerFn != nil {
		return f.registerFn(ctx, req)
	}
	return 1, nil
}

func (f *fakeUsers) Login(ctx context.Context, email, password string) (string, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, email, password)
	}
	return "", nil
}

type fakeComplaints struct {
	createFn  func(ctx context.Context, userID int64, req *models.ComplaintCreateRequest) (*models.Complaint, error)
	listFn    func(ctx context.Context, userID int64) ([]models.Complaint, error)
	resolveFn func(ctx context.Context, complaintID, userID int64) error
	statsFn   func(ctx context.Context, userID int64) (*models.ComplaintStats, error)
}

func (f *fakeComplaints) Create(ctx context.Context, userID int64, req *models.ComplaintCreateRequest) (*models.Complaint, error) {
	if f.createFn != nil {
		return f.createFn(ctx, userID, req)
	}
	return &models.Complaint{}, nil
}

func (f *fakeComplaints) ListForUser(ctx context.Context, userID int64) ([]models.Complaint, error) {
	if f.listFn != nil {
		return f.listFn(ctx, userID)
	}
	return []models.Complaint{}, nil
}

func (f *fakeComplaints) Resolve(ctx context.Context, complaintID, userID int64) error {
	if f.resolveFn != nil {
		return f.resolveFn(ctx, complaintID, userID)
	}
	return nil
}

func (f *fakeComplaints) Stats(ctx context.Context, userID int64) (*models.ComplaintStats, error) {
	if f.statsFn != nil {
		return f.statsFn(ctx, userID)
	}
	return &models.ComplaintStats{}, nil
}

type fakeComments struct {
	addFn  func(ctx context.Context, complaintID, authorID int64, content string) (*models.Comment, error)
	listFn func(ctx context.Context, complaintID int64) ([]models.Comment, error)
}

func (f *fakeComments) Add(ctx context.Context, complaintID, authorID int64, content string) (*models.Comment, error) {
	if f.addFn != nil {
		return f.addFn(ctx, complaintID, authorID, content)
	}
	return &models.Comment{}, nil
}

func (f *fakeComments) ListFor(ctx context.Context, complaintID int64) ([]models.Comment, error) {
	if f.listFn != nil {
		return f.listFn(ctx, complaintID)
	}
	return []models.Comment{}, nil
}

// newTestRouter mounts the handlers exactly as cmd/server does, minus the
// operational middleware.
func newTestRouter(tokens *auth.TokenManager, users handlers.UserAccounts, complaints handlers.Complaints, comments handlers.Comments) http.Handler {
	sugar := zap.NewNop().Sugar()

	authHandler := handlers.NewAuthHandler(users, sugar)
	complaintHandler := handlers.NewComplaintHandler(complaints, sugar)
	commentHandler := handlers.NewCommentHandler(comments, sugar)

	r := chi.NewRouter()
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Get("/complaints/{id}/comments", commentHandler.ListForComplaint)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(tokens))

		r.Post("/complaints", complaintHandler.Create)
		r.Get("/complaints", complaintHandler.List)
		r.Get("/complaints/stats", complaintHandler.Stats)
		r.Post("/complaints/{id}/resolve", complaintHandler.Resolve)
		r.Post("/comments", commentHandler.Create)
	})

	return r
}

func testTokens() *auth.TokenManager {
	return auth.NewTokenManager("handler-test-secret", time.Hour)
}
