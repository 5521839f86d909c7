// Package main is the entry point for the HCMS backend server.
// It provides a REST API for a healthcare complaint-management system:
// account registration and login, bearer-token authentication, complaint
// filing and resolution, per-user stats, and complaint comment threads.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/carebridge/hcms-server/internal/auth"
	"github.com/carebridge/hcms-server/internal/config"
	"github.com/carebridge/hcms-server/internal/database"
	"github.com/carebridge/hcms-server/internal/handlers"
	"github.com/carebridge/hcms-server/internal/middleware"
	"github.com/carebridge/hcms-server/internal/services"
)

func main() {
	// Initialize structured logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	sugar := logger.Sugar()

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		sugar.Fatalf("Failed to load config: %v", err)
	}

	sugar.Infow("Starting HCMS Server",
		"port", cfg.Port,
		"env", cfg.Environment,
	)

	// Initialize database connection pool
	db, err := database.NewPool(cfg.DatabaseURL)
	if err != nil {
		sugar.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Redis only backs the rate limiter; run without it if unreachable
	rdb, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		sugar.Warnw("Redis unavailable, rate limiting disabled", "error", err)
		rdb = nil
	} else {
		defer rdb.Close()
	}

	// Token manager: symmetric secret, fixed TTL, loaded once for the
	// process lifetime
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)

	// Initialize services
	userSvc := services.NewUserService(db, tokens, cfg.BcryptCost, sugar)
	complaintSvc := services.NewComplaintService(db, sugar)
	commentSvc := services.NewCommentService(db, sugar)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userSvc, sugar)
	complaintHandler := handlers.NewComplaintHandler(complaintSvc, sugar)
	commentHandler := handlers.NewCommentHandler(commentSvc, sugar)
	healthHandler := handlers.NewHealthHandler(db, sugar)

	// Build router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.StructuredLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.SecurityHeaders())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Rate limiting
	r.Use(middleware.RateLimit(rdb, cfg.RateLimitRPM, sugar))

	// Health checks
	r.Get("/health", healthHandler.Check)
	r.Get("/health/ready", healthHandler.Ready)

	// Public endpoints
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	// Comment threads are readable without a token; writing one is not.
	r.Get("/complaints/{id}/comments", commentHandler.ListForComplaint)

	// Authenticated endpoints
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(tokens))

		r.Post("/complaints", complaintHandler.Create)
		r.Get("/complaints", complaintHandler.List)
		r.Get("/complaints/stats", complaintHandler.Stats)
		r.Post("/complaints/{id}/resolve", complaintHandler.Resolve)
		r.Post("/comments", commentHandler.Create)
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sugar.Infof("Server listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	sugar.Info("Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		sugar.Fatalf("Forced shutdown: %v", err)
	}

	sugar.Info("Server stopped")
}
