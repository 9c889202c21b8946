// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/DroneHQio/dronehq-app/internal/auth"
	"github.com/DroneHQio/dronehq-app/internal/authz"
	"github.com/DroneHQio/dronehq-app/internal/config"
	"github.com/DroneHQio/dronehq-app/internal/email"
	"github.com/DroneHQio/dronehq-app/internal/handler"
	"github.com/DroneHQio/dronehq-app/internal/middleware"
	"github.com/DroneHQio/dronehq-app/internal/repository"
	"github.com/DroneHQio/dronehq-app/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	classRepo := repository.NewClassRepository(db)
	signupRepo := repository.NewSignupRepository(db)
	flightRepo := repository.NewFlightRepository(db)
	checklistRepo := repository.NewChecklistRepository(db)
	licenseRepo := repository.NewLicenseRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	auditLogRepo := repository.NewAuthzAuditLogRepository(db)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)
	resolver := authz.NewResolver(membershipRepo, cfg.SuperAdminEmail)
	gate := authz.NewGate()
	auditLogger := authz.NewDBAuditLogger(auditLogRepo)

	// Initialize email service
	emailService, err := email.NewEmailService(cfg, email.ProviderSendgrid)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	// Initialize cache service
	cacheConfig := service.CacheConfig{
		TTL:         5 * time.Minute,
		CleanupFreq: 1 * time.Minute,
	}
	cacheService := service.NewCacheService(cacheConfig)
	defer cacheService.Close()

	// Initialize domain services
	tenantService := service.NewTenantService(orgRepo, classRepo, userRepo, cacheService)
	userService := service.NewUserService(
		signupRepo,
		userRepo,
		membershipRepo,
		tenantService,
		passwordHasher,
		tokenManager,
		emailService,
		cfg,
	)
	membershipService := service.NewMembershipService(
		membershipRepo,
		classRepo,
		orgRepo,
		userRepo,
		gate,
		auditLogger,
		emailService,
		cfg,
	)
	classService := service.NewClassService(classRepo, membershipRepo, tenantService, gate)
	flightService := service.NewFlightService(flightRepo, orgRepo, gate)
	checklistService := service.NewChecklistService(checklistRepo, gate)
	licenseService := service.NewLicenseService(licenseRepo, gate)
	inventoryService := service.NewInventoryService(inventoryRepo, gate)
	auditLogService := service.NewAuthzAuditLogService(auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService)
	tenantHandler := handler.NewTenantHandler(tenantService)
	membershipHandler := handler.NewMembershipHandler(membershipService, tenantService)
	classHandler := handler.NewClassHandler(classService)
	flightHandler := handler.NewFlightHandler(flightService)
	checklistHandler := handler.NewChecklistHandler(checklistService)
	licenseHandler := handler.NewLicenseHandler(licenseService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	auditLogHandler := handler.NewAuthzAuditLogHandler(auditLogService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.Get("/signup/verify", authHandler.VerifyHandler)

			r.Group(func(r chi.Router) {
				r.Use(chimw.AllowContentType("application/json"))

				r.Post("/signup/solo", authHandler.SignupSoloHandler)
				r.Post("/signup/organization", authHandler.SignupOrganizationHandler)
				r.Post("/signup/code", authHandler.SignupWithCodeHandler)
				r.Post("/login", authHandler.LoginHandler)
			})
		})

		// Code validation backs the signup form, so it is public too.
		r.Get("/codes/{code}", tenantHandler.ValidateCodeHandler)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(tokenManager, resolver))

			r.Get("/me", authHandler.MeHandler)
			r.Get("/profile", authHandler.ProfileHandler)
			r.Put("/profile", authHandler.UpdateProfileHandler)

			r.Route("/organizations", func(r chi.Router) {
				r.Get("/", tenantHandler.ListOrganizationsHandler)
				r.Get("/{id}", tenantHandler.GetOrganizationHandler)
				r.Put("/{id}", tenantHandler.UpdateOrganizationHandler)
				r.Get("/{id}/members", membershipHandler.ListMembersHandler)
			})

			r.Route("/memberships", func(r chi.Router) {
				r.Get("/pending", membershipHandler.ListPendingHandler)
				r.Post("/join", membershipHandler.RequestJoinHandler)
				r.Post("/{id}/approve", membershipHandler.ApproveHandler)
				r.Post("/{id}/reject", membershipHandler.RejectHandler)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Post("/super-admins", membershipHandler.GrantSuperAdminHandler)
				r.Delete("/super-admins", membershipHandler.RevokeSuperAdminHandler)
				r.Get("/audit-logs", auditLogHandler.GetAuditLogs)
			})

			r.Route("/classes", func(r chi.Router) {
				r.Get("/", classHandler.ListHandler)
				r.Post("/", classHandler.CreateHandler)
				r.Put("/{id}/active", classHandler.SetActiveHandler)
				r.Get("/{id}/roster", classHandler.RosterHandler)
				r.Delete("/{id}", classHandler.DeleteHandler)
			})

			r.Route("/flights", func(r chi.Router) {
				r.Get("/", flightHandler.ListHandler)
				r.Post("/", flightHandler.CreateHandler)
				r.Post("/start", flightHandler.StartHandler)
				r.Get("/active", flightHandler.ActiveHandler)
				r.Post("/end", flightHandler.EndHandler)
				r.Get("/{id}", flightHandler.GetHandler)
				r.Put("/{id}", flightHandler.UpdateHandler)
				r.Delete("/{id}", flightHandler.DeleteHandler)
			})

			r.Route("/checklists", func(r chi.Router) {
				r.Get("/", checklistHandler.ListHandler)
				r.Post("/", checklistHandler.SubmitHandler)
				r.Get("/templates/{type}", checklistHandler.TemplateHandler)
				r.Get("/{id}", checklistHandler.GetHandler)
				r.Delete("/{id}", checklistHandler.DeleteHandler)
			})

			r.Route("/licenses", func(r chi.Router) {
				r.Get("/", licenseHandler.ListHandler)
				r.Post("/", licenseHandler.CreateHandler)
				r.Get("/expiring", licenseHandler.ExpiringHandler)
				r.Get("/{id}", licenseHandler.GetHandler)
				r.Put("/{id}", licenseHandler.UpdateHandler)
				r.Delete("/{id}", licenseHandler.DeleteHandler)
			})

			r.Route("/inventory", func(r chi.Router) {
				r.Get("/", inventoryHandler.ListHandler)
				r.Post("/", inventoryHandler.CreateHandler)
				r.Post("/import", inventoryHandler.ImportHandler)
				r.Get("/{id}", inventoryHandler.GetHandler)
				r.Put("/{id}", inventoryHandler.UpdateHandler)
				r.Delete("/{id}", inventoryHandler.DeleteHandler)
				r.Post("/{id}/checkout", inventoryHandler.CheckoutHandler)
				r.Post("/{id}/checkin", inventoryHandler.CheckinHandler)
			})
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					logger.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte("{\"error\":\"error encountered\"}"))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
