package api

import (
	"net/http"
	"time"

	consultapi "github.com/futig/drive-consult/internal/api/consult"
	"github.com/futig/drive-consult/internal/api/docs"
	filesapi "github.com/futig/drive-consult/internal/api/files"
	"github.com/futig/drive-consult/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type RouterConfig struct {
	CORSAllowedOrigins []string
	RequestTimeout     time.Duration
}

// SetupRouter creates and configures the HTTP router
func SetupRouter(
	filesHandler *filesapi.Handler,
	consultHandler *consultapi.Handler,
	cfg RouterConfig,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)                   // Recover from panics
	r.Use(chimiddleware.RequestID)                   // Add request ID
	r.Use(middleware.Logger(logger))                 // Log requests
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))   // Handle CORS
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout)) // Default timeout

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	// Register routes
	filesapi.RegisterRoutes(r, filesHandler)
	consultapi.RegisterRoutes(r, consultHandler)

	return r
}
