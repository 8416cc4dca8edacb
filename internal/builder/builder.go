package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/futig/drive-consult/internal/api"
	consultapi "github.com/futig/drive-consult/internal/api/consult"
	filesapi "github.com/futig/drive-consult/internal/api/files"
	"github.com/futig/drive-consult/internal/config"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	services, err := buildServices(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	// Setup API handlers
	filesHandler := filesapi.NewHandler(services.Files)
	consultHandler := consultapi.NewHandler(services.Consult)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(filesHandler, consultHandler, api.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RequestTimeout:     cfg.RequestTimeout,
	}, logger)
	logger.Info("HTTP router configured")

	// Consultations wait on the model, so the write timeout follows the request timeout
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server:          server,
		services:        services,
		logger:          logger,
		shutdownTimeout: cfg.ShutdownTimeout,
	}, nil
}
