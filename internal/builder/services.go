package builder

import (
	"context"
	"fmt"

	"github.com/futig/drive-consult/internal/config"
	"github.com/futig/drive-consult/internal/extractor"
	"github.com/futig/drive-consult/internal/integration/drive"
	"github.com/futig/drive-consult/internal/integration/llm"
	"github.com/futig/drive-consult/internal/pkg/validator"
	"github.com/futig/drive-consult/internal/usecase/consult"
	"github.com/futig/drive-consult/internal/usecase/files"
	"go.uber.org/zap"
)

// Services holds the use cases shared by the HTTP server and the CLI
type Services struct {
	Files   *files.FilesUsecase
	Consult *consult.ConsultUsecase
	Logger  *zap.Logger

	model llm.Connector
}

// Close releases the model client
func (s *Services) Close() error {
	if s.model == nil {
		return nil
	}
	return s.model.Close()
}

// BuildServices loads the named environment and wires the use cases without HTTP.
// Unless verbose is set only errors are logged.
func BuildServices(environment string, verbose bool) (*Services, error) {
	cfg, err := config.Load(environment)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	level := "error"
	if verbose {
		level = cfg.LogLevel
	}

	logger, err := setupLogger(level)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	return buildServices(context.Background(), cfg, logger)
}

func buildServices(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Services, error) {
	if err := extractor.SetLicenseKey(cfg.UniofficeLicenseKey); err != nil {
		return nil, fmt.Errorf("set unioffice license: %w", err)
	}

	// Initialize external service connectors (with mock support)
	var storage consult.Storage
	var model llm.Connector

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		storage = drive.NewMockConnector(cfg.DriveCfg.RootFolderID, logger)
		model = llm.NewMockConnector(logger)
	} else {
		logger.Info("Using real connectors for external services",
			zap.String("llm_provider", cfg.LLMConnectorCfg.Provider),
			zap.String("llm_model", cfg.LLMConnectorCfg.Model),
		)

		driveConnector, err := drive.NewConnector(ctx, cfg.DriveCfg, logger)
		if err != nil {
			return nil, fmt.Errorf("create drive connector: %w", err)
		}
		storage = driveConnector

		model, err = llm.NewConnector(ctx, cfg.LLMConnectorCfg, logger)
		if err != nil {
			return nil, fmt.Errorf("create llm connector: %w", err)
		}
	}

	registry := extractor.NewRegistry()
	aggregator := consult.NewAggregator(storage, registry, cfg.ExtractCacheTTL)
	v := validator.NewValidator()

	// Initialize use cases
	filesUC := files.NewUsecase(storage, cfg.DriveCfg.RootFolderID, v, logger)
	consultUC := consult.NewUsecase(storage, registry, aggregator, model, v, logger)
	logger.Info("Use cases initialized",
		zap.Strings("supported_mime_types", registry.SupportedMimeTypes()),
		zap.Duration("extract_cache_ttl", cfg.ExtractCacheTTL),
	)

	return &Services{
		Files:   filesUC,
		Consult: consultUC,
		Logger:  logger,
		model:   model,
	}, nil
}
