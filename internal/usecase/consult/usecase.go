package consult

import (
	"context"
	"fmt"

	"github.com/futig/drive-consult/internal/entity"
	"github.com/futig/drive-consult/internal/extractor"
	"github.com/futig/drive-consult/internal/pkg/logger"
	"github.com/futig/drive-consult/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// ConsultUsecase answers questions grounded in the documents of one folder
type ConsultUsecase struct {
	storage    Storage
	registry   *extractor.Registry
	aggregator *Aggregator
	model      ModelConnector
	validator  *validator.Validator
	logger     *zap.Logger
}

func NewUsecase(
	storage Storage,
	registry *extractor.Registry,
	aggregator *Aggregator,
	model ModelConnector,
	validator *validator.Validator,
	log *zap.Logger,
) *ConsultUsecase {
	return &ConsultUsecase{
		storage:    storage,
		registry:   registry,
		aggregator: aggregator,
		model:      model,
		validator:  validator,
		logger:     log,
	}
}

// Consult runs list -> (fetch -> extract)* -> prompt -> infer for one request
func (uc *ConsultUsecase) Consult(ctx context.Context, req *entity.ConsultRequest) (*entity.ConsultResult, error) {
	if err := uc.validator.ValidateConsult(req); err != nil {
		return nil, err
	}

	result := &entity.ConsultResult{ConsultationID: uuid.New().String()}
	ctx = logger.AddFields(logger.Ensure(ctx, uc.logger),
		zap.String("consultation_id", result.ConsultationID),
		zap.String("folder_id", req.FolderID),
	)

	files, err := uc.storage.ListChildren(ctx, req.FolderID, uc.registry.SupportedMimeTypes())
	if err != nil {
		return nil, fmt.Errorf("list supported files: %w", err)
	}

	if len(files) == 0 {
		ctxzap.Info(ctx, "no supported files in folder, skipping model")
		result.Answer = entity.NoSupportedFilesAnswer
		return result, nil
	}

	contextText, warnings := uc.aggregator.BuildContext(ctx, files)
	result.FileCount = len(files)
	result.Warnings = warnings

	ctxzap.Info(ctx, "context built",
		zap.Int("file_count", len(files)),
		zap.Int("failed_count", len(warnings)),
		zap.Int("context_length", len(contextText)),
	)

	answer, err := uc.model.Generate(ctx, BuildPrompt(req.Question, contextText))
	if err != nil {
		return nil, fmt.Errorf("consult model: %w", err)
	}

	ctxzap.Info(ctx, "model answered", zap.Int("answer_length", len(answer)))

	result.Answer = answer
	return result, nil
}
