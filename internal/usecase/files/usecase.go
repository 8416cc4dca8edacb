package files

import (
	"context"
	"fmt"

	"github.com/futig/drive-consult/internal/entity"
	"github.com/futig/drive-consult/internal/pkg/logger"
	"github.com/futig/drive-consult/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// FilesUsecase browses the folder tree without any type filtering
type FilesUsecase struct {
	storage      Storage
	rootFolderID string
	validator    *validator.Validator
	logger       *zap.Logger
}

func NewUsecase(
	storage Storage,
	rootFolderID string,
	validator *validator.Validator,
	log *zap.Logger,
) *FilesUsecase {
	return &FilesUsecase{
		storage:      storage,
		rootFolderID: rootFolderID,
		validator:    validator,
		logger:       log,
	}
}

// ListRoot lists the configured root folder
func (uc *FilesUsecase) ListRoot(ctx context.Context) ([]entity.FileDescriptor, error) {
	return uc.ListFolder(ctx, uc.rootFolderID)
}

// ListFolder lists the immediate children of folderID
func (uc *FilesUsecase) ListFolder(ctx context.Context, folderID string) ([]entity.FileDescriptor, error) {
	ctx = logger.Ensure(ctx, uc.logger)
	if err := uc.validator.ValidateFolderID(folderID); err != nil {
		return nil, err
	}

	files, err := uc.storage.ListChildren(ctx, folderID, nil)
	if err != nil {
		return nil, fmt.Errorf("list folder: %w", err)
	}

	ctxzap.Debug(ctx, "folder listed", zap.String("folder_id", folderID), zap.Int("count", len(files)))

	return files, nil
}
