package files

import (
	"context"

	"github.com/futig/drive-consult/internal/entity"
)

type FilesUsecase interface {
	ListRoot(ctx context.Context) ([]entity.FileDescriptor, error)
	ListFolder(ctx context.Context, folderID string) ([]entity.FileDescriptor, error)
}
