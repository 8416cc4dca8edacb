package files

import (
	"context"

	"github.com/futig/drive-consult/internal/entity"
)

type Storage interface {
	ListChildren(ctx context.Context, folderID string, mimeTypes []string) ([]entity.FileDescriptor, error)
}
