package consult

import (
	"context"

	"github.com/futig/drive-consult/internal/entity"
)

type Storage interface {
	ListChildren(ctx context.Context, folderID string, mimeTypes []string) ([]entity.FileDescriptor, error)
	Export(ctx context.Context, fileID, mimeType string) ([]byte, error)
	Download(ctx context.Context, fileID string) ([]byte, error)
}

type ModelConnector interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
