package drive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/avast/retry-go/v4"
	"github.com/futig/drive-consult/internal/config"
	"github.com/futig/drive-consult/internal/entity"
	"github.com/futig/drive-consult/internal/pkg/logger"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

type Connector struct {
	service *gdrive.Service
	config  config.DriveConfig
	logger  *zap.Logger
}

func NewConnector(ctx context.Context, cfg config.DriveConfig, log *zap.Logger) (*Connector, error) {
	opts := []option.ClientOption{option.WithScopes(gdrive.DriveReadonlyScope)}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	service, err := gdrive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	return &Connector{
		service: service,
		config:  cfg,
		logger:  log,
	}, nil
}

// ListChildren returns the immediate children of folderID, folders first and then by name.
// An empty mimeTypes slice disables filtering.
func (c *Connector) ListChildren(ctx context.Context, folderID string, mimeTypes []string) ([]entity.FileDescriptor, error) {
	ctx = logger.Ensure(ctx, c.logger)
	query := BuildChildrenQuery(folderID, mimeTypes)
	ctxzap.Debug(ctx, "listing drive folder", zap.String("query", query))

	call := c.service.Files.List().
		Q(query).
		Fields(listFields).
		OrderBy(listOrderBy).
		PageSize(c.config.PageSize).
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true)

	files := make([]entity.FileDescriptor, 0)
	err := call.Pages(ctx, func(page *gdrive.FileList) error {
		for _, f := range page.Files {
			files = append(files, entity.FileDescriptor{
				ID:           f.Id,
				Name:         f.Name,
				MimeType:     f.MimeType,
				ModifiedTime: f.ModifiedTime,
			})
		}
		return nil
	})
	if err != nil {
		logAPIError(ctx, "failed to list drive folder", err)
		return nil, fmt.Errorf("%w: list folder %s: %w", entity.ErrStorageUnavailable, folderID, err)
	}

	ctxzap.Debug(ctx, "drive folder listed", zap.Int("count", len(files)))

	return files, nil
}

// Export converts a native document to mimeType and returns the converted content
func (c *Connector) Export(ctx context.Context, fileID, mimeType string) ([]byte, error) {
	return c.fetch(ctx, fileID, func() (*http.Response, error) {
		return c.service.Files.Export(fileID, mimeType).Context(ctx).Download()
	})
}

// Download returns the raw bytes of a binary file
func (c *Connector) Download(ctx context.Context, fileID string) ([]byte, error) {
	return c.fetch(ctx, fileID, func() (*http.Response, error) {
		return c.service.Files.Get(fileID).SupportsAllDrives(true).Context(ctx).Download()
	})
}

func (c *Connector) fetch(ctx context.Context, fileID string, do func() (*http.Response, error)) ([]byte, error) {
	ctx = logger.Ensure(ctx, c.logger)
	var content []byte

	opts := append(c.config.Retry.ToRetryOptions(),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			ctxzap.Warn(ctx, "retrying drive fetch",
				zap.String("file_id", fileID),
				zap.Uint("attempt", n+1),
				zap.Error(err),
			)
		}),
	)

	err := retry.Do(func() error {
		resp, err := do()
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		data, err := readLimited(resp.Body, c.config.MaxFileSize)
		if err != nil {
			if errors.Is(err, entity.ErrFileTooLarge) {
				return retry.Unrecoverable(err)
			}
			return err
		}

		content = data
		return nil
	}, opts...)
	if err != nil {
		logAPIError(ctx, "failed to fetch drive file", err, zap.String("file_id", fileID))
		return nil, fmt.Errorf("fetch file %s: %w", fileID, err)
	}

	return content, nil
}

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", entity.ErrFileTooLarge, limit)
	}
	return data, nil
}

func logAPIError(ctx context.Context, msg string, err error, fields ...zap.Field) {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		fields = append(fields, zap.Int("status_code", apiErr.Code))
	}
	ctxzap.Error(ctx, msg, append(fields, zap.Error(err))...)
}
