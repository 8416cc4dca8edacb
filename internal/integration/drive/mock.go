package drive

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/futig/drive-consult/internal/entity"
	"github.com/futig/drive-consult/internal/pkg/logger"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector serves a small in-memory folder tree
type MockConnector struct {
	children map[string][]entity.FileDescriptor
	content  map[string][]byte
	logger   *zap.Logger
}

func NewMockConnector(rootFolderID string, log *zap.Logger) *MockConnector {
	m := &MockConnector{
		children: make(map[string][]entity.FileDescriptor),
		content:  make(map[string][]byte),
		logger:   log,
	}

	m.AddFile(rootFolderID, entity.FileDescriptor{ID: "mock-folder-handbook", Name: "Handbook", MimeType: entity.MimeTypeFolder}, nil)
	m.AddFile(rootFolderID, entity.FileDescriptor{ID: "mock-readme", Name: "README.txt", MimeType: entity.MimeTypePlainText},
		[]byte("This is the mock drive root. Open the Handbook folder to consult it."))
	m.AddFile("mock-folder-handbook", entity.FileDescriptor{ID: "mock-vacation", Name: "Vacation policy", MimeType: entity.MimeTypeGoogleDoc},
		[]byte("Employees get 25 vacation days per year. Unused days expire on March 31."))
	m.AddFile("mock-folder-handbook", entity.FileDescriptor{ID: "mock-legacy", Name: "Old policy.doc", MimeType: entity.MimeTypeLegacyWord},
		[]byte{0xd0, 0xcf, 0x11, 0xe0})

	return m
}

// AddFile registers a child of folderID with the given content
func (m *MockConnector) AddFile(folderID string, file entity.FileDescriptor, content []byte) {
	m.children[folderID] = append(m.children[folderID], file)
	if content != nil {
		m.content[file.ID] = content
	}
}

func (m *MockConnector) ListChildren(ctx context.Context, folderID string, mimeTypes []string) ([]entity.FileDescriptor, error) {
	ctx = logger.Ensure(ctx, m.logger)
	ctxzap.Info(ctx, "[MOCK] listing drive folder", zap.String("folder_id", folderID))

	files := make([]entity.FileDescriptor, 0)
	for _, f := range m.children[folderID] {
		if len(mimeTypes) > 0 && !slices.Contains(mimeTypes, f.MimeType) {
			continue
		}
		files = append(files, f)
	}

	slices.SortStableFunc(files, func(a, b entity.FileDescriptor) int {
		if a.IsFolder() != b.IsFolder() {
			if a.IsFolder() {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})

	return files, nil
}

func (m *MockConnector) Export(ctx context.Context, fileID, mimeType string) ([]byte, error) {
	ctx = logger.Ensure(ctx, m.logger)
	ctxzap.Info(ctx, "[MOCK] exporting drive file", zap.String("file_id", fileID), zap.String("mime_type", mimeType))
	return m.get(fileID)
}

func (m *MockConnector) Download(ctx context.Context, fileID string) ([]byte, error) {
	ctx = logger.Ensure(ctx, m.logger)
	ctxzap.Info(ctx, "[MOCK] downloading drive file", zap.String("file_id", fileID))
	return m.get(fileID)
}

func (m *MockConnector) get(fileID string) ([]byte, error) {
	data, ok := m.content[fileID]
	if !ok {
		return nil, fmt.Errorf("mock file %s has no content", fileID)
	}
	return data, nil
}
