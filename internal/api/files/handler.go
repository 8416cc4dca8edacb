package files

import (
	"context"
	"errors"
	"net/http"

	"github.com/futig/drive-consult/internal/entity"
	"github.com/futig/drive-consult/internal/pkg/logger"
	"github.com/futig/drive-consult/internal/pkg/response"
	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const errFetchFiles = "failed to fetch files"

type Handler struct {
	usecase FilesUsecase
}

func NewHandler(usecase FilesUsecase) *Handler {
	return &Handler{
		usecase: usecase,
	}
}

// ListRoot handles GET /api/files
func (h *Handler) ListRoot(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListRoot")

	files, err := h.usecase.ListRoot(ctx)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "root folder listed", zap.Int("count", len(files)))
	response.Success(w, nonNil(files))
}

// ListFolder handles GET /api/files/{folderId}
func (h *Handler) ListFolder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	folderID := chi.URLParam(r, "folderId")

	ctx = logger.AddFields(ctx,
		zap.String("folder_id", folderID),
		zap.String("action", "ListFolder"),
	)

	files, err := h.usecase.ListFolder(ctx, folderID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "folder listed", zap.Int("count", len(files)))
	response.Success(w, nonNil(files))
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, entity.ErrMissingField) {
		ctxzap.Warn(ctx, "invalid folder id", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "folderId is required")
		return
	}

	ctxzap.Error(ctx, errFetchFiles, zap.Error(err))
	response.Error(w, http.StatusInternalServerError, errFetchFiles)
}

func nonNil(files []entity.FileDescriptor) []entity.FileDescriptor {
	if files == nil {
		return []entity.FileDescriptor{}
	}
	return files
}
