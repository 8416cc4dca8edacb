package consult

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/futig/drive-consult/internal/entity"
	"github.com/futig/drive-consult/internal/pkg/logger"
	"github.com/futig/drive-consult/internal/pkg/response"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const maxBodySize = 1 << 20

type Handler struct {
	usecase ConsultUsecase
}

func NewHandler(usecase ConsultUsecase) *Handler {
	return &Handler{
		usecase: usecase,
	}
}

// Consult handles POST /api/consult
func (h *Handler) Consult(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Consult")

	var req entity.ConsultRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		h.handleUsecaseError(ctx, w, fmt.Errorf("%w: %w", entity.ErrInvalidBody, err))
		return
	}

	ctxzap.Info(ctx, "consulting folder",
		zap.String("folder_id", req.FolderID),
		zap.Int("question_length", len(req.Question)),
	)

	res, err := h.usecase.Consult(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "consultation finished",
		zap.String("consultation_id", res.ConsultationID),
		zap.Int("file_count", res.FileCount),
		zap.Strings("warnings", res.Warnings),
	)

	response.Success(w, &entity.ConsultResponse{Answer: res.Answer})
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrInvalidBody):
		ctxzap.Warn(ctx, "invalid request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
	case errors.Is(err, entity.ErrMissingField):
		ctxzap.Warn(ctx, "missing required field", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "folderId and question are required")
	case errors.Is(err, entity.ErrStorageUnavailable):
		ctxzap.Error(ctx, "failed to fetch files", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "failed to fetch files")
	default:
		ctxzap.Error(ctx, "failed to consult model", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "failed to consult model")
	}
}
