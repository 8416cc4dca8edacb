package consult

import (
	"context"

	"github.com/futig/drive-consult/internal/entity"
)

type ConsultUsecase interface {
	Consult(ctx context.Context, req *entity.ConsultRequest) (*entity.ConsultResult, error)
}
