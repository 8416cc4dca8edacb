package llm

import (
	"context"
	"fmt"

	"github.com/futig/drive-consult/internal/pkg/logger"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector answers without calling any model
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(log *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: log,
	}
}

func (m *MockConnector) Generate(ctx context.Context, prompt string) (string, error) {
	ctx = logger.Ensure(ctx, m.logger)
	ctxzap.Info(ctx, "[MOCK] consulting model", zap.Int("prompt_length", len(prompt)))

	answer := fmt.Sprintf("[MOCK] The answer would be generated from a prompt of %d characters.", len(prompt))

	ctxzap.Info(ctx, "[MOCK] model answered", zap.Int("answer_length", len(answer)))
	return answer, nil
}

func (m *MockConnector) Close() error {
	return nil
}
