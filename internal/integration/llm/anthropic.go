package llm

import (
	"context"
	"fmt"
	"net/http"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/futig/drive-consult/internal/config"
	"github.com/futig/drive-consult/internal/entity"
	"github.com/futig/drive-consult/internal/pkg/logger"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type AnthropicConnector struct {
	client    *anthropic.Client
	model     string
	maxTokens int64
	logger    *zap.Logger
}

func NewAnthropicConnector(cfg config.LLMConnectorConfig, httpClient *http.Client, log *zap.Logger) *AnthropicConnector {
	opts := []anthropicopt.RequestOption{
		anthropicopt.WithAPIKey(cfg.APIKey),
		anthropicopt.WithHTTPClient(httpClient),
	}
	if cfg.Url != "" {
		opts = append(opts, anthropicopt.WithBaseURL(cfg.Url))
	}

	cl := anthropic.NewClient(opts...)
	return &AnthropicConnector{
		client:    &cl,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		logger:    log,
	}
}

func (a *AnthropicConnector) Generate(ctx context.Context, prompt string) (string, error) {
	ctx = logger.Ensure(ctx, a.logger)
	ctxzap.Info(ctx, "consulting anthropic", zap.String("model", a.model), zap.Int("prompt_length", len(prompt)))

	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: a.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: anthropic: %w", entity.ErrModelUnavailable, err)
	}

	for _, cb := range msg.Content {
		if tb, ok := cb.AsAny().(anthropic.TextBlock); ok && tb.Text != "" {
			return tb.Text, nil
		}
	}

	return "", fmt.Errorf("%w: anthropic: no text block", entity.ErrNoCandidate)
}

func (a *AnthropicConnector) Close() error {
	return nil
}
