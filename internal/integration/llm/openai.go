package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/futig/drive-consult/internal/config"
	"github.com/futig/drive-consult/internal/entity"
	"github.com/futig/drive-consult/internal/pkg/logger"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

type OpenAIConnector struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

func NewOpenAIConnector(cfg config.LLMConnectorConfig, httpClient *http.Client, log *zap.Logger) *OpenAIConnector {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.Url != "" {
		clientCfg.BaseURL = cfg.Url
	}
	clientCfg.HTTPClient = httpClient

	return &OpenAIConnector{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		logger: log,
	}
}

func (o *OpenAIConnector) Generate(ctx context.Context, prompt string) (string, error) {
	ctx = logger.Ensure(ctx, o.logger)
	ctxzap.Info(ctx, "consulting openai", zap.String("model", o.model), zap.Int("prompt_length", len(prompt)))

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: openai: %w", entity.ErrModelUnavailable, err)
	}

	return openAIAnswer(resp)
}

func (o *OpenAIConnector) Close() error {
	return nil
}

func openAIAnswer(resp openai.ChatCompletionResponse) (string, error) {
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: openai: no choices", entity.ErrNoCandidate)
	}
	return resp.Choices[0].Message.Content, nil
}
