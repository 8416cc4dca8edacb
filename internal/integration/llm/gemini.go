package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/futig/drive-consult/internal/config"
	"github.com/futig/drive-consult/internal/entity"
	"github.com/futig/drive-consult/internal/pkg/logger"
	"github.com/google/generative-ai-go/genai"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

type GeminiConnector struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

func NewGeminiConnector(ctx context.Context, cfg config.LLMConnectorConfig, log *zap.Logger) (*GeminiConnector, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: missing LLM_API_KEY")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("gemini init: %w", err)
	}

	return &GeminiConnector{
		client: client,
		model:  cfg.Model,
		logger: log,
	}, nil
}

func (g *GeminiConnector) Generate(ctx context.Context, prompt string) (string, error) {
	ctx = logger.Ensure(ctx, g.logger)
	ctxzap.Info(ctx, "consulting gemini", zap.String("model", g.model), zap.Int("prompt_length", len(prompt)))

	resp, err := g.client.GenerativeModel(g.model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		var blocked *genai.BlockedError
		if errors.As(err, &blocked) {
			return "", fmt.Errorf("%w: gemini: %w", entity.ErrNoCandidate, err)
		}
		return "", fmt.Errorf("%w: gemini generate: %w", entity.ErrModelUnavailable, err)
	}

	return geminiAnswer(resp)
}

func (g *GeminiConnector) Close() error {
	return g.client.Close()
}

// geminiAnswer returns the first text part of the first candidate
func geminiAnswer(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: gemini: empty response", entity.ErrNoCandidate)
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok && text != "" {
			return string(text), nil
		}
	}

	return "", fmt.Errorf("%w: gemini: first candidate has no text", entity.ErrNoCandidate)
}
