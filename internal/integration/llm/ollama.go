package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/futig/drive-consult/internal/config"
	"github.com/futig/drive-consult/internal/entity"
	"github.com/futig/drive-consult/internal/pkg/logger"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	ollama "github.com/ollama/ollama/api"
	"go.uber.org/zap"
)

const defaultOllamaHost = "http://localhost:11434"

type OllamaConnector struct {
	client *ollama.Client
	model  string
	logger *zap.Logger
}

func NewOllamaConnector(cfg config.LLMConnectorConfig, httpClient *http.Client, log *zap.Logger) (*OllamaConnector, error) {
	host := cfg.Url
	if host == "" {
		host = defaultOllamaHost
	}

	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", host, err)
	}

	return &OllamaConnector{
		client: ollama.NewClient(u, httpClient),
		model:  cfg.Model,
		logger: log,
	}, nil
}

func (o *OllamaConnector) Generate(ctx context.Context, prompt string) (string, error) {
	ctx = logger.Ensure(ctx, o.logger)
	ctxzap.Info(ctx, "consulting ollama", zap.String("model", o.model), zap.Int("prompt_length", len(prompt)))

	stream := false
	req := &ollama.GenerateRequest{
		Model:  o.model,
		Prompt: prompt,
		Stream: &stream,
	}

	var text strings.Builder
	if err := o.client.Generate(ctx, req, func(gr ollama.GenerateResponse) error {
		text.WriteString(gr.Response)
		return nil
	}); err != nil {
		return "", fmt.Errorf("%w: ollama: %w", entity.ErrModelUnavailable, err)
	}

	if text.Len() == 0 {
		return "", fmt.Errorf("%w: ollama: empty response", entity.ErrNoCandidate)
	}
	return text.String(), nil
}

func (o *OllamaConnector) Close() error {
	return nil
}
