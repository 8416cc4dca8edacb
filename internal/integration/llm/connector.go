package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/futig/drive-consult/internal/config"
	"github.com/futig/drive-consult/internal/integration/common"
	"go.uber.org/zap"
)

const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderOllama    = "ollama"
)

// Connector answers a single prompt with the text of the first usable candidate
type Connector interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Close() error
}

// NewConnector builds the connector for the configured provider
func NewConnector(ctx context.Context, cfg config.LLMConnectorConfig, logger *zap.Logger) (Connector, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderGemini, "google":
		return NewGeminiConnector(ctx, cfg, logger)
	case ProviderOpenAI:
		return NewOpenAIConnector(cfg, common.NewHTTPClient(cfg.HTTPClientConfig), logger), nil
	case ProviderAnthropic, "claude":
		return NewAnthropicConnector(cfg, common.NewHTTPClient(cfg.HTTPClientConfig), logger), nil
	case ProviderOllama:
		return NewOllamaConnector(cfg, common.NewHTTPClient(cfg.HTTPClientConfig), logger)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
