package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	pkgRetry "github.com/futig/drive-consult/internal/pkg/retry"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr         string        `env:"SERVER_ADDR" envDefault:":8080"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// External service configurations
	DriveCfg        DriveConfig        `envPrefix:"DRIVE_"`
	LLMConnectorCfg LLMConnectorConfig `envPrefix:"LLM_"`

	// Extraction configuration
	ExtractCacheTTL     time.Duration `env:"EXTRACT_CACHE_TTL" envDefault:"0s"`
	UniofficeLicenseKey string        `env:"UNIOFFICE_LICENSE_KEY"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

type DriveConfig struct {
	RootFolderID    string               `env:"ROOT_FOLDER_ID,notEmpty"`
	CredentialsFile string               `env:"CREDENTIALS_FILE"`
	PageSize        int64                `env:"PAGE_SIZE" envDefault:"100"`
	MaxFileSize     int64                `env:"MAX_FILE_SIZE" envDefault:"26214400"` // 25 MiB
	Retry           pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type LLMConnectorConfig struct {
	HTTPClientConfig
	Provider  string `env:"PROVIDER" envDefault:"gemini"`
	Model     string `env:"MODEL"` // defaults per provider, see defaultModels
	APIKey    string `env:"API_KEY"`
	MaxTokens int64  `env:"MAX_TOKENS" envDefault:"1024"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"120s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"30s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"120s"`
	TLSHandshakeTimeout   time.Duration `env:"TLS_HANDSHAKE_TIMEOUT" envDefault:"10s"`
	MaxIdleConns          int           `env:"MAX_IDLE_CONNS" envDefault:"100"`
	MaxIdleConnsPerHost   int           `env:"MAX_IDLE_CONNS_PER_HOST" envDefault:"10"`
	// Self-hosted endpoints (Ollama, OpenAI-compatible gateways) often use self-signed certs
	InsecureSkipVerify bool   `env:"INSECURE_SKIP_VERIFY" envDefault:"false"`
	Token              string `env:"TOKEN"`
	Url                string `env:"SERVICE_URL"`
}

// LoadConfig reads the -env flag and loads the matching configuration
func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	return Load(*envFlag)
}

// Load loads configuration for the named environment
func Load(environment string) (*Config, error) {
	envFile := getEnvFile(environment)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = environment
	if cfg.LLMConnectorCfg.Model == "" {
		cfg.LLMConnectorCfg.Model = defaultModels[strings.ToLower(cfg.LLMConnectorCfg.Provider)]
	}

	// Validate configuration
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

var knownProviders = []string{"gemini", "google", "openai", "anthropic", "claude", "ollama"}

var defaultModels = map[string]string{
	"gemini":    "gemini-2.5-flash",
	"google":    "gemini-2.5-flash",
	"openai":    "gpt-4o-mini",
	"anthropic": "claude-sonnet-4-5",
	"claude":    "claude-sonnet-4-5",
	"ollama":    "llama3.1",
}

func validateConfig(cfg *Config) error {
	var errors []string

	if cfg.DriveCfg.PageSize < 1 || cfg.DriveCfg.PageSize > 1000 {
		errors = append(errors, fmt.Sprintf("DRIVE_PAGE_SIZE must be between 1 and 1000, got %d", cfg.DriveCfg.PageSize))
	}

	if cfg.DriveCfg.MaxFileSize < 0 {
		errors = append(errors, fmt.Sprintf("DRIVE_MAX_FILE_SIZE must not be negative, got %d", cfg.DriveCfg.MaxFileSize))
	}

	if cfg.DriveCfg.Retry.Attempts < 1 || cfg.DriveCfg.Retry.Attempts > 10 {
		errors = append(errors, fmt.Sprintf("DRIVE_RETRY_ATTEMPTS must be between 1 and 10, got %d", cfg.DriveCfg.Retry.Attempts))
	}

	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("SHUTDOWN_TIMEOUT must be positive, got %s", cfg.ShutdownTimeout))
	}

	if cfg.ExtractCacheTTL < 0 {
		errors = append(errors, fmt.Sprintf("EXTRACT_CACHE_TTL must not be negative, got %s", cfg.ExtractCacheTTL))
	}

	provider := strings.ToLower(cfg.LLMConnectorCfg.Provider)
	if !contains(knownProviders, provider) {
		errors = append(errors, fmt.Sprintf("LLM_PROVIDER must be one of %v, got %q", knownProviders, cfg.LLMConnectorCfg.Provider))
	}

	if !cfg.EnableMocks && provider != "ollama" && cfg.LLMConnectorCfg.APIKey == "" {
		errors = append(errors, "LLM_API_KEY is required unless ENABLE_MOCKS is set or LLM_PROVIDER is ollama")
	}

	if cfg.LLMConnectorCfg.MaxTokens < 1 {
		errors = append(errors, fmt.Sprintf("LLM_MAX_TOKENS must be positive, got %d", cfg.LLMConnectorCfg.MaxTokens))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
