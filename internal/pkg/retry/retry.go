package retry

import (
	"time"

	"github.com/avast/retry-go/v4"
)

// RetryConfig defaults to a single attempt
type RetryConfig struct {
	Attempts uint          `env:"ATTEMPTS" envDefault:"1"`
	Delay    time.Duration `env:"DELAY" envDefault:"200ms"`
	MaxDelay time.Duration `env:"MAX_DELAY" envDefault:"2s"`
}

func (rc *RetryConfig) ToRetryOptions() []retry.Option {
	return []retry.Option{
		retry.Attempts(rc.Attempts),
		retry.MaxDelay(rc.MaxDelay),
		retry.Delay(rc.Delay),
	}
}
