package http

import (
	"net/http"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type logTransport struct {
	transport http.RoundTripper
}

func (t *logTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	start := time.Now()

	ctxzap.Debug(ctx, "HTTP outbound request",
		zap.String("method", req.Method),
		zap.String("url", redactedURL(req)),
		zap.Int64("content_length", req.ContentLength),
	)

	resp, err := t.transport.RoundTrip(req)
	if err != nil {
		ctxzap.Debug(ctx, "HTTP outbound request failed",
			zap.String("url", redactedURL(req)),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return nil, err
	}

	ctxzap.Debug(ctx, "HTTP outbound response",
		zap.String("url", redactedURL(req)),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	return resp, nil
}

// redactedURL drops the query string, which may carry API keys
func redactedURL(req *http.Request) string {
	u := *req.URL
	u.RawQuery = ""
	return u.String()
}

// WithRequestLogging wraps the HTTP transport with debug logging of method, URL, status and latency.
func WithRequestLogging() HttpOpts {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &logTransport{
			transport: rt,
		}
	})
}
