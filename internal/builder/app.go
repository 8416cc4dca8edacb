package builder

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// App owns the HTTP server and the services behind it
type App struct {
	server          *http.Server
	services        *Services
	logger          *zap.Logger
	shutdownTimeout time.Duration
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		a.closeServices()
		return fmt.Errorf("listen %s: %w", a.server.Addr, err)
	}

	return a.serve(ctx, ln)
}

// serve blocks until ctx is done or the server fails
func (a *App) serve(ctx context.Context, ln net.Listener) error {
	errChan := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server", zap.String("addr", ln.Addr().String()))
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		a.logger.Error("Server error", zap.Error(err))
		a.closeServices()
		return err
	case <-ctx.Done():
		a.logger.Info("Shutdown requested")
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	a.logger.Info("Shutting down server gracefully", zap.Duration("timeout", a.shutdownTimeout))

	err := a.server.Shutdown(ctx)
	if err != nil {
		a.logger.Error("Server shutdown error", zap.Error(err))
	}
	a.closeServices()

	if err != nil {
		return err
	}
	a.logger.Info("Application stopped gracefully")
	return nil
}

func (a *App) closeServices() {
	if err := a.services.Close(); err != nil {
		a.logger.Warn("Model connector close error", zap.Error(err))
	}
}
