// Package cli implements the drive-consult command line front-end.
package cli

import (
	"context"
	"fmt"

	"github.com/futig/drive-consult/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type FilesLister interface {
	ListRoot(ctx context.Context) ([]entity.FileDescriptor, error)
	ListFolder(ctx context.Context, folderID string) ([]entity.FileDescriptor, error)
}

type Consulter interface {
	Consult(ctx context.Context, req *entity.ConsultRequest) (*entity.ConsultResult, error)
}

// Backend is what the commands run against
type Backend struct {
	Files   FilesLister
	Consult Consulter
	Logger  *zap.Logger
	Close   func() error
}

// Loader builds a Backend for the named environment
type Loader func(environment string, verbose bool) (*Backend, error)

type options struct {
	environment string
	verbose     bool
	load        Loader
}

// NewRootCommand creates the root command with all subcommands attached
func NewRootCommand(load Loader) *cobra.Command {
	opts := &options{load: load}

	rootCmd := &cobra.Command{
		Use:   "drive-consult",
		Short: "Browse a Drive folder tree and ask questions about its documents",
		Long: `Browse the configured Google Drive folder tree and ask questions answered
from the documents of a folder, using the same configuration as the HTTP server.

Quick Start:
  drive-consult ls                              # List the root folder
  drive-consult ls <folder-id>                  # List a folder
  drive-consult ask -f <folder-id> -q "..."     # Ask about a folder`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.environment, "env", "local", "Environment to load (.env.<name>)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log at the configured level instead of errors only")

	rootCmd.AddCommand(newListCommand(opts), newAskCommand(opts))

	return rootCmd
}

// withBackend loads the backend, runs fn with a logger-carrying context and closes it
func (o *options) withBackend(cmd *cobra.Command, fn func(ctx context.Context, b *Backend) error) error {
	b, err := o.load(o.environment, o.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() {
		if b.Close != nil {
			_ = b.Close()
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if b.Logger != nil {
		ctx = ctxzap.ToContext(ctx, b.Logger)
	}

	return fn(ctx, b)
}
