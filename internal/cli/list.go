package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/futig/drive-consult/internal/entity"
	"github.com/spf13/cobra"
)

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ls [folder-id]",
		Short: "List the children of a folder",
		Long:  `List the children of a folder, folders first. Without an argument the configured root folder is listed.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withBackend(cmd, func(ctx context.Context, b *Backend) error {
				var (
					files []entity.FileDescriptor
					err   error
				)
				if len(args) == 0 {
					files, err = b.Files.ListRoot(ctx)
				} else {
					files, err = b.Files.ListFolder(ctx, args[0])
				}
				if err != nil {
					return fmt.Errorf("failed to fetch files: %w", err)
				}

				printFiles(cmd.OutOrStdout(), files)
				return nil
			})
		},
	}
}

func printFiles(w io.Writer, files []entity.FileDescriptor) {
	if len(files) == 0 {
		fmt.Fprintln(w, mimeStyle.Render("(empty)"))
		return
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%d item(s)", len(files))))
	for _, f := range files {
		name := fileStyle.Render(f.Name)
		if f.IsFolder() {
			name = folderStyle.Render(f.Name + "/")
		}
		fmt.Fprintf(w, "%s  %s  %s\n", name, idStyle.Render(f.ID), mimeStyle.Render(f.MimeType))
	}
}
