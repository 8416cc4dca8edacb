package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/futig/drive-consult/internal/entity"
	"github.com/futig/drive-consult/internal/pkg/formatter"
	"github.com/spf13/cobra"
)

func newAskCommand(opts *options) *cobra.Command {
	var folderID, question, output string

	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Ask a question about the documents of a folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var f formatter.Formatter
			if output != "" {
				var err error
				if f, err = formatter.NewFactory().ForPath(output); err != nil {
					return err
				}
			}

			return opts.withBackend(cmd, func(ctx context.Context, b *Backend) error {
				res, err := b.Consult.Consult(ctx, &entity.ConsultRequest{
					FolderID: folderID,
					Question: question,
				})
				if err != nil {
					return fmt.Errorf("consultation failed: %w", err)
				}

				fmt.Fprintln(cmd.OutOrStdout(), res.Answer)
				for _, w := range res.Warnings {
					fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render("warning: "+w))
				}

				if f == nil {
					return nil
				}
				return writeReport(f, output, formatter.Report{
					FolderID: folderID,
					Question: question,
					Answer:   res.Answer,
					Warnings: res.Warnings,
				})
			})
		},
	}

	cmd.Flags().StringVarP(&folderID, "folder", "f", "", "Folder id to consult")
	cmd.Flags().StringVarP(&question, "question", "q", "", "Question to ask")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Also write a report to this file (.md, .docx or .pdf)")
	_ = cmd.MarkFlagRequired("folder")
	_ = cmd.MarkFlagRequired("question")

	return cmd
}

func writeReport(f formatter.Formatter, path string, report formatter.Report) error {
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("format report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
