package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindlemire/flexkit"
)

// newPreviewCommand creates the "preview" subcommand that draws borders and text.
func newPreviewCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "preview FILE",
		Short: "Draw the laid out tree as text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := LoggerFromContext(cmd.Context())

			root, err := loadTree(logger, opts, args[0])
			if err != nil {
				return err
			}

			width, height := layoutSize(opts)
			logger.Debug("rendering preview", "width", width, "height", height)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), flexkit.Render(root, width, height))
			return err
		},
	}
}
