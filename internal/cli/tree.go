package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newTreeCommand creates the "tree" subcommand that prints the composed element tree.
func newTreeCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "tree FILE",
		Short: "Print the composed element tree as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := LoggerFromContext(cmd.Context())

			root, err := loadTree(logger, opts, args[0])
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(root.Snapshot()); err != nil {
				return fmt.Errorf("encoding tree: %w", err)
			}
			return enc.Close()
		},
	}
}
