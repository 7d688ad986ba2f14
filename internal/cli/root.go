// Package cli defines the command-line interface for flexkit.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/grindlemire/flexkit/internal/debug"
	"github.com/grindlemire/flexkit/internal/logging"
)

// Options stores global CLI options shared between commands.
type Options struct {
	// Width and Height are the layout area. Zero means terminal size.
	Width  int
	Height int
	// Sets are name=bool variable assignments from --set.
	Sets []string
	// VarsFile is a dotenv file of variables.
	VarsFile string
	LogLevel logging.Level
}

// Execute builds the root command, runs it with the provided args and logger, and returns any error.
func Execute(args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewLogger(os.Stderr, logging.LevelInfo)
	}

	rootCmd, err := newRootCommand(&Options{LogLevel: logging.LevelInfo}, logger)
	if err != nil {
		return err
	}
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

// newRootCommand constructs the root cobra.Command with global flags and
// subcommands. Flag defaults come from FLEXKIT_* environment variables.
func newRootCommand(opts *Options, logger *slog.Logger) (*cobra.Command, error) {
	var base baseEnv
	if err := parseEnv(&base); err != nil {
		return nil, err
	}

	cmd := &cobra.Command{
		Use:           "flexkit",
		Short:         "flexkit inspects declarative layout descriptions",
		Long:          "flexkit loads a YAML or TOML layout description, composes it into an element tree and prints the tree, its computed layout or a character preview.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := logging.ParseLevel(cmd.Flag("log-level").Value.String())
			opts.LogLevel = level
			logger = logging.NewLogger(os.Stderr, level)
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			logger.Debug("logger initialized", "level", level)
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return debug.Close()
		},
	}

	logLevel := base.LogLevel
	if logLevel == "" {
		logLevel = "info"
	}

	cmd.PersistentFlags().IntVarP(&opts.Width, "width", "W", base.Width, "Layout width in cells (default: terminal width or 80)")
	cmd.PersistentFlags().IntVarP(&opts.Height, "height", "H", base.Height, "Layout height in cells (default: terminal height or 24)")
	cmd.PersistentFlags().StringArrayVar(&opts.Sets, "set", nil, "Set a description variable, name=bool (repeatable)")
	cmd.PersistentFlags().StringVar(&opts.VarsFile, "vars", base.VarsFile, "Path to a dotenv file of description variables")
	cmd.PersistentFlags().String("log-level", logLevel, "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newTreeCommand(opts),
		newLayoutCommand(opts),
		newPreviewCommand(opts),
	)

	return cmd, nil
}

// loggerKey is a private context key used to store a logger in command contexts.
type loggerKey struct{}

// LoggerFromContext extracts a logger from the context or falls back to a default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return logging.NewLogger(os.Stderr, logging.LevelInfo)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return logging.NewLogger(os.Stderr, logging.LevelInfo)
}
