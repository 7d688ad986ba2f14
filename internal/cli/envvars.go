package cli

import (
	"os"

	"github.com/caarlos0/env/v11"
	"golang.org/x/term"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// baseEnv defines root CLI defaults sourced from FLEXKIT_* env vars.
type baseEnv struct {
	// Width is the layout width from FLEXKIT_WIDTH.
	Width int `env:"FLEXKIT_WIDTH"`
	// Height is the layout height from FLEXKIT_HEIGHT.
	Height int `env:"FLEXKIT_HEIGHT"`
	// VarsFile is a dotenv path from FLEXKIT_VARS.
	VarsFile string `env:"FLEXKIT_VARS"`
	// LogLevel is the logging level from FLEXKIT_LOG_LEVEL.
	LogLevel string `env:"FLEXKIT_LOG_LEVEL"`
}

// parseEnv fills target from FLEXKIT_* env vars via caarlos0/env.
func parseEnv(target any) error {
	return env.Parse(target)
}

// layoutSize resolves the layout area: explicit options first, then the
// size of the terminal on stdout, then 80x24.
func layoutSize(opts *Options) (width, height int) {
	width, height = opts.Width, opts.Height
	if width > 0 && height > 0 {
		return width, height
	}

	tw, th := fallbackWidth, fallbackHeight
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
			tw, th = w, h
		}
	}
	if width <= 0 {
		width = tw
	}
	if height <= 0 {
		height = th
	}
	return width, height
}
