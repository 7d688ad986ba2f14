package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/grindlemire/flexkit"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorWhite = lipgloss.Color("255")
	colorDim   = lipgloss.Color("240")
	colorAmber = lipgloss.Color("220")
)

// layoutStyles renders for one writer so color is dropped when it is not a
// terminal.
type layoutStyles struct {
	kind, name, rect, empty lipgloss.Style
}

func newLayoutStyles(w io.Writer) layoutStyles {
	r := lipgloss.NewRenderer(w)
	return layoutStyles{
		kind:  r.NewStyle().Bold(true).Foreground(colorCyan),
		name:  r.NewStyle().Foreground(colorWhite),
		rect:  r.NewStyle().Foreground(colorDim),
		empty: r.NewStyle().Foreground(colorAmber),
	}
}

// newLayoutCommand creates the "layout" subcommand that prints computed rects.
func newLayoutCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "layout FILE",
		Short: "Print every element with its computed rect",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := LoggerFromContext(cmd.Context())

			root, err := loadTree(logger, opts, args[0])
			if err != nil {
				return err
			}

			width, height := layoutSize(opts)
			root.Calculate(width, height)
			return writeLayout(cmd.OutOrStdout(), root)
		},
	}
}

// writeLayout prints one line per element, indented by depth:
// kind, name if any, position and size.
func writeLayout(w io.Writer, root *flexkit.Element) error {
	styles := newLayoutStyles(w)

	var lines []string
	var visit func(e *flexkit.Element, depth int)
	visit = func(e *flexkit.Element, depth int) {
		r := e.Rect()
		parts := []string{styles.kind.Render(e.Kind().String())}
		if e.Name() != "" {
			parts = append(parts, styles.name.Render(e.Name()))
		}
		rect := styles.rect
		if r.IsEmpty() {
			rect = styles.empty
		}
		parts = append(parts, rect.Render(fmt.Sprintf("%d,%d %dx%d", r.X, r.Y, r.Width, r.Height)))
		lines = append(lines, strings.Repeat("  ", depth)+strings.Join(parts, " "))

		for _, child := range e.Children() {
			visit(child, depth+1)
		}
	}
	visit(root, 0)

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
