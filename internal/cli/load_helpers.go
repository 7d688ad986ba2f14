package cli

import (
	"fmt"
	"log/slog"

	"github.com/grindlemire/flexkit"
	"github.com/grindlemire/flexkit/internal/describe"
)

// loadVars merges the vars file and --set assignments, later wins.
func loadVars(opts *Options) (map[string]bool, error) {
	vars := map[string]bool{}
	if opts.VarsFile != "" {
		fileVars, err := describe.LoadVars(opts.VarsFile)
		if err != nil {
			return nil, err
		}
		for name, value := range fileVars {
			vars[name] = value
		}
	}
	for _, set := range opts.Sets {
		name, value, err := describe.ParseAssignment(set)
		if err != nil {
			return nil, fmt.Errorf("--set: %w", err)
		}
		vars[name] = value
	}
	return vars, nil
}

// loadTree loads the description at path and composes it into one root.
func loadTree(logger *slog.Logger, opts *Options, path string) (*flexkit.Element, error) {
	vars, err := loadVars(opts)
	if err != nil {
		return nil, err
	}

	desc, err := describe.Load(path, vars)
	if err != nil {
		return nil, err
	}
	logger.Debug("description loaded", "path", path, "vars", desc.Vars)

	root, err := flexkit.TryCompose(desc.Root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	count := 0
	root.Walk(func(*flexkit.Element) bool {
		count++
		return true
	})
	logger.Debug("tree composed", "root", root.Kind(), "elements", count)
	return root, nil
}
