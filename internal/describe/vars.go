package describe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// LoadVars reads NAME=bool lines from a dotenv-style file.
func LoadVars(path string) (map[string]bool, error) {
	raw, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading vars %s: %w", path, err)
	}
	return ParseVars(raw)
}

// ParseVars converts string values with strconv.ParseBool.
func ParseVars(raw map[string]string) (map[string]bool, error) {
	vars := make(map[string]bool, len(raw))
	for name, value := range raw {
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("variable %s: %w: %q is not a boolean", name, ErrFormat, value)
		}
		vars[name] = b
	}
	return vars, nil
}

// ParseAssignment splits a name=bool command-line assignment. A bare name
// means true.
func ParseAssignment(s string) (string, bool, error) {
	name, value, found := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false, fmt.Errorf("%w: empty variable name in %q", ErrFormat, s)
	}
	if !found {
		return name, true, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return "", false, fmt.Errorf("variable %s: %w: %q is not a boolean", name, ErrFormat, value)
	}
	return name, b, nil
}
