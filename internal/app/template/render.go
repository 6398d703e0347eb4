package template

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/romconv/internal/domain"
)

// RenderString replaces {{VAR}} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", fmt.Errorf("%w: unclosed template expression in %q", domain.ErrInvalidConfig, input)
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", fmt.Errorf("%w: empty template expression in %q", domain.ErrInvalidConfig, input)
		}

		value, ok := vars[key]
		if !ok {
			return "", fmt.Errorf("%w: missing variable %q", domain.ErrInvalidConfig, key)
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}
