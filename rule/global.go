package rule

import (
	"fmt"
	"strings"
)

// GlobalRules are constraints over the fully assembled name string,
// never over individual tokens. A zero MaxLength disables the length check.
type GlobalRules struct {
	// MaxLength is the maximum allowed character length for a name.
	MaxLength int

	// Forbidden lists substrings that must not appear anywhere in a name.
	Forbidden []string
}

// Check returns one violation message per broken constraint. Every
// forbidden substring is checked independently so multiple violations
// are reported at once. An empty result means the name is compliant.
func (g GlobalRules) Check(name string) []string {
	var violations []string

	if g.MaxLength > 0 && len(name) > g.MaxLength {
		violations = append(violations, fmt.Sprintf(
			"Name '%s' exceeds the maximum length of %d (got %d).",
			name, g.MaxLength, len(name)))
	}

	for _, pattern := range g.Forbidden {
		if pattern == "" {
			continue
		}
		if strings.Contains(name, pattern) {
			violations = append(violations, fmt.Sprintf(
				"Name '%s' contains the forbidden pattern '%s'.", name, pattern))
		}
	}

	return violations
}
