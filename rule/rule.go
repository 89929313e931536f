// Package rule defines token-level validation rules and the global
// constraints applied to fully assembled names. A token with no rule
// accepts any value unconditionally.
package rule

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/openrig/namekit/symbols"
)

// Rule validates a single raw token value.
type Rule interface {
	// Validate reports whether value is acceptable for this rule.
	Validate(value string) bool

	// Message returns the human-readable violation message for a value
	// that failed validation against the named token.
	Message(token, value string) string
}

// Regex validates a value against a regular expression. The pattern is
// always matched against the full value.
type Regex struct {
	pattern string
	re      *regexp.Regexp
}

// NewRegex compiles pattern into a full-match rule.
func NewRegex(pattern string) (*Regex, error) {
	re, err := regexp.Compile(anchored(pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid rule pattern %q: %w", pattern, err)
	}
	return &Regex{pattern: pattern, re: re}, nil
}

// anchored wraps a pattern so it matches the whole value, tolerating
// patterns that already carry their own anchors.
func anchored(pattern string) string {
	trimmed := strings.TrimPrefix(pattern, "^")
	trimmed = strings.TrimSuffix(trimmed, "$")
	return "^(?:" + trimmed + ")$"
}

// Pattern returns the original pattern string.
func (r *Regex) Pattern() string { return r.pattern }

// Validate reports whether value fully matches the pattern.
func (r *Regex) Validate(value string) bool {
	return r.re.MatchString(value)
}

// Message implements Rule.
func (r *Regex) Message(token, value string) string {
	return "Name does not match the required naming pattern."
}

// List validates a value against a fixed set of allowed strings.
type List struct {
	allowed map[string]struct{}
}

// NewList builds a membership rule from the given values.
func NewList(values []string) *List {
	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}
	return &List{allowed: allowed}
}

// Values returns the allowed values, sorted.
func (l *List) Values() []string {
	values := make([]string, 0, len(l.allowed))
	for v := range l.allowed {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Validate reports whether value is a member of the allowed set.
func (l *List) Validate(value string) bool {
	_, ok := l.allowed[value]
	return ok
}

// Message implements Rule.
func (l *List) Message(token, value string) string {
	return fmt.Sprintf("Invalid value '%s' for token '%s'.", value, token)
}

// Symbolic validates a value against the canonical strings aggregated
// from one or more named symbolic-value sources. The sources are merged
// into a single allowed set when the rule is built.
type Symbolic struct {
	sources []string
	allowed map[string]struct{}
}

// NewSymbolic aggregates the named sources into a membership rule.
// Returns an error if any source name is not registered.
func NewSymbolic(sources []string) (*Symbolic, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("symbolic rule requires at least one source")
	}

	allowed := make(map[string]struct{})
	for _, name := range sources {
		src, ok := symbols.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown symbolic source %q (available: %v)", name, symbols.Names())
		}
		for _, v := range src.Values() {
			allowed[v] = struct{}{}
		}
	}

	return &Symbolic{sources: append([]string(nil), sources...), allowed: allowed}, nil
}

// Sources returns the source names this rule aggregates.
func (s *Symbolic) Sources() []string {
	return append([]string(nil), s.sources...)
}

// Values returns the aggregated canonical values, sorted.
func (s *Symbolic) Values() []string {
	values := make([]string, 0, len(s.allowed))
	for v := range s.allowed {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Validate reports whether value is one of the aggregated canonical strings.
func (s *Symbolic) Validate(value string) bool {
	_, ok := s.allowed[value]
	return ok
}

// Message implements Rule.
func (s *Symbolic) Message(token, value string) string {
	return fmt.Sprintf("Invalid value '%s' for token '%s'.", value, token)
}
