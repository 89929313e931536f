// Package convention implements the naming convention engine: an ordered,
// separator-joined token structure with per-token validation rules and
// normalizers, plus the Manager that builds, parses, validates, and
// rewrites names against it.
package convention

import (
	"fmt"

	"github.com/openrig/namekit/normalizer"
	"github.com/openrig/namekit/rule"
)

// Convention is the immutable definition of a valid name shape: the
// ordered token list, the separator, the per-token rules and normalizers,
// and the global constraints. Token order defines both assembly order and
// positional-parse order. Callers needing a different convention construct
// a new one; only the Manager's rule table is mutable.
type Convention struct {
	tokens      []string
	separator   string
	rules       map[string]rule.Rule
	normalizers map[string]normalizer.Func
	global      rule.GlobalRules
}

// New creates a Convention. The rules and normalizers maps are sparse:
// tokens absent from them accept any value and pass values through
// unchanged, respectively.
func New(tokens []string, separator string, rules map[string]rule.Rule, normalizers map[string]normalizer.Func, global rule.GlobalRules) (*Convention, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("convention requires at least one token")
	}
	if separator == "" {
		return nil, fmt.Errorf("separator must be a non-empty string")
	}

	seen := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		if token == "" {
			return nil, fmt.Errorf("token names must be non-empty")
		}
		if _, dup := seen[token]; dup {
			return nil, fmt.Errorf("duplicate token %q", token)
		}
		seen[token] = struct{}{}
	}

	for token := range rules {
		if _, ok := seen[token]; !ok {
			return nil, fmt.Errorf("rule bound to unknown token %q", token)
		}
	}
	for token := range normalizers {
		if _, ok := seen[token]; !ok {
			return nil, fmt.Errorf("normalizer bound to unknown token %q", token)
		}
	}

	c := &Convention{
		tokens:      append([]string(nil), tokens...),
		separator:   separator,
		rules:       make(map[string]rule.Rule, len(rules)),
		normalizers: make(map[string]normalizer.Func, len(normalizers)),
		global:      global,
	}
	for token, r := range rules {
		c.rules[token] = r
	}
	for token, fn := range normalizers {
		c.normalizers[token] = fn
	}
	return c, nil
}

// Tokens returns the ordered token names.
func (c *Convention) Tokens() []string {
	return append([]string(nil), c.tokens...)
}

// Separator returns the token separator.
func (c *Convention) Separator() string { return c.separator }

// Rule returns the rule bound to token, if any.
func (c *Convention) Rule(token string) (rule.Rule, bool) {
	r, ok := c.rules[token]
	return r, ok
}

// Normalizer returns the normalizer bound to token, if any.
func (c *Convention) Normalizer(token string) (normalizer.Func, bool) {
	fn, ok := c.normalizers[token]
	return fn, ok
}

// GlobalRules returns the whole-name constraints.
func (c *Convention) GlobalRules() rule.GlobalRules { return c.global }

// HasToken reports whether token is part of the convention.
func (c *Convention) HasToken(token string) bool {
	for _, t := range c.tokens {
		if t == token {
			return true
		}
	}
	return false
}
