package config

import (
	"fmt"
	"sync"

	"github.com/openrig/namekit/convention"
	"github.com/openrig/namekit/normalizer"
	"github.com/openrig/namekit/rule"
)

// RuleProvider constructs a rule from its serialized configuration.
type RuleProvider func(rc RuleConfig) (rule.Rule, error)

var (
	ruleTypesMu sync.RWMutex
	ruleTypes   = map[string]RuleProvider{
		"regex": func(rc RuleConfig) (rule.Rule, error) {
			return rule.NewRegex(rc.Pattern)
		},
		"list": func(rc RuleConfig) (rule.Rule, error) {
			return rule.NewList(rc.Values), nil
		},
		"from_enums": func(rc RuleConfig) (rule.Rule, error) {
			return rule.NewSymbolic(rc.Sources)
		},
	}
)

// RegisterRuleType registers a provider for a custom rule type, making it
// available to configuration documents. Registering an existing name
// replaces the previous provider.
func RegisterRuleType(name string, provider RuleProvider) {
	ruleTypesMu.Lock()
	defer ruleTypesMu.Unlock()
	ruleTypes[name] = provider
}

func lookupRuleType(name string) (RuleProvider, bool) {
	ruleTypesMu.RLock()
	defer ruleTypesMu.RUnlock()
	provider, ok := ruleTypes[name]
	return provider, ok
}

// BuildManager materializes the configured naming convention into a
// ready-to-use Manager.
func (c *Config) BuildManager() (*convention.Manager, error) {
	n := &c.Naming

	rules := make(map[string]rule.Rule, len(n.Rules))
	for token, rc := range n.Rules {
		provider, ok := lookupRuleType(rc.Type)
		if !ok {
			return nil, fmt.Errorf("%w: naming.rules.%s has unknown rule type %q", ErrInvalidConfig, token, rc.Type)
		}
		r, err := provider(rc)
		if err != nil {
			return nil, fmt.Errorf("%w: naming.rules.%s: %v", ErrInvalidConfig, token, err)
		}
		rules[token] = r
	}

	normalizers := make(map[string]normalizer.Func, len(n.Normalizers))
	for token, name := range n.Normalizers {
		fn, ok := normalizer.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: naming.normalizers.%s names unknown normalizer %q", ErrInvalidConfig, token, name)
		}
		normalizers[token] = fn
	}

	conv, err := convention.New(n.Tokens, n.Separator, rules, normalizers, rule.GlobalRules{
		MaxLength: n.Global.MaxLength,
		Forbidden: n.Global.Forbidden,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return convention.NewManager(conv), nil
}
