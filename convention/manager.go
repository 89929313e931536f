package convention

import (
	"fmt"
	"strings"
	"sync"

	"github.com/openrig/namekit/rule"
)

// Observer receives the outcome of naming operations, typically for
// metrics. Implementations must be safe for concurrent use.
type Observer interface {
	ObserveBuild(ok bool)
	ObserveValidate(valid bool)
	ObserveParse()
}

// Manager orchestrates a Convention: it builds, validates, parses, and
// rewrites names, and owns a mutable per-token rule table that can be
// changed at run time without replacing the Convention. Rule mutations
// are visible immediately to every holder of the same Manager.
type Manager struct {
	conv *Convention

	mu    sync.RWMutex
	rules map[string]rule.Rule

	obs Observer
}

// NewManager creates a Manager for the given Convention. The Convention's
// rule table is copied so run-time mutation never touches the Convention.
func NewManager(conv *Convention) *Manager {
	rules := make(map[string]rule.Rule, len(conv.rules))
	for token, r := range conv.rules {
		rules[token] = r
	}
	return &Manager{conv: conv, rules: rules}
}

// SetObserver installs an operation observer. A nil observer disables
// observation. Not safe to call concurrently with other operations.
func (m *Manager) SetObserver(obs Observer) { m.obs = obs }

// Convention returns the immutable convention this manager orchestrates.
func (m *Manager) Convention() *Convention { return m.conv }

// Tokens returns the ordered token names.
func (m *Manager) Tokens() []string { return m.conv.Tokens() }

// Separator returns the token separator.
func (m *Manager) Separator() string { return m.conv.separator }

// Rule returns the rule currently bound to token, if any.
func (m *Manager) Rule(token string) (rule.Rule, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rules[token]
	return r, ok
}

// normalize applies the token's normalizer (if any) to a raw value and
// trims surrounding whitespace. Empty input stays empty.
func (m *Manager) normalize(token, value string) string {
	if value == "" {
		return ""
	}
	if fn, ok := m.conv.normalizers[token]; ok {
		value = fn(value)
	}
	return strings.TrimSpace(value)
}

// BuildName assembles a name from token values. Tokens absent from values
// (or whose value is empty) are omitted entirely from the result. Each
// present value is normalized, then validated against the token's current
// rule; the assembled string is checked against the global rules. A
// normalized value containing the separator is always rejected, so a
// successfully built name splits back into the same token values.
func (m *Manager) BuildName(values map[string]string) (string, error) {
	name, err := m.buildName(values)
	if m.obs != nil {
		m.obs.ObserveBuild(err == nil)
	}
	return name, err
}

func (m *Manager) buildName(values map[string]string) (string, error) {
	for token := range values {
		if !m.conv.HasToken(token) {
			return "", &UnknownTokenError{Token: token, Tokens: m.conv.tokens}
		}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	parts := make([]string, 0, len(m.conv.tokens))
	for _, token := range m.conv.tokens {
		normalized := m.normalize(token, values[token])
		if normalized == "" {
			continue
		}
		if strings.Contains(normalized, m.conv.separator) {
			return "", NewValidationError(fmt.Sprintf(
				"Invalid value '%s' for token '%s'.", normalized, token))
		}
		if r, ok := m.rules[token]; ok && !r.Validate(normalized) {
			return "", NewValidationError(r.Message(token, normalized))
		}
		parts = append(parts, normalized)
	}

	name := strings.Join(parts, m.conv.separator)
	if violations := m.conv.global.Check(name); len(violations) > 0 {
		return "", NewValidationError(violations...)
	}
	return name, nil
}

// IsValid reports whether name, as written, complies with the convention.
// Parts are assigned to tokens strictly left to right; tokens beyond the
// number of parts carry no validation obligation. Values are validated in
// raw form: validation never normalizes outside the build path.
func (m *Manager) IsValid(name string) bool {
	valid := len(m.errorsFor(name)) == 0
	if m.obs != nil {
		m.obs.ObserveValidate(valid)
	}
	return valid
}

// GetErrors returns every violation message for name, or an empty slice
// when the name is fully valid. Unlike BuildName, validation failures are
// returned as values rather than errors so bulk checks need no error
// handling per item.
func (m *Manager) GetErrors(name string) []string {
	errs := m.errorsFor(name)
	if m.obs != nil {
		m.obs.ObserveValidate(len(errs) == 0)
	}
	return errs
}

func (m *Manager) errorsFor(name string) []string {
	if name == "" {
		return []string{"Name must be a non-empty string."}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var errs []string
	parts := strings.Split(name, m.conv.separator)
	if len(parts) > len(m.conv.tokens) {
		errs = append(errs, fmt.Sprintf(
			"Name has too many parts: expected at most %d, got %d.",
			len(m.conv.tokens), len(parts)))
	}

	for i, part := range parts {
		if i >= len(m.conv.tokens) {
			break
		}
		token := m.conv.tokens[i]
		if part == "" {
			errs = append(errs, fmt.Sprintf("Empty value for token '%s'.", token))
			continue
		}
		if r, ok := m.rules[token]; ok && !r.Validate(part) {
			errs = append(errs, r.Message(token, part))
		}
	}

	errs = append(errs, m.conv.global.Check(name)...)
	return errs
}

// IsValidToken validates one raw value against one named token's rule in
// isolation: no normalization, no global rules, no other tokens consulted.
// Values containing the separator are never valid since they would break
// positional parsing.
func (m *Manager) IsValidToken(token, value string) (bool, error) {
	if !m.conv.HasToken(token) {
		return false, &UnknownTokenError{Token: token, Tokens: m.conv.tokens}
	}
	if strings.Contains(value, m.conv.separator) {
		return false, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.rules[token]
	if !ok {
		return true, nil
	}
	return r.Validate(value), nil
}

// GetData extracts token values from a name by positional split. Every
// convention token appears as a key; tokens beyond the available parts
// map to the empty string. No validation is performed.
func (m *Manager) GetData(name string) map[string]string {
	if m.obs != nil {
		m.obs.ObserveParse()
	}

	data := make(map[string]string, len(m.conv.tokens))
	for _, token := range m.conv.tokens {
		data[token] = ""
	}
	if name == "" {
		return data
	}

	parts := strings.Split(name, m.conv.separator)
	for i, part := range parts {
		if i >= len(m.conv.tokens) {
			break
		}
		data[m.conv.tokens[i]] = part
	}
	return data
}

// GetTokenValue returns the value of one token extracted from name, or ""
// when the token is not present in the name.
func (m *Manager) GetTokenValue(name, token string) (string, error) {
	if !m.conv.HasToken(token) {
		return "", &UnknownTokenError{Token: token, Tokens: m.conv.tokens}
	}
	return m.GetData(name)[token], nil
}

// UpdateName replaces specific token values in an existing name. The name
// is split positionally, override values are normalized and substituted
// (un-overridden tokens keep their current raw string), and the complete
// token set is rebuilt through the full BuildName validation path.
func (m *Manager) UpdateName(name string, overrides map[string]string) (string, error) {
	for token := range overrides {
		if !m.conv.HasToken(token) {
			return "", &UnknownTokenError{Token: token, Tokens: m.conv.tokens}
		}
	}

	data := m.GetData(name)
	for token, value := range overrides {
		data[token] = m.normalize(token, value)
	}
	return m.BuildName(data)
}

// ResolveName converts a flexible input into a name string. A
// map[string]string is forwarded to BuildName; a []string is zipped
// positionally against token order and built; a plain string is returned
// unchanged with no validation. Any other type is rejected.
func (m *Manager) ResolveName(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case map[string]string:
		return m.BuildName(v)
	case []string:
		if len(v) > len(m.conv.tokens) {
			return "", NewValidationError(fmt.Sprintf(
				"Input sequence has %d items but only %d tokens are defined.",
				len(v), len(m.conv.tokens)))
		}
		values := make(map[string]string, len(v))
		for i, item := range v {
			values[m.conv.tokens[i]] = item
		}
		return m.BuildName(values)
	default:
		return "", fmt.Errorf("cannot resolve a name from %T", value)
	}
}

// AddRule binds a rule to token, replacing any existing one. The change
// takes effect immediately for all subsequent operations on this Manager,
// including calls made through other references to the same instance.
func (m *Manager) AddRule(token string, r rule.Rule) error {
	if !m.conv.HasToken(token) {
		return &UnknownTokenError{Token: token, Tokens: m.conv.tokens}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.rules[token] = r
	return nil
}

// RemoveRule clears the rule bound to token; the token then accepts any
// value unconditionally. The token itself remains part of the convention.
func (m *Manager) RemoveRule(token string) error {
	if !m.conv.HasToken(token) {
		return &UnknownTokenError{Token: token, Tokens: m.conv.tokens}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rules, token)
	return nil
}
