// Package normalizer provides pure string transforms applied to token
// values before validation. Every normalizer is deterministic, idempotent,
// and maps the empty string to the empty string. Normalizers are registered
// under string keys referenced from the naming configuration document.
package normalizer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/openrig/namekit/symbols"
)

// Func is a pure normalization function. Implementations must be
// idempotent (f(f(x)) == f(x)) and return "" for empty input.
type Func func(value string) string

// registry holds all named normalizers.
var registry = struct {
	mu    sync.RWMutex
	funcs map[string]Func
}{
	funcs: make(map[string]Func),
}

// Register adds or replaces a normalizer under the given key.
func Register(key string, fn Func) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.funcs[key] = fn
}

// Lookup returns the normalizer registered under key.
func Lookup(key string) (Func, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	fn, ok := registry.funcs[key]
	return fn, ok
}

// Names returns all registered normalizer keys, sorted.
func Names() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	names := make([]string, 0, len(registry.funcs))
	for name := range registry.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// sideMapping maps long-form and lowercase short-form side values to the
// canonical abbreviation, built from the Side symbolic source.
var sideMapping = func() map[string]string {
	mapping := make(map[string]string)
	for long, short := range symbols.SideSource {
		mapping[strings.ToLower(long)] = short
		mapping[strings.ToLower(short)] = short
	}
	return mapping
}()

// Side normalizes a side value to its canonical abbreviation
// ("Left" -> "l"). Unrecognized values pass through lower-cased;
// rule validation decides whether they are acceptable.
func Side(value string) string {
	if value == "" {
		return ""
	}
	if short, ok := sideMapping[strings.ToLower(value)]; ok {
		return short
	}
	return strings.ToLower(value)
}

// Descriptor normalizes a descriptor to camelCase so it cannot collide
// with the naming separator ("upper_arm" -> "upperArm").
func Descriptor(value string) string {
	return ToCamel(value)
}

// Version normalizes a version to the fixed-width vNNN format. Accepts a
// bare integer string ("3") or a 'v'-prefixed form ("v3", "V03"). Values
// with no parseable version pass through unchanged.
func Version(value string) string {
	if value == "" {
		return ""
	}
	if n, ok := VersionNumber(value); ok {
		return fmt.Sprintf("v%03d", n)
	}
	if n, err := strconv.Atoi(value); err == nil {
		return fmt.Sprintf("v%03d", n)
	}
	return value
}

func init() {
	Register("side", Side)
	Register("descriptor", Descriptor)
	Register("type", Descriptor)
	Register("pascal_case", ToPascal)
	Register("snake_case", ToSnake)
	Register("kebab_case", ToKebab)
	Register("upper", strings.ToUpper)
	Register("lower", strings.ToLower)
	Register("capitalize", Capitalize)
	Register("version", Version)
	Register("strip_digits", StripDigits)
	Register("strip_namespace", StripNamespace)
	Register("base_name", func(value string) string {
		return BaseName(value, "|")
	})
	Register("clean", Clean)
}
