package convention

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/openrig/namekit/symbols"
)

var trailingDigitRE = regexp.MustCompile(`(\d+)$`)

// sideMirror maps every recognized side spelling, long and short, to its
// opposite. Self-mirroring entries (center, middle) keep mixed names stable.
var sideMirror = map[string]string{
	"l": "r", "r": "l",
	"L": "R", "R": "L",
	"left": "right", "right": "left",
	"Left": "Right", "Right": "Left",
	"c": "c", "C": "C", "m": "m", "M": "M",
	"center": "center", "middle": "middle",
	"Center": "Center", "Middle": "Middle",
}

// MirrorName returns name with its side token swapped to the opposite
// side. The name is parsed positionally; every token whose value is a
// recognized side spelling is mirrored, and the result is rebuilt through
// the full validation path. Names with no side token come back unchanged.
func (m *Manager) MirrorName(name string) (string, error) {
	data := m.GetData(name)

	changed := false
	for token, value := range data {
		mirrored, ok := sideMirror[value]
		if !ok {
			continue
		}
		if mirrored != value {
			changed = true
		}
		data[token] = mirrored
	}
	if !changed {
		return name, nil
	}
	return m.BuildName(data)
}

// SplitTrailingNumber splits a string into its base and trailing digit
// run. The second return is "" when the string has no trailing digits.
func SplitTrailingNumber(text string) (base, number string) {
	loc := trailingDigitRE.FindStringIndex(text)
	if loc == nil {
		return text, ""
	}
	return text[:loc[0]], text[loc[0]:]
}

// IncrementDigit increments the trailing number of text, preserving its
// zero padding. When text carries no trailing number, "01" is appended.
func IncrementDigit(text string) string {
	base, number := SplitTrailingNumber(text)
	if number == "" {
		return text + "01"
	}
	n, _ := strconv.Atoi(number)
	return base + fmt.Sprintf("%0*d", len(number), n+1)
}

// DecrementDigit decrements the trailing number of text, preserving its
// zero padding. A trailing number of 1 or 0 is dropped entirely; text
// without a trailing number is returned unchanged.
func DecrementDigit(text string) string {
	base, number := SplitTrailingNumber(text)
	if number == "" {
		return text
	}
	n, _ := strconv.Atoi(number)
	if n <= 1 {
		return base
	}
	return base + fmt.Sprintf("%0*d", len(number), n-1)
}

// ReplacePadding rewrites the trailing number of text with the given
// zero padding, e.g. ("arm1", 3) -> "arm001".
func ReplacePadding(text string, padding int) string {
	base, number := SplitTrailingNumber(text)
	if number == "" {
		return text
	}
	n, _ := strconv.Atoi(number)
	return base + fmt.Sprintf("%0*d", padding, n)
}

// UniqueName returns name unchanged when it does not collide with
// existing, otherwise increments its trailing number until it is unique.
func UniqueName(name string, existing []string) string {
	taken := make(map[string]struct{}, len(existing))
	for _, n := range existing {
		taken[n] = struct{}{}
	}
	for {
		if _, ok := taken[name]; !ok {
			return name
		}
		name = IncrementDigit(name)
	}
}

// MirrorSide returns the opposite canonical side for a raw side value,
// accepting long names, short forms, and either case. Unrecognized values
// come back unchanged.
func MirrorSide(value string) string {
	if mirrored, ok := sideMirror[value]; ok {
		return mirrored
	}
	if canonical, ok := symbols.SideSource[strings.ToLower(value)]; ok {
		return string(symbols.SideValue(canonical).Mirror())
	}
	return value
}
