package normalizer

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	delimiterRE = regexp.MustCompile(`[_\-\s.]+`)
	digitsRE    = regexp.MustCompile(`\d+`)
	versionRE   = regexp.MustCompile(`[vV](\d+)`)
	invalidRE   = regexp.MustCompile(`[^a-zA-Z0-9_]`)
	underscRE   = regexp.MustCompile(`_+`)
)

// SplitWords splits text into individual words, handling camelCase,
// PascalCase, digit runs, and the delimiters '_', '-', '.', and whitespace.
//
//	SplitWords("upperArm_01") == []string{"upper", "Arm", "01"}
func SplitWords(text string) []string {
	text = delimiterRE.ReplaceAllString(text, " ")

	var words []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = nil
		}
	}

	runes := []rune(text)
	for i, r := range runes {
		switch {
		case unicode.IsSpace(r):
			flush()
		case unicode.IsUpper(r):
			// Boundary before an upper rune following a lower/digit rune,
			// or at the end of an acronym run ("HTTPServer" -> HTTP Server).
			if len(current) > 0 {
				prev := current[len(current)-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if !unicode.IsUpper(prev) || nextLower {
					flush()
				}
			}
			current = append(current, r)
		case unicode.IsDigit(r):
			if len(current) > 0 && !unicode.IsDigit(current[len(current)-1]) {
				flush()
			}
			current = append(current, r)
		default:
			if len(current) > 0 && unicode.IsDigit(current[len(current)-1]) {
				flush()
			}
			current = append(current, r)
		}
	}
	flush()
	return words
}

// titleWord lowercases a word and capitalizes its first rune.
func titleWord(word string) string {
	if word == "" {
		return ""
	}
	lower := strings.ToLower(word)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// ToCamel converts text to camelCase.
func ToCamel(text string) string {
	words := SplitWords(text)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, word := range words[1:] {
		b.WriteString(titleWord(word))
	}
	return b.String()
}

// ToPascal converts text to PascalCase.
func ToPascal(text string) string {
	var b strings.Builder
	for _, word := range SplitWords(text) {
		b.WriteString(titleWord(word))
	}
	return b.String()
}

// ToSnake converts text to snake_case.
func ToSnake(text string) string {
	words := SplitWords(text)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "_")
}

// ToKebab converts text to kebab-case.
func ToKebab(text string) string {
	words := SplitWords(text)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "-")
}

// Capitalize upper-cases the first rune of text, leaving the rest unchanged.
func Capitalize(text string) string {
	if text == "" {
		return ""
	}
	return strings.ToUpper(text[:1]) + text[1:]
}

// StripDigits removes all digit characters from text.
func StripDigits(text string) string {
	return digitsRE.ReplaceAllString(text, "")
}

// StripNamespace removes a leading colon-delimited namespace prefix.
// Everything up to and including the last ':' is dropped.
func StripNamespace(text string) string {
	if i := strings.LastIndex(text, ":"); i >= 0 {
		return text[i+1:]
	}
	return text
}

// BaseName returns the last component of a path-like string.
func BaseName(text, separator string) string {
	parts := strings.Split(text, separator)
	return parts[len(parts)-1]
}

// Clean replaces any character outside [a-zA-Z0-9_] with an underscore,
// collapses underscore runs, and prefixes an underscore when the result
// would start with a digit.
func Clean(text string) string {
	text = invalidRE.ReplaceAllString(text, "_")
	text = underscRE.ReplaceAllString(text, "_")
	if text != "" && unicode.IsDigit(rune(text[0])) {
		text = "_" + text
	}
	return text
}

// VersionNumber extracts the integer from a 'v'-prefixed version substring
// (e.g. "v003" -> 3). Returns false if no version marker is present.
func VersionNumber(text string) (int, bool) {
	match := versionRE.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
