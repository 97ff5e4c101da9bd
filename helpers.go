package frame

import (
	"strings"
	"unicode"
)

func has[C comparable](needle C, haystack []C) bool {
	return position(needle, haystack) >= 0
}

func position[C comparable](needle C, haystack []C) int {
	for ind, straw := range haystack {
		if needle == straw {
			return ind
		}
	}

	return -1
}

// NormalizeName canonicalizes a column header: lower case, runs of
// spaces and punctuation collapsed to a single underscore, leading and
// trailing underscores trimmed. Applying it twice is a no-op.
func NormalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			continue
		}

		b.WriteRune('_')
	}

	out := b.String()
	for strings.Contains(out, "__") {
		out = strings.ReplaceAll(out, "__", "_")
	}

	return strings.Trim(out, "_")
}

// Normalize canonicalizes every column name in the Frame. Row values
// are untouched.
func (f *Frame) Normalize() {
	for _, col := range f.cols {
		col.ColCore.name = NormalizeName(col.Name())
	}
}
