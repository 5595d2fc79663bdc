// Where: internal/domain/naming/camelcase.go
// What: camelCase conversion for template logical ids.
// Why: Logical ids must stay identical to the keys already present in
// deployed stacks, which were produced by lodash's camelCase.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CamelCase converts s to lowerCamelCase using lodash word rules: Latin
// letters are folded and apostrophes dropped first, then words break on
// non-alphanumerics, lower-to-upper transitions, acronym ends and
// letter/digit boundaries, while ordinals such as "1st" stay whole.
func CamelCase(s string) string {
	var b strings.Builder
	for i, word := range splitWords(deburr(s)) {
		lower := strings.ToLower(word)
		if i == 0 {
			b.WriteString(lower)
			continue
		}
		r, size := utf8.DecodeRuneInString(lower)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(lower[size:])
	}
	return b.String()
}

func splitWords(s string) []string {
	var words []string
	runes := []rune(s)
	start := -1
	for i := 0; i <= len(runes); i++ {
		if i < len(runes) && isWordRune(runes[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			words = append(words, splitRun(runes[start:i])...)
			start = -1
		}
	}
	return words
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// splitRun segments one alphanumeric run.
func splitRun(run []rune) []string {
	var words []string
	n := len(run)
	i := 0
	for i < n {
		r := run[i]
		switch {
		case unicode.IsDigit(r):
			j := i
			for j < n && unicode.IsDigit(run[j]) {
				j++
			}
			if end, ok := ordinalEnd(run, j); ok {
				words = append(words, string(run[i:end]))
				i = end
				continue
			}
			words = append(words, string(run[i:j]))
			i = j
		case unicode.IsUpper(r):
			j := i
			for j < n && unicode.IsUpper(run[j]) {
				j++
			}
			if j < n && isLowerLike(run[j]) {
				if j-i > 1 {
					words = append(words, string(run[i:j-1]))
					i = j - 1
				}
				k := i + 1
				for k < n && isLowerLike(run[k]) {
					k++
				}
				words = append(words, string(run[i:k]))
				i = k
				continue
			}
			words = append(words, string(run[i:j]))
			i = j
		default:
			j := i
			for j < n && isLowerLike(run[j]) {
				j++
			}
			words = append(words, string(run[i:j]))
			i = j
		}
	}
	return words
}

// isLowerLike matches lowercase letters and letters without case.
func isLowerLike(r rune) bool {
	return unicode.IsLetter(r) && !unicode.IsUpper(r)
}

// ordinalEnd reports whether the digits ending at j are followed by an
// ordinal suffix matching the last digit, and where the ordinal ends.
func ordinalEnd(run []rune, j int) (int, bool) {
	if j+2 > len(run) || j == 0 {
		return 0, false
	}
	suffix := string(run[j : j+2])
	lowerSuffix := strings.ToLower(suffix)
	if suffix != lowerSuffix && suffix != strings.ToUpper(suffix) {
		return 0, false
	}
	last := run[j-1]
	switch lowerSuffix {
	case "st":
		if last != '1' {
			return 0, false
		}
	case "nd":
		if last != '2' {
			return 0, false
		}
	case "rd":
		if last != '3' {
			return 0, false
		}
	case "th":
		if last == '1' || last == '2' || last == '3' {
			return 0, false
		}
	default:
		return 0, false
	}
	end := j + 2
	if end == len(run) {
		return end, true
	}
	next := run[end]
	if suffix == lowerSuffix {
		return end, unicode.IsUpper(next)
	}
	return end, isLowerLike(next)
}
