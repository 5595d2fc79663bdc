// Where: internal/domain/template/history.go
// What: Pure helpers for template history and suggestions.
// Why: Keep history logic deterministic and independent from I/O.
package template

import "strings"

// BuildSuggestions merges the previous path, history and discovered
// candidates into a unique, ordered list.
func BuildSuggestions(previous string, history, candidates []string) []string {
	suggestions := []string{}
	seen := map[string]struct{}{}
	add := func(value string) {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return
		}
		if _, ok := seen[trimmed]; ok {
			return
		}
		suggestions = append(suggestions, trimmed)
		seen[trimmed] = struct{}{}
	}

	add(previous)
	for _, entry := range history {
		add(entry)
	}
	for _, candidate := range candidates {
		add(candidate)
	}
	return suggestions
}

// UpdateHistory moves templatePath to the front and keeps at most limit entries.
func UpdateHistory(history []string, templatePath string, limit int) []string {
	trimmed := strings.TrimSpace(templatePath)
	if trimmed == "" {
		return history
	}
	next := make([]string, 0, limit)
	seen := map[string]struct{}{}
	for _, entry := range append([]string{trimmed}, history...) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if _, ok := seen[entry]; ok {
			continue
		}
		if limit > 0 && len(next) >= limit {
			break
		}
		next = append(next, entry)
		seen[entry] = struct{}{}
	}
	return next
}
