// Where: internal/domain/value/value.go
// What: Loose value helpers for decoded configuration and template data.
// Why: Keep schedule and template code free of repeated type assertions.
package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// AsMap converts a value to map form when possible.
func AsMap(value any) map[string]any {
	if value == nil {
		return nil
	}
	if m, ok := value.(map[string]any); ok {
		return m
	}
	return nil
}

// AsSlice returns the value as a slice, or nil when it is not one.
func AsSlice(value any) []any {
	if v, ok := value.([]any); ok {
		return v
	}
	return nil
}

// AsString returns the string representation of a value.
func AsString(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

// IsEmpty reports whether an address-like value carries nothing usable:
// nil, a blank string, or an empty map or slice.
func IsEmpty(value any) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(typed) == ""
	case map[string]any:
		return len(typed) == 0
	case []any:
		return len(typed) == 0
	default:
		return false
	}
}

// SortedKeys returns the keys of a map in lexical order.
func SortedKeys[V any](values map[string]V) []string {
	if len(values) == 0 {
		return nil
	}
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// CompactJSON encodes a value as compact JSON without HTML escaping, the
// form used for hashed bodies and dispatch envelopes. U+2028 and U+2029 are
// written raw so hashes match JSON.stringify output.
func CompactJSON(value any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return rawLineSeparators(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// rawLineSeparators rewrites the \u2028 and \u2029 escapes emitted by
// encoding/json. Escapes are consumed pairwise so an escaped backslash
// followed by literal "u2028" text is left alone.
func rawLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			out = append(out, data[i])
			continue
		}
		if rest := data[i+1:]; bytes.HasPrefix(rest, []byte("u2028")) || bytes.HasPrefix(rest, []byte("u2029")) {
			if rest[4] == '8' {
				out = append(out, "\u2028"...)
			} else {
				out = append(out, "\u2029"...)
			}
			i += 5
			continue
		}
		out = append(out, data[i], data[i+1])
		i++
	}
	return out
}
