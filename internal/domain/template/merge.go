// Where: internal/domain/template/merge.go
// What: Merge generated resources into a template document.
// Why: The template is only ever written here, and only additively.
package template

import (
	"errors"
	"fmt"

	"github.com/poruru/sws-schedules/internal/domain/resource"
)

var errNilDocument = errors.New("template document is empty")

// MergeReport lists the keys written by Merge, in lexical order.
type MergeReport struct {
	Added    []string
	Replaced []string
}

// Merge stores each generated resource under its key, replacing any prior
// value with the same key. Unrelated resources are left untouched.
func Merge(doc Document, resources resource.Map) (MergeReport, error) {
	if doc == nil {
		return MergeReport{}, errNilDocument
	}
	target, err := doc.Resources()
	if err != nil {
		return MergeReport{}, err
	}
	report := MergeReport{Added: []string{}, Replaced: []string{}}
	for _, key := range resources.Keys() {
		generic, err := resources[key].Generic()
		if err != nil {
			return MergeReport{}, fmt.Errorf("merge %s: %w", key, err)
		}
		if _, exists := target[key]; exists {
			report.Replaced = append(report.Replaced, key)
		} else {
			report.Added = append(report.Added, key)
		}
		target[key] = generic
	}
	return report, nil
}
