// Where: internal/domain/template/document.go
// What: Decoded CloudFormation template document.
// Why: Give the merge step a typed handle on the host-owned template.
package template

import "fmt"

const resourcesKey = "Resources"

// Document is a decoded CloudFormation template.
type Document map[string]any

// Resources returns the mutable resource collection, creating it when the
// template has none yet.
func (d Document) Resources() (map[string]any, error) {
	raw, ok := d[resourcesKey]
	if !ok || raw == nil {
		resources := map[string]any{}
		d[resourcesKey] = resources
		return resources, nil
	}
	resources, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("template %s must be a mapping, got %T", resourcesKey, raw)
	}
	return resources, nil
}
