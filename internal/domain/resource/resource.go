// Where: internal/domain/resource/resource.go
// What: CloudFormation resource declarations produced by the generator.
// Why: Give generated resources a fixed, typed shape before they reach a template.
package resource

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/poruru/sws-schedules/internal/domain/value"
)

const (
	TypeRole       = "AWS::IAM::Role"
	TypePolicy     = "AWS::IAM::Policy"
	TypeEventRule  = "AWS::Events::Rule"
	TypePermission = "AWS::Lambda::Permission"
)

// Resource is one template resource: a type tag and a properties bag.
type Resource struct {
	Type       string `json:"Type"`
	Properties any    `json:"Properties"`
}

// Map holds generated resources by reference key.
type Map map[string]Resource

// Keys returns the reference keys in lexical order.
func (m Map) Keys() []string {
	return value.SortedKeys(m)
}

// CountByType returns how many resources of the given type the map holds.
func (m Map) CountByType(resourceType string) int {
	count := 0
	for _, res := range m {
		if res.Type == resourceType {
			count++
		}
	}
	return count
}

// Generic converts the resource to the plain map form used by decoded
// templates. Numbers are kept as json.Number so integers survive exactly.
func (r Resource) Generic() (map[string]any, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode %s resource: %w", r.Type, err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode %s resource: %w", r.Type, err)
	}
	return out, nil
}
