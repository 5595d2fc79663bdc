// Where: internal/infra/cfnyaml/decode.go
// What: YAML decoding with CloudFormation short-form intrinsics.
// Why: Service files and templates use !Ref/!GetAtt tags that plain decoding rejects.
package cfnyaml

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const mergeKey = "<<"

// intrinsics maps short-form tags to their long-form keys.
var intrinsics = map[string]string{
	"!Ref":         "Ref",
	"!Condition":   "Condition",
	"!And":         "Fn::And",
	"!Base64":      "Fn::Base64",
	"!Cidr":        "Fn::Cidr",
	"!Equals":      "Fn::Equals",
	"!FindInMap":   "Fn::FindInMap",
	"!GetAtt":      "Fn::GetAtt",
	"!GetAZs":      "Fn::GetAZs",
	"!If":          "Fn::If",
	"!ImportValue": "Fn::ImportValue",
	"!Join":        "Fn::Join",
	"!Not":         "Fn::Not",
	"!Or":          "Fn::Or",
	"!Select":      "Fn::Select",
	"!Split":       "Fn::Split",
	"!Sub":         "Fn::Sub",
	"!Transform":   "Fn::Transform",
}

// Decode parses a YAML document whose root is a mapping.
func Decode(content []byte) (map[string]any, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(content, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, fmt.Errorf("empty yaml document")
	}
	data, ok := decodeNode(node.Content[0]).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected yaml root")
	}
	return data, nil
}

func decodeNode(node *yaml.Node) any {
	if node == nil {
		return nil
	}
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil
		}
		return decodeNode(node.Content[0])
	case yaml.AliasNode:
		return decodeNode(node.Alias)
	case yaml.MappingNode:
		return wrap(node.Tag, decodeMapping(node))
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			out = append(out, decodeNode(item))
		}
		return wrap(node.Tag, out)
	case yaml.ScalarNode:
		return decodeScalar(node)
	default:
		return nil
	}
}

func decodeMapping(node *yaml.Node) map[string]any {
	m := map[string]any{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]
		if keyNode.Value == mergeKey && keyNode.Tag == "!!merge" {
			mergeInto(m, decodeNode(valueNode))
			continue
		}
		key := keyString(decodeNode(keyNode))
		if key == "" {
			continue
		}
		m[key] = decodeNode(valueNode)
	}
	return m
}

// mergeInto applies a `<<` merge; explicit keys already set win.
func mergeInto(dst map[string]any, src any) {
	switch typed := src.(type) {
	case map[string]any:
		for key, value := range typed {
			if _, exists := dst[key]; !exists {
				dst[key] = value
			}
		}
	case []any:
		for _, item := range typed {
			mergeInto(dst, item)
		}
	}
}

func decodeScalar(node *yaml.Node) any {
	switch node.Tag {
	case "!!int":
		if value, err := strconv.Atoi(node.Value); err == nil {
			return value
		}
	case "!!float":
		if value, err := strconv.ParseFloat(node.Value, 64); err == nil {
			return value
		}
	case "!!bool":
		if value, err := strconv.ParseBool(node.Value); err == nil {
			return value
		}
	case "!!null":
		return nil
	case "!GetAtt":
		return map[string]any{"Fn::GetAtt": splitGetAtt(node.Value)}
	case "!GetAZs":
		return map[string]any{"Fn::GetAZs": node.Value}
	}
	return wrap(node.Tag, node.Value)
}

func wrap(tag string, value any) any {
	if key, ok := intrinsics[tag]; ok {
		return map[string]any{key: value}
	}
	return value
}

// splitGetAtt turns "Resource.Attribute" into its list form.
func splitGetAtt(value string) any {
	resource, attribute, ok := strings.Cut(value, ".")
	if !ok {
		return value
	}
	return []any{resource, attribute}
}

func keyString(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	default:
		return fmt.Sprint(typed)
	}
}
