// Where: internal/infra/templatefile/templatefile.go
// What: Load and save CloudFormation template files.
// Why: The generator edits the compiled template in place, in its own format.
package templatefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/poruru/sws-schedules/internal/domain/template"
	"github.com/poruru/sws-schedules/internal/infra/cfnyaml"
	"github.com/poruru/sws-schedules/internal/infra/fileops"
)

// Format is the on-disk encoding of a template.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrNotFound is returned when the template file does not exist.
var ErrNotFound = errors.New("template not found")

// ParseFormat validates a user supplied format name.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected json or yaml)", value)
	}
}

// DetectFormat picks a format from the file extension, falling back to the
// first non-blank byte of content.
func DetectFormat(path string, content []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yml", ".yaml":
		return FormatYAML
	}
	if trimmed := bytes.TrimSpace(content); len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}
	return FormatYAML
}

// Store reads and writes template files.
type Store struct{}

// Load reads a template and reports the format it was stored in.
func (Store) Load(path string) (template.Document, Format, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, "", fmt.Errorf("read template: %w", err)
	}
	format := DetectFormat(path, content)
	doc, err := Decode(content, format)
	if err != nil {
		return nil, "", fmt.Errorf("parse template %s: %w", path, err)
	}
	return doc, format, nil
}

// Save writes doc to path in the given format.
func (Store) Save(path string, doc template.Document, format Format) error {
	payload, err := Encode(doc, format)
	if err != nil {
		return err
	}
	if err := fileops.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write template: %w", err)
	}
	return nil
}

// Decode parses template content. JSON numbers are kept exact.
func Decode(content []byte, format Format) (template.Document, error) {
	if format == FormatYAML {
		doc, err := cfnyaml.Decode(content)
		if err != nil {
			return nil, err
		}
		return template.Document(doc), nil
	}
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("template root must be an object")
	}
	return template.Document(doc), nil
}

// Encode renders any value as indented JSON or as YAML.
func Encode(value any, format Format) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return nil, fmt.Errorf("encode template: %w", err)
	}
	if format != FormatYAML {
		return buf.Bytes(), nil
	}
	out, err := yaml.JSONToYAML(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("encode template yaml: %w", err)
	}
	return out, nil
}
