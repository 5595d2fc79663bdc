// Where: internal/domain/naming/prefix.go
// What: Default group prefix rendering.
// Why: Groups without an explicit prefix still need names unique per service, stage and position.
package naming

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// DefaultPrefixTemplate reproduces the historical default prefix.
const DefaultPrefixTemplate = "{{ .Service }}-{{ .Stage }}-sws-schedule-{{ .Index }}"

var errEmptyPrefix = errors.New("prefix template rendered an empty prefix")

// PrefixData is the input of a prefix template.
type PrefixData struct {
	Service string
	Stage   string
	Index   int
}

// PrefixRenderer renders default group prefixes.
type PrefixRenderer struct {
	text string
	tmpl *template.Template
}

// NewPrefixRenderer parses a prefix template; an empty text selects
// DefaultPrefixTemplate. Sprig functions are available to the template.
func NewPrefixRenderer(text string) (*PrefixRenderer, error) {
	if strings.TrimSpace(text) == "" {
		text = DefaultPrefixTemplate
	}
	tmpl, err := template.New("prefix").
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse prefix template: %w", err)
	}
	return &PrefixRenderer{text: text, tmpl: tmpl}, nil
}

// Text returns the template source in use.
func (r *PrefixRenderer) Text() string {
	return r.text
}

// Render executes the template for one group.
func (r *PrefixRenderer) Render(data PrefixData) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render prefix template: %w", err)
	}
	out := strings.TrimSpace(buf.String())
	if out == "" {
		return "", errEmptyPrefix
	}
	return out, nil
}
