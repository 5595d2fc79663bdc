// Where: internal/command/template_resolve.go
// What: Template path resolution and interactive selection flow.
// Why: Keep template selection flow independent from path/prompt helpers.
package command

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	domaintpl "github.com/poruru/sws-schedules/internal/domain/template"
	"github.com/poruru/sws-schedules/internal/infra/interaction"
	"github.com/poruru/sws-schedules/internal/meta"
)

const templateManualOption = "Enter path..."

var (
	errTemplatePathEmpty = errors.New("template path is empty")
	errTemplateNotFound  = errors.New("template not found")
)

// templateChoice carries what the resolver may suggest.
type templateChoice struct {
	previous string
	history  []string
}

// resolveTemplate picks the template to update: the explicit value
// (relative to workDir), the default compiled template, or an interactive
// choice (relative to projectDir).
func resolveTemplate(
	value string,
	workDir string,
	projectDir string,
	interactive bool,
	prompter interaction.Prompter,
	choice templateChoice,
	errOut io.Writer,
) (string, error) {
	if strings.TrimSpace(value) != "" {
		return normalizeTemplatePath(value, workDir)
	}
	if path, err := normalizeTemplatePath(meta.DefaultTemplate, projectDir); err == nil {
		return path, nil
	}
	if !interactive || prompter == nil {
		return "", fmt.Errorf("%w: %s", errTemplateNotFound, filepath.Join(projectDir, meta.DefaultTemplate))
	}

	suggestions := existingTemplates(projectDir, domaintpl.BuildSuggestions(
		choice.previous,
		choice.history,
		discoverTemplateCandidates(projectDir),
	))
	for {
		selected := templateManualOption
		if len(suggestions) > 0 {
			options := make([]interaction.SelectOption, 0, len(suggestions)+1)
			for _, s := range suggestions {
				options = append(options, interaction.SelectOption{Label: s, Value: s})
			}
			options = append(options, interaction.SelectOption{Label: templateManualOption, Value: templateManualOption})
			var err error
			selected, err = prompter.SelectValue("Template to update", options)
			if err != nil {
				return "", fmt.Errorf("prompt template selection: %w", err)
			}
		}
		if selected == templateManualOption {
			input, err := prompter.Input("Template path", suggestions)
			if err != nil {
				return "", fmt.Errorf("prompt template path: %w", err)
			}
			selected = strings.TrimSpace(input)
			if selected == "" {
				fmt.Fprintln(errOut, "Template path is required.")
				continue
			}
		}
		path, err := normalizeTemplatePath(selected, projectDir)
		if err != nil {
			fmt.Fprintf(errOut, "Invalid template path: %v\n", err)
			continue
		}
		return path, nil
	}
}

func existingTemplates(projectDir string, paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		if _, err := normalizeTemplatePath(path, projectDir); err == nil {
			out = append(out, path)
		}
	}
	return out
}
