// Where: internal/command/template_discovery.go
// What: Template path normalization and candidate discovery helpers.
// Why: Keep file-system specific behavior separate from prompt interactions.
package command

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/poruru/sws-schedules/internal/meta"
)

var templateExtensions = map[string]struct{}{
	".json": {},
	".yml":  {},
	".yaml": {},
}

// normalizeTemplatePath resolves path against baseDir and requires an
// existing regular file.
func normalizeTemplatePath(path, baseDir string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errTemplatePathEmpty
	}

	expanded, err := expandHomePath(trimmed)
	if err != nil {
		return "", fmt.Errorf("expand home path: %w", err)
	}
	cleaned := filepath.Clean(expanded)
	if !filepath.IsAbs(cleaned) && baseDir != "" {
		cleaned = filepath.Join(baseDir, cleaned)
	}

	info, err := os.Stat(cleaned)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", errTemplateNotFound, cleaned)
		}
		return "", fmt.Errorf("stat template path: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("template path is a directory: %s", cleaned)
	}
	abs, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve template path: %w", err)
	}
	return abs, nil
}

// expandHomePath expands ~ to the user's home directory.
func expandHomePath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if len(path) == 1 || path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// discoverTemplateCandidates lists template-like files in the deployment
// tool's output directory, relative to projectDir.
func discoverTemplateCandidates(projectDir string) []string {
	candidates := []string{}
	dir := filepath.Join(projectDir, meta.ServerlessDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return candidates
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if _, ok := templateExtensions[strings.ToLower(filepath.Ext(name))]; !ok {
			continue
		}
		if !strings.Contains(name, "template") {
			continue
		}
		candidates = append(candidates, filepath.ToSlash(filepath.Join(meta.ServerlessDir, name)))
	}
	sort.Strings(candidates)
	return candidates
}

// relativeTo returns path relative to baseDir when it lies inside it.
func relativeTo(baseDir, path string) string {
	rel, err := filepath.Rel(baseDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(rel)
}
