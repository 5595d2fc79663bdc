// Where: internal/infra/config/project_test.go
// What: Tests for project config persistence.
// Why: Ensure project config round-trips correctly.
package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/poruru/sws-schedules/internal/meta"
)

func TestProjectConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), meta.HomeDir, "config.yaml")
	cfg := ProjectConfig{
		Version:         1,
		RecentTemplates: []string{".serverless/cloudformation-template-update-stack.json", "out/template.yml"},
		Defaults: map[string]GenerateDefaults{
			"serverless.yml": {Template: "out/template.yml"},
		},
	}

	if err := SaveProjectConfig(path, cfg); err != nil {
		t.Fatalf("save project config: %v", err)
	}
	loaded, err := LoadProjectConfig(path)
	if err != nil {
		t.Fatalf("load project config: %v", err)
	}
	if !reflect.DeepEqual(cfg, loaded) {
		t.Fatalf("config mismatch: expected %#v, got %#v", cfg, loaded)
	}
}

func TestLoadProjectConfigMissingFile(t *testing.T) {
	cfg, err := LoadProjectConfig(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultProjectConfig()) {
		t.Fatalf("expected default config, got %#v", cfg)
	}
}

func TestLoadProjectConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("recent_templates: {"), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := LoadProjectConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestProjectConfigPathUsesProjectRoot(t *testing.T) {
	projectRoot := t.TempDir()
	got, err := ProjectConfigPath(projectRoot)
	if err != nil {
		t.Fatalf("project config path: %v", err)
	}
	want := filepath.Join(projectRoot, meta.HomeDir, "config.yaml")
	if got != want {
		t.Fatalf("unexpected path: got %s want %s", got, want)
	}
	if _, err := ProjectConfigPath("  "); err == nil {
		t.Fatalf("expected error for blank root")
	}
}
