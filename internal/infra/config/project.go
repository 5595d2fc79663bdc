// Where: internal/infra/config/project.go
// What: Project config load/save.
// Why: Remember recently used templates under <project>/.sws/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/poruru/sws-schedules/internal/infra/fileops"
	"github.com/poruru/sws-schedules/internal/meta"
)

const configVersion = 1

// ProjectConfig represents the <project>/.sws/config.yaml file.
type ProjectConfig struct {
	Version         int                         `yaml:"version"`
	RecentTemplates []string                    `yaml:"recent_templates,omitempty"`
	Defaults        map[string]GenerateDefaults `yaml:"defaults,omitempty"`
}

// GenerateDefaults stores last-used generate inputs for a service file.
type GenerateDefaults struct {
	Template string `yaml:"template,omitempty"`
}

// DefaultProjectConfig returns an initialized ProjectConfig.
func DefaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version:         configVersion,
		RecentTemplates: []string{},
		Defaults:        map[string]GenerateDefaults{},
	}
}

// ProjectConfigPath returns the path to the project config file.
func ProjectConfigPath(projectRoot string) (string, error) {
	root := strings.TrimSpace(projectRoot)
	if root == "" {
		return "", fmt.Errorf("project root is required")
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return filepath.Join(root, meta.HomeDir, "config.yaml"), nil
}

// LoadProjectConfig reads the config at path. A missing file yields the
// default config.
func LoadProjectConfig(path string) (ProjectConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultProjectConfig(), nil
		}
		return ProjectConfig{}, fmt.Errorf("read project config: %w", err)
	}

	cfg := DefaultProjectConfig()
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return ProjectConfig{}, fmt.Errorf("decode project config: %w", err)
	}
	if cfg.Defaults == nil {
		cfg.Defaults = map[string]GenerateDefaults{}
	}
	return cfg, nil
}

// SaveProjectConfig writes cfg to path.
func SaveProjectConfig(path string, cfg ProjectConfig) error {
	if cfg.Version == 0 {
		cfg.Version = configVersion
	}
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encode project config: %w", err)
	}
	if err := fileops.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("write project config: %w", err)
	}
	return nil
}
