// Where: internal/infra/service/service.go
// What: Service configuration discovery and loading.
// Why: Read the service identity and sws block from serverless.yml or sws.yml.
package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru/sws-schedules/internal/domain/schedule"
	"github.com/poruru/sws-schedules/internal/domain/value"
	"github.com/poruru/sws-schedules/internal/infra/cfnyaml"
)

// ErrConfigNotFound is returned when no service configuration file exists.
var ErrConfigNotFound = errors.New("service config not found")

// DefaultFiles are searched in order when no path is given.
var DefaultFiles = []string{
	"serverless.yml",
	"serverless.yaml",
	"serverless.json",
	"sws.yml",
	"sws.yaml",
}

// Config is the part of a service configuration the generator needs.
type Config struct {
	Path          string
	Service       string
	ProviderStage string
	Options       schedule.Options
	Warnings      []string
}

// Resolve returns explicit when set, otherwise the first default file in dir.
func Resolve(dir, explicit string) (string, error) {
	if trimmed := strings.TrimSpace(explicit); trimmed != "" {
		if _, err := os.Stat(trimmed); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("%w: %s", ErrConfigNotFound, trimmed)
			}
			return "", fmt.Errorf("stat service config: %w", err)
		}
		return trimmed, nil
	}
	for _, name := range DefaultFiles {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w in %s (looked for %s)", ErrConfigNotFound, dir, strings.Join(DefaultFiles, ", "))
}

// Loader reads service configuration files.
type Loader struct{}

// Load reads and validates the configuration at path.
func (Loader) Load(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Config{}, fmt.Errorf("read service config: %w", err)
	}
	cfg, err := Parse(content)
	if err != nil {
		return Config{}, fmt.Errorf("service config %s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes configuration content. The sws block is read from
// custom.sws, or from the document root when it declares schedules itself.
func Parse(content []byte) (Config, error) {
	root, err := cfnyaml.Decode(content)
	if err != nil {
		return Config{}, fmt.Errorf("parse: %w", err)
	}

	cfg := Config{Service: serviceName(root["service"])}
	if cfg.Service == "" {
		cfg.Warnings = append(cfg.Warnings, "service name is not set; default prefixes start with \"-\"")
	} else if isVariable(cfg.Service) {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("service name %q contains an unresolved variable", cfg.Service))
	}

	if stage := value.AsString(value.AsMap(root["provider"])["stage"]); stage != "" {
		if isVariable(stage) {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("provider.stage %q is a variable; ignoring it", stage))
		} else {
			cfg.ProviderStage = stage
		}
	}

	block := swsBlock(root)
	if block == nil {
		return cfg, nil
	}
	opts, err := decodeOptions(block)
	if err != nil {
		return Config{}, fmt.Errorf("invalid sws configuration: %w", err)
	}
	cfg.Options = opts
	cfg.Warnings = append(cfg.Warnings, addressWarnings(opts.Schedules)...)
	return cfg, nil
}

func serviceName(raw any) string {
	if m := value.AsMap(raw); m != nil {
		return strings.TrimSpace(value.AsString(m["name"]))
	}
	return strings.TrimSpace(value.AsString(raw))
}

func swsBlock(root map[string]any) map[string]any {
	if custom := value.AsMap(root["custom"]); custom != nil {
		if _, ok := custom["sws"]; ok {
			if block := value.AsMap(custom["sws"]); block != nil {
				return block
			}
			return map[string]any{}
		}
	}
	if _, ok := root["schedules"]; ok {
		block := map[string]any{"schedules": root["schedules"]}
		if tpl, ok := root["prefixTemplate"]; ok {
			block["prefixTemplate"] = tpl
		}
		return block
	}
	return nil
}

// isVariable reports whether a value still holds framework variable syntax.
func isVariable(s string) bool {
	return strings.Contains(s, "${")
}
