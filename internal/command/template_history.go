// Where: internal/command/template_history.go
// What: Project config backed template history.
// Why: Offer recently used templates first when prompting.
package command

import (
	"fmt"
	"path/filepath"

	domaintpl "github.com/poruru/sws-schedules/internal/domain/template"
	"github.com/poruru/sws-schedules/internal/infra/config"
	"github.com/poruru/sws-schedules/internal/meta"
)

func loadTemplateChoice(projectDir, configPath string) templateChoice {
	path, err := config.ProjectConfigPath(projectDir)
	if err != nil {
		return templateChoice{}
	}
	cfg, err := config.LoadProjectConfig(path)
	if err != nil {
		return templateChoice{}
	}
	return templateChoice{
		previous: cfg.Defaults[filepath.Base(configPath)].Template,
		history:  cfg.RecentTemplates,
	}
}

func saveTemplateChoice(projectDir, configPath, templatePath string) error {
	path, err := config.ProjectConfigPath(projectDir)
	if err != nil {
		return err
	}
	cfg, err := config.LoadProjectConfig(path)
	if err != nil {
		return err
	}
	rel := relativeTo(projectDir, templatePath)
	cfg.RecentTemplates = domaintpl.UpdateHistory(cfg.RecentTemplates, rel, meta.TemplateHistoryLimit)
	cfg.Defaults[filepath.Base(configPath)] = config.GenerateDefaults{Template: rel}
	if err := config.SaveProjectConfig(path, cfg); err != nil {
		return fmt.Errorf("save template history: %w", err)
	}
	return nil
}
