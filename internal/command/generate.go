// Where: internal/command/generate.go
// What: generate command adapter.
// Why: Resolve paths and prompts, then hand off to the generate workflow.
package command

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/poruru/sws-schedules/internal/infra/service"
	"github.com/poruru/sws-schedules/internal/infra/templatefile"
	"github.com/poruru/sws-schedules/internal/usecase/generate"
)

func runGenerate(cli CLI, deps Dependencies, logger *slog.Logger) int {
	cmd := cli.Generate
	out := deps.Out

	wd, configPath, projectDir, code, ok := resolveServiceConfig(cmd.Config, deps)
	if !ok {
		return code
	}

	templatePath, err := resolveTemplate(
		cmd.Template,
		wd,
		projectDir,
		deps.Interactive,
		deps.Prompter,
		loadTemplateChoice(projectDir, configPath),
		deps.ErrOut,
	)
	if err != nil {
		if errors.Is(err, errTemplateNotFound) {
			return exitWithSuggestion(out, err.Error(), []string{
				"Package the service first so the compiled template exists (serverless package).",
				fmt.Sprintf("Or pass it explicitly: %s generate -t path/to/template.json", cliName()),
			})
		}
		return exitWithError(out, err)
	}

	outputPath := cmd.Output
	if outputPath != "" {
		expanded, err := expandHomePath(outputPath)
		if err != nil {
			return exitWithError(out, err)
		}
		if !filepath.IsAbs(expanded) {
			expanded = filepath.Join(wd, expanded)
		}
		outputPath = expanded
	}

	userInterface := consoleUI(out, deps.Emoji)
	workflow := generate.NewWorkflow(service.Loader{}, templatefile.Store{}, userInterface, logger)
	result, err := workflow.Run(generate.Request{
		ConfigPath:     configPath,
		TemplatePath:   templatePath,
		OutputPath:     outputPath,
		Stage:          cmd.Stage,
		PrefixTemplate: cmd.PrefixTemplate,
		DryRun:         cmd.DryRun,
	})
	if err != nil {
		return exitWithError(out, err)
	}

	if result.Written && !cmd.NoSave {
		if err := saveTemplateChoice(projectDir, configPath, templatePath); err != nil {
			logger.Warn("template history not saved", "error", err)
		}
	}
	return 0
}

// resolveServiceConfig returns the working directory, the service file and
// the project directory that holds it. On failure it has already printed
// the error and returns the exit code.
func resolveServiceConfig(explicit string, deps Dependencies) (string, string, string, int, bool) {
	wd, err := deps.Getwd()
	if err != nil {
		return "", "", "", exitWithError(deps.Out, fmt.Errorf("get working directory: %w", err)), false
	}
	if explicit != "" && !filepath.IsAbs(explicit) {
		explicit = filepath.Join(wd, explicit)
	}
	configPath, err := service.Resolve(wd, explicit)
	if err != nil {
		if errors.Is(err, service.ErrConfigNotFound) {
			return "", "", "", exitWithSuggestion(deps.Out, err.Error(), []string{
				"Run the command from the service directory.",
				fmt.Sprintf("Or pass the file explicitly: %s generate -c path/to/serverless.yml", cliName()),
			}), false
		}
		return "", "", "", exitWithError(deps.Out, err), false
	}
	abs, err := filepath.Abs(configPath)
	if err == nil {
		configPath = abs
	}
	return wd, configPath, filepath.Dir(configPath), 0, true
}
