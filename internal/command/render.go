// Where: internal/command/render.go
// What: render command adapter.
// Why: Show generated resources without touching any template.
package command

import (
	"log/slog"

	"github.com/poruru/sws-schedules/internal/infra/service"
	"github.com/poruru/sws-schedules/internal/infra/templatefile"
	"github.com/poruru/sws-schedules/internal/usecase/generate"
)

func runRender(cli CLI, deps Dependencies, logger *slog.Logger) int {
	cmd := cli.Render
	format, err := templatefile.ParseFormat(cmd.Format)
	if err != nil {
		return exitWithError(deps.Out, err)
	}
	_, configPath, _, code, ok := resolveServiceConfig(cmd.Config, deps)
	if !ok {
		return code
	}

	// Diagnostics go to ErrOut so Out stays machine-readable.
	workflow := generate.NewWorkflow(service.Loader{}, nil, consoleUI(deps.ErrOut, deps.Emoji), logger)
	resources, err := workflow.Render(generate.Request{
		ConfigPath:     configPath,
		Stage:          cmd.Stage,
		PrefixTemplate: cmd.PrefixTemplate,
	})
	if err != nil {
		return exitWithError(deps.Out, err)
	}

	payload, err := templatefile.Encode(resources, format)
	if err != nil {
		return exitWithError(deps.Out, err)
	}
	if _, err := deps.Out.Write(payload); err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	return 0
}
