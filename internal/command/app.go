// Where: internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/poruru/sws-schedules/internal/constants"
	"github.com/poruru/sws-schedules/internal/infra/fileops"
	"github.com/poruru/sws-schedules/internal/infra/interaction"
	"github.com/poruru/sws-schedules/internal/infra/logging"
	"github.com/poruru/sws-schedules/internal/infra/ui"
	"github.com/poruru/sws-schedules/internal/meta"
	"github.com/poruru/sws-schedules/internal/version"
)

// Dependencies holds the injected dependencies required for command execution.
type Dependencies struct {
	Out         io.Writer
	ErrOut      io.Writer
	Prompter    interaction.Prompter
	Interactive bool
	Emoji       bool
	Getwd       func() (string, error)
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	EnvFile  string      `name:"env-file" help:"Path to .env file (default: .env when present)"`
	Generate GenerateCmd `cmd:"" help:"Merge schedule resources into the compiled template"`
	Render   RenderCmd   `cmd:"" help:"Print the generated schedule resources"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

type (
	// GenerateCmd defines the generate command flags.
	GenerateCmd struct {
		Config         string `short:"c" help:"Service configuration file (default: serverless.yml or sws.yml)"`
		Template       string `short:"t" env:"SWS_TEMPLATE" help:"Compiled CloudFormation template to update"`
		Output         string `short:"o" help:"Write the merged template here instead of in place"`
		Stage          string `short:"s" env:"SWS_STAGE" help:"Deployment stage (default: provider.stage, then dev)"`
		PrefixTemplate string `name:"prefix-template" env:"SWS_PREFIX_TEMPLATE" help:"Go template for default group prefixes"`
		DryRun         bool   `name:"dry-run" help:"Compile and merge without writing the template"`
		NoSave         bool   `name:"no-save-defaults" help:"Do not remember the selected template"`
	}

	// RenderCmd defines the render command flags.
	RenderCmd struct {
		Config         string `short:"c" help:"Service configuration file (default: serverless.yml or sws.yml)"`
		Stage          string `short:"s" env:"SWS_STAGE" help:"Deployment stage (default: provider.stage, then dev)"`
		PrefixTemplate string `name:"prefix-template" env:"SWS_PREFIX_TEMPLATE" help:"Go template for default group prefixes"`
		Format         string `short:"f" default:"json" enum:"json,yaml,yml" help:"Output format (json/yaml)"`
	}

	VersionCmd struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments and dispatches to the matching
// handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.Getwd == nil {
		deps.Getwd = os.Getwd
	}
	out := deps.Out

	if len(args) == 0 {
		return runNoArgs(out)
	}

	// The env file is loaded before parsing so it can feed flag defaults.
	loadEnvFile(envFileArg(args), consoleUI(deps.ErrOut, deps.Emoji))

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(cliName()),
		kong.Description("Generate EventBridge schedule resources for a Serverless service."),
		kong.Writers(out, deps.ErrOut),
	)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(err, out)
	}

	logger := logging.New(deps.ErrOut, logging.GetLogLevel())
	if exitCode, handled := dispatchCommand(ctx.Command(), cli, deps, logger); handled {
		return exitCode
	}

	consoleUI(out, deps.Emoji).Warn("unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, *slog.Logger) int

func dispatchCommand(command string, cli CLI, deps Dependencies, logger *slog.Logger) (int, bool) {
	handlers := map[string]commandHandler{
		"generate": runGenerate,
		"render":   runRender,
		"version":  func(_ CLI, deps Dependencies, _ *slog.Logger) int { return runVersion(deps.Out) },
	}
	if handler, ok := handlers[command]; ok {
		return handler(cli, deps, logger), true
	}
	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}

// runNoArgs prints short usage when the CLI is invoked without arguments.
func runNoArgs(out io.Writer) int {
	cmd := cliName()
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s generate [-c serverless.yml] [-t template] [-s stage] [--dry-run]\n", cmd)
	fmt.Fprintf(out, "  %s render [-c serverless.yml] [-s stage] [-f json|yaml]\n", cmd)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Environment: %s, %s, %s, %s\n",
		constants.EnvStage, constants.EnvTemplate, constants.EnvPrefixTemplate, constants.EnvLogLevel)
	fmt.Fprintf(out, "Try: %s --help\n", cmd)
	return 0
}

// envFileArg returns the value of --env-file from raw arguments.
func envFileArg(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			return ""
		}
		if value, ok := strings.CutPrefix(arg, "--env-file="); ok {
			return value
		}
		if arg == "--env-file" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// loadEnvFile loads the given env file, or .env when present. Variables
// already set in the environment win.
func loadEnvFile(path string, out ui.UserInterface) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			out.Warn(fmt.Sprintf("failed to load env file %s: %v", path, err))
		}
		return
	}
	if fileops.FileExists(meta.DefaultEnvFile) {
		if err := godotenv.Load(meta.DefaultEnvFile); err != nil {
			out.Warn(fmt.Sprintf("failed to load %s: %v", meta.DefaultEnvFile, err))
		}
	}
}

// handleParseError provides user-friendly messages for missing flag values.
func handleParseError(err error, out io.Writer) int {
	msg := err.Error()
	if strings.Contains(msg, "expected string value") {
		cmd := cliName()
		ui := consoleUI(out, false)
		switch {
		case strings.Contains(msg, "--template"):
			ui.Warn("`-t/--template` expects a path. Omit it to use the compiled template in .serverless/.")
			ui.Info(fmt.Sprintf("Example: %s generate -t .serverless/cloudformation-template-update-stack.json", cmd))
			return 1
		case strings.Contains(msg, "--stage"):
			ui.Warn("`-s/--stage` expects a value. Omit it to use provider.stage.")
			ui.Info(fmt.Sprintf("Example: %s generate -s prod", cmd))
			return 1
		case strings.Contains(msg, "--env-file"):
			ui.Warn("`--env-file` expects a value. Provide a file path.")
			ui.Info(fmt.Sprintf("Example: %s generate --env-file .env.prod", cmd))
			return 1
		}
	}
	return exitWithError(out, err)
}
