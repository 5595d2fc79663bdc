// Where: internal/usecase/generate/generate.go
// What: Schedule generation workflow orchestration.
// Why: Run the before-deploy step (load, compile, merge, save) without CLI concerns.
package generate

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/poruru/sws-schedules/internal/domain/compiler"
	"github.com/poruru/sws-schedules/internal/domain/resource"
	"github.com/poruru/sws-schedules/internal/domain/template"
	"github.com/poruru/sws-schedules/internal/infra/logging"
	"github.com/poruru/sws-schedules/internal/infra/service"
	"github.com/poruru/sws-schedules/internal/infra/templatefile"
	"github.com/poruru/sws-schedules/internal/infra/ui"
	"github.com/poruru/sws-schedules/internal/meta"
)

var (
	errConfigLoaderNotConfigured  = errors.New("config loader is not configured")
	errTemplateStoreNotConfigured = errors.New("template store is not configured")
	errTemplatePathRequired       = errors.New("template path is required")
)

// ConfigLoader reads a service configuration.
type ConfigLoader interface {
	Load(path string) (service.Config, error)
}

// TemplateStore reads and writes template documents.
type TemplateStore interface {
	Load(path string) (template.Document, templatefile.Format, error)
	Save(path string, doc template.Document, format templatefile.Format) error
}

// Request captures the inputs of one generation run.
type Request struct {
	ConfigPath     string
	TemplatePath   string
	OutputPath     string
	Stage          string
	PrefixTemplate string
	DryRun         bool
}

// Result reports what a run produced.
type Result struct {
	Service    string
	Stage      string
	Compiled   compiler.Result
	Merge      template.MergeReport
	OutputPath string
	Written    bool
}

// Workflow wires the generation steps to their adapters.
type Workflow struct {
	Config        ConfigLoader
	Templates     TemplateStore
	UserInterface ui.UserInterface
	Logger        *slog.Logger
}

// NewWorkflow constructs a Workflow.
func NewWorkflow(config ConfigLoader, templates TemplateStore, out ui.UserInterface, logger *slog.Logger) Workflow {
	return Workflow{
		Config:        config,
		Templates:     templates,
		UserInterface: out,
		Logger:        logger,
	}
}

// Run compiles the configured schedules and merges them into the template.
func (w Workflow) Run(req Request) (Result, error) {
	if w.Templates == nil {
		return Result{}, errTemplateStoreNotConfigured
	}
	templatePath := strings.TrimSpace(req.TemplatePath)
	if templatePath == "" {
		return Result{}, errTemplatePathRequired
	}

	cfg, stage, compiled, err := w.compile(req)
	if err != nil {
		return Result{}, err
	}
	result := Result{Service: cfg.Service, Stage: stage, Compiled: compiled}
	if len(compiled.Resources) == 0 {
		w.info("No schedules configured; template left unchanged")
		return result, nil
	}

	doc, format, err := w.Templates.Load(templatePath)
	if err != nil {
		return Result{}, err
	}
	report, err := template.Merge(doc, compiled.Resources)
	if err != nil {
		return Result{}, fmt.Errorf("merge schedules into %s: %w", templatePath, err)
	}
	result.Merge = report

	outputPath := strings.TrimSpace(req.OutputPath)
	if outputPath == "" {
		outputPath = templatePath
	}
	result.OutputPath = outputPath
	if !req.DryRun {
		if err := w.Templates.Save(outputPath, doc, outputFormat(outputPath, format)); err != nil {
			return Result{}, err
		}
		result.Written = true
	}
	w.logger().Info("schedules merged",
		"template", templatePath,
		"output", outputPath,
		"added", len(report.Added),
		"replaced", len(report.Replaced),
		"dry_run", req.DryRun,
	)
	w.summarize(result)
	return result, nil
}

// Render compiles the configured schedules without touching any template.
func (w Workflow) Render(req Request) (resource.Map, error) {
	_, _, compiled, err := w.compile(req)
	if err != nil {
		return nil, err
	}
	return compiled.Resources, nil
}

func (w Workflow) compile(req Request) (service.Config, string, compiler.Result, error) {
	if w.Config == nil {
		return service.Config{}, "", compiler.Result{}, errConfigLoaderNotConfigured
	}
	cfg, err := w.Config.Load(req.ConfigPath)
	if err != nil {
		return service.Config{}, "", compiler.Result{}, err
	}
	for _, warning := range cfg.Warnings {
		w.warn(warning)
	}

	stage := ResolveStage(req.Stage, cfg.ProviderStage)
	prefixTemplate := firstNonBlank(req.PrefixTemplate, cfg.Options.PrefixTemplate)
	c, err := compiler.New(cfg.Service, stage, compiler.WithPrefixTemplate(prefixTemplate))
	if err != nil {
		return service.Config{}, "", compiler.Result{}, fmt.Errorf("prefix template: %w", err)
	}
	w.logger().Debug("compiling schedules",
		"service", cfg.Service,
		"stage", stage,
		"prefix_template", c.PrefixTemplate(),
		"groups", len(cfg.Options.Schedules),
	)
	compiled, err := c.Compile(cfg.Options.Schedules)
	if err != nil {
		return service.Config{}, "", compiler.Result{}, err
	}
	w.report(compiled)
	return cfg, stage, compiled, nil
}

// ResolveStage picks the explicit stage, then the provider stage, then the default.
func ResolveStage(explicit, provider string) string {
	return firstNonBlank(explicit, provider, meta.DefaultStage)
}

func (w Workflow) report(compiled compiler.Result) {
	logger := w.logger()
	for _, skipped := range compiled.Skipped {
		logger.Info("rule skipped", "group", skipped.Group, "rule", skipped.Rule, "reason", string(skipped.Reason))
	}
	for _, key := range compiled.Overwritten {
		logger.Warn("resource key generated twice; last definition wins", "key", key)
		w.warn(fmt.Sprintf("resource %s was generated twice; the last definition wins", key))
	}
	for _, warning := range compiled.Warnings {
		w.warn(warning)
	}
	logger.Debug("schedules compiled",
		"resources", len(compiled.Resources),
		"groups", len(compiled.Groups),
		"skipped", compiled.SkippedCount(),
	)
}

func (w Workflow) summarize(result Result) {
	if w.UserInterface == nil {
		return
	}
	output := result.OutputPath
	if !result.Written {
		output += " (dry run, not written)"
	}
	w.UserInterface.Block("🗓️", "Schedules", []ui.KeyValue{
		{Key: "Service", Value: result.Service},
		{Key: "Stage", Value: result.Stage},
		{Key: "Groups", Value: len(result.Compiled.Groups)},
		{Key: "Rules", Value: result.Compiled.Resources.CountByType(resource.TypeEventRule)},
		{Key: "Skipped rules", Value: result.Compiled.SkippedCount()},
		{Key: "Added", Value: len(result.Merge.Added)},
		{Key: "Replaced", Value: len(result.Merge.Replaced)},
		{Key: "Output", Value: output},
	})
	skipped := make([]string, 0, len(result.Compiled.Skipped))
	for _, rule := range result.Compiled.Skipped {
		skipped = append(skipped, fmt.Sprintf("group %d rule %d: %s", rule.Group, rule.Rule, rule.Reason))
	}
	w.UserInterface.List("⏭️", "Skipped rules", skipped)
	if result.Written {
		w.UserInterface.Success(fmt.Sprintf("Merged %d resources into %s", len(result.Compiled.Resources), result.OutputPath))
	}
}

func (w Workflow) logger() *slog.Logger {
	if w.Logger == nil {
		return logging.Discard()
	}
	return w.Logger
}

func (w Workflow) info(msg string) {
	if w.UserInterface != nil {
		w.UserInterface.Info(msg)
	}
}

func (w Workflow) warn(msg string) {
	if w.UserInterface != nil {
		w.UserInterface.Warn(msg)
	}
}

// outputFormat keeps the source format unless the output path names one.
func outputFormat(path string, source templatefile.Format) templatefile.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return templatefile.FormatJSON
	case ".yml", ".yaml":
		return templatefile.FormatYAML
	}
	return source
}

func firstNonBlank(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
