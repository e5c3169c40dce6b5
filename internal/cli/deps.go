// Package cli provides the cobra command and the dependency wiring for the
// genova CLI. This file defines the Dependencies struct (Composition Root)
// that wires all domain modules together.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/genova-cli/genova/internal/cli/wizard"
	"github.com/genova-cli/genova/internal/config"
	"github.com/genova-cli/genova/internal/core/backend"
	"github.com/genova-cli/genova/internal/core/files"
	"github.com/genova-cli/genova/internal/core/frontend"
	"github.com/genova-cli/genova/internal/core/git"
	"github.com/genova-cli/genova/internal/core/project"
	"github.com/genova-cli/genova/internal/core/tooling"
	"github.com/genova-cli/genova/internal/shell"
	"github.com/genova-cli/genova/internal/template"
	"github.com/genova-cli/genova/internal/ui"
	"github.com/genova-cli/genova/pkg/models"
)

// ProjectGenerator creates a project from validated answers.
type ProjectGenerator interface {
	Generate(ctx context.Context, cfg models.ProjectConfig) (*project.Result, error)
}

var _ ProjectGenerator = (*project.Orchestrator)(nil)

// Dependencies holds all services used by the root command.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger
	Theme      *ui.Theme
	Headless   *ui.HeadlessManager
	Reporter   *ui.Reporter
	Files      *files.Helper
	Prompter   wizard.Prompter
	Generator  ProjectGenerator
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies loads the tool configuration and wires every module.
// It should be called once during application startup.
func InitDependencies() error {
	cfg, path, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	if path != "" {
		logger.Debug("configuration loaded", "path", path)
	}

	d, err := NewDependencies(cfg, files.NewOS(), logger)
	if err != nil {
		return err
	}
	d.ConfigPath = path
	deps = d
	return nil
}

// NewDependencies wires the generators on top of fh with the process
// runner and terminal UI.
func NewDependencies(cfg *config.Config, fh *files.Helper, logger *slog.Logger) (*Dependencies, error) {
	theme := ui.NewTheme(cfg.NoColor || os.Getenv("NO_COLOR") != "")
	headless := ui.NewHeadlessManager()
	reporter := ui.NewReporter(theme)

	templates, err := template.NewEmbeddedProvider()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	tools := shell.Tools{Npm: cfg.NpmBin, Npx: cfg.NpxBin}
	runner := ui.NewSpinnerRunner(shell.NewExecRunner(logger), ui.NewProgress(theme, headless))

	fe := frontend.NewGenerator(runner, tools, logger)
	be := backend.NewGenerator(fh, runner, templates,
		backend.WithTools(tools),
		backend.WithPort(cfg.ServerPort),
		backend.WithLogger(logger),
	)
	tl := tooling.NewAugmenter(fh, runner, tools, templates, git.NewInitializer(cfg.DefaultBranch, logger), logger)

	return &Dependencies{
		Config:    cfg,
		Logger:    logger,
		Theme:     theme,
		Headless:  headless,
		Reporter:  reporter,
		Files:     fh,
		Prompter:  wizard.NewFormPrompter(headless.IsHeadless()),
		Generator: project.NewOrchestrator(fh, fe, be, tl, templates, reporter, logger),
	}, nil
}
