package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/genova-cli/genova/internal/core/backend"
	"github.com/genova-cli/genova/internal/core/files"
	"github.com/genova-cli/genova/internal/core/frontend"
	"github.com/genova-cli/genova/internal/core/tooling"
	"github.com/genova-cli/genova/internal/defs"
	"github.com/genova-cli/genova/internal/template"
	"github.com/genova-cli/genova/pkg/models"
)

// Progress messages reported between phases.
const (
	StepCreating = "Creating project..."
	StepFrontend = "Generating frontend..."
	StepBackend  = "Generating backend..."
	StepTooling  = "Adding tooling..."
	StepReadme   = "Writing README..."
)

// Reporter receives progress messages.
type Reporter interface {
	Step(msg string)
}

type nopReporter struct{}

func (nopReporter) Step(string) {}

// Result summarizes a generation run.
type Result struct {
	Root      string // Folder the user should change into.
	ServerDir string // Backend server folder, empty for frontend projects.
	files.Ledger
}

// FrontendGenerator scaffolds a frontend at a path.
type FrontendGenerator interface {
	Generate(ctx context.Context, path string, cfg models.ProjectConfig) error
}

// BackendGenerator creates the server subtree of a project rooted at dir.
type BackendGenerator interface {
	Generate(ctx context.Context, dir string, cfg models.ProjectConfig) (*files.Ledger, error)
}

// ToolingApplier adds lint, format and git tooling.
type ToolingApplier interface {
	Apply(ctx context.Context, root, serverDir string, cfg models.ProjectConfig) (*files.Ledger, error)
}

var (
	_ FrontendGenerator = (*frontend.Generator)(nil)
	_ BackendGenerator  = (*backend.Generator)(nil)
	_ ToolingApplier    = (*tooling.Augmenter)(nil)
)

// Orchestrator decides the layout for a project type and runs the
// generators in order.
type Orchestrator struct {
	files     *files.Helper
	frontend  FrontendGenerator
	backend   BackendGenerator
	tooling   ToolingApplier
	templates *template.Provider
	reporter  Reporter
	logger    *slog.Logger
}

// NewOrchestrator creates an Orchestrator. A nil reporter or logger
// discards output.
func NewOrchestrator(
	fh *files.Helper,
	fe FrontendGenerator,
	be BackendGenerator,
	tl ToolingApplier,
	templates *template.Provider,
	reporter Reporter,
	logger *slog.Logger,
) *Orchestrator {
	if reporter == nil {
		reporter = nopReporter{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Orchestrator{
		files:     fh,
		frontend:  fe,
		backend:   be,
		tooling:   tl,
		templates: templates,
		reporter:  reporter,
		logger:    logger,
	}
}

// Generate creates the project described by cfg in the working directory.
// Nothing is written when cfg is invalid or the target folder exists. A
// fatal error leaves whatever was generated so far on disk; the returned
// Result is non-nil whenever generation started.
func (o *Orchestrator) Generate(ctx context.Context, cfg models.ProjectConfig) (*Result, error) {
	if !cfg.ProjectType.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProjectType, cfg.ProjectType)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	root := filepath.Clean(cfg.Name)
	if o.files.Exists(root) {
		return nil, fmt.Errorf("%w: %s", ErrTargetExists, root)
	}

	o.logger.Info("generating project",
		"name", cfg.Name,
		"type", cfg.ProjectType,
		"frontend", cfg.Frontend,
		"backend", cfg.Backend,
		"database", cfg.Database,
		"typescript", cfg.UseTypeScript,
	)

	result := &Result{Root: root}
	o.reporter.Step(StepCreating)

	var err error
	switch cfg.ProjectType {
	case models.ProjectTypeFrontend:
		err = o.generateFrontendOnly(ctx, root, cfg)
	case models.ProjectTypeFullstack:
		err = o.generateFullstack(ctx, root, cfg, result)
	case models.ProjectTypeBackend:
		err = o.generateBackendOnly(ctx, root, cfg, result)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProjectType, cfg.ProjectType)
	}
	if err != nil {
		return result, err
	}

	o.logger.Info("project generated",
		"root", root,
		"dirs", len(result.CreatedDirs),
		"files", len(result.CreatedFiles),
		"warnings", len(result.Warnings),
	)
	return result, nil
}

// generateFrontendOnly delegates the whole tree, including its root folder,
// to the scaffolding tool.
func (o *Orchestrator) generateFrontendOnly(ctx context.Context, root string, cfg models.ProjectConfig) error {
	o.reporter.Step(StepFrontend)
	if err := o.frontend.Generate(ctx, root, cfg); err != nil {
		return fmt.Errorf("generate frontend: %w", err)
	}
	return nil
}

func (o *Orchestrator) generateFullstack(ctx context.Context, root string, cfg models.ProjectConfig, result *Result) error {
	if err := o.createRoot(root, result); err != nil {
		return err
	}

	o.reporter.Step(StepFrontend)
	if err := o.frontend.Generate(ctx, filepath.Join(root, defs.FrontendDir), cfg); err != nil {
		return fmt.Errorf("generate frontend: %w", err)
	}

	o.reporter.Step(StepBackend)
	backendDir := filepath.Join(root, defs.BackendDir)
	if err := o.files.CreateFolder(backendDir); err != nil {
		return fmt.Errorf("create backend folder: %w", err)
	}
	result.Dir(backendDir)

	return o.finishBackend(ctx, root, backendDir, cfg, result)
}

func (o *Orchestrator) generateBackendOnly(ctx context.Context, root string, cfg models.ProjectConfig, result *Result) error {
	if err := o.createRoot(root, result); err != nil {
		return err
	}
	o.reporter.Step(StepBackend)
	return o.finishBackend(ctx, root, root, cfg, result)
}

// finishBackend generates the server under backendDir, applies tooling and
// writes the README at root.
func (o *Orchestrator) finishBackend(ctx context.Context, root, backendDir string, cfg models.ProjectConfig, result *Result) error {
	ledger, err := o.backend.Generate(ctx, backendDir, cfg.AsBackend())
	result.Merge(ledger)
	if err != nil {
		return fmt.Errorf("generate backend: %w", err)
	}
	result.ServerDir = backend.ServerDir(backendDir)

	if cfg.WantsTooling() || cfg.InitGit {
		o.reporter.Step(StepTooling)
		ledger, err := o.tooling.Apply(ctx, root, result.ServerDir, cfg)
		result.Merge(ledger)
		if err != nil {
			return fmt.Errorf("apply tooling: %w", err)
		}
	}

	o.reporter.Step(StepReadme)
	o.writeReadme(root, cfg, result)
	return nil
}

func (o *Orchestrator) createRoot(root string, result *Result) error {
	if err := o.files.CreateFolder(root); err != nil {
		return fmt.Errorf("create project folder: %w", err)
	}
	result.Dir(root)
	return nil
}

func (o *Orchestrator) writeReadme(root string, cfg models.ProjectConfig, result *Result) {
	content, err := o.templates.Readme(template.NewTemplateContext(template.WithConfig(cfg)))
	if err != nil {
		result.Warn("render %s: %s", defs.ReadmeMD, err)
		o.logger.Warn("readme render failed", "error", err)
		return
	}

	path := filepath.Join(root, defs.ReadmeMD)
	if err := o.files.CreateFile(path, content); err != nil {
		result.Warn("%s", err)
		o.logger.Warn("file write failed", "path", path, "error", err)
		return
	}
	result.File(path)
}
