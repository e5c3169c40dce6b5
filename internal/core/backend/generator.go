package backend

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/genova-cli/genova/internal/core/files"
	"github.com/genova-cli/genova/internal/defs"
	"github.com/genova-cli/genova/internal/shell"
	"github.com/genova-cli/genova/internal/template"
	"github.com/genova-cli/genova/pkg/models"
)

// sourceDirs are created under server/src for every backend.
var sourceDirs = []string{"routes", "controllers", "models"}

// configDir holds database configuration and only exists when a database
// was chosen.
const configDir = "config"

// Generator creates the server/ subtree of a project.
type Generator struct {
	files     *files.Helper
	runner    shell.Runner
	tools     shell.Tools
	templates *template.Provider
	port      int
	logger    *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithTools overrides the npm/npx binaries.
func WithTools(tools shell.Tools) Option {
	return func(g *Generator) { g.tools = tools }
}

// WithPort sets the default port written into the entry file and .env.
func WithPort(port int) Option {
	return func(g *Generator) { g.port = port }
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator creates a Generator writing through fh and running commands
// through runner.
func NewGenerator(fh *files.Helper, runner shell.Runner, templates *template.Provider, opts ...Option) *Generator {
	g := &Generator{
		files:     fh,
		runner:    runner,
		tools:     shell.DefaultTools(),
		templates: templates,
		port:      template.DefaultPort,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ServerDir returns the directory the backend of a project rooted at dir
// lives in.
func ServerDir(dir string) string {
	return filepath.Join(dir, defs.ServerDir)
}

// Generate creates dir/server for cfg. Command failures and an unusable
// package.json abort generation; individual file writes that fail are
// recorded as warnings. The returned ledger is never nil, also on error.
func (g *Generator) Generate(ctx context.Context, dir string, cfg models.ProjectConfig) (*files.Ledger, error) {
	ledger := &files.Ledger{}

	entryName, err := template.ServerEntryName(cfg.Backend, cfg.UseTypeScript)
	if err != nil {
		return ledger, err
	}

	server := ServerDir(dir)
	g.logger.Info("generating backend",
		"dir", server,
		"framework", cfg.Backend,
		"typescript", cfg.UseTypeScript,
		"database", cfg.Database,
	)

	// Step 1: server folder and npm manifest
	if err := g.files.CreateFolder(server); err != nil {
		return ledger, fmt.Errorf("create server folder: %w", err)
	}
	ledger.Dir(server)

	if err := g.runner.RunSilent(ctx, g.tools.NpmInit(server)); err != nil {
		return ledger, fmt.Errorf("npm init: %w", err)
	}

	// Step 2: dependencies
	deps := BuildDependencies(cfg, g.logger)
	if err := g.install(ctx, server, deps); err != nil {
		return ledger, err
	}

	// Step 3: source layout
	if err := ctx.Err(); err != nil {
		return ledger, err
	}
	src := filepath.Join(server, defs.SrcDir)
	dirs := []string{src}
	for _, d := range sourceDirs {
		dirs = append(dirs, filepath.Join(src, d))
	}
	if cfg.NeedsDatabase() {
		dirs = append(dirs, filepath.Join(src, configDir))
	}
	for _, d := range dirs {
		g.mkdir(d, ledger)
	}

	// Step 4: entry file and environment
	tctx := template.NewTemplateContext(template.WithConfig(cfg), template.WithPort(g.port))

	entryFile := defs.IndexJS
	if cfg.UseTypeScript {
		entryFile = defs.IndexTS
	}
	if content, err := g.templates.ServerEntry(cfg.Backend, cfg.UseTypeScript, tctx); err != nil {
		ledger.Warn("render %s: %s", entryName, err)
		g.logger.Warn("entry file render failed", "template", entryName, "error", err)
	} else {
		g.write(filepath.Join(src, entryFile), content, ledger)
	}

	if env, err := g.templates.Env(tctx); err != nil {
		ledger.Warn("render %s: %s", defs.EnvFile, err)
		g.logger.Warn("env render failed", "error", err)
	} else {
		g.write(filepath.Join(server, defs.EnvFile), env, ledger)
		g.write(filepath.Join(server, defs.EnvExample), env, ledger)
	}

	// Step 5: manifest scripts and TypeScript configuration
	if err := g.updateManifest(server, cfg.UseTypeScript, ledger); err != nil {
		return ledger, err
	}

	g.logger.Info("backend generated", "dir", server, "files", len(ledger.CreatedFiles))
	return ledger, nil
}

func (g *Generator) install(ctx context.Context, server string, deps DependencySet) error {
	if len(deps.Runtime) > 0 {
		if err := g.runner.Run(ctx, g.tools.NpmInstall(server, false, deps.Runtime...)); err != nil {
			return fmt.Errorf("%w: %w", ErrInstall, err)
		}
	}
	if len(deps.Dev) > 0 {
		if err := g.runner.Run(ctx, g.tools.NpmInstall(server, true, deps.Dev...)); err != nil {
			return fmt.Errorf("%w: %w", ErrInstall, err)
		}
	}
	return nil
}

func (g *Generator) mkdir(path string, ledger *files.Ledger) {
	if err := g.files.CreateFolder(path); err != nil {
		ledger.Warn("%s", err)
		g.logger.Warn("folder creation failed", "path", path, "error", err)
		return
	}
	ledger.Dir(path)
}

func (g *Generator) write(path string, content []byte, ledger *files.Ledger) {
	if err := g.files.CreateFile(path, content); err != nil {
		ledger.Warn("%s", err)
		g.logger.Warn("file write failed", "path", path, "error", err)
		return
	}
	ledger.File(path)
}
