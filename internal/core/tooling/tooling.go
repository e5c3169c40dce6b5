// Package tooling adds developer tooling to a generated backend: ESLint,
// Prettier and a git repository with a .gitignore.
package tooling

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/genova-cli/genova/internal/core/files"
	"github.com/genova-cli/genova/internal/core/git"
	"github.com/genova-cli/genova/internal/defs"
	"github.com/genova-cli/genova/internal/shell"
	"github.com/genova-cli/genova/internal/template"
	"github.com/genova-cli/genova/pkg/models"
)

// TypeScript ESLint packages installed next to eslint for TS projects.
var typeScriptESLintPackages = []string{
	"@typescript-eslint/eslint-plugin",
	template.TypeScriptESLintParser,
}

// Augmenter installs and configures tooling.
type Augmenter struct {
	files     *files.Helper
	runner    shell.Runner
	tools     shell.Tools
	templates *template.Provider
	git       git.Initializer
	logger    *slog.Logger
}

// NewAugmenter creates an Augmenter. A nil logger discards output.
func NewAugmenter(fh *files.Helper, runner shell.Runner, tools shell.Tools, templates *template.Provider, gitInit git.Initializer, logger *slog.Logger) *Augmenter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Augmenter{
		files:     fh,
		runner:    runner,
		tools:     tools,
		templates: templates,
		git:       gitInit,
		logger:    logger,
	}
}

// Apply runs the tooling steps selected in cfg. Linting and formatting are
// set up in serverDir; the repository is created in root.
func (a *Augmenter) Apply(ctx context.Context, root, serverDir string, cfg models.ProjectConfig) (*files.Ledger, error) {
	ledger := &files.Ledger{}

	if cfg.AddLinting {
		if err := a.AddESLint(ctx, serverDir, cfg.UseTypeScript, ledger); err != nil {
			return ledger, err
		}
	}
	if cfg.AddPrettier {
		if err := a.AddPrettier(ctx, serverDir, ledger); err != nil {
			return ledger, err
		}
	}
	if cfg.InitGit {
		a.InitGit(ctx, root, ledger)
	}
	return ledger, nil
}

// AddESLint installs eslint and writes .eslintrc.json. TypeScript projects
// also get the typescript-eslint parser and plugin.
func (a *Augmenter) AddESLint(ctx context.Context, serverDir string, typeScript bool, ledger *files.Ledger) error {
	a.logger.Info("adding eslint", "dir", serverDir, "typescript", typeScript)

	if err := a.runner.Run(ctx, a.tools.NpmInstall(serverDir, true, "eslint")); err != nil {
		return fmt.Errorf("install eslint: %w", err)
	}
	if typeScript {
		if err := a.runner.RunSilent(ctx, a.tools.NpmInstall(serverDir, true, typeScriptESLintPackages...)); err != nil {
			return fmt.Errorf("install typescript-eslint: %w", err)
		}
	}

	a.writeJSON(filepath.Join(serverDir, defs.ESLintRC), template.NewESLintConfig(typeScript), ledger)
	return nil
}

// AddPrettier installs prettier and writes .prettierrc.json.
func (a *Augmenter) AddPrettier(ctx context.Context, serverDir string, ledger *files.Ledger) error {
	a.logger.Info("adding prettier", "dir", serverDir)

	if err := a.runner.Run(ctx, a.tools.NpmInstall(serverDir, true, "prettier")); err != nil {
		return fmt.Errorf("install prettier: %w", err)
	}

	a.writeJSON(filepath.Join(serverDir, defs.PrettierRC), template.NewPrettierConfig(), ledger)
	return nil
}

// InitGit creates the repository in root and writes .gitignore. Both steps
// are best effort: failures become warnings.
func (a *Augmenter) InitGit(ctx context.Context, root string, ledger *files.Ledger) {
	a.logger.Info("initializing git", "root", root)

	if err := a.git.Init(ctx, root); err != nil {
		ledger.Warn("git init: %s", err)
		a.logger.Warn("git init failed", "root", root, "error", err)
	}

	content, err := a.templates.Gitignore()
	if err != nil {
		ledger.Warn("render %s: %s", defs.Gitignore, err)
		a.logger.Warn("gitignore render failed", "error", err)
		return
	}
	path := filepath.Join(root, defs.Gitignore)
	if err := a.files.CreateFile(path, content); err != nil {
		ledger.Warn("%s", err)
		a.logger.Warn("file write failed", "path", path, "error", err)
		return
	}
	ledger.File(path)
}

func (a *Augmenter) writeJSON(path string, v any, ledger *files.Ledger) {
	if err := a.files.WriteJSON(path, v); err != nil {
		ledger.Warn("%s", err)
		a.logger.Warn("file write failed", "path", path, "error", err)
		return
	}
	ledger.File(path)
}
