// Package frontend scaffolds the web client of a project by delegating to
// the upstream project generators (create-vite, create-next-app).
package frontend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/genova-cli/genova/internal/shell"
	"github.com/genova-cli/genova/pkg/models"
)

// ErrUnsupportedFrontend indicates a frontend choice with no scaffolding
// command.
var ErrUnsupportedFrontend = errors.New("unsupported frontend framework")

// Vite template names passed to create-vite.
const (
	viteTemplateReact   = "react"
	viteTemplateReactTS = "react-ts"
)

// Generator runs the scaffolding command for a frontend.
type Generator struct {
	runner shell.Runner
	tools  shell.Tools
	logger *slog.Logger
}

// NewGenerator creates a Generator. A nil logger discards output.
func NewGenerator(runner shell.Runner, tools shell.Tools, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{runner: runner, tools: tools, logger: logger}
}

// Command returns the scaffolding command for cfg targeting path.
func (g *Generator) Command(path string, cfg models.ProjectConfig) (shell.Command, error) {
	variant, ok := models.ResolveVariant(cfg.Frontend, cfg.UseTypeScript)
	if !ok {
		return shell.Command{}, fmt.Errorf("%w: %q", ErrUnsupportedFrontend, cfg.Frontend)
	}

	switch variant {
	case models.VariantViteReact:
		return g.tools.CreateVite(path, viteTemplateReact), nil
	case models.VariantViteReactTS:
		return g.tools.CreateVite(path, viteTemplateReactTS), nil
	case models.VariantNextJS:
		return g.tools.CreateNextApp(path, cfg.UseTypeScript), nil
	default:
		return shell.Command{}, fmt.Errorf("%w: %q", ErrUnsupportedFrontend, variant)
	}
}

// Generate scaffolds the frontend at path. The tool's output is streamed to
// the user and a non-zero exit is returned as an error.
func (g *Generator) Generate(ctx context.Context, path string, cfg models.ProjectConfig) error {
	cmd, err := g.Command(path, cfg)
	if err != nil {
		return err
	}

	g.logger.Info("generating frontend", "path", path, "command", cmd.String())
	if err := g.runner.Run(ctx, cmd); err != nil {
		return fmt.Errorf("scaffold %s frontend: %w", cfg.Frontend, err)
	}
	return nil
}
