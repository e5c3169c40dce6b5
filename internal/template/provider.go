package template

import (
	"fmt"
	"io/fs"

	"github.com/genova-cli/genova/pkg/models"
)

// Template names inside the template filesystem.
const (
	envTemplate       = "env.tmpl"
	gitignoreTemplate = "gitignore"
	readmeTemplate    = "readme.md.tmpl"
)

// Provider produces the content of generated files. Every method is a pure
// function of its arguments and the template filesystem.
type Provider struct {
	fsys     fs.FS
	renderer Renderer
}

// NewProvider creates a Provider that reads templates from fsys.
// In production fsys comes from EmbeddedTemplates; tests may pass a
// testing/fstest.MapFS.
func NewProvider(fsys fs.FS) *Provider {
	return &Provider{fsys: fsys, renderer: NewRenderer(fsys)}
}

// NewEmbeddedProvider creates a Provider backed by the embedded templates.
func NewEmbeddedProvider() (*Provider, error) {
	fsys, err := EmbeddedTemplates()
	if err != nil {
		return nil, fmt.Errorf("load embedded templates: %w", err)
	}
	return NewProvider(fsys), nil
}

// ServerEntryName returns the template name of the server entry file for a
// framework and language.
func ServerEntryName(backend models.Backend, typeScript bool) (string, error) {
	switch backend {
	case models.BackendExpress, models.BackendHapi:
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedBackend, backend)
	}
	ext := "js"
	if typeScript {
		ext = "ts"
	}
	return fmt.Sprintf("server/%s.%s.tmpl", backend, ext), nil
}

// ServerEntry renders src/index.{js,ts} for the chosen framework.
func (p *Provider) ServerEntry(backend models.Backend, typeScript bool, ctx *TemplateContext) ([]byte, error) {
	name, err := ServerEntryName(backend, typeScript)
	if err != nil {
		return nil, err
	}
	return p.renderer.Render(name, ctx)
}

// Env renders the .env / .env.example content.
func (p *Provider) Env(ctx *TemplateContext) ([]byte, error) {
	return p.renderer.Render(envTemplate, ctx)
}

// Gitignore returns the static .gitignore content.
func (p *Provider) Gitignore() ([]byte, error) {
	data, err := fs.ReadFile(p.fsys, gitignoreTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, gitignoreTemplate)
	}
	return data, nil
}

// Readme renders the project README.
func (p *Provider) Readme(ctx *TemplateContext) ([]byte, error) {
	return p.renderer.Render(readmeTemplate, ctx)
}
