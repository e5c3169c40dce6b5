package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/genova-cli/genova/internal/cli/wizard"
	"github.com/genova-cli/genova/internal/config"
	"github.com/genova-cli/genova/internal/core/files"
	"github.com/genova-cli/genova/internal/core/project"
	"github.com/genova-cli/genova/internal/ui"
	"github.com/genova-cli/genova/pkg/models"
)

type answerPrompter struct {
	answers map[string]string
	err     error
}

func (p *answerPrompter) Ask(_ context.Context, q *wizard.Question) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	if v, ok := p.answers[q.ID]; ok {
		return v, nil
	}
	return q.Default, nil
}

type fakeGenerator struct {
	got    *models.ProjectConfig
	result *project.Result
	err    error
}

func (g *fakeGenerator) Generate(_ context.Context, cfg models.ProjectConfig) (*project.Result, error) {
	g.got = &cfg
	return g.result, g.err
}

var backendAnswers = map[string]string{
	wizard.IDProjectName: "api",
	wizard.IDFullstack:   "false",
	wizard.IDProjectType: "backend",
	wizard.IDBackend:     "express",
	wizard.IDLanguage:    "javascript",
	wizard.IDDatabase:    "sqlite",
}

// withDeps installs test dependencies and returns the captured stdout and
// stderr buffers.
func withDeps(t *testing.T, p wizard.Prompter, g ProjectGenerator) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var out, errOut bytes.Buffer
	theme := ui.NewTheme(true)
	prev := deps
	deps = &Dependencies{
		Config:    config.NewDefaultConfig(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Theme:     theme,
		Reporter:  ui.NewReporterWriters(theme, &out, &errOut),
		Files:     files.New(afero.NewMemMapFs()),
		Prompter:  p,
		Generator: g,
	}
	t.Cleanup(func() { deps = prev })
	return &out, &errOut
}

func runCmd(t *testing.T) error {
	t.Helper()
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return runGenerate(cmd, nil)
}

func TestRunGenerate_Success(t *testing.T) {
	gen := &fakeGenerator{result: &project.Result{
		Root:      "api",
		ServerDir: "api/server",
		Ledger:    files.Ledger{Warnings: []string{"write .env: disk full"}},
	}}
	out, _ := withDeps(t, &answerPrompter{answers: backendAnswers}, gen)

	if err := runCmd(t); err != nil {
		t.Fatalf("runGenerate() error: %v", err)
	}

	if gen.got == nil {
		t.Fatal("generator was not called")
	}
	if gen.got.Backend != models.BackendExpress || gen.got.Database != models.DatabaseSQLite || gen.got.UseTypeScript {
		t.Errorf("unexpected config: %+v", *gen.got)
	}

	text := out.String()
	for _, want := range []string{ui.BannerText, "Project api created", "cd api", "npm run dev", "disk full"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestRunGenerate_Cancelled(t *testing.T) {
	gen := &fakeGenerator{}
	out, _ := withDeps(t, &answerPrompter{err: wizard.ErrCancelled}, gen)

	if err := runCmd(t); err != nil {
		t.Fatalf("cancellation should not be an error, got %v", err)
	}
	if !strings.Contains(out.String(), "Operation cancelled") {
		t.Errorf("output = %q, want cancellation notice", out.String())
	}
	if gen.got != nil {
		t.Error("generator must not run after cancellation")
	}
}

func TestRunGenerate_GenerationFailure(t *testing.T) {
	gen := &fakeGenerator{
		result: &project.Result{Root: "api", Ledger: files.Ledger{Warnings: []string{"partial"}}},
		err:    project.ErrTargetExists,
	}
	_, errOut := withDeps(t, &answerPrompter{answers: backendAnswers}, gen)

	err := runCmd(t)
	if !errors.Is(err, project.ErrTargetExists) {
		t.Fatalf("runGenerate() error = %v, want ErrTargetExists", err)
	}
	if !strings.Contains(errOut.String(), "partial") {
		t.Errorf("warnings should be reported on failure, stderr = %q", errOut.String())
	}
}

func TestRunGenerate_NoDependencies(t *testing.T) {
	prev := deps
	deps = nil
	t.Cleanup(func() { deps = prev })

	if err := runCmd(t); err == nil {
		t.Error("expected error without dependencies")
	}
}

func TestNewDependencies(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.NoColor = true

	d, err := NewDependencies(cfg, files.New(afero.NewMemMapFs()), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("NewDependencies() error: %v", err)
	}
	if d.Generator == nil || d.Prompter == nil || d.Reporter == nil {
		t.Errorf("dependencies not wired: %+v", d)
	}
	if !d.Theme.NoColor {
		t.Error("no_color should disable styling")
	}
}

func TestRootCmd_Metadata(t *testing.T) {
	if rootCmd.Use != "genova" {
		t.Errorf("Use = %q, want genova", rootCmd.Use)
	}
	if !rootCmd.SilenceUsage || !rootCmd.SilenceErrors {
		t.Error("root command should silence usage and errors")
	}
	if err := rootCmd.Args(rootCmd, []string{"extra"}); err == nil {
		t.Error("root command should reject positional arguments")
	}
}
