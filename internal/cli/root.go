package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/genova-cli/genova/internal/cli/wizard"
	"github.com/genova-cli/genova/internal/ui"
	"github.com/genova-cli/genova/pkg/version"
)

// nextStepsWidth is the word-wrap width of the final summary.
const nextStepsWidth = 80

var rootCmd = &cobra.Command{
	Use:   "genova",
	Short: "Scaffold Node.js frontend, backend and fullstack projects",
	Long: `genova asks a few questions and generates a ready-to-run Node.js project:
a Vite or Next.js frontend, an Express or Hapi backend with an optional
database driver, or both side by side in one folder.

Tool settings are read from $GENOVA_CONFIG or ~/.config/genova/config.yaml.`,
	Args:          cobra.NoArgs,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("genova %s\n", version.GetFullVersion()))
}

// Execute initializes dependencies and runs the root command. Interrupts
// cancel the context passed to every step.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := InitDependencies(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		deps.Reporter.Error(err.Error())
		return err
	}
	return nil
}

// runGenerate asks the questions and generates the project.
func runGenerate(cmd *cobra.Command, _ []string) error {
	d := deps
	if d == nil {
		return errors.New("dependencies not initialized")
	}
	ctx := cmd.Context()

	d.Reporter.Banner()

	answers, err := wizard.Run(ctx, wizard.DefaultQuestions(d.Files.Exists), d.Prompter)
	if errors.Is(err, wizard.ErrCancelled) {
		d.Reporter.Info("Operation cancelled")
		return nil
	}
	if err != nil {
		return err
	}

	cfg, err := answers.ProjectConfig()
	if err != nil {
		return err
	}
	d.Logger.Debug("generating project", "name", cfg.Name, "type", cfg.ProjectType)

	result, err := d.Generator.Generate(ctx, cfg)
	if err != nil {
		if result != nil {
			for _, w := range result.Warnings {
				d.Reporter.Warn(w)
			}
		}
		return fmt.Errorf("generate %s: %w", cfg.Name, err)
	}

	d.Reporter.Success(fmt.Sprintf("Project %s created", cfg.Name))

	steps := ui.NextSteps{
		Root:        result.Root,
		ServerDir:   result.ServerDir,
		HasFrontend: cfg.ProjectType.HasFrontend(),
		Warnings:    result.Warnings,
	}
	rendered, err := ui.RenderMarkdown(steps.Markdown(), d.Theme, nextStepsWidth)
	if err != nil {
		d.Logger.Warn("render next steps", "error", err)
		d.Reporter.Info(steps.Markdown())
		return nil
	}
	d.Reporter.Markdown(rendered)
	return nil
}
