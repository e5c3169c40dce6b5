package ui

import (
	"context"

	"github.com/genova-cli/genova/internal/shell"
)

// SpinnerRunner shows a spinner while a silent command runs. Loud commands
// pass straight through so their output is not mixed with the animation.
type SpinnerRunner struct {
	next     shell.Runner
	progress *Progress
}

var _ shell.Runner = (*SpinnerRunner)(nil)

// NewSpinnerRunner decorates next.
func NewSpinnerRunner(next shell.Runner, progress *Progress) *SpinnerRunner {
	return &SpinnerRunner{next: next, progress: progress}
}

// Run executes a loud command.
func (r *SpinnerRunner) Run(ctx context.Context, cmd shell.Command) error {
	return r.next.Run(ctx, cmd)
}

// RunSilent executes a silent command behind a spinner. The spinner is
// stopped before RunSilent returns.
func (r *SpinnerRunner) RunSilent(ctx context.Context, cmd shell.Command) error {
	s := r.progress.Spinner(cmd.String())
	defer s.Stop()
	return r.next.RunSilent(ctx, cmd)
}
