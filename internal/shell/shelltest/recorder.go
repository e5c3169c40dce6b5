// Package shelltest provides a recording shell.Runner for tests.
package shelltest

import (
	"context"
	"strings"
	"sync"

	"github.com/genova-cli/genova/internal/shell"
)

// Call is one recorded invocation.
type Call struct {
	Command shell.Command
	Silent  bool
}

// Recorder records commands instead of executing them. Hook, when set, runs
// for every command and its error is returned to the caller.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
	Hook  func(cmd shell.Command) error
}

var _ shell.Runner = (*Recorder)(nil)

// Run records a loud command.
func (r *Recorder) Run(_ context.Context, cmd shell.Command) error {
	return r.record(cmd, false)
}

// RunSilent records a silent command.
func (r *Recorder) RunSilent(_ context.Context, cmd shell.Command) error {
	return r.record(cmd, true)
}

func (r *Recorder) record(cmd shell.Command, silent bool) error {
	r.mu.Lock()
	r.calls = append(r.calls, Call{Command: cmd, Silent: silent})
	hook := r.Hook
	r.mu.Unlock()
	if hook != nil {
		return hook(cmd)
	}
	return nil
}

// Calls returns a copy of the recorded calls.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Lines returns the recorded command lines.
func (r *Recorder) Lines() []string {
	calls := r.Calls()
	lines := make([]string, len(calls))
	for i, c := range calls {
		lines[i] = c.Command.String()
	}
	return lines
}

// Find returns the first call whose command line contains substr.
func (r *Recorder) Find(substr string) (Call, bool) {
	for _, c := range r.Calls() {
		if strings.Contains(c.Command.String(), substr) {
			return c, true
		}
	}
	return Call{}, false
}

// FailOn returns a hook that fails commands containing substr with err.
func FailOn(substr string, err error) func(shell.Command) error {
	return func(cmd shell.Command) error {
		if strings.Contains(cmd.String(), substr) {
			return &shell.CommandError{Command: cmd, Err: err}
		}
		return nil
	}
}
