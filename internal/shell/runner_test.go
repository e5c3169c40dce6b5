package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"testing"
)

func skipWithoutSh(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not found in PATH")
	}
}

func newTestRunner() (*ExecRunner, *bytes.Buffer) {
	r := NewExecRunner(nil)
	var out bytes.Buffer
	r.Stdin = strings.NewReader("")
	r.Stdout = &out
	r.Stderr = &out
	return r, &out
}

func TestExecRunner_RunStreamsOutput(t *testing.T) {
	skipWithoutSh(t)
	r, out := newTestRunner()

	err := r.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "echo hello"}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if strings.TrimSpace(out.String()) != "hello" {
		t.Errorf("output = %q, want %q", out.String(), "hello")
	}
}

func TestExecRunner_RunUsesDir(t *testing.T) {
	skipWithoutSh(t)
	r, out := newTestRunner()
	dir := t.TempDir()

	if err := r.Run(context.Background(), Command{Dir: dir, Name: "sh", Args: []string{"-c", "pwd"}}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out.String()), strings.TrimPrefix(dir, "/private")) {
		t.Errorf("pwd = %q, want suffix %q", out.String(), dir)
	}
}

func TestExecRunner_RunFailure(t *testing.T) {
	skipWithoutSh(t)
	r, _ := newTestRunner()

	cmd := Command{Name: "sh", Args: []string{"-c", "exit 3"}}
	err := r.Run(context.Background(), cmd)
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
	if !errors.Is(err, ErrCommandFailed) {
		t.Errorf("error should match ErrCommandFailed: %v", err)
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error should wrap *exec.ExitError: %v", err)
	}
	if exitErr.ExitCode() != 3 {
		t.Errorf("exit code = %d, want 3", exitErr.ExitCode())
	}
}

func TestExecRunner_RunSilentCapturesStderr(t *testing.T) {
	skipWithoutSh(t)
	r, out := newTestRunner()

	err := r.RunSilent(context.Background(), Command{Name: "sh", Args: []string{"-c", "echo visible; echo broken >&2; exit 1"}})
	if err == nil {
		t.Fatal("expected error")
	}
	if out.Len() != 0 {
		t.Errorf("silent run leaked output: %q", out.String())
	}

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected *CommandError, got %T", err)
	}
	if cmdErr.Output != "broken" {
		t.Errorf("Output = %q, want %q", cmdErr.Output, "broken")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error message should include stderr: %v", err)
	}
}

func TestExecRunner_MissingBinary(t *testing.T) {
	r, _ := newTestRunner()

	err := r.Run(context.Background(), Command{Name: "genova-no-such-binary"})
	if !errors.Is(err, ErrCommandFailed) {
		t.Errorf("expected ErrCommandFailed for missing binary, got %v", err)
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("expected exec.ErrNotFound in chain, got %v", err)
	}
}

func TestCommand_String(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{Command{Name: "npm", Args: []string{"install", "express", "dotenv"}}, "npm install express dotenv"},
		{Command{Name: "npx", Args: []string{"--import-alias", "@/*"}}, `npx --import-alias "@/*"`},
		{Command{Name: "git"}, "git"},
	}
	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCommandError_Message(t *testing.T) {
	err := &CommandError{
		Command: Command{Dir: "app/server", Name: "npm", Args: []string{"install", "pg"}},
		Err:     errors.New("exit status 1"),
	}
	want := "failed to execute command: npm install pg (in app/server): exit status 1"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
