package ui

import (
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func testTheme() *Theme {
	return NewTheme(true)
}

// newTestProgram creates a tea.Program configured for test environments without a TTY.
// It uses an empty string reader for input, io.Discard for output, and disables the renderer
// to avoid any TTY requirements.
func newTestProgram(m tea.Model) *tea.Program {
	return tea.NewProgram(m,
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
	)
}

// startTestProgram starts a tea.Program in a goroutine and returns a done channel.
func startTestProgram(p *tea.Program) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = p.Run()
	}()
	// Allow the program goroutine to initialize before sending messages.
	time.Sleep(10 * time.Millisecond)
	return done
}

// waitForProgram waits for the program to exit, failing the test if it exceeds timeout.
func waitForProgram(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Error("tea.Program did not exit within 2 second timeout")
	}
}

func TestInteractiveSpinner_SetTitleThenStop(t *testing.T) {
	m := newSpinnerModel(testTheme(), "npm init -y")
	p := newTestProgram(m)
	s := &interactiveSpinner{program: p, once: sync.Once{}}
	done := startTestProgram(p)

	s.SetTitle("npm install -D @typescript-eslint/parser")
	s.Stop()

	waitForProgram(t, done)
}

func TestInteractiveSpinner_Stop_Idempotent(t *testing.T) {
	m := newSpinnerModel(testTheme(), "Loading")
	p := newTestProgram(m)
	s := &interactiveSpinner{program: p, once: sync.Once{}}
	done := startTestProgram(p)

	s.Stop()
	s.Stop()

	waitForProgram(t, done)
}

func TestSpinnerModel_Update(t *testing.T) {
	m := newSpinnerModel(NewTheme(false), "Working")

	updated, _ := m.Update(spinnerTitleMsg("Still working"))
	result := updated.(spinnerModel)
	if result.title != "Still working" {
		t.Errorf("title = %q, want %q", result.title, "Still working")
	}
	if !strings.Contains(result.View(), "Still working") {
		t.Errorf("View() = %q, want title", result.View())
	}

	updated, cmd := result.Update(spinnerStopMsg{})
	result = updated.(spinnerModel)
	if !result.done || cmd == nil {
		t.Error("stop message should finish the model and quit")
	}
	if result.View() != "" {
		t.Errorf("View() after stop = %q, want empty", result.View())
	}
}

func TestSpinnerModel_Update_SpinnerTickMsg(t *testing.T) {
	m := newSpinnerModel(NewTheme(false), "Ticking")
	tickCmd := m.Init()
	if tickCmd == nil {
		t.Fatal("Init should return a non-nil tick command")
	}
	msg := tickCmd()
	if _, ok := msg.(spinner.TickMsg); !ok {
		t.Skip("unexpected message type from tick command")
	}
	updated, _ := m.Update(msg)
	if updated.(spinnerModel).done {
		t.Error("tick should not stop the spinner")
	}
}

func TestProgress_HeadlessSpinnerPrintsTitles(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)

	var buf strings.Builder
	sp := newProgressWriter(NewTheme(false), hm, &buf).Spinner("npm init -y")
	sp.SetTitle("done")
	sp.Stop()

	if got := buf.String(); got != "npm init -y\ndone\n" {
		t.Errorf("output = %q", got)
	}
}

func TestProgress_NoColorUsesHeadlessSpinner(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(false)

	var buf strings.Builder
	sp := newProgressWriter(NewTheme(true), hm, &buf).Spinner("quiet")
	if _, ok := sp.(*headlessSpinner); !ok {
		t.Errorf("spinner type = %T, want *headlessSpinner", sp)
	}
	sp.Stop()
}

func TestProgress_InteractiveSpinnerStops(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(false)

	sp := newProgressWriter(NewTheme(false), hm, io.Discard).Spinner("animated")
	if _, ok := sp.(*interactiveSpinner); !ok {
		t.Fatalf("spinner type = %T, want *interactiveSpinner", sp)
	}
	sp.SetTitle("still animated")
	sp.Stop()
	sp.Stop()
}

func TestHeadlessManager_Force(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	if !hm.IsHeadless() {
		t.Error("forced headless should report headless")
	}
	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("forced interactive should not report headless")
	}
	hm.ClearForce()
	_ = hm.IsHeadless()
}
