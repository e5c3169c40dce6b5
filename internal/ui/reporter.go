package ui

import (
	"fmt"
	"io"
	"os"
)

// BannerText is shown above the questions.
const BannerText = "GENOVA CLI"

// BannerSubtitle follows the banner title.
const BannerSubtitle = "Scaffold Node.js projects in seconds"

// Reporter prints user-facing messages.
type Reporter struct {
	theme *Theme
	out   io.Writer
	err   io.Writer
}

// NewReporter creates a Reporter writing to stdout and stderr.
func NewReporter(theme *Theme) *Reporter {
	return NewReporterWriters(theme, os.Stdout, os.Stderr)
}

// NewReporterWriters creates a Reporter with explicit writers.
func NewReporterWriters(theme *Theme, out, errOut io.Writer) *Reporter {
	return &Reporter{theme: theme, out: out, err: errOut}
}

// Banner prints the application banner.
func (r *Reporter) Banner() {
	title := r.theme.Primary().Render(BannerText)
	sub := r.theme.Muted().Render(BannerSubtitle)
	_, _ = fmt.Fprintln(r.out, r.theme.Card().Render(title+"\n"+sub))
	_, _ = fmt.Fprintln(r.out)
}

// Step announces a generation phase.
func (r *Reporter) Step(msg string) {
	_, _ = fmt.Fprintln(r.out, r.theme.Primary().Render("◆")+" "+msg)
}

// Info prints a neutral message.
func (r *Reporter) Info(msg string) {
	_, _ = fmt.Fprintln(r.out, msg)
}

// Success prints a completion message.
func (r *Reporter) Success(msg string) {
	_, _ = fmt.Fprintln(r.out, r.theme.Success().Render("✓ "+msg))
}

// Warn prints a non-fatal problem to stderr.
func (r *Reporter) Warn(msg string) {
	_, _ = fmt.Fprintln(r.err, r.theme.Warning().Render("! "+msg))
}

// Error prints a fatal problem to stderr.
func (r *Reporter) Error(msg string) {
	_, _ = fmt.Fprintln(r.err, r.theme.Error().Render("✗ "+msg))
}

// Markdown prints pre-rendered markdown output verbatim.
func (r *Reporter) Markdown(rendered string) {
	_, _ = fmt.Fprint(r.out, rendered)
}
