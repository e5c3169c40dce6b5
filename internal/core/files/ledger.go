package files

import "fmt"

// Ledger records what a generation step created and what it could not.
type Ledger struct {
	CreatedDirs  []string // Directories that were created.
	CreatedFiles []string // Files that were written.
	Warnings     []string // Non-fatal failures.
}

// Dir records a created directory.
func (l *Ledger) Dir(path string) {
	l.CreatedDirs = append(l.CreatedDirs, path)
}

// File records a written file.
func (l *Ledger) File(path string) {
	l.CreatedFiles = append(l.CreatedFiles, path)
}

// Warn records a non-fatal failure.
func (l *Ledger) Warn(format string, args ...any) {
	l.Warnings = append(l.Warnings, fmt.Sprintf(format, args...))
}

// Merge appends everything recorded in other. A nil other is ignored.
func (l *Ledger) Merge(other *Ledger) {
	if other == nil {
		return
	}
	l.CreatedDirs = append(l.CreatedDirs, other.CreatedDirs...)
	l.CreatedFiles = append(l.CreatedFiles, other.CreatedFiles...)
	l.Warnings = append(l.Warnings, other.Warnings...)
}
