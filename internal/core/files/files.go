// Package files wraps the filesystem operations used by the generators.
// Production code runs on the OS filesystem; tests use an in-memory one.
package files

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/genova-cli/genova/internal/defs"
)

// Helper creates directories, writes files and tests existence on an
// afero filesystem.
type Helper struct {
	fs afero.Fs
}

// New creates a Helper backed by fs.
func New(fs afero.Fs) *Helper {
	return &Helper{fs: fs}
}

// NewOS creates a Helper backed by the real filesystem.
func NewOS() *Helper {
	return New(afero.NewOsFs())
}

// Fs returns the underlying filesystem.
func (h *Helper) Fs() afero.Fs {
	return h.fs
}

// CreateFolder creates path and any missing parents. Existing folders are
// left alone.
func (h *Helper) CreateFolder(path string) error {
	if err := h.fs.MkdirAll(filepath.Clean(path), defs.DirPerm); err != nil {
		return fmt.Errorf("mkdir %s: %w", path, err)
	}
	return nil
}

// CreateFile writes content to path, replacing any existing file.
func (h *Helper) CreateFile(path string, content []byte) error {
	if err := afero.WriteFile(h.fs, filepath.Clean(path), content, defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Exists reports whether path exists. Stat errors other than "not exist"
// are treated as existing so callers never overwrite something they cannot
// inspect.
func (h *Helper) Exists(path string) bool {
	ok, err := afero.Exists(h.fs, filepath.Clean(path))
	if err != nil {
		return true
	}
	return ok
}

// ReadFile returns the content of path.
func (h *Helper) ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(h.fs, filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// ReadJSON decodes the JSON document at path into v.
func (h *Helper) ReadJSON(path string, v any) error {
	data, err := h.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// WriteJSON encodes v with two-space indentation and writes it to path.
func (h *Helper) WriteJSON(path string, v any) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return h.CreateFile(path, data)
}

// MarshalJSON encodes v the way npm tooling writes config files: two-space
// indentation, no HTML escaping, trailing newline.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
