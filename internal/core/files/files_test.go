package files

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func TestHelper_CreateFolderAndExists(t *testing.T) {
	h := New(afero.NewMemMapFs())

	if h.Exists("app") {
		t.Fatal("app should not exist yet")
	}
	if err := h.CreateFolder("app/src/routes"); err != nil {
		t.Fatalf("CreateFolder() error = %v", err)
	}
	for _, p := range []string{"app", "app/src", "app/src/routes"} {
		if !h.Exists(p) {
			t.Errorf("expected %s to exist", p)
		}
	}

	// Creating an existing folder is a no-op.
	if err := h.CreateFolder("app"); err != nil {
		t.Errorf("CreateFolder() on existing folder error = %v", err)
	}
}

func TestHelper_CreateFileAndRead(t *testing.T) {
	h := New(afero.NewMemMapFs())
	if err := h.CreateFolder("app"); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join("app", ".env")
	if err := h.CreateFile(path, []byte("PORT=3000\n")); err != nil {
		t.Fatalf("CreateFile() error = %v", err)
	}

	got, err := h.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "PORT=3000\n" {
		t.Errorf("ReadFile() = %q", got)
	}
}

func TestHelper_CreateFileReadOnlyFs(t *testing.T) {
	h := New(afero.NewReadOnlyFs(afero.NewMemMapFs()))

	if err := h.CreateFile("README.md", []byte("x")); err == nil {
		t.Error("expected error writing to a read-only filesystem")
	}
}

func TestHelper_JSONRoundTrip(t *testing.T) {
	h := New(afero.NewMemMapFs())

	in := map[string]any{"name": "api", "scripts": map[string]string{"dev": "nodemon src/index.js"}}
	if err := h.WriteJSON("package.json", in); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var out struct {
		Name    string            `json:"name"`
		Scripts map[string]string `json:"scripts"`
	}
	if err := h.ReadJSON("package.json", &out); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if out.Name != "api" || out.Scripts["dev"] != "nodemon src/index.js" {
		t.Errorf("unexpected decoded value: %+v", out)
	}
}

func TestHelper_ReadJSONInvalid(t *testing.T) {
	h := New(afero.NewMemMapFs())
	if err := h.CreateFile("package.json", []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	var v map[string]any
	if err := h.ReadJSON("package.json", &v); err == nil {
		t.Error("expected parse error")
	}
	if err := h.ReadJSON("missing.json", &v); err == nil {
		t.Error("expected read error for missing file")
	}
}

func TestMarshalJSON_Format(t *testing.T) {
	got, err := MarshalJSON(map[string]string{"alias": "@/*", "cmd": "a && b"})
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"alias\": \"@/*\",\n  \"cmd\": \"a && b\"\n}\n"
	if string(got) != want {
		t.Errorf("MarshalJSON() = %q, want %q", got, want)
	}
}

func TestLedger_Merge(t *testing.T) {
	var l Ledger
	l.Dir("app")
	l.File("app/README.md")

	other := &Ledger{}
	other.Dir("app/server")
	other.Warn("write %s: %s", ".env", "disk full")

	l.Merge(other)
	l.Merge(nil)

	if len(l.CreatedDirs) != 2 || l.CreatedDirs[1] != "app/server" {
		t.Errorf("CreatedDirs = %v", l.CreatedDirs)
	}
	if len(l.CreatedFiles) != 1 {
		t.Errorf("CreatedFiles = %v", l.CreatedFiles)
	}
	if len(l.Warnings) != 1 || l.Warnings[0] != "write .env: disk full" {
		t.Errorf("Warnings = %v", l.Warnings)
	}
}
