package template

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestRendererRender(t *testing.T) {
	t.Run("successful_render", func(t *testing.T) {
		fs := fstest.MapFS{
			"README.md.tmpl": &fstest.MapFile{
				Data: []byte("# {{.ProjectName}}\n\nPort: {{.Port}}\n"),
			},
		}
		r := NewRenderer(fs)

		data := map[string]any{
			"ProjectName": "shop",
			"Port":        3000,
		}

		result, err := r.Render("README.md.tmpl", data)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}

		expected := "# shop\n\nPort: 3000\n"
		if string(result) != expected {
			t.Errorf("Render result = %q, want %q", string(result), expected)
		}
	})

	t.Run("missing_key_strict_mode", func(t *testing.T) {
		fs := fstest.MapFS{
			"test.tmpl": &fstest.MapFile{
				Data: []byte("Hello {{.Name}}, your port is {{.Port}}"),
			},
		}
		r := NewRenderer(fs)

		_, err := r.Render("test.tmpl", map[string]string{"Name": "api"})
		if err == nil {
			t.Fatal("expected error for missing key")
		}
		if !errors.Is(err, ErrMissingTemplateKey) {
			t.Errorf("expected ErrMissingTemplateKey, got: %v", err)
		}
	})

	t.Run("missing_struct_field", func(t *testing.T) {
		fs := fstest.MapFS{
			"test.tmpl": &fstest.MapFile{Data: []byte("{{.Nope}}")},
		}
		r := NewRenderer(fs)

		_, err := r.Render("test.tmpl", NewTemplateContext())
		if !errors.Is(err, ErrMissingTemplateKey) {
			t.Errorf("expected ErrMissingTemplateKey, got: %v", err)
		}
	})

	t.Run("nonexistent_template", func(t *testing.T) {
		r := NewRenderer(fstest.MapFS{})

		_, err := r.Render("missing.tmpl", nil)
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("expected ErrTemplateNotFound, got: %v", err)
		}
	})

	t.Run("parse_error", func(t *testing.T) {
		fs := fstest.MapFS{
			"bad.tmpl": &fstest.MapFile{Data: []byte("{{.Name")},
		}
		r := NewRenderer(fs)

		_, err := r.Render("bad.tmpl", map[string]string{"Name": "x"})
		if err == nil {
			t.Fatal("expected parse error")
		}
		if !strings.Contains(err.Error(), "template parse") {
			t.Errorf("error = %v, want parse error", err)
		}
	})

	t.Run("leftover_action_rejected", func(t *testing.T) {
		fs := fstest.MapFS{
			"raw.tmpl": &fstest.MapFile{Data: []byte(`{{"{{.Port}}"}}`)},
		}
		r := NewRenderer(fs)

		_, err := r.Render("raw.tmpl", nil)
		if !errors.Is(err, ErrUnexpandedToken) {
			t.Errorf("expected ErrUnexpandedToken, got: %v", err)
		}
	})

	t.Run("js_template_literal_allowed", func(t *testing.T) {
		fs := fstest.MapFS{
			"server.tmpl": &fstest.MapFile{
				Data: []byte("console.log(`listening on ${PORT}`); // {{.Port}}\n"),
			},
		}
		r := NewRenderer(fs)

		result, err := r.Render("server.tmpl", map[string]int{"Port": 8080})
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if !strings.Contains(string(result), "${PORT}") || !strings.Contains(string(result), "8080") {
			t.Errorf("unexpected output %q", result)
		}
	})
}

func TestEnvValueFunc(t *testing.T) {
	t.Parallel()

	envValue := templateFuncMap["envValue"].(func(string) string)

	tests := []struct {
		in   string
		want string
	}{
		{"development", "development"},
		{"localhost", "localhost"},
		{"", `""`},
		{"has space", `"has space"`},
		{"p#ss", `"p#ss"`},
		{"$HOME", `"$HOME"`},
	}

	for _, tt := range tests {
		if got := envValue(tt.in); got != tt.want {
			t.Errorf("envValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
