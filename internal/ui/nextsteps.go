package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// NextSteps describes what the user should do after generation.
type NextSteps struct {
	Root        string   // folder to change into
	ServerDir   string   // backend server folder, relative to the working directory
	HasFrontend bool     // frontend tool output needs npm install
	Warnings    []string // non-fatal problems to surface
}

// Markdown builds the next-steps document.
func (n NextSteps) Markdown() string {
	var b strings.Builder
	b.WriteString("## Next steps\n\n```bash\n")
	fmt.Fprintf(&b, "cd %s\n", n.Root)
	b.WriteString("```\n")

	if n.ServerDir != "" {
		b.WriteString("\nStart the API server:\n\n```bash\n")
		fmt.Fprintf(&b, "cd %s\nnpm run dev\n", n.ServerDir)
		b.WriteString("```\n")
	}
	if n.HasFrontend {
		b.WriteString("\nInstall and start the frontend with `npm install` and `npm run dev` in its folder.\n")
	}

	if len(n.Warnings) > 0 {
		b.WriteString("\n### Warnings\n\n")
		for _, w := range n.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}
	return b.String()
}

// RenderMarkdown renders md for the terminal. Without color it uses
// glamour's plain style.
func RenderMarkdown(md string, theme *Theme, width int) (string, error) {
	style := glamour.WithAutoStyle()
	if theme.NoColor {
		style = glamour.WithStandardStyle("notty")
	}
	if width <= 0 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
