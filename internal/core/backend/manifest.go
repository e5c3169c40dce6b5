package backend

import (
	"fmt"
	"path/filepath"

	"github.com/genova-cli/genova/internal/core/files"
	"github.com/genova-cli/genova/internal/defs"
	"github.com/genova-cli/genova/internal/template"
)

// Scripts returns the npm scripts for a backend in the given language.
func Scripts(typeScript bool) map[string]string {
	if typeScript {
		return map[string]string{
			"start": "node dist/index.js",
			"dev":   "nodemon --exec ts-node src/index.ts",
			"build": "tsc",
		}
	}
	return map[string]string{
		"start": "node src/index.js",
		"dev":   "nodemon src/index.js",
	}
}

// updateManifest merges the scripts into package.json, marks TypeScript
// projects as ES modules and writes tsconfig.json next to it. Every other
// key written by npm is preserved.
func (g *Generator) updateManifest(server string, typeScript bool, ledger *files.Ledger) error {
	path := filepath.Join(server, defs.PackageJSON)

	var manifest map[string]any
	if err := g.files.ReadJSON(path, &manifest); err != nil {
		return fmt.Errorf("%w: %w", ErrManifest, err)
	}
	if manifest == nil {
		return fmt.Errorf("%w: %s is not a JSON object", ErrManifest, path)
	}

	manifest["scripts"] = Scripts(typeScript)
	if typeScript {
		manifest["type"] = "module"
		g.writeJSON(filepath.Join(server, defs.TSConfigJSON), template.NewTSConfig(), ledger)
	}

	g.writeJSON(path, manifest, ledger)
	return nil
}

func (g *Generator) writeJSON(path string, v any, ledger *files.Ledger) {
	if err := g.files.WriteJSON(path, v); err != nil {
		ledger.Warn("%s", err)
		g.logger.Warn("file write failed", "path", path, "error", err)
		return
	}
	ledger.File(path)
}
