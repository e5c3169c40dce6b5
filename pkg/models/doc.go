// Package models provides the shared data model for genova.
//
// # Project Types
//
// A generation run produces one of three topologies:
//   - Frontend: a single application created by an external scaffolding tool
//   - Backend: a Node.js API server under <project>/server
//   - Fullstack: a monorepo with frontend/ and backend/ subprojects
//
// # Configuration
//
// [ProjectConfig] carries the user's answers. It is a value type: the
// backend half of a fullstack run uses [ProjectConfig.AsBackend], which
// returns a modified copy.
//
//	cfg := models.ProjectConfig{Name: "shop", ProjectType: models.ProjectTypeBackend,
//	    Backend: models.BackendExpress, Database: models.DatabaseNone}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
// Every selectable option is a string enum with an IsValid method.
package models
