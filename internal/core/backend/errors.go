// Package backend generates the Node.js API server of a project: the npm
// manifest, dependencies, source layout, entry file and environment files.
package backend

import "errors"

// Sentinel errors for the backend package.
var (
	// ErrManifest indicates the package.json produced by npm init is missing
	// or cannot be parsed.
	ErrManifest = errors.New("invalid package.json")

	// ErrInstall indicates a dependency installation failed.
	ErrInstall = errors.New("dependency installation failed")
)
