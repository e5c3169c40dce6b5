// Package project turns a validated ProjectConfig into a project on disk by
// sequencing the frontend, backend and tooling generators.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrTargetExists indicates the project folder already exists.
	ErrTargetExists = errors.New("target folder already exists")

	// ErrUnknownProjectType indicates a project type with no generation plan.
	ErrUnknownProjectType = errors.New("unknown project type")
)
