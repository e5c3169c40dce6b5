package models

import (
	"fmt"
	"regexp"
)

// projectNamePattern restricts project names to characters that are safe as
// a single path segment and as a package.json name.
var projectNamePattern = regexp.MustCompile(`^[a-z0-9-_]+$`)

// ValidateProjectName checks that name is non-empty and matches the allowed
// character set. Folder existence is checked by the caller.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: project name cannot be empty", ErrInvalidProjectName)
	}
	if !projectNamePattern.MatchString(name) {
		return fmt.Errorf("%w: only lowercase letters, numbers, - and _ are allowed", ErrInvalidProjectName)
	}
	return nil
}

// ProjectConfig holds the answers for one generation run.
// It is built once and passed by value; derived configurations are copies.
type ProjectConfig struct {
	Name          string
	ProjectType   ProjectType
	Frontend      Frontend
	Backend       Backend
	Database      Database
	UseTypeScript bool
	AddLinting    bool
	AddPrettier   bool
	InitGit       bool
}

// NeedsDatabase reports whether a database engine was selected.
func (c ProjectConfig) NeedsDatabase() bool {
	return c.Database.IsSet()
}

// Language returns the language implied by UseTypeScript.
func (c ProjectConfig) Language() Language {
	if c.UseTypeScript {
		return LanguageTypeScript
	}
	return LanguageJavaScript
}

// AsBackend returns the backend-only configuration used for the backend
// half of a fullstack monorepo.
func (c ProjectConfig) AsBackend() ProjectConfig {
	c.ProjectType = ProjectTypeBackend
	c.Frontend = FrontendNone
	return c
}

// WantsTooling reports whether any lint or format setup was requested.
func (c ProjectConfig) WantsTooling() bool {
	return c.AddLinting || c.AddPrettier
}

// Validate checks enum membership and the topology invariants.
func (c ProjectConfig) Validate() error {
	if err := ValidateProjectName(c.Name); err != nil {
		return err
	}
	if !c.ProjectType.IsValid() {
		return invalid("project_type", "must be one of: frontend, backend, fullstack", c.ProjectType)
	}
	if c.Frontend != "" && !c.Frontend.IsValid() {
		return invalid("frontend", "must be one of: none, vite, nextjs", c.Frontend)
	}
	if c.Backend != "" && !c.Backend.IsValid() {
		return invalid("backend", "must be one of: none, express, hapi", c.Backend)
	}
	if c.Database != "" && !c.Database.IsValid() {
		return invalid("database", "unsupported database", c.Database)
	}

	switch c.ProjectType {
	case ProjectTypeFrontend:
		if !c.Frontend.IsSet() {
			return invalid("frontend", "required for a frontend project", nil)
		}
		if c.Backend.IsSet() || c.Database.IsSet() {
			return invalid("backend", "backend and database must be unset for a frontend project", nil)
		}
	case ProjectTypeBackend:
		if !c.Backend.IsSet() {
			return invalid("backend", "required for a backend project", nil)
		}
	case ProjectTypeFullstack:
		if !c.Frontend.IsSet() || !c.Backend.IsSet() {
			return invalid("frontend", "fullstack projects need both a frontend and a backend", nil)
		}
	}
	return nil
}

func invalid(field, msg string, value any) error {
	return &ValidationError{Field: field, Message: msg, Value: value, Wrapped: ErrInvalidConfig}
}
