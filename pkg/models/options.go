package models

// ProjectType selects the generated topology.
type ProjectType string

const (
	ProjectTypeFrontend  ProjectType = "frontend"
	ProjectTypeBackend   ProjectType = "backend"
	ProjectTypeFullstack ProjectType = "fullstack"
)

// IsValid checks if the project type is a valid value.
func (t ProjectType) IsValid() bool {
	switch t {
	case ProjectTypeFrontend, ProjectTypeBackend, ProjectTypeFullstack:
		return true
	}
	return false
}

// HasFrontend reports whether the topology contains a frontend application.
func (t ProjectType) HasFrontend() bool {
	return t == ProjectTypeFrontend || t == ProjectTypeFullstack
}

// HasBackend reports whether the topology contains a backend server.
func (t ProjectType) HasBackend() bool {
	return t == ProjectTypeBackend || t == ProjectTypeFullstack
}

// Frontend is the frontend framework choice.
type Frontend string

const (
	FrontendNone   Frontend = "none"
	FrontendVite   Frontend = "vite"
	FrontendNextJS Frontend = "nextjs"
)

// IsValid checks if the frontend is a valid value.
func (f Frontend) IsValid() bool {
	switch f {
	case FrontendNone, FrontendVite, FrontendNextJS:
		return true
	}
	return false
}

// IsSet reports whether a frontend framework was chosen.
func (f Frontend) IsSet() bool {
	return f != "" && f != FrontendNone
}

// FrontendVariant is the concrete scaffolding template derived from the
// frontend framework and the language choice.
type FrontendVariant string

const (
	VariantViteReact   FrontendVariant = "vite-react"
	VariantViteReactTS FrontendVariant = "vite-react-ts"
	VariantNextJS      FrontendVariant = "nextjs"
)

// ResolveVariant maps a framework and language to a scaffolding variant.
// The second return value is false when no frontend is selected.
func ResolveVariant(f Frontend, typeScript bool) (FrontendVariant, bool) {
	switch f {
	case FrontendVite:
		if typeScript {
			return VariantViteReactTS, true
		}
		return VariantViteReact, true
	case FrontendNextJS:
		return VariantNextJS, true
	}
	return "", false
}

// Backend is the backend framework choice.
type Backend string

const (
	BackendNone    Backend = "none"
	BackendExpress Backend = "express"
	BackendHapi    Backend = "hapi"
)

// IsValid checks if the backend is a valid value.
func (b Backend) IsValid() bool {
	switch b {
	case BackendNone, BackendExpress, BackendHapi:
		return true
	}
	return false
}

// IsSet reports whether a backend framework was chosen.
func (b Backend) IsSet() bool {
	return b != "" && b != BackendNone
}

// DisplayName returns the human readable framework name.
func (b Backend) DisplayName() string {
	switch b {
	case BackendExpress:
		return "Express.js"
	case BackendHapi:
		return "Hapi.js"
	}
	return string(b)
}

// Database is the database engine choice.
type Database string

const (
	DatabaseNone       Database = "none"
	DatabasePostgreSQL Database = "postgresql"
	DatabaseMySQL      Database = "mysql"
	DatabaseSQLite     Database = "sqlite"
)

// ValidDatabases returns all selectable database values, "none" last.
func ValidDatabases() []Database {
	return []Database{DatabasePostgreSQL, DatabaseMySQL, DatabaseSQLite, DatabaseNone}
}

// IsValid checks if the database is a valid value.
func (d Database) IsValid() bool {
	switch d {
	case DatabaseNone, DatabasePostgreSQL, DatabaseMySQL, DatabaseSQLite:
		return true
	}
	return false
}

// IsSet reports whether a database engine was chosen.
func (d Database) IsSet() bool {
	return d != "" && d != DatabaseNone
}

// Language is the source language of generated code.
type Language string

const (
	LanguageTypeScript Language = "typescript"
	LanguageJavaScript Language = "javascript"
)
