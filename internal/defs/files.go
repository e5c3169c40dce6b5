// Package defs holds file names, directory names and permissions shared by
// the generators.
package defs

import "os"

// Permissions for generated directories and files.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)

// Common file names written into generated projects.
const (
	PackageJSON   = "package.json"
	TSConfigJSON  = "tsconfig.json"
	EnvFile       = ".env"
	EnvExample    = ".env.example"
	ESLintRC      = ".eslintrc.json"
	PrettierRC    = ".prettierrc.json"
	Gitignore     = ".gitignore"
	ReadmeMD      = "README.md"
	IndexJS       = "index.js"
	IndexTS       = "index.ts"
	ConfigYAML    = "config.yaml"
	AppConfigName = "genova"
)

// Directory names used in generated layouts.
const (
	ServerDir   = "server"
	FrontendDir = "frontend"
	BackendDir  = "backend"
	SrcDir      = "src"
)
