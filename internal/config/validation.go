package config

import (
	"slices"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
)

// Validate checks the configuration for correctness.
func Validate(cfg *Config) error {
	var errs []ValidationError

	if strings.TrimSpace(cfg.NpmBin) == "" {
		errs = append(errs, ValidationError{Field: "npm_bin", Message: "must not be blank", Wrapped: ErrInvalidConfig})
	}
	if strings.TrimSpace(cfg.NpxBin) == "" {
		errs = append(errs, ValidationError{Field: "npx_bin", Message: "must not be blank", Wrapped: ErrInvalidConfig})
	}

	if cfg.ServerPort < 1 || cfg.ServerPort > 65535 {
		errs = append(errs, ValidationError{
			Field:   "server_port",
			Message: "must be between 1 and 65535",
			Value:   cfg.ServerPort,
			Wrapped: ErrInvalidConfig,
		})
	}

	if !slices.Contains(validLogLevels, strings.ToLower(cfg.LogLevel)) {
		errs = append(errs, ValidationError{
			Field:   "log_level",
			Message: "must be one of: " + strings.Join(validLogLevels, ", "),
			Value:   cfg.LogLevel,
			Wrapped: ErrInvalidConfig,
		})
	}

	if !validBranchName(cfg.DefaultBranch) {
		errs = append(errs, ValidationError{
			Field:   "default_branch",
			Message: "not a valid git branch name",
			Value:   cfg.DefaultBranch,
			Wrapped: ErrInvalidConfig,
		})
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validBranchName applies the subset of git-check-ref-format rules that
// matter for a freshly created branch.
func validBranchName(name string) bool {
	if name == "" || strings.HasPrefix(name, "-") || strings.HasPrefix(name, "/") ||
		strings.HasSuffix(name, "/") || strings.HasSuffix(name, ".lock") || strings.HasSuffix(name, ".") {
		return false
	}
	if strings.Contains(name, "..") || strings.Contains(name, "@{") || strings.Contains(name, "//") {
		return false
	}
	if strings.ContainsAny(name, " ~^:?*[\\\t\n") {
		return false
	}
	return plumbing.NewBranchReferenceName(name).IsBranch()
}
