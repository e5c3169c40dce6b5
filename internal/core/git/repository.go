// Package git initializes the repository of a generated project.
package git

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// DefaultBranch is the initial branch when none is configured.
const DefaultBranch = "main"

// Sentinel errors for the git package.
var (
	// ErrAlreadyRepository indicates the directory already holds a repository.
	ErrAlreadyRepository = errors.New("git repository already exists")

	// ErrInitFailed indicates the repository could not be created.
	ErrInitFailed = errors.New("git init failed")
)

// Initializer creates an empty repository in a directory.
type Initializer interface {
	Init(ctx context.Context, dir string) error
}

// Compile-time interface compliance check.
var _ Initializer = (*GoGitInitializer)(nil)

// GoGitInitializer implements Initializer with go-git, so no git binary is
// required on the host.
type GoGitInitializer struct {
	branch string
	logger *slog.Logger
}

// NewInitializer returns an initializer whose repositories start on branch.
// An empty branch selects DefaultBranch.
func NewInitializer(branch string, logger *slog.Logger) *GoGitInitializer {
	if branch == "" {
		branch = DefaultBranch
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &GoGitInitializer{branch: branch, logger: logger.With("module", "git")}
}

// Branch returns the initial branch name.
func (g *GoGitInitializer) Branch() string {
	return g.branch
}

// Init creates a non-bare repository in dir with HEAD pointing at the
// configured branch.
func (g *GoGitInitializer) Init(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve path %s: %w", dir, err)
	}

	_, err = gogit.PlainInitWithOptions(absDir, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{
			DefaultBranch: plumbing.NewBranchReferenceName(g.branch),
		},
	})
	if errors.Is(err, gogit.ErrRepositoryAlreadyExists) {
		return fmt.Errorf("%w: %s", ErrAlreadyRepository, absDir)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInitFailed, absDir, err)
	}

	g.logger.Debug("repository initialized", "root", absDir, "branch", g.branch)
	return nil
}
