package git

import (
	"context"
	"errors"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

func TestInit_CreatesRepositoryOnBranch(t *testing.T) {
	tests := []struct {
		name   string
		branch string
		want   string
	}{
		{"default_branch", "", "main"},
		{"configured_branch", "trunk", "trunk"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			initializer := NewInitializer(tt.branch, nil)

			if err := initializer.Init(context.Background(), dir); err != nil {
				t.Fatalf("Init(%q) error: %v", dir, err)
			}

			repo, err := gogit.PlainOpen(dir)
			if err != nil {
				t.Fatalf("PlainOpen(%q) error: %v", dir, err)
			}
			head, err := repo.Reference(plumbing.HEAD, false)
			if err != nil {
				t.Fatalf("read HEAD: %v", err)
			}
			if got := head.Target(); got != plumbing.NewBranchReferenceName(tt.want) {
				t.Errorf("HEAD -> %q, want refs/heads/%s", got, tt.want)
			}
		})
	}
}

func TestInit_ExistingRepository(t *testing.T) {
	dir := t.TempDir()
	initializer := NewInitializer("", nil)

	if err := initializer.Init(context.Background(), dir); err != nil {
		t.Fatalf("first Init error: %v", err)
	}
	err := initializer.Init(context.Background(), dir)
	if !errors.Is(err, ErrAlreadyRepository) {
		t.Errorf("second Init error = %v, want ErrAlreadyRepository", err)
	}
}

func TestInit_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewInitializer("", nil).Init(ctx, t.TempDir())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Init error = %v, want context.Canceled", err)
	}
}
