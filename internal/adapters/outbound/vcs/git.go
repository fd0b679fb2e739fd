package vcs

import (
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// GitAdapter implements domain.RevisionControl over a local git checkout
// using go-git.
type GitAdapter struct {
	path string
}

// New returns an adapter for the repository at path.
func New(path string) *GitAdapter {
	return &GitAdapter{path: path}
}

func (g *GitAdapter) CurrentRevision() (string, error) {
	repo, err := git.PlainOpen(g.path)
	if err != nil {
		return "", fmt.Errorf("opening git repo %s: %w", g.path, err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}
	return head.Hash().String(), nil
}

func (g *GitAdapter) Checkout(rev string) error {
	repo, err := git.PlainOpen(g.path)
	if err != nil {
		return fmt.Errorf("opening git repo %s: %w", g.path, err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return fmt.Errorf("resolving revision %q: %w", rev, err)
	}

	tree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("opening worktree: %w", err)
	}

	if err := tree.Checkout(&git.CheckoutOptions{Hash: *hash, Force: true}); err != nil {
		return fmt.Errorf("checking out %q: %w", rev, err)
	}
	return nil
}
