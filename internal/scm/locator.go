// Package scm locates git working copies under the configured workspace
// roots and exposes each one's staged commit message as a mutable field.
package scm

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	git "github.com/go-git/go-git/v5"
)

// Locator resolves the commit-message field of the first open working
// copy. Enumeration order is deterministic: roots in configured order,
// candidate directories under each root in sorted path order.
type Locator struct {
	roots []string
}

// NewLocator builds a locator over the given workspace roots.
func NewLocator(roots []string) *Locator {
	return &Locator{roots: roots}
}

// Resolve returns the commit-message field of the first working copy, or
// ErrIntegrationUnavailable / ErrNoRepositoryOpen.
func (l *Locator) Resolve(ctx context.Context) (Field, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	accessible := 0
	for _, root := range l.roots {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			continue
		}
		accessible++

		for _, dir := range candidateDirs(root) {
			repo, err := git.PlainOpen(dir)
			if err != nil {
				continue
			}
			return newFileField(dir, repo)
		}
	}

	if accessible == 0 {
		return nil, ErrIntegrationUnavailable
	}
	return nil, ErrNoRepositoryOpen
}

// candidateDirs lists the directories under root that may be working
// copies: the root itself first, then its immediate children sorted by
// name. Deeper nesting is not searched; a workspace root either is a
// repository or directly contains them.
func candidateDirs(root string) []string {
	dirs := []string{root}

	entries, err := os.ReadDir(root)
	if err != nil {
		return dirs
	}

	var children []string
	for _, entry := range entries {
		if entry.IsDir() {
			children = append(children, filepath.Join(root, entry.Name()))
		}
	}
	sort.Strings(children)
	return append(dirs, children...)
}
