package scm

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
)

// Field is the mutable commit-message slot of one working copy. The value
// is owned by whatever opened the working copy; this interface is the only
// way this system touches it.
type Field interface {
	// Read returns the current staged message. A field that has never been
	// written reads as the empty string.
	Read() (string, error)
	// Write replaces the staged message in a single whole-file assignment.
	Write(value string) error
	// Name identifies the working copy, for confirmation text and logs.
	Name() string
	// Branch is the checked-out branch name, or "" when HEAD is unborn.
	Branch() string
}

// fileField backs a Field with the repository's COMMIT_EDITMSG file, the
// same file git seeds the commit editor from.
type fileField struct {
	repoDir string
	gitDir  string
	branch  string
}

func newFileField(repoDir string, repo *git.Repository) (*fileField, error) {
	gitDir, err := resolveGitDir(repoDir)
	if err != nil {
		return nil, err
	}

	branch := ""
	if head, err := repo.Head(); err == nil && head.Name().IsBranch() {
		branch = head.Name().Short()
	}

	return &fileField{repoDir: repoDir, gitDir: gitDir, branch: branch}, nil
}

// resolveGitDir returns the directory holding the working copy's private
// git state. Linked worktrees and submodules keep a ".git" file pointing
// at it instead of a directory.
func resolveGitDir(repoDir string) (string, error) {
	dotGit := filepath.Join(repoDir, git.GitDirName)
	info, err := os.Stat(dotGit)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", dotGit, err)
	}
	if info.IsDir() {
		return dotGit, nil
	}

	data, err := os.ReadFile(dotGit)
	if err != nil {
		return "", fmt.Errorf("failed to read gitdir pointer: %w", err)
	}
	target := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(string(data)), "gitdir:"))
	if target == "" {
		return "", fmt.Errorf("malformed gitdir pointer in %s", dotGit)
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(repoDir, target)
	}
	return filepath.Clean(target), nil
}

func (f *fileField) messagePath() string {
	return filepath.Join(f.gitDir, "COMMIT_EDITMSG")
}

func (f *fileField) Read() (string, error) {
	data, err := os.ReadFile(f.messagePath())
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read commit message: %w", err)
	}
	return string(data), nil
}

func (f *fileField) Write(value string) error {
	if err := os.WriteFile(f.messagePath(), []byte(value), 0o644); err != nil {
		return fmt.Errorf("failed to write commit message: %w", err)
	}
	return nil
}

func (f *fileField) Name() string {
	return filepath.Base(f.repoDir)
}

func (f *fileField) Branch() string {
	return f.branch
}
