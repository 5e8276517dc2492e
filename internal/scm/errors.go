package scm

import "errors"

var (
	// ErrIntegrationUnavailable indicates no workspace root is configured
	// or accessible, so git integration cannot be reached at all.
	ErrIntegrationUnavailable = errors.New("git integration unavailable: no accessible workspace root is configured; set COMMITMSG_ROOTS to a directory you have opened")
	// ErrNoRepositoryOpen indicates the workspace roots are accessible but
	// contain no git repository.
	ErrNoRepositoryOpen = errors.New("no repository open: none of the workspace roots contain a git working copy; open a folder containing a repository")
)
