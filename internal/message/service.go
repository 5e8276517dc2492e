package message

import (
	"context"
	"fmt"

	"github.com/vcstools/commitmsg/internal/scm"
)

// FieldResolver yields the commit-message field of the current working
// copy. scm.Locator is the production implementation; tests inject fakes.
type FieldResolver interface {
	Resolve(ctx context.Context) (scm.Field, error)
}

// Service exposes the two operations over the staged commit message. It
// keeps no state of its own; the field owned by the working copy is the
// only state, and each call resolves it afresh.
type Service struct {
	resolver FieldResolver
}

// NewService builds a service over the given resolver.
func NewService(resolver FieldResolver) *Service {
	return &Service{resolver: resolver}
}

// Read returns the current staged message verbatim. Empty is a valid
// result, not an error. Locator failures propagate unwrapped.
func (s *Service) Read(ctx context.Context) (string, error) {
	field, err := s.resolver.Resolve(ctx)
	if err != nil {
		return "", err
	}
	return field.Read()
}

// UpdateResult describes a completed merge.
type UpdateResult struct {
	Action   Action
	NewValue string
	Repo     string
	Branch   string
}

// Description renders the confirmation text returned to the caller,
// naming the branch executed and the resulting full message.
func (r *UpdateResult) Description() string {
	where := fmt.Sprintf("repository %q", r.Repo)
	if r.Branch != "" {
		where = fmt.Sprintf("repository %q (branch %s)", r.Repo, r.Branch)
	}

	var verb string
	switch r.Action {
	case ActionSet:
		verb = "Set the commit message for"
	case ActionPrepended:
		verb = "Prepended to the commit message for"
	case ActionReplaced:
		verb = "Replaced the commit message for"
	default:
		verb = "Appended to the commit message for"
	}

	return fmt.Sprintf("%s %s. The staged message is now:\n\n%s", verb, where, r.NewValue)
}

// Update merges incoming text into the staged message under the given
// mode and writes the result back. The read and write are not guarded
// against an external editor mutating the field in between; the field is
// host-owned and no cross-process lock exists, so such an edit is
// silently overwritten.
func (s *Service) Update(ctx context.Context, incoming string, mode Mode) (*UpdateResult, error) {
	field, err := s.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	current, err := field.Read()
	if err != nil {
		return nil, err
	}

	merged, action := Merge(current, incoming, mode)

	// Cancellation aborts before the write; the write itself is a single
	// assignment, so no partial state is possible.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := field.Write(merged); err != nil {
		return nil, err
	}

	return &UpdateResult{
		Action:   action,
		NewValue: merged,
		Repo:     field.Name(),
		Branch:   field.Branch(),
	}, nil
}
