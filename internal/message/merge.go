// Package message holds the commit-message merge policy and the stateless
// service the tool handlers call into.
package message

import "strings"

// Mode selects how incoming text combines with existing field content.
type Mode string

const (
	ModeAppend  Mode = "append"
	ModePrepend Mode = "prepend"
	ModeReplace Mode = "replace"
)

// ParseMode maps a raw mode string to a Mode. Unrecognized or empty
// values fall through to append, the documented default.
func ParseMode(raw string) Mode {
	switch Mode(raw) {
	case ModePrepend:
		return ModePrepend
	case ModeReplace:
		return ModeReplace
	default:
		return ModeAppend
	}
}

// Action reports which merge branch executed.
type Action string

const (
	// ActionSet means the field was blank or whitespace-only, so the
	// incoming text became the value regardless of mode.
	ActionSet       Action = "set"
	ActionAppended  Action = "appended"
	ActionPrepended Action = "prepended"
	ActionReplaced  Action = "replaced"
)

// Merge computes the new field value. Only the existing value is trimmed;
// incoming text is inserted verbatim, surrounding whitespace and all.
func Merge(current, incoming string, mode Mode) (string, Action) {
	trimmed := strings.TrimSpace(current)
	if trimmed == "" {
		return incoming, ActionSet
	}

	switch mode {
	case ModeReplace:
		return incoming, ActionReplaced
	case ModePrepend:
		return incoming + "\n\n" + trimmed, ActionPrepended
	default:
		return trimmed + "\n\n" + incoming, ActionAppended
	}
}
