package rangekit

import "go.llib.dev/rangekit/pkg/errorkit"

const (
	// ErrBeginTwice is raised when Begin is requested again from a single-pass sequence.
	ErrBeginTwice errorkit.Error = "rangekit: begin requested twice on a single-pass sequence"
	// ErrNotReady is raised when a generator cursor is dereferenced without a computed element.
	ErrNotReady errorkit.Error = "rangekit: dereferenced a cursor that is not ready"
	// ErrExhausted is raised when an exhausted generator cursor is advanced.
	ErrExhausted errorkit.Error = "rangekit: advanced an exhausted sequence"
	// ErrUnrelatedCursor is raised when cursors of unrelated sequences are compared.
	ErrUnrelatedCursor errorkit.Error = "rangekit: compared cursors of unrelated sequences"
)
