package errorkit

import (
	"fmt"
)

// Error is a string based error, so sentinel errors can be declared as constants.
//
//	const ErrSomething errorkit.Error = "something went wrong"
type Error string

func (err Error) Error() string { return string(err) }

// Wrap attaches a cause to the sentinel.
// Both of them stay reachable through errors.Is and errors.As.
// A nil cause gives back the sentinel itself.
func (err Error) Wrap(cause error) error {
	if cause == nil {
		return err
	}
	return &wrapped{sentinel: err, cause: cause}
}

// F wraps a formatted cause, %w verbs included.
func (err Error) F(format string, a ...any) error { return err.Wrap(fmt.Errorf(format, a...)) }

type wrapped struct {
	sentinel Error
	cause    error
}

func (w *wrapped) Error() string {
	return string(w.sentinel) + ": " + w.cause.Error()
}

func (w *wrapped) Unwrap() []error {
	return []error{w.sentinel, w.cause}
}
