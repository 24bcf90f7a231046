package rangekit

import (
	"iter"

	"go.llib.dev/rangekit/pkg/errorkit"
)

// All drains the sequence as an iter.Seq, so it can be used in a for range loop.
// The returned iter.Seq follows the ownership of the sequence:
// for an Owned sequence it can be ranged over only once.
func All[T any](s Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c, end := s.Begin(), s.End(); !c.AtEnd(end); c.Advance() {
			if !yield(c.Current()) {
				return
			}
		}
	}
}

// Collect drains the sequence into a new slice.
func Collect[T any](s Sequence[T]) []T {
	return Append(make([]T, 0), s)
}

// Append drains the sequence to the end of dst, and returns the extended slice.
func Append[T any](dst []T, s Sequence[T]) []T {
	for v := range All(s) {
		dst = append(dst, v)
	}
	return dst
}

// Count drains the sequence and tells how many elements it had.
func Count[T any](s Sequence[T]) int {
	var n int
	for c, end := s.Begin(), s.End(); !c.AtEnd(end); c.Advance() {
		_ = c.Current()
		n++
	}
	return n
}

// Any tells whether an element satisfies the predicate.
// The scan stops on the first match, and the sequence is closed.
// The close error is dropped; use ForEach when it has to be reported.
func Any[T any](s Sequence[T], pred func(T) bool) bool {
	defer Close(s)
	for v := range All(s) {
		if pred(v) {
			return true
		}
	}
	return false
}

// Find returns the first element that satisfies the predicate,
// or notFound when there is no such element.
// The scan stops on the first match, and the sequence is closed.
// The close error is dropped; use ForEach when it has to be reported.
func Find[T any](s Sequence[T], pred func(T) bool, notFound T) T {
	defer Close(s)
	for v := range All(s) {
		if pred(v) {
			return v
		}
	}
	return notFound
}

// ForEach calls fn with every element of the sequence.
// It stops at the first error returned by fn.
// The sequence is closed at the end, and its close error is returned with fn's error.
func ForEach[T any](s Sequence[T], fn func(T) error) (rErr error) {
	defer errorkit.Finish(&rErr, func() error { return Close(s) })
	for v := range All(s) {
		if err := fn(v); err != nil {
			return err
		}
	}
	return nil
}
