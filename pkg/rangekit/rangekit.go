// Package rangekit provides lazily evaluated, single-pass sequence stages.
//
// # Summary
//
// A Sequence hands out a pair of cursors: Begin and the past-the-end sentinel End.
// Stages such as Transform, Filter and Concat wrap one or two upstream sequences
// and are sequences themselves, so they compose to any depth.
// Nothing is computed while a pipeline is being built;
// elements are pulled from the upstream only when the consumer advances the final cursor.
//
//	for c, end := seq.Begin(), seq.End(); !c.AtEnd(end); c.Advance() {
//		v := c.Current()
//		_ = v
//	}
//
// Elements are moved, not shared: reading Current on a position of an owned sequence
// takes the element out of its storage, and a drained owned sequence cannot be iterated again.
// To observe storage without draining it, wrap it with RefWrap,
// and use Clone or Copy on top of that to detach owned duplicates.
//
// Reaching the end is not an error.
// Breaking the cursor contract (beginning an owned sequence twice,
// reading a generator cursor that is not ready, comparing cursors of unrelated sequences)
// panics with one of the Err values of this package.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://en.wikipedia.org/wiki/Pipeline_(software)
package rangekit

import (
	"io"
)

// Sequence is a source of elements that can be walked with a cursor pair.
// A Sequence may be single-pass (Owned) or repeatable (Borrowed).
type Sequence[T any] interface {
	// Begin returns a cursor on the first element.
	// For single-pass sequences Begin may only be called once.
	Begin() Cursor[T]
	// End returns the past-the-end sentinel of the sequence.
	// End can be requested any number of times.
	End() Cursor[T]
}

// Cursor is a position within a Sequence.
type Cursor[T any] interface {
	// Advance moves the cursor to the next position.
	Advance()
	// Current produces the element at the current position.
	// On owned positions the element is moved out,
	// so it should be read only once per position.
	Current() T
	// AtEnd tells whether the cursor reached the given end sentinel.
	// The argument must be the End cursor of the same Sequence,
	// cursors of unrelated sequences cause a panic with ErrUnrelatedCursor.
	AtEnd(end Cursor[T]) bool
}

// Ownership tells whether a Sequence drains the storage it reads from, or only observes it.
type Ownership int

const (
	// Owned sequences take their elements out of the storage they own.
	// They are single-pass.
	Owned Ownership = iota
	// Borrowed sequences reference storage that is owned elsewhere and leave it intact.
	// They can be iterated repeatedly.
	Borrowed
)

func (o Ownership) String() string {
	switch o {
	case Owned:
		return "owned"
	case Borrowed:
		return "borrowed"
	default:
		return "unknown"
	}
}

type owner interface {
	Ownership() Ownership
}

// OwnershipOf reports the Ownership of a Sequence.
// Sequences that don't tell are treated as Owned.
func OwnershipOf[T any](s Sequence[T]) Ownership {
	if o, ok := s.(owner); ok {
		return o.Ownership()
	}
	return Owned
}

// Close releases the resources held by the sequence, if it holds any.
// Stages forward the call to their upstream sequences.
func Close[T any](s Sequence[T]) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func endCursor[C Cursor[T], T any](end Cursor[T]) C {
	c, ok := end.(C)
	if !ok {
		panic(ErrUnrelatedCursor.F("expected %T end cursor, got %T", *new(C), end))
	}
	return c
}
