package rangekit

import "go.llib.dev/rangekit/pkg/errorkit"

// Concat exposes every element of the first sequence, followed by every element of the second.
// Either of them can be empty.
//
// Begin begins the second sequence as well, before anything is read from the first.
// When the second one prefetches, like a Filter does, its first element is already pulled
// and its leading rejects are already sent to the sink at that point.
func Concat[T any](first, second Sequence[T]) *ConcatStage[T] {
	return &ConcatStage[T]{first: first, second: second}
}

type ConcatStage[T any] struct {
	first  Sequence[T]
	second Sequence[T]
}

func (s *ConcatStage[T]) Begin() Cursor[T] {
	return &concatCursor[T]{
		first:    s.first.Begin(),
		firstEnd: s.first.End(),
		second:   s.second.Begin(),
	}
}

func (s *ConcatStage[T]) End() Cursor[T] {
	return &concatCursor[T]{
		first:    s.first.End(),
		firstEnd: s.first.End(),
		second:   s.second.End(),
	}
}

// Ownership is Borrowed only when both upstream sequences are borrowed.
func (s *ConcatStage[T]) Ownership() Ownership {
	if OwnershipOf(s.first) == Borrowed && OwnershipOf(s.second) == Borrowed {
		return Borrowed
	}
	return Owned
}

func (s *ConcatStage[T]) Close() error {
	return errorkit.Merge(Close(s.first), Close(s.second))
}

// ToSlice drains the stage into a slice.
func (s *ConcatStage[T]) ToSlice() []T { return Collect[T](s) }

type concatCursor[T any] struct {
	first    Cursor[T]
	firstEnd Cursor[T]
	second   Cursor[T]
}

func (c *concatCursor[T]) Advance() {
	if !c.first.AtEnd(c.firstEnd) {
		c.first.Advance()
		return
	}
	c.second.Advance()
}

func (c *concatCursor[T]) Current() T {
	if !c.first.AtEnd(c.firstEnd) {
		return c.first.Current()
	}
	return c.second.Current()
}

// AtEnd holds only when both the first and the second cursor reached their ends.
func (c *concatCursor[T]) AtEnd(end Cursor[T]) bool {
	e := endCursor[*concatCursor[T]](end)
	return c.first.AtEnd(e.first) && c.second.AtEnd(e.second)
}
