package rangekit

import (
	"slices"

	"go.llib.dev/rangekit/pkg/datastruct"
)

// Move takes the elements of the slice and returns them as an Owned sequence.
// The caller's slice is set to nil, the elements now belong to the sequence.
func Move[T any](s *[]T) Sequence[T] {
	var items []T
	if s != nil {
		items, *s = *s, nil
	}
	return &movedSlice[T]{items: items}
}

// Values returns an Owned sequence over a private copy of the given values.
func Values[T any](vs ...T) Sequence[T] {
	return &movedSlice[T]{items: slices.Clone(vs)}
}

type movedSlice[T any] struct {
	items []T
	begun bool
}

func (s *movedSlice[T]) Begin() Cursor[T] {
	if s.begun {
		panic(ErrBeginTwice)
	}
	s.begun = true
	return &movedSliceCursor[T]{src: s}
}

func (s *movedSlice[T]) End() Cursor[T] {
	return &movedSliceCursor[T]{src: s, index: len(s.items)}
}

func (s *movedSlice[T]) Ownership() Ownership { return Owned }

type movedSliceCursor[T any] struct {
	src   *movedSlice[T]
	index int
}

func (c *movedSliceCursor[T]) Advance() {
	c.index++
}

func (c *movedSliceCursor[T]) Current() T {
	var zero T
	v := c.src.items[c.index]
	c.src.items[c.index] = zero
	return v
}

func (c *movedSliceCursor[T]) AtEnd(end Cursor[T]) bool {
	e := endCursor[*movedSliceCursor[T]](end)
	if e.src != c.src {
		panic(ErrUnrelatedCursor)
	}
	return e.index <= c.index
}

// RefWrap returns a Borrowed sequence of references to the elements of the slice.
// The slice is left intact, and the sequence can be iterated any number of times.
func RefWrap[T any](s []T) Sequence[*T] {
	return &refSlice[T]{items: s}
}

type refSlice[T any] struct {
	items []T
}

func (s *refSlice[T]) Begin() Cursor[*T] {
	return &refSliceCursor[T]{src: s}
}

func (s *refSlice[T]) End() Cursor[*T] {
	return &refSliceCursor[T]{src: s, index: len(s.items)}
}

func (s *refSlice[T]) Ownership() Ownership { return Borrowed }

type refSliceCursor[T any] struct {
	src   *refSlice[T]
	index int
}

func (c *refSliceCursor[T]) Advance() {
	c.index++
}

func (c *refSliceCursor[T]) Current() *T {
	return &c.src.items[c.index]
}

func (c *refSliceCursor[T]) AtEnd(end Cursor[*T]) bool {
	e := endCursor[*refSliceCursor[T]](end)
	if e.src != c.src {
		panic(ErrUnrelatedCursor)
	}
	return e.index <= c.index
}

// MoveList takes the elements of the list and returns them as an Owned sequence.
// The caller's list is left empty, and the taken nodes are unlinked one by one
// as the cursor passes them.
func MoveList[T any](l *datastruct.LinkedList[T]) Sequence[T] {
	taken := l.Take()
	return &movedList[T]{list: taken, length: taken.Length()}
}

type movedList[T any] struct {
	list   *datastruct.LinkedList[T]
	length int
	begun  bool
}

func (s *movedList[T]) Begin() Cursor[T] {
	if s.begun {
		panic(ErrBeginTwice)
	}
	s.begun = true
	return &movedListCursor[T]{src: s}
}

func (s *movedList[T]) End() Cursor[T] {
	return &movedListCursor[T]{src: s, pos: s.length}
}

func (s *movedList[T]) Ownership() Ownership { return Owned }

type movedListCursor[T any] struct {
	src   *movedList[T]
	pos   int
	taken bool
}

func (c *movedListCursor[T]) Advance() {
	if !c.taken {
		c.src.list.Shift()
	}
	c.taken = false
	c.pos++
}

func (c *movedListCursor[T]) Current() T {
	if c.taken {
		var zero T
		return zero
	}
	v, _ := c.src.list.Shift()
	c.taken = true
	return v
}

func (c *movedListCursor[T]) AtEnd(end Cursor[T]) bool {
	e := endCursor[*movedListCursor[T]](end)
	if e.src != c.src {
		panic(ErrUnrelatedCursor)
	}
	return e.pos <= c.pos
}

// RefWrapList returns a Borrowed sequence of references to the elements of the list.
// The list is left intact, and the sequence can be iterated any number of times.
func RefWrapList[T any](l *datastruct.LinkedList[T]) Sequence[*T] {
	return &refList[T]{list: l}
}

type refList[T any] struct {
	list *datastruct.LinkedList[T]
}

func (s *refList[T]) Begin() Cursor[*T] {
	return &refListCursor[T]{src: s, elem: s.list.Front()}
}

func (s *refList[T]) End() Cursor[*T] {
	return &refListCursor[T]{src: s}
}

func (s *refList[T]) Ownership() Ownership { return Borrowed }

type refListCursor[T any] struct {
	src  *refList[T]
	elem *datastruct.Element[T]
}

func (c *refListCursor[T]) Advance() {
	c.elem = c.elem.Next()
}

func (c *refListCursor[T]) Current() *T {
	return &c.elem.Value
}

func (c *refListCursor[T]) AtEnd(end Cursor[*T]) bool {
	e := endCursor[*refListCursor[T]](end)
	if e.src != c.src {
		panic(ErrUnrelatedCursor)
	}
	return c.elem == e.elem
}
