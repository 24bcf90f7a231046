package rangekit

// Cloner is implemented by elements that know how to make an owned duplicate of themselves.
type Cloner[T any] interface {
	Clone() T
}

// Clone produces owned duplicates of the referenced elements with their Clone method.
// The source elements are left untouched.
//
//	vs := []Entity{...}
//	dups := rangekit.Collect(rangekit.Clone(rangekit.RefWrap(vs)))
func Clone[T Cloner[T]](src Sequence[*T]) *CloneStage[T] {
	return &CloneStage[T]{src: src}
}

type CloneStage[T Cloner[T]] struct {
	src Sequence[*T]
}

func (s *CloneStage[T]) Begin() Cursor[T] {
	return &cloneCursor[T]{src: s.src.Begin()}
}

func (s *CloneStage[T]) End() Cursor[T] {
	return &cloneCursor[T]{src: s.src.End()}
}

func (s *CloneStage[T]) Ownership() Ownership { return OwnershipOf(s.src) }

func (s *CloneStage[T]) Close() error { return Close(s.src) }

// ToSlice drains the stage into a slice.
func (s *CloneStage[T]) ToSlice() []T { return Collect[T](s) }

type cloneCursor[T Cloner[T]] struct {
	src Cursor[*T]
}

func (c *cloneCursor[T]) Advance() { c.src.Advance() }

func (c *cloneCursor[T]) Current() T {
	return (*c.src.Current()).Clone()
}

func (c *cloneCursor[T]) AtEnd(end Cursor[T]) bool {
	return c.src.AtEnd(endCursor[*cloneCursor[T]](end).src)
}

// Copy produces owned duplicates of the referenced elements by value copy.
// The source elements are left untouched.
func Copy[T any](src Sequence[*T]) *CopyStage[T] {
	return &CopyStage[T]{src: src}
}

type CopyStage[T any] struct {
	src Sequence[*T]
}

func (s *CopyStage[T]) Begin() Cursor[T] {
	return &copyCursor[T]{src: s.src.Begin()}
}

func (s *CopyStage[T]) End() Cursor[T] {
	return &copyCursor[T]{src: s.src.End()}
}

func (s *CopyStage[T]) Ownership() Ownership { return OwnershipOf(s.src) }

func (s *CopyStage[T]) Close() error { return Close(s.src) }

// ToSlice drains the stage into a slice.
func (s *CopyStage[T]) ToSlice() []T { return Collect[T](s) }

type copyCursor[T any] struct {
	src Cursor[*T]
}

func (c *copyCursor[T]) Advance() { c.src.Advance() }

func (c *copyCursor[T]) Current() T {
	return *c.src.Current()
}

func (c *copyCursor[T]) AtEnd(end Cursor[T]) bool {
	return c.src.AtEnd(endCursor[*copyCursor[T]](end).src)
}
