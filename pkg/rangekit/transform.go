package rangekit

// Transform allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
//
// Each element is moved out of the upstream and passed to fn,
// the result of fn is what the stage exposes.
// fn is called once per position, when the position is read.
func Transform[T, U any](src Sequence[T], fn func(T) U) *TransformStage[T, U] {
	return &TransformStage[T, U]{src: src, fn: fn}
}

type TransformStage[T, U any] struct {
	src Sequence[T]
	fn  func(T) U
}

func (s *TransformStage[T, U]) Begin() Cursor[U] {
	return &transformCursor[T, U]{stage: s, src: s.src.Begin()}
}

func (s *TransformStage[T, U]) End() Cursor[U] {
	return &transformCursor[T, U]{stage: s, src: s.src.End()}
}

func (s *TransformStage[T, U]) Ownership() Ownership { return OwnershipOf(s.src) }

func (s *TransformStage[T, U]) Close() error { return Close(s.src) }

// ToSlice drains the stage into a slice.
func (s *TransformStage[T, U]) ToSlice() []U { return Collect[U](s) }

type transformCursor[T, U any] struct {
	stage *TransformStage[T, U]
	src   Cursor[T]
}

func (c *transformCursor[T, U]) Advance() {
	c.src.Advance()
}

func (c *transformCursor[T, U]) Current() U {
	return c.stage.fn(c.src.Current())
}

func (c *transformCursor[T, U]) AtEnd(end Cursor[U]) bool {
	return c.src.AtEnd(endCursor[*transformCursor[T, U]](end).src)
}
