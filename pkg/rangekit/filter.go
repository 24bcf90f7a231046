package rangekit

import "go.llib.dev/rangekit/pkg/option"

// Filter lazily selects the elements of the upstream that match the predicate.
//
// Elements are moved out of the upstream one by one.
// The ones that don't match are handed to the reject sink, which discards them by default.
// Every rejected element reaches the sink exactly once and in source order,
// before any later element is exposed.
//
// Filter pulls the first matching element already when its Begin cursor is created.
func Filter[T any](src Sequence[T], pred func(T) bool, opts ...FilterOption[T]) *FilterStage[T] {
	return &FilterStage[T]{
		src:    src,
		pred:   pred,
		config: option.Use[FilterConfig[T]](opts),
	}
}

type FilterConfig[T any] struct {
	// Reject receives the elements that didn't match the predicate.
	Reject RejectSink[T]
}

func (c *FilterConfig[T]) Init() {
	c.Reject = Discard[T]
}

type FilterOption[T any] interface {
	Configure(*FilterConfig[T])
}

// RejectSink receives an element by move.
// A RejectSink can be passed to Filter as an option.
type RejectSink[T any] func(T)

func (fn RejectSink[T]) Configure(c *FilterConfig[T]) {
	if fn == nil {
		fn = Discard[T]
	}
	c.Reject = fn
}

// Discard is the RejectSink that drops the element.
func Discard[T any](T) {}

// RejectTo sends the rejected elements to fn.
func RejectTo[T any](fn func(T)) RejectSink[T] {
	return fn
}

// RejectInto appends the rejected elements to dst.
func RejectInto[T any](dst *[]T) RejectSink[T] {
	return func(v T) {
		*dst = append(*dst, v)
	}
}

type FilterStage[T any] struct {
	src    Sequence[T]
	pred   func(T) bool
	config FilterConfig[T]
}

func (s *FilterStage[T]) Begin() Cursor[T] {
	return newFilterCursor(s, s.src.Begin(), s.src.End())
}

func (s *FilterStage[T]) End() Cursor[T] {
	return newFilterCursor(s, s.src.End(), s.src.End())
}

func (s *FilterStage[T]) Ownership() Ownership { return OwnershipOf(s.src) }

func (s *FilterStage[T]) Close() error { return Close(s.src) }

// ToSlice drains the stage into a slice.
func (s *FilterStage[T]) ToSlice() []T { return Collect[T](s) }

type filterCursor[T any] struct {
	stage   *FilterStage[T]
	src     Cursor[T]
	srcEnd  Cursor[T]
	current slot[T]
}

func newFilterCursor[T any](stage *FilterStage[T], src, srcEnd Cursor[T]) *filterCursor[T] {
	c := &filterCursor[T]{stage: stage, src: src, srcEnd: srcEnd}
	c.seek()
	return c
}

// seek pulls upstream elements until one matches the predicate or the upstream is exhausted.
// The upstream cursor is left on the matching position.
func (c *filterCursor[T]) seek() {
	for ; !c.src.AtEnd(c.srcEnd); c.src.Advance() {
		v := c.src.Current()
		if c.stage.pred(v) {
			c.current.set(v)
			return
		}
		c.stage.config.Reject(v)
	}
	c.current.clear()
}

func (c *filterCursor[T]) Advance() {
	c.src.Advance()
	c.seek()
}

func (c *filterCursor[T]) Current() T {
	return c.current.take()
}

func (c *filterCursor[T]) AtEnd(end Cursor[T]) bool {
	return c.src.AtEnd(endCursor[*filterCursor[T]](end).src)
}
