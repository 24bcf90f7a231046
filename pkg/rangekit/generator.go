package rangekit

import (
	"io"
	"iter"
)

// Generator is a hand written source of elements.
type Generator[T any] interface {
	// ComputeNext produces the next element.
	// It returns false when the generator is exhausted,
	// after that ComputeNext is not called again.
	ComputeNext() (T, bool)
}

// GeneratorFunc is a Generator made out of a function.
type GeneratorFunc[T any] func() (T, bool)

func (fn GeneratorFunc[T]) ComputeNext() (T, bool) { return fn() }

// Generate turns a Generator into a single-pass Sequence.
//
// The Adapter keeps track of the generator's state:
// Begin can only be requested once, every computed element can be read exactly once,
// and an exhausted adapter can't be advanced.
// Breaking these rules panics with ErrBeginTwice, ErrNotReady or ErrExhausted.
func Generate[T any](gen Generator[T]) *Adapter[T] {
	return &Adapter[T]{gen: gen}
}

// FromSeq turns an iter.Seq into a single-pass Sequence.
// Close the Adapter when it is abandoned before being drained.
func FromSeq[T any](seq iter.Seq[T]) *Adapter[T] {
	return Generate[T](&pullGenerator[T]{seq: seq})
}

type adapterState int

const (
	adapterCreated adapterState = iota
	adapterReady
	adapterConsumed
	adapterExhausted
)

func (s adapterState) String() string {
	switch s {
	case adapterCreated:
		return "created"
	case adapterReady:
		return "ready"
	case adapterConsumed:
		return "consumed"
	case adapterExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

type Adapter[T any] struct {
	gen     Generator[T]
	state   adapterState
	current slot[T]
}

func (a *Adapter[T]) Begin() Cursor[T] {
	if a.state != adapterCreated {
		panic(ErrBeginTwice.F("adapter is %s", a.state))
	}
	return &adapterCursor[T]{adapter: a, pastTheEnd: !a.computeNext()}
}

func (a *Adapter[T]) End() Cursor[T] {
	return &adapterCursor[T]{adapter: a, pastTheEnd: true}
}

func (a *Adapter[T]) Ownership() Ownership { return Owned }

// Close closes the generator if it is an io.Closer.
func (a *Adapter[T]) Close() error {
	if c, ok := a.gen.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ToSlice drains the adapter into a slice.
func (a *Adapter[T]) ToSlice() []T { return Collect[T](a) }

func (a *Adapter[T]) computeNext() bool {
	if a.state == adapterExhausted {
		panic(ErrExhausted)
	}
	v, ok := a.gen.ComputeNext()
	if !ok {
		a.state = adapterExhausted
		a.current.clear()
		return false
	}
	a.current.set(v)
	a.state = adapterReady
	return true
}

func (a *Adapter[T]) take() T {
	if a.state != adapterReady {
		panic(ErrNotReady.F("adapter is %s", a.state))
	}
	a.state = adapterConsumed
	return a.current.take()
}

type adapterCursor[T any] struct {
	adapter    *Adapter[T]
	pastTheEnd bool
}

func (c *adapterCursor[T]) Advance() {
	c.pastTheEnd = !c.adapter.computeNext()
}

func (c *adapterCursor[T]) Current() T {
	return c.adapter.take()
}

func (c *adapterCursor[T]) AtEnd(end Cursor[T]) bool {
	e := endCursor[*adapterCursor[T]](end)
	if e.adapter != c.adapter {
		panic(ErrUnrelatedCursor)
	}
	return c.pastTheEnd == e.pastTheEnd
}

type pullGenerator[T any] struct {
	seq  iter.Seq[T]
	next func() (T, bool)
	stop func()
}

func (g *pullGenerator[T]) ComputeNext() (T, bool) {
	if g.next == nil {
		g.next, g.stop = iter.Pull(g.seq)
	}
	v, ok := g.next()
	if !ok {
		g.stop()
	}
	return v, ok
}

func (g *pullGenerator[T]) Close() error {
	if g.stop != nil {
		g.stop()
	}
	return nil
}
