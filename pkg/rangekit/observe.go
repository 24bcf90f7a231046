package rangekit

import (
	"github.com/rs/zerolog"
	uuid "github.com/satori/go.uuid"

	"go.llib.dev/rangekit/pkg/option"
)

// Tap calls fn with every element as it is read from the stage, then passes the element on.
func Tap[T any](src Sequence[T], fn func(T)) *TapStage[T] {
	return &TapStage[T]{src: src, fn: fn}
}

type TapStage[T any] struct {
	src Sequence[T]
	fn  func(T)
}

func (s *TapStage[T]) Begin() Cursor[T] {
	return &tapCursor[T]{stage: s, src: s.src.Begin()}
}

func (s *TapStage[T]) End() Cursor[T] {
	return &tapCursor[T]{stage: s, src: s.src.End()}
}

func (s *TapStage[T]) Ownership() Ownership { return OwnershipOf(s.src) }

func (s *TapStage[T]) Close() error { return Close(s.src) }

// ToSlice drains the stage into a slice.
func (s *TapStage[T]) ToSlice() []T { return Collect[T](s) }

type tapCursor[T any] struct {
	stage *TapStage[T]
	src   Cursor[T]
}

func (c *tapCursor[T]) Advance() { c.src.Advance() }

func (c *tapCursor[T]) Current() T {
	v := c.src.Current()
	c.stage.fn(v)
	return v
}

func (c *tapCursor[T]) AtEnd(end Cursor[T]) bool {
	return c.src.AtEnd(endCursor[*tapCursor[T]](end).src)
}

// Trace logs the cursor events of the upstream sequence with the given logger.
// It is meant for debugging pipelines, elements themselves are not logged.
// Every Begin cursor gets a random id, logged as the cursor field,
// so the events of repeated iterations over a borrowed sequence can be told apart.
func Trace[T any](src Sequence[T], logger zerolog.Logger, opts ...TraceOption) *TraceStage[T] {
	return &TraceStage[T]{
		src:    src,
		logger: logger,
		config: option.Use[TraceConfig](opts),
	}
}

type TraceConfig struct {
	// Name is logged as the stage field.
	Name string
	// Level of the emitted events.
	Level zerolog.Level
}

func (c *TraceConfig) Init() {
	c.Name = "sequence"
	c.Level = zerolog.DebugLevel
}

type TraceOption interface {
	Configure(*TraceConfig)
}

// WithName sets the name under which the traced stage is logged.
func WithName(name string) TraceOption {
	return option.Func[TraceConfig](func(c *TraceConfig) {
		c.Name = name
	})
}

// WithLevel sets the log level of the trace events.
func WithLevel(lvl zerolog.Level) TraceOption {
	return option.Func[TraceConfig](func(c *TraceConfig) {
		c.Level = lvl
	})
}

type TraceStage[T any] struct {
	src    Sequence[T]
	logger zerolog.Logger
	config TraceConfig
}

func (s *TraceStage[T]) Begin() Cursor[T] {
	c := &traceCursor[T]{stage: s, src: s.src.Begin(), id: uuid.NewV4().String()}
	c.log().Msg("begin")
	return c
}

func (s *TraceStage[T]) End() Cursor[T] {
	return &traceCursor[T]{stage: s, src: s.src.End(), end: true}
}

func (s *TraceStage[T]) Ownership() Ownership { return OwnershipOf(s.src) }

func (s *TraceStage[T]) Close() error {
	err := Close(s.src)
	s.logger.WithLevel(s.config.Level).
		Str("stage", s.config.Name).
		Err(err).
		Msg("close")
	return err
}

// ToSlice drains the stage into a slice.
func (s *TraceStage[T]) ToSlice() []T { return Collect[T](s) }

type traceCursor[T any] struct {
	stage    *TraceStage[T]
	src      Cursor[T]
	id       string
	position int
	end      bool
	reached  bool
}

func (c *traceCursor[T]) log() *zerolog.Event {
	return c.stage.logger.WithLevel(c.stage.config.Level).
		Str("stage", c.stage.config.Name).
		Str("cursor", c.id).
		Str("ownership", OwnershipOf(c.stage.src).String()).
		Int("position", c.position)
}

func (c *traceCursor[T]) Advance() {
	c.src.Advance()
	c.position++
	c.log().Msg("advance")
}

func (c *traceCursor[T]) Current() T {
	v := c.src.Current()
	c.log().Msg("current")
	return v
}

func (c *traceCursor[T]) AtEnd(end Cursor[T]) bool {
	at := c.src.AtEnd(endCursor[*traceCursor[T]](end).src)
	if at && !c.end && !c.reached {
		c.reached = true
		c.log().Msg("end reached")
	}
	return at
}
