package rangekitcontract

import (
	"testing"

	"go.llib.dev/rangekit/pkg/rangekit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

// Sequence is the contract every rangekit.Sequence implementation is expected to fulfil.
// The function must return a fresh, non shared sequence on every call.
type Sequence[T any] func(tb testing.TB) rangekit.Sequence[T]

func (c Sequence[T]) Spec(s *testcase.Spec) {
	s.Describe("it behaves like a sequence", func(s *testcase.Spec) {
		subject := testcase.Let(s, func(t *testcase.T) rangekit.Sequence[T] {
			return c(t)
		})

		s.Then("draining it reaches the end sentinel", func(t *testcase.T) {
			seq := subject.Get(t)
			cur, end := seq.Begin(), seq.End()
			for !cur.AtEnd(end) {
				_ = cur.Current()
				cur.Advance()
			}
			t.Must.True(cur.AtEnd(seq.End()), "a drained cursor should stay at the end")
		})

		s.Then("the end cursor is at the end", func(t *testcase.T) {
			seq := subject.Get(t)
			t.Must.True(seq.End().AtEnd(seq.End()))
		})

		s.Then("draining it as iter.Seq yields as many elements as the cursors do", func(t *testcase.T) {
			var n int
			for range rangekit.All(subject.Get(t)) {
				n++
			}
			t.Must.Equal(rangekit.Count(c(t)), n)
		})

		s.Then("comparing its cursor with the end of another sequence panics", func(t *testcase.T) {
			seq, oth := subject.Get(t), c(t)
			cur, end := seq.Begin(), oth.End()
			got := assert.Panic(t, func() { cur.AtEnd(end) })
			err, ok := got.(error)
			t.Must.True(ok, "error value was expected as the panic value")
			t.Must.ErrorIs(rangekit.ErrUnrelatedCursor, err)
		})

		s.Then("closing it is possible, even multiple times, without an issue", func(t *testcase.T) {
			seq := subject.Get(t)
			for i, n := 0, t.Random.IntB(3, 7); i < n; i++ {
				t.Must.NoError(rangekit.Close(seq))
			}
		})

		s.When("it is owned", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				if rangekit.OwnershipOf(subject.Get(t)) != rangekit.Owned {
					t.Skip("sequence is borrowed")
				}
			})

			s.Then("begin can't be requested a second time", func(t *testcase.T) {
				seq := subject.Get(t)
				_ = rangekit.Collect(seq)
				got := assert.Panic(t, func() { seq.Begin() })
				err, ok := got.(error)
				t.Must.True(ok, "error value was expected as the panic value")
				t.Must.ErrorIs(rangekit.ErrBeginTwice, err)
			})
		})

		s.When("it is borrowed", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				if rangekit.OwnershipOf(subject.Get(t)) != rangekit.Borrowed {
					t.Skip("sequence is owned")
				}
			})

			s.Then("it can be iterated repeatedly with the same element count", func(t *testcase.T) {
				seq := subject.Get(t)
				first := rangekit.Count(seq)
				second := rangekit.Count(seq)
				t.Must.Equal(first, second)
			})
		})
	})
}

func (c Sequence[T]) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}

func (c Sequence[T]) Benchmark(b *testing.B) {
	c.Spec(testcase.NewSpec(b))
}
