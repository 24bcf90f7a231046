package errorkit_test

import (
	"errors"
	"testing"

	"go.llib.dev/rangekit/pkg/errorkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/let"
)

type (
	ErrType1 struct{}
	ErrType2 struct{ V int }
)

func (err ErrType1) Error() string { return "ErrType1" }
func (err ErrType2) Error() string { return "ErrType2" }

func TestMerge(t *testing.T) {
	s := testcase.NewSpec(t)

	errs := testcase.Let[[]error](s, nil)
	act := func(t *testcase.T) error {
		return errorkit.Merge(errs.Get(t)...)
	}

	s.When("no error is supplied", func(s *testcase.Spec) {
		errs.Let(s, func(t *testcase.T) []error { return []error{} })

		s.Then("nil is returned", func(t *testcase.T) {
			t.Must.Nil(act(t))
		})
	})

	s.When("only nil values are supplied", func(s *testcase.Spec) {
		errs.Let(s, func(t *testcase.T) []error { return []error{nil, nil} })

		s.Then("nil is returned", func(t *testcase.T) {
			t.Must.Nil(act(t))
		})
	})

	s.When("a single error value is supplied among nils", func(s *testcase.Spec) {
		expectedErr := let.Error(s)

		errs.Let(s, func(t *testcase.T) []error {
			return []error{nil, expectedErr.Get(t), nil}
		})

		s.Then("the exact value is returned", func(t *testcase.T) {
			t.Must.Equal(expectedErr.Get(t), act(t))
		})
	})

	s.When("multiple error values are supplied", func(s *testcase.Spec) {
		expectedErr := let.Error(s)
		typedErr := testcase.Let[error](s, func(t *testcase.T) error {
			return ErrType2{V: t.Random.Int()}
		})

		errs.Let(s, func(t *testcase.T) []error {
			return []error{expectedErr.Get(t), ErrType1{}, typedErr.Get(t)}
		})

		s.Then("every value can be found with errors.Is", func(t *testcase.T) {
			err := act(t)
			t.Must.ErrorIs(expectedErr.Get(t), err)
			t.Must.True(errors.Is(err, ErrType1{}))
			t.Must.True(errors.Is(err, typedErr.Get(t)))
		})

		s.Then("typed values can be found with errors.As", func(t *testcase.T) {
			var got ErrType2
			t.Must.True(errors.As(act(t), &got))
			t.Must.Equal(typedErr.Get(t), error(got))
		})

		s.Then("the message has every error message", func(t *testcase.T) {
			msg := act(t).Error()
			t.Must.Contain(msg, expectedErr.Get(t).Error())
			t.Must.Contain(msg, "ErrType1")
			t.Must.Contain(msg, "ErrType2")
			t.Must.Contain(msg, "ErrType1\nErrType2")
		})
	})
}

func TestFinish(t *testing.T) {
	s := testcase.NewSpec(t)

	returnErr := testcase.Let[error](s, nil)
	closeErr := testcase.Let[error](s, nil)
	act := func(t *testcase.T) (rErr error) {
		defer errorkit.Finish(&rErr, func() error { return closeErr.Get(t) })
		return returnErr.Get(t)
	}

	s.Then("without errors nil is returned", func(t *testcase.T) {
		t.Must.NoError(act(t))
	})

	s.When("the deferred function fails", func(s *testcase.Spec) {
		closeErr.Let(s, let.Error(s).Get)

		s.Then("its error is returned", func(t *testcase.T) {
			t.Must.ErrorIs(closeErr.Get(t), act(t))
		})

		s.And("the function also returned an error", func(s *testcase.Spec) {
			returnErr.Let(s, let.Error(s).Get)

			s.Then("both errors are returned", func(t *testcase.T) {
				err := act(t)
				t.Must.ErrorIs(returnErr.Get(t), err)
				t.Must.ErrorIs(closeErr.Get(t), err)
			})
		})
	})
}
