// Package errorkit holds the error values and helpers shared by the rangekit packages.
package errorkit

import "errors"

// Merge combines the close errors of several sequences.
// Nil values are skipped. When a single error remains it is returned as is,
// otherwise the errors are joined.
func Merge(errs ...error) error {
	var (
		n    int
		last error
	)
	for _, err := range errs {
		if err != nil {
			n++
			last = err
		}
	}
	switch n {
	case 0:
		return nil
	case 1:
		return last
	default:
		return errors.Join(errs...)
	}
}

// Finish merges the result of blk into the named return error.
// It is meant to be deferred:
//
//	defer errorkit.Finish(&rErr, func() error { return rangekit.Close(seq) })
func Finish(returnErr *error, blk func() error) {
	*returnErr = Merge(*returnErr, blk())
}
