package rangekit

import "io"

// SQLRows turns sql result rows into a single-pass Sequence.
// Each row is mapped into a T with the mapper.
// The rows are closed when the sequence is closed,
// and the first scanning or iteration error is reported by Err once the sequence is drained.
//
//	rows, err := db.QueryContext(ctx, `SELECT id, name FROM users`)
//	if err != nil {
//		return err
//	}
//	users := rangekit.SQLRows[User](rows, rangekit.SQLRowMapperFunc[User](func(s rangekit.SQLRowScanner) (User, error) {
//		var u User
//		return u, s.Scan(&u.ID, &u.Name)
//	}))
//	defer users.Close()
//	vs := users.ToSlice()
//	return users.Err()
func SQLRows[T any](rows Rows, mapper SQLRowMapper[T]) *SQLRowsSequence[T] {
	gen := &sqlRowsGenerator[T]{rows: rows, mapper: mapper}
	return &SQLRowsSequence[T]{Adapter: Generate[T](gen), gen: gen}
}

type SQLRowsSequence[T any] struct {
	*Adapter[T]
	gen *sqlRowsGenerator[T]
}

// Err returns the error that stopped the iteration, if any.
func (s *SQLRowsSequence[T]) Err() error {
	if s.gen.err != nil {
		return s.gen.err
	}
	return s.gen.rows.Err()
}

type sqlRowsGenerator[T any] struct {
	rows   Rows
	mapper SQLRowMapper[T]
	err    error
}

func (g *sqlRowsGenerator[T]) ComputeNext() (T, bool) {
	var zero T
	if g.err != nil || !g.rows.Next() {
		return zero, false
	}
	v, err := g.mapper.Map(g.rows)
	if err != nil {
		g.err = err
		return zero, false
	}
	return v, true
}

func (g *sqlRowsGenerator[T]) Close() error {
	return g.rows.Close()
}

type SQLRowScanner interface {
	Scan(...any) error
}

type SQLRowMapper[T any] interface {
	Map(s SQLRowScanner) (T, error)
}

type SQLRowMapperFunc[T any] func(SQLRowScanner) (T, error)

func (fn SQLRowMapperFunc[T]) Map(s SQLRowScanner) (T, error) { return fn(s) }

// Rows is the subset of *sql.Rows that SQLRows depends on.
type Rows interface {
	io.Closer
	Next() bool
	Err() error
	Scan(dest ...any) error
}
