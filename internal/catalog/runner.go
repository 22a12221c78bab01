package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/storekeep/inventory-service/internal/store"
)

// ErrQueryFailed marks engine-level execution failures. An empty result set
// is not a failure; Query returns an empty slice and a nil error for it.
var ErrQueryFailed = errors.New("query execution failed")

// QueryError wraps an execution failure with the name of the specification
// that produced it.
type QueryError struct {
	Spec string
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s: %v", e.Spec, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

func (e *QueryError) Is(target error) bool { return target == ErrQueryFailed }

// Runner executes specifications against the store.
type Runner struct {
	store *store.Store
}

func NewRunner(s *store.Store) *Runner {
	return &Runner{store: s}
}

// Query executes spec with the given positional arguments and scans every
// result row into T. Argument count must match the specification's declared
// parameters; the mismatch is caught before touching the database.
func Query[T any](ctx context.Context, r *Runner, spec Spec, args ...any) ([]T, error) {
	if len(args) != len(spec.Params()) {
		return nil, &QueryError{
			Spec: spec.Name(),
			Err:  fmt.Errorf("want %d args (%v), got %d", len(spec.Params()), spec.Params(), len(args)),
		}
	}

	rows := []T{}
	if err := r.store.SelectContext(ctx, &rows, spec.SQL(), args...); err != nil {
		return nil, &QueryError{Spec: spec.Name(), Err: err}
	}
	return rows, nil
}
