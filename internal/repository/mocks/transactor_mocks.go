package mocks

import (
	"context"

	"github.com/just-nibble/snapvcs/internal/repository"
)

// Transactor runs the unit of work directly against Stores. Err, when set,
// is returned instead of calling fn, as if BEGIN had failed.
type Transactor struct {
	Stores repository.Stores
	Err    error
	Calls  int
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, stores repository.Stores) error) error {
	t.Calls++
	if t.Err != nil {
		return t.Err
	}
	return fn(ctx, t.Stores)
}
