package tasks

import (
	"context"
	"fmt"

	oerrors "github.com/fastkit/cli/internal/errors"
)

// ErrNotFound is returned when a task id does not exist.
var ErrNotFound = fmt.Errorf("task %w", oerrors.ErrNotFound)

// Repository stores tasks. Implementations are safe for concurrent use.
type Repository interface {
	// Insert stores t and assigns its ID.
	Insert(ctx context.Context, t *Task) error

	// List returns up to limit tasks ordered by ID, skipping offset.
	List(ctx context.Context, offset, limit int) ([]Task, error)

	// Get returns ErrNotFound when the id does not exist.
	Get(ctx context.Context, id int64) (*Task, error)

	// Update overwrites the stored task with the same ID.
	Update(ctx context.Context, t *Task) error

	// Delete returns ErrNotFound when the id does not exist.
	Delete(ctx context.Context, id int64) error
}
