package ports

import (
	"context"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/task"
)

// TaskRepository defines the persistence contract for delivery task
// aggregates.
//
// Update must be a compare-and-swap on the task's prior status so two
// drivers racing for the same available task cannot both win: the losing
// write matches zero rows and surfaces ConflictError.
type TaskRepository interface {
	// Add persists a new task aggregate to storage.
	Add(ctx context.Context, task *task.Task) error

	// Update persists changes to an existing task aggregate.
	// Returns ConflictError when another writer advanced the task first.
	Update(ctx context.Context, task *task.Task) error

	// Get retrieves a task aggregate by its unique identifier.
	// Returns ObjectNotFoundError when no task has the id.
	Get(ctx context.Context, id kernel.UUID) (*task.Task, error)
}
