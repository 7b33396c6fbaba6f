package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/rfoley/taskward-api/internal/domain"
)

// DefaultListLimit is the page size used when a caller supplies no limit.
const DefaultListLimit = 100

// MaxListLimit caps the page size of ListForUser regardless of what the
// caller asks for.
const MaxListLimit = 100

// TaskStore defines the interface for task data persistence.
//
// Every read or write takes the owner's user ID and implementations must
// apply it as part of the query predicate itself, never as an after-the-fact
// check. A task that exists under a different owner is reported exactly like
// a task that does not exist: ErrTaskNotFound.
type TaskStore interface {
	// Create saves a new task. The task's UserID must already be set to the
	// owner; validation errors from the domain Task are returned as-is.
	// Returns ErrInvalidEntity if the owner does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// GetForUser retrieves the task with the given ID if it is owned by
	// ownerID. Returns ErrTaskNotFound otherwise.
	GetForUser(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error)

	// ListForUser returns the tasks owned by ownerID in creation order,
	// paginated by offset and limit. A non-positive limit falls back to
	// DefaultListLimit; limits above MaxListLimit are clamped. A negative
	// offset is treated as zero. Returns an empty slice when the owner has
	// no tasks in the window.
	ListForUser(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*domain.Task, error)

	// UpdateForUser applies the non-nil fields of patch to the task with the
	// given ID if it is owned by ownerID, refreshing its UpdatedAt. An
	// empty patch returns the task unchanged. The
	// read-modify-write is atomic with respect to a concurrent delete of the
	// same task: either the update observes the row and succeeds, or it
	// returns ErrTaskNotFound. Returns the updated task.
	UpdateForUser(ctx context.Context, ownerID, taskID uuid.UUID, patch *domain.TaskPatch) (*domain.Task, error)

	// DeleteForUser removes the task with the given ID if it is owned by
	// ownerID and returns the deleted record. Returns ErrTaskNotFound
	// otherwise.
	DeleteForUser(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error)
}
