package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rfoley/taskward-api/internal/domain"
	"github.com/rfoley/taskward-api/internal/platform/logger"
	"github.com/rfoley/taskward-api/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface using a
// PostgreSQL database as the storage backend. Every statement carries the
// owner's user_id in its predicate.
type PostgresTaskStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It takes the full *sql.DB rather than a DBTX because
// UpdateForUser opens its own transaction. If logger is nil a default
// logger is used.
func NewPostgresTaskStore(db *sql.DB, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

var _ store.TaskStore = (*PostgresTaskStore)(nil)

const taskColumns = `id, user_id, title, description, completed, due_date, priority, created_at, updated_at`

// scanTask reads one task row from a row scanner.
func scanTask(row interface{ Scan(dest ...any) error }) (*domain.Task, error) {
	var task domain.Task
	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Completed,
		&task.DueDate,
		&task.Priority,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Create implements store.TaskStore.Create.
// Returns store.ErrInvalidEntity if the owning user does not exist.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	query := `
		INSERT INTO tasks (id, user_id, title, description, completed, due_date, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		task.ID,
		task.UserID,
		task.Title,
		task.Description,
		task.Completed,
		task.DueDate,
		task.Priority,
		task.CreatedAt,
		task.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()),
			slog.String("user_id", task.UserID.String()))
		return MapError(err)
	}

	log.Info("task created successfully",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", task.UserID.String()))
	return nil
}

// GetForUser implements store.TaskStore.GetForUser. The ownership filter is
// part of the WHERE clause, so a task under another owner scans as no rows.
func (s *PostgresTaskStore) GetForUser(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, taskID, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found or not owned",
				slog.String("task_id", taskID.String()),
				slog.String("user_id", ownerID.String()))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()))
		return nil, MapError(err)
	}

	return task, nil
}

// ListForUser implements store.TaskStore.ListForUser. Results are ordered
// by creation time (id as a tiebreaker for stable pagination).
func (s *PostgresTaskStore) ListForUser(
	ctx context.Context,
	ownerID uuid.UUID,
	offset, limit int,
) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = store.DefaultListLimit
	}
	if limit > store.MaxListLimit {
		limit = store.MaxListLimit
	}

	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at, id
		OFFSET $2 LIMIT $3
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID, offset, limit)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.String("user_id", ownerID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row",
				slog.String("error", err.Error()),
				slog.String("user_id", ownerID.String()))
			return nil, MapError(err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return tasks, nil
}

// UpdateForUser implements store.TaskStore.UpdateForUser. The row is locked
// with SELECT ... FOR UPDATE inside a transaction so the read-modify-write
// cannot interleave with a concurrent delete: either the row is observed and
// updated, or the operation reports store.ErrTaskNotFound.
func (s *PostgresTaskStore) UpdateForUser(
	ctx context.Context,
	ownerID, taskID uuid.UUID,
	patch *domain.TaskPatch,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := patch.Validate(); err != nil {
		log.Warn("task patch validation failed",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()))
		return nil, err
	}

	// An empty patch changes nothing; read the row instead of locking it.
	if patch.IsZero() {
		return s.GetForUser(ctx, ownerID, taskID)
	}

	var updated *domain.Task
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		selectQuery := `
			SELECT ` + taskColumns + `
			FROM tasks
			WHERE id = $1 AND user_id = $2
			FOR UPDATE
		`

		task, err := scanTask(tx.QueryRowContext(ctx, selectQuery, taskID, ownerID))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return store.ErrTaskNotFound
			}
			return MapError(err)
		}

		patch.Apply(task)
		if err := task.Validate(); err != nil {
			return err
		}

		updateQuery := `
			UPDATE tasks
			SET title = $3, description = $4, completed = $5, due_date = $6, priority = $7, updated_at = $8
			WHERE id = $1 AND user_id = $2
		`
		result, err := tx.ExecContext(
			ctx,
			updateQuery,
			task.ID,
			task.UserID,
			task.Title,
			task.Description,
			task.Completed,
			task.DueDate,
			task.Priority,
			task.UpdatedAt,
		)
		if err != nil {
			return MapError(err)
		}
		if err := CheckRowsAffected(result, "task"); err != nil {
			return err
		}

		updated = task
		return nil
	})

	if err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("failed to update task",
				slog.String("error", err.Error()),
				slog.String("task_id", taskID.String()),
				slog.String("user_id", ownerID.String()))
		}
		return nil, err
	}

	log.Info("task updated successfully",
		slog.String("task_id", taskID.String()),
		slog.String("user_id", ownerID.String()))
	return updated, nil
}

// DeleteForUser implements store.TaskStore.DeleteForUser. A single
// DELETE ... RETURNING both removes the row and yields the deleted record,
// so the operation is atomic without an explicit transaction.
func (s *PostgresTaskStore) DeleteForUser(
	ctx context.Context,
	ownerID, taskID uuid.UUID,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM tasks
		WHERE id = $1 AND user_id = $2
		RETURNING ` + taskColumns + `
	`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, taskID, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found or not owned during delete",
				slog.String("task_id", taskID.String()),
				slog.String("user_id", ownerID.String()))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()))
		return nil, MapError(err)
	}

	log.Info("task deleted successfully",
		slog.String("task_id", taskID.String()),
		slog.String("user_id", ownerID.String()))
	return task, nil
}
