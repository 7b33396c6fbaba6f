package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfoley/taskward-api/internal/domain"
)

func strPtr(s string) *string       { return &s }
func intPtr(i int) *int             { return &i }
func boolPtr(b bool) *bool          { return &b }
func timePtr(t time.Time) *time.Time { return &t }

func TestNewTask(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	t.Run("creates task with required fields only", func(t *testing.T) {
		t.Parallel()

		task, err := domain.NewTask(ownerID, "buy milk", nil, nil, nil)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, task.ID)
		assert.Equal(t, ownerID, task.UserID)
		assert.Equal(t, "buy milk", task.Title)
		assert.False(t, task.Completed)
		assert.Nil(t, task.Description)
		assert.Nil(t, task.DueDate)
		assert.Nil(t, task.Priority)
	})

	t.Run("creates task with optional fields", func(t *testing.T) {
		t.Parallel()

		due := time.Now().UTC().Add(24 * time.Hour)
		task, err := domain.NewTask(ownerID, "write report", strPtr("quarterly numbers"), timePtr(due), intPtr(2))
		require.NoError(t, err)

		require.NotNil(t, task.Description)
		assert.Equal(t, "quarterly numbers", *task.Description)
		require.NotNil(t, task.DueDate)
		assert.True(t, due.Equal(*task.DueDate))
		require.NotNil(t, task.Priority)
		assert.Equal(t, 2, *task.Priority)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		t.Parallel()

		_, err := domain.NewTask(ownerID, "   ", nil, nil, nil)
		assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	})

	t.Run("rejects missing owner", func(t *testing.T) {
		t.Parallel()

		_, err := domain.NewTask(uuid.Nil, "buy milk", nil, nil, nil)
		assert.ErrorIs(t, err, domain.ErrEmptyUserID)
	})
}

func TestTaskPatch(t *testing.T) {
	t.Parallel()

	newTask := func(t *testing.T) *domain.Task {
		t.Helper()
		task, err := domain.NewTask(uuid.New(), "buy milk", strPtr("two liters"), nil, intPtr(1))
		require.NoError(t, err)
		return task
	}

	t.Run("applies only supplied fields", func(t *testing.T) {
		t.Parallel()

		task := newTask(t)
		before := *task

		patch := &domain.TaskPatch{Completed: boolPtr(true)}
		require.NoError(t, patch.Validate())
		patch.Apply(task)

		assert.True(t, task.Completed)
		assert.Equal(t, before.Title, task.Title)
		assert.Equal(t, before.Description, task.Description)
		assert.Equal(t, before.Priority, task.Priority)
		assert.Equal(t, before.UserID, task.UserID)
		assert.Equal(t, before.ID, task.ID)
	})

	t.Run("refreshes updated_at", func(t *testing.T) {
		t.Parallel()

		task := newTask(t)
		before := task.UpdatedAt

		time.Sleep(time.Millisecond)
		patch := &domain.TaskPatch{Title: strPtr("buy oat milk")}
		patch.Apply(task)

		assert.Equal(t, "buy oat milk", task.Title)
		assert.True(t, task.UpdatedAt.After(before), "UpdatedAt must strictly increase")
	})

	t.Run("rejects blank title", func(t *testing.T) {
		t.Parallel()

		patch := &domain.TaskPatch{Title: strPtr("  ")}
		assert.ErrorIs(t, patch.Validate(), domain.ErrEmptyTitle)
	})

	t.Run("IsZero", func(t *testing.T) {
		t.Parallel()

		assert.True(t, (&domain.TaskPatch{}).IsZero())
		assert.False(t, (&domain.TaskPatch{Completed: boolPtr(false)}).IsZero())
	})
}
