package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task represents a single to-do item owned by exactly one user.
// UserID is immutable after creation; every store operation on a task is
// scoped by it.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    *int       `json:"priority,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask creates a new Task owned by ownerID with the given title and
// optional fields. It generates a fresh UUID and sets timestamps.
// Completed always starts false.
func NewTask(
	ownerID uuid.UUID,
	title string,
	description *string,
	dueDate *time.Time,
	priority *int,
) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		UserID:      ownerID,
		Title:       title,
		Description: description,
		Completed:   false,
		DueDate:     dueDate,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.UserID == uuid.Nil {
		return ErrEmptyUserID
	}

	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}

	return nil
}

// TaskPatch describes a partial update to a task. A nil field means
// "leave unchanged"; only non-nil fields are applied. This keeps the
// set/unset distinction explicit instead of relying on zero values.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
	DueDate     *time.Time
	Priority    *int
}

// IsZero reports whether the patch carries no changes at all.
func (p *TaskPatch) IsZero() bool {
	return p.Title == nil &&
		p.Description == nil &&
		p.Completed == nil &&
		p.DueDate == nil &&
		p.Priority == nil
}

// Validate checks the supplied fields of the patch. A present title must be
// non-empty; absent fields are not validated.
func (p *TaskPatch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// Apply copies the non-nil fields of the patch onto the task and refreshes
// its UpdatedAt timestamp. The owner and ID are never touched.
func (p *TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.DueDate != nil {
		t.DueDate = p.DueDate
	}
	if p.Priority != nil {
		t.Priority = p.Priority
	}
	t.UpdatedAt = time.Now().UTC()
}
