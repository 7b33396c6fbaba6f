package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/rfoley/taskward-api/internal/domain"
	"github.com/rfoley/taskward-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing. Its default
// implementation is a faithful in-memory model of the ownership-scoped
// contract: a task under a different owner is indistinguishable from a
// missing one.
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, task *domain.Task) error
	GetForUserFn    func(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error)
	ListForUserFn   func(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*domain.Task, error)
	UpdateForUserFn func(ctx context.Context, ownerID, taskID uuid.UUID, patch *domain.TaskPatch) (*domain.Task, error)
	DeleteForUserFn func(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error)

	mu    sync.Mutex
	tasks map[uuid.UUID]*domain.Task
	seq   int                 // insertion counter for stable list order
	order map[uuid.UUID]int
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates a mock store with an empty in-memory task map.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		tasks: make(map[uuid.UUID]*domain.Task),
		order: make(map[uuid.UUID]int),
	}
}

// Create implements store.TaskStore.
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	if err := task.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *task
	m.tasks[task.ID] = &copied
	m.order[task.ID] = m.seq
	m.seq++
	return nil
}

// GetForUser implements store.TaskStore.
func (m *MockTaskStore) GetForUser(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error) {
	if m.GetForUserFn != nil {
		return m.GetForUserFn(ctx, ownerID, taskID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.getLocked(ownerID, taskID)
}

// getLocked looks up a task under the caller's lock, applying the ownership
// filter.
func (m *MockTaskStore) getLocked(ownerID, taskID uuid.UUID) (*domain.Task, error) {
	task, exists := m.tasks[taskID]
	if !exists || task.UserID != ownerID {
		return nil, store.ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

// ListForUser implements store.TaskStore.
func (m *MockTaskStore) ListForUser(
	ctx context.Context,
	ownerID uuid.UUID,
	offset, limit int,
) ([]*domain.Task, error) {
	if m.ListForUserFn != nil {
		return m.ListForUserFn(ctx, ownerID, offset, limit)
	}

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = store.DefaultListLimit
	}
	if limit > store.MaxListLimit {
		limit = store.MaxListLimit
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	owned := make([]*domain.Task, 0)
	for _, task := range m.tasks {
		if task.UserID == ownerID {
			copied := *task
			owned = append(owned, &copied)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		return m.order[owned[i].ID] < m.order[owned[j].ID]
	})

	if offset >= len(owned) {
		return []*domain.Task{}, nil
	}
	end := offset + limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[offset:end], nil
}

// UpdateForUser implements store.TaskStore.
func (m *MockTaskStore) UpdateForUser(
	ctx context.Context,
	ownerID, taskID uuid.UUID,
	patch *domain.TaskPatch,
) (*domain.Task, error) {
	if m.UpdateForUserFn != nil {
		return m.UpdateForUserFn(ctx, ownerID, taskID, patch)
	}

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	task, exists := m.tasks[taskID]
	if !exists || task.UserID != ownerID {
		return nil, store.ErrTaskNotFound
	}

	if !patch.IsZero() {
		patch.Apply(task)
	}
	copied := *task
	return &copied, nil
}

// DeleteForUser implements store.TaskStore.
func (m *MockTaskStore) DeleteForUser(
	ctx context.Context,
	ownerID, taskID uuid.UUID,
) (*domain.Task, error) {
	if m.DeleteForUserFn != nil {
		return m.DeleteForUserFn(ctx, ownerID, taskID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	task, exists := m.tasks[taskID]
	if !exists || task.UserID != ownerID {
		return nil, store.ErrTaskNotFound
	}

	delete(m.tasks, taskID)
	delete(m.order, taskID)
	return task, nil
}
