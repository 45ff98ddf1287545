package tasks

import (
	"context"
	"sync"
)

// MemoryRepository keeps tasks in process memory.
type MemoryRepository struct {
	mu     sync.RWMutex
	tasks  []Task
	nextID int64
}

// NewMemoryRepository returns an empty repository. IDs start at 1.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

// Insert implements Repository.
func (r *MemoryRepository) Insert(_ context.Context, t *Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = r.nextID
	r.nextID++
	r.tasks = append(r.tasks, clone(*t))
	return nil
}

// List implements Repository.
func (r *MemoryRepository) List(_ context.Context, offset, limit int) ([]Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset >= len(r.tasks) || limit <= 0 {
		return []Task{}, nil
	}
	end := offset + limit
	if end > len(r.tasks) || end < offset {
		end = len(r.tasks)
	}

	out := make([]Task, 0, end-offset)
	for _, t := range r.tasks[offset:end] {
		out = append(out, clone(t))
	}
	return out, nil
}

// Get implements Repository.
func (r *MemoryRepository) Get(_ context.Context, id int64) (*Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.index(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	t := clone(r.tasks[i])
	return &t, nil
}

// Update implements Repository.
func (r *MemoryRepository) Update(_ context.Context, t *Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(t.ID)
	if i < 0 {
		return ErrNotFound
	}
	r.tasks[i] = clone(*t)
	return nil
}

// Delete implements Repository.
func (r *MemoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return ErrNotFound
	}
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	return nil
}

// index returns the slice position of id or -1. Callers hold the lock.
func (r *MemoryRepository) index(id int64) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// clone copies pointer fields so callers cannot mutate stored tasks.
func clone(t Task) Task {
	if t.Description != nil {
		d := *t.Description
		t.Description = &d
	}
	if t.UpdatedAt != nil {
		u := *t.UpdatedAt
		t.UpdatedAt = &u
	}
	return t
}
