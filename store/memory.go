package store

import (
	"context"
	"sync"
	"time"

	"TareasWebService/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryTaskStore is an in-memory TaskStore with the same semantics as the
// MongoDB store. It backs tests and local runs without a database.
type MemoryTaskStore struct {
	mu    sync.RWMutex
	tasks map[primitive.ObjectID]models.Task
}

// NewMemoryTaskStore returns an empty in-memory store.
func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{tasks: make(map[primitive.ObjectID]models.Task)}
}

func (s *MemoryTaskStore) List(_ context.Context, completed *bool) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]models.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if completed != nil && task.Completed != *completed {
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (s *MemoryTaskStore) Create(_ context.Context, title, description string) (models.Task, error) {
	task := models.Task{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.ID] = task
	return task, nil
}

func (s *MemoryTaskStore) Get(_ context.Context, id primitive.ObjectID) (models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return models.Task{}, ErrNotFound
	}
	return task, nil
}

func (s *MemoryTaskStore) Update(_ context.Context, id primitive.ObjectID, patch TaskPatch) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return models.Task{}, ErrNotFound
	}
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}
	s.tasks[id] = task
	return task, nil
}

func (s *MemoryTaskStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}
