// Package store provides persistence for tasks.
//
// The store is the sole authority over persisted task state. Handlers hold
// only transient Task values during a request. A document database backs the
// real store; a memory store with the same semantics backs tests and local
// runs without a database.
package store

import (
	"context"
	"errors"

	"TareasWebService/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when no task matches a well-formed identifier.
var ErrNotFound = errors.New("task not found")

// TaskPatch carries the fields of a partial update. Nil fields are left
// untouched in the stored record.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// TaskStore is the persistence contract for tasks.
type TaskStore interface {
	// List returns every task, or only those matching the completed flag
	// when one is given. No matches yields an empty slice, not an error.
	List(ctx context.Context, completed *bool) ([]models.Task, error)
	// Create persists a new task with a generated identifier, a creation
	// timestamp and completed set to false.
	Create(ctx context.Context, title, description string) (models.Task, error)
	// Get returns the task with the given identifier or ErrNotFound.
	Get(ctx context.Context, id primitive.ObjectID) (models.Task, error)
	// Update overwrites only the fields present in the patch and returns
	// the updated task, or ErrNotFound.
	Update(ctx context.Context, id primitive.ObjectID, patch TaskPatch) (models.Task, error)
	// Delete removes the task with the given identifier or returns
	// ErrNotFound.
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ParseID checks that a path parameter is a well-formed task identifier.
// It is a pure syntax check; no lookup is performed. Callers must reject
// the request before touching the store when it fails.
func ParseID(s string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(s)
}
