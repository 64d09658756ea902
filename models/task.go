// Package models contains the data models for the application to be used in request handling and persistence.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task represents a task stored in the tasks collection.
// Task has the following properties:
// - ID: The unique identifier of the task, generated by the store.
// - Title: The title of the task, 1 to 255 characters.
// - Description: The optional description of the task, up to 1000 characters.
// - Completed: Whether the task is done. Defaults to false on creation.
// - CreatedAt: The creation timestamp, set once by the store.
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description"`
	Completed   bool               `bson:"completed" json:"completed"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
