// Package commands contains the commands for the application to be used for request inputs.
package commands

// CreateTaskCommand represents the body of a request to create a task.
type CreateTaskCommand struct {
	Title       string `json:"title" validate:"required,notblank,max=255"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}
