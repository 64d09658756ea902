package commands

// UpdateTaskCommand represents the body of a request to patch a task.
// Every field is optional; pointer fields distinguish an absent field
// from a present zero value, so only submitted fields are overwritten.
type UpdateTaskCommand struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}
