// Package handlers provides the HTTP request handlers for TareasWebService.
//
// This package contains the implementation of the HTTP request handlers for handling tasks (CRUD operations) in the TareasWebService application.
// It includes handlers for listing, creating, fetching, patching, and deleting tasks.
// The handlers interact with a MongoDB collection through the store package and validate request bodies with the validation package.
// Each handler checks the path identifier before any lookup, runs the declared field rules on body routes,
// and maps every outcome to a fixed HTTP status and JSON body through the response package.
// The handlers keep track of the number of requests and errors using Prometheus counters.
//
// For more information on the available endpoints, please refer to the individual handler function documentation.
package handlers

import (
	"encoding/json"
	"net/http"

	"TareasWebService/commands"
	"TareasWebService/response"
	"TareasWebService/store"
	"TareasWebService/validation"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Fixed messages for unexpected store failures, one per operation.
// The underlying cause is logged, never sent to the caller.
const (
	msgListFailed   = "failed to list tasks"
	msgCreateFailed = "failed to create task"
	msgFetchFailed  = "failed to fetch task"
	msgUpdateFailed = "failed to update task"
	msgDeleteFailed = "failed to delete task"
)

// TaskHandler holds the collaborators of the task endpoints. It is
// constructed explicitly at startup so tests can run isolated instances.
type TaskHandler struct {
	store           store.TaskStore
	validate        *validation.Validator
	log             *logrus.Logger
	endPointCounter *prometheus.CounterVec
	errorCounter    *prometheus.CounterVec
}

// NewTaskHandler returns a TaskHandler over the given store.
// The counters record endpoint calls and errors per endpoint.
func NewTaskHandler(st store.TaskStore, validate *validation.Validator, log *logrus.Logger, endPointCounter, errorCounter *prometheus.CounterVec) *TaskHandler {
	return &TaskHandler{
		store:           st,
		validate:        validate,
		log:             log,
		endPointCounter: endPointCounter,
		errorCounter:    errorCounter,
	}
}

// ListTasksHandler handles the HTTP request for listing tasks.
// An optional "completed" query parameter narrows the result to tasks whose
// completed flag equals the given boolean. Only the literal values "true"
// and "false" filter; any other value leaves the list unfiltered.
// An empty store yields an empty JSON array, never an error.
//
// Example request:
// GET /tasks?completed=false
//
// Example response:
//
//	[
//	  {
//	    "id": "662f8f4b9a1c2d3e4f5a6b7c",
//	    "title": "Buy milk",
//	    "description": "",
//	    "completed": false,
//	    "createdAt": "2026-08-30T10:00:00Z"
//	  },
//	  ... ]
func (h *TaskHandler) ListTasksHandler(res http.ResponseWriter, req *http.Request) {
	h.endPointCounter.WithLabelValues("GET /tasks").Inc()

	var completed *bool
	switch req.URL.Query().Get("completed") {
	case "true":
		value := true
		completed = &value
	case "false":
		value := false
		completed = &value
	}

	tasks, err := h.store.List(req.Context(), completed)
	if err != nil {
		h.errorCounter.WithLabelValues("GET /tasks").Inc()
		h.log.WithFields(logrus.Fields{
			"task operation": "list tasks",
			"request":        "Get /tasks",
		}).Error(err.Error())
		response.WriteMessage(res, http.StatusInternalServerError, msgListFailed)
		return
	}

	h.log.WithFields(logrus.Fields{
		"task operation": "list tasks",
		"request":        "Get /tasks",
	}).Info("Processing request")
	response.WriteJSON(res, http.StatusOK, tasks)
}

// CreateTaskHandler handles the HTTP request for creating a new task.
// It reads the request body and validates the input fields:
// the title is required and limited to 255 characters, the description is
// optional and limited to 1000 characters.
// On a violation it responds 400 with the itemized list under "errors".
// On success the created task is persisted with completed=false and a
// creation timestamp, and returned with status 201.
//
// Example request body:
//
//	{
//	  "title": "Buy milk",
//	  "description": "Two liters"
//	}
//
// Example response:
//
//	{
//	  "id": "662f8f4b9a1c2d3e4f5a6b7c",
//	  "title": "Buy milk",
//	  "description": "Two liters",
//	  "completed": false,
//	  "createdAt": "2026-08-30T10:00:00Z"
//	}
func (h *TaskHandler) CreateTaskHandler(res http.ResponseWriter, req *http.Request) {
	h.endPointCounter.WithLabelValues("POST /tasks").Inc()

	var cmd commands.CreateTaskCommand
	if err := json.NewDecoder(req.Body).Decode(&cmd); err != nil {
		h.errorCounter.WithLabelValues("POST /tasks").Inc()
		h.log.WithFields(logrus.Fields{
			"task operation": "create a task",
			"request":        "Post /tasks",
		}).Error("invalid request body")
		if violations, ok := validation.FromDecodeError(err); ok {
			response.WriteValidationFailure(res, violations)
			return
		}
		response.WriteMessage(res, http.StatusBadRequest, "invalid request body")
		return
	}

	if violations := h.validate.CreateTask(cmd); len(violations) > 0 {
		h.errorCounter.WithLabelValues("POST /tasks").Inc()
		h.log.WithFields(logrus.Fields{
			"task operation": "create a task",
			"request":        "Post /tasks",
		}).Error("invalid request body inputs")
		response.WriteValidationFailure(res, violations)
		return
	}

	task, err := h.store.Create(req.Context(), cmd.Title, cmd.Description)
	if err != nil {
		h.errorCounter.WithLabelValues("POST /tasks").Inc()
		h.log.WithFields(logrus.Fields{
			"task operation": "create a task",
			"request":        "Post /tasks",
		}).Error(err.Error())
		response.WriteMessage(res, http.StatusInternalServerError, msgCreateFailed)
		return
	}

	taskJSON, _ := json.Marshal(task)
	h.log.WithFields(logrus.Fields{
		"task operation": "create a task",
		"request body":   string(taskJSON),
		"request":        "Post /tasks",
	}).Info("Processing request")
	response.WriteJSON(res, http.StatusCreated, task)
}

// GetTaskHandler handles the HTTP request for retrieving a task by its
// identifier. A malformed identifier is rejected with 400 before any
// lookup; a well-formed identifier with no matching task yields 404.
//
// Example request:
// GET /tasks/662f8f4b9a1c2d3e4f5a6b7c
func (h *TaskHandler) GetTaskHandler(res http.ResponseWriter, req *http.Request) {
	h.endPointCounter.WithLabelValues("GET /tasks/{id}").Inc()

	id, err := store.ParseID(req.PathValue("id"))
	if err != nil {
		h.errorCounter.WithLabelValues("GET /tasks/{id}").Inc()
		h.log.WithFields(logrus.Fields{
			"task operation": "get task by id",
			"request":        "Get /tasks/{id}",
		}).Error("invalid task id")
		response.WriteMessage(res, http.StatusBadRequest, response.MsgInvalidID)
		return
	}

	task, err := h.store.Get(req.Context(), id)
	if err == store.ErrNotFound {
		h.errorCounter.WithLabelValues("GET /tasks/{id}").Inc()
		response.WriteMessage(res, http.StatusNotFound, response.MsgNotFound)
		return
	}
	if err != nil {
		h.errorCounter.WithLabelValues("GET /tasks/{id}").Inc()
		h.log.WithFields(logrus.Fields{
			"task operation": "get task by id",
			"request":        "Get /tasks/{id}",
		}).Error(err.Error())
		response.WriteMessage(res, http.StatusInternalServerError, msgFetchFailed)
		return
	}

	h.log.WithFields(logrus.Fields{
		"task operation": "get task by id",
		"request":        "Get /tasks/{id}",
	}).Info("Processing request")
	response.WriteJSON(res, http.StatusOK, task)
}

// UpdateTaskHandler handles the HTTP request for patching a task.
// Every body field is optional and only the fields present in the request
// are overwritten; omitted fields keep their stored values.
// The identifier is checked before the body, the body rules before the
// lookup, and the first failing rule per field is reported.
//
// Example request body:
//
//	{
//	  "completed": true
//	}
//
// Example response:
//
//	{
//	  "id": "662f8f4b9a1c2d3e4f5a6b7c",
//	  "title": "Buy milk",
//	  "description": "Two liters",
//	  "completed": true,
//	  "createdAt": "2026-08-30T10:00:00Z"
//	}
func (h *TaskHandler) UpdateTaskHandler(res http.ResponseWriter, req *http.Request) {
	h.endPointCounter.WithLabelValues("PATCH /tasks/{id}").Inc()

	id, err := store.ParseID(req.PathValue("id"))
	if err != nil {
		h.errorCounter.WithLabelValues("PATCH /tasks/{id}").Inc()
		h.log.WithFields(logrus.Fields{
			"task operation": "update a task",
			"request":        "Patch /tasks/{id}",
		}).Error("invalid task id")
		response.WriteMessage(res, http.StatusBadRequest, response.MsgInvalidID)
		return
	}

	var cmd commands.UpdateTaskCommand
	if err := json.NewDecoder(req.Body).Decode(&cmd); err != nil {
		h.errorCounter.WithLabelValues("PATCH /tasks/{id}").Inc()
		h.log.WithFields(logrus.Fields{
			"task operation": "update a task",
			"request":        "Patch /tasks/{id}",
		}).Error("invalid request body")
		if violations, ok := validation.FromDecodeError(err); ok {
			response.WriteValidationFailure(res, violations)
			return
		}
		response.WriteMessage(res, http.StatusBadRequest, "invalid request body")
		return
	}

	if violations := h.validate.UpdateTask(cmd); len(violations) > 0 {
		h.errorCounter.WithLabelValues("PATCH /tasks/{id}").Inc()
		h.log.WithFields(logrus.Fields{
			"task operation": "update a task",
			"request":        "Patch /tasks/{id}",
		}).Error("invalid request body inputs")
		response.WriteValidationFailure(res, violations)
		return
	}

	task, err := h.store.Update(req.Context(), id, store.TaskPatch{
		Title:       cmd.Title,
		Description: cmd.Description,
		Completed:   cmd.Completed,
	})
	if err == store.ErrNotFound {
		h.errorCounter.WithLabelValues("PATCH /tasks/{id}").Inc()
		response.WriteMessage(res, http.StatusNotFound, response.MsgNotFound)
		return
	}
	if err != nil {
		h.errorCounter.WithLabelValues("PATCH /tasks/{id}").Inc()
		h.log.WithFields(logrus.Fields{
			"task operation": "update a task",
			"request":        "Patch /tasks/{id}",
		}).Error(err.Error())
		response.WriteMessage(res, http.StatusInternalServerError, msgUpdateFailed)
		return
	}

	taskJSON, _ := json.Marshal(task)
	h.log.WithFields(logrus.Fields{
		"task operation": "update a task",
		"request body":   string(taskJSON),
		"request":        "Patch /tasks/{id}",
	}).Info("Processing request")
	response.WriteJSON(res, http.StatusOK, task)
}

// DeleteTaskHandler handles the HTTP request for deleting a task by its
// identifier. On success it responds with a confirmation message; the
// deleted record is not returned.
//
// Example response:
//
//	{
//	  "message": "deleted"
//	}
func (h *TaskHandler) DeleteTaskHandler(res http.ResponseWriter, req *http.Request) {
	h.endPointCounter.WithLabelValues("DELETE /tasks/{id}").Inc()

	id, err := store.ParseID(req.PathValue("id"))
	if err != nil {
		h.errorCounter.WithLabelValues("DELETE /tasks/{id}").Inc()
		h.log.WithFields(logrus.Fields{
			"task operation": "delete a task",
			"request":        "Delete /tasks/{id}",
		}).Error("invalid task id")
		response.WriteMessage(res, http.StatusBadRequest, response.MsgInvalidID)
		return
	}

	err = h.store.Delete(req.Context(), id)
	if err == store.ErrNotFound {
		h.errorCounter.WithLabelValues("DELETE /tasks/{id}").Inc()
		response.WriteMessage(res, http.StatusNotFound, response.MsgNotFound)
		return
	}
	if err != nil {
		h.errorCounter.WithLabelValues("DELETE /tasks/{id}").Inc()
		h.log.WithFields(logrus.Fields{
			"task operation": "delete a task",
			"request":        "Delete /tasks/{id}",
		}).Error(err.Error())
		response.WriteMessage(res, http.StatusInternalServerError, msgDeleteFailed)
		return
	}

	h.log.WithFields(logrus.Fields{
		"task operation": "delete a task",
		"request":        "Delete /tasks/{id}",
	}).Info("Processing request")
	response.WriteMessage(res, http.StatusOK, response.MsgDeleted)
}
