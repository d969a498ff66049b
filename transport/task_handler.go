package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/task-marketplace/constant"
	"github.com/muhammadheryan/task-marketplace/model"
	"github.com/muhammadheryan/task-marketplace/utils/errors"
	validatorx "github.com/muhammadheryan/task-marketplace/utils/validator"
)

// CreateTask handler
// @Summary Post a task
// @Description Create a task in posted status; scheduled tasks get a delayed reminder
// @Tags Tasks
// @Accept json
// @Produce json
// @Param request body model.TaskCreateRequest true "Task Create Request"
// @Success 200 {object} model.TaskEntity
// @Failure 400 {object} transport.Response
// @Router /api/tasks [post]
func (s *RestHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.TaskCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.TaskApp.Create(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListTasks handler
// @Summary List tasks
// @Description Filter tasks, newest first, capped at 100 results
// @Tags Tasks
// @Produce json
// @Param category query string false "Category filter"
// @Param status query string false "Status filter"
// @Param client_id query string false "Client filter"
// @Param tasker_id query string false "Tasker filter"
// @Success 200 {array} model.TaskEntity
// @Router /api/tasks [get]
func (s *RestHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := &model.TaskFilter{
		Category: constant.TaskCategory(q.Get("category")),
		Status:   constant.TaskStatus(q.Get("status")),
		ClientID: q.Get("client_id"),
		TaskerID: q.Get("tasker_id"),
	}

	res, err := s.TaskApp.List(ctx, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetTask handler
// @Summary Fetch task
// @Tags Tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} model.TaskEntity
// @Failure 404 {object} transport.Response
// @Router /api/tasks/{id} [get]
func (s *RestHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	res, err := s.TaskApp.Get(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AcceptTask handler
// @Summary Accept a posted task
// @Description Assigns the tasker if and only if the task is still posted
// @Tags Tasks
// @Produce json
// @Param id path string true "Task ID"
// @Param tasker_id query string true "Tasker ID"
// @Success 200 {object} model.TransitionMessage
// @Failure 400 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /api/tasks/{id}/accept [put]
func (s *RestHandler) AcceptTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	taskerID := r.URL.Query().Get("tasker_id")
	if taskerID == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.TaskApp.Accept(ctx, id, taskerID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.TransitionMessage{Message: "Task accepted successfully"})
}

// StartTask handler
// @Summary Start an accepted task
// @Tags Tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} model.TransitionMessage
// @Failure 400 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /api/tasks/{id}/start [put]
func (s *RestHandler) StartTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	if err := s.TaskApp.Start(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.TransitionMessage{Message: "Task started"})
}

// CompleteTask handler
// @Summary Complete a task in progress
// @Tags Tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} model.TransitionMessage
// @Failure 400 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /api/tasks/{id}/complete [put]
func (s *RestHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	if err := s.TaskApp.Complete(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.TransitionMessage{Message: "Task completed"})
}

// CancelTask handler
// @Summary Cancel a posted task
// @Tags Tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} model.TransitionMessage
// @Failure 400 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /api/tasks/{id}/cancel [put]
func (s *RestHandler) CancelTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	if err := s.TaskApp.Cancel(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.TransitionMessage{Message: "Task cancelled"})
}

// RecordTaskReminder handler (internal)
// @Summary Record a scheduled-task reminder
// @Description Called by the reminder consumer; appends a system message to the task thread
// @Tags Internal
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} model.TransitionMessage
// @Failure 404 {object} transport.Response
// @Router /api/internal/tasks/{id}/reminder [post]
func (s *RestHandler) RecordTaskReminder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	if err := s.MessageApp.RecordReminder(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.TransitionMessage{Message: "Reminder recorded"})
}
