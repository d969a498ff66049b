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

// SendMessage handler
// @Summary Send a message on a task thread
// @Tags Messages
// @Accept json
// @Produce json
// @Param request body model.MessageCreateRequest true "Message Create Request"
// @Success 200 {object} model.MessageEntity
// @Failure 400 {object} transport.Response
// @Router /api/messages [post]
func (s *RestHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.MessageCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.MessageApp.Send(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListTaskMessages handler
// @Summary List a task's message thread
// @Description Oldest first, capped at 100 results
// @Tags Messages
// @Produce json
// @Param task_id path string true "Task ID"
// @Success 200 {array} model.MessageEntity
// @Router /api/messages/{task_id} [get]
func (s *RestHandler) ListTaskMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	taskID := mux.Vars(r)["task_id"]

	res, err := s.MessageApp.ListByTask(ctx, taskID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
