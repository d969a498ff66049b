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

// CreateTaskBid handler
// @Summary Place a bid
// @Description Append a bid to an open task; the task lifecycle is untouched
// @Tags Bids
// @Accept json
// @Produce json
// @Param request body model.TaskBidCreateRequest true "Bid Create Request"
// @Success 200 {object} model.TaskBidEntity
// @Failure 400 {object} transport.Response
// @Router /api/task-bids [post]
func (s *RestHandler) CreateTaskBid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.TaskBidCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BidApp.Create(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListTaskBids handler
// @Summary List bids on a task
// @Description Newest first, capped at 100 results
// @Tags Bids
// @Produce json
// @Param task_id path string true "Task ID"
// @Success 200 {array} model.TaskBidEntity
// @Router /api/task-bids/{task_id} [get]
func (s *RestHandler) ListTaskBids(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	taskID := mux.Vars(r)["task_id"]

	res, err := s.BidApp.ListByTask(ctx, taskID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
