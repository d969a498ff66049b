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

// CreateReview handler
// @Summary Submit a review
// @Description Records the review and updates the reviewee's rating aggregate in one transaction
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body model.ReviewCreateRequest true "Review Create Request"
// @Success 200 {object} model.ReviewEntity
// @Failure 400 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /api/reviews [post]
func (s *RestHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ReviewCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ReviewApp.Create(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListUserReviews handler
// @Summary List reviews about a user
// @Description Newest first, capped at 100 results
// @Tags Reviews
// @Produce json
// @Param user_id path string true "Reviewee User ID"
// @Success 200 {array} model.ReviewEntity
// @Router /api/reviews/{user_id} [get]
func (s *RestHandler) ListUserReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := mux.Vars(r)["user_id"]

	res, err := s.ReviewApp.ListByReviewee(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
