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

// CreateUser handler
// @Summary Create user
// @Description Register a new user profile
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.UserCreateRequest true "User Create Request"
// @Success 200 {object} model.UserEntity
// @Failure 400 {object} transport.Response
// @Router /api/users [post]
func (s *RestHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.UserCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Create(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetUser handler
// @Summary Fetch user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.UserEntity
// @Failure 404 {object} transport.Response
// @Router /api/users/{id} [get]
func (s *RestHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	res, err := s.UserApp.Get(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateUser handler
// @Summary Partially update user
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body model.UserUpdateRequest true "User Update Request"
// @Success 200 {object} model.UserEntity
// @Failure 404 {object} transport.Response
// @Router /api/users/{id} [put]
func (s *RestHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	var req model.UserUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Update(ctx, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListUsers handler
// @Summary List users
// @Description Filter users by role and skill, capped at 100 results
// @Tags Users
// @Produce json
// @Param role query string false "Role filter"
// @Param skills query string false "Skill filter"
// @Success 200 {array} model.UserEntity
// @Router /api/users [get]
func (s *RestHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := &model.UserFilter{
		Role:  constant.UserRole(r.URL.Query().Get("role")),
		Skill: r.URL.Query().Get("skills"),
	}

	res, err := s.UserApp.List(ctx, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SetUserLocation handler
// @Summary Share location
// @Tags Location
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body model.Location true "Location"
// @Success 200 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /api/users/{id}/location [put]
func (s *RestHandler) SetUserLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	var loc model.Location
	if err := json.NewDecoder(r.Body).Decode(&loc); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.UserApp.SetLocation(ctx, id, &loc); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.TransitionMessage{Message: "Location updated"})
}

// GetUserLocation handler
// @Summary Fetch shared location
// @Tags Location
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.Location
// @Failure 404 {object} transport.Response
// @Router /api/users/{id}/location [get]
func (s *RestHandler) GetUserLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	res, err := s.UserApp.GetLocation(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
