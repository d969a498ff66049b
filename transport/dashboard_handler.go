package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/task-marketplace/constant"
)

// ListCategories handler
// @Summary Service category catalog
// @Tags Catalog
// @Produce json
// @Success 200 {array} constant.ServiceCategory
// @Router /api/categories [get]
func (s *RestHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, constant.ServiceCategories)
}

// GetDashboard handler
// @Summary User activity summary
// @Description Task counts, completed-payment earnings, and rating aggregates
// @Tags Dashboard
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} model.DashboardResponse
// @Failure 404 {object} transport.Response
// @Router /api/dashboard/{user_id} [get]
func (s *RestHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := mux.Vars(r)["user_id"]

	res, err := s.DashboardApp.Get(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
