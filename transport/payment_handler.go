package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/task-marketplace/constant"
	"github.com/muhammadheryan/task-marketplace/model"
	"github.com/muhammadheryan/task-marketplace/utils/errors"
	validatorx "github.com/muhammadheryan/task-marketplace/utils/validator"
)

// CreatePaymentAccount handler
// @Summary Register a payment account
// @Description Card and bank numbers are masked before storage
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body model.PaymentAccountCreateRequest true "Payment Account Create Request"
// @Success 200 {object} model.PaymentAccountEntity
// @Failure 400 {object} transport.Response
// @Router /api/payment-accounts [post]
func (s *RestHandler) CreatePaymentAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.PaymentAccountCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.PaymentApp.CreateAccount(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListPaymentAccounts handler
// @Summary List a user's payment accounts
// @Tags Payments
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} model.PaymentAccountEntity
// @Router /api/payment-accounts/{user_id} [get]
func (s *RestHandler) ListPaymentAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := mux.Vars(r)["user_id"]

	res, err := s.PaymentApp.ListAccounts(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateWalletBalance handler
// @Summary Adjust a wallet balance
// @Description Atomic increment; the amount may be negative and no floor applies
// @Tags Payments
// @Produce json
// @Param id path string true "Payment Account ID"
// @Param amount query number true "Increment amount"
// @Success 200 {object} model.TransitionMessage
// @Failure 400 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /api/payment-accounts/{id}/wallet [put]
func (s *RestHandler) UpdateWalletBalance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	amount, err := strconv.ParseFloat(r.URL.Query().Get("amount"), 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.PaymentApp.AdjustWallet(ctx, id, amount); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.TransitionMessage{Message: "Wallet balance updated"})
}

// CreatePayment handler
// @Summary Create a stub payment
// @Description Records a pending payment against a task; no money moves
// @Tags Payments
// @Produce json
// @Param task_id query string true "Task ID"
// @Param payment_method query string true "Payment method"
// @Param amount query number true "Amount"
// @Success 200 {object} model.PaymentEntity
// @Failure 400 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /api/payments [post]
func (s *RestHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	amount, err := strconv.ParseFloat(q.Get("amount"), 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	req := &model.PaymentCreateRequest{
		TaskID:        q.Get("task_id"),
		PaymentMethod: constant.PaymentMethod(q.Get("payment_method")),
		Amount:        amount,
	}

	if err := validatorx.ValidateStruct(req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.PaymentApp.CreatePayment(ctx, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
