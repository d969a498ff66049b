package model

import (
	"time"

	"github.com/muhammadheryan/task-marketplace/constant"
)

// PaymentAccountEntity represents the payment_account table entity. Card and
// bank numbers are masked before they ever reach the store; the gateway
// customer id is an opaque token from the payment gateway.
type PaymentAccountEntity struct {
	ID                string                 `db:"id" json:"id"`
	UserID            string                 `db:"user_id" json:"user_id"`
	Type              constant.PaymentMethod `db:"type" json:"type"`
	CardNumber        string                 `db:"card_number" json:"card_number,omitempty"`
	CardHolder        string                 `db:"card_holder" json:"card_holder,omitempty"`
	BankName          string                 `db:"bank_name" json:"bank_name,omitempty"`
	AccountNumber     string                 `db:"account_number" json:"account_number,omitempty"`
	RoutingNumber     string                 `db:"routing_number" json:"routing_number,omitempty"`
	WalletBalance     float64                `db:"wallet_balance" json:"wallet_balance"`
	IsPrimary         bool                   `db:"is_primary" json:"is_primary"`
	GatewayCustomerID string                 `db:"gateway_customer_id" json:"gateway_customer_id,omitempty"`
	CreatedAt         time.Time              `db:"created_at" json:"created_at"`
}

// PaymentAccountCreateRequest for registering a payment account
type PaymentAccountCreateRequest struct {
	UserID        string                 `json:"user_id" validate:"required"`
	Type          constant.PaymentMethod `json:"type" validate:"required,oneof=card bank_account wallet"`
	CardNumber    string                 `json:"card_number"`
	CardHolder    string                 `json:"card_holder"`
	BankName      string                 `json:"bank_name"`
	AccountNumber string                 `json:"account_number"`
	RoutingNumber string                 `json:"routing_number"`
	IsPrimary     bool                   `json:"is_primary"`
}

// PaymentEntity represents the payment table entity. Payment status is
// independent of task status; neither propagates to the other.
type PaymentEntity struct {
	ID               string                 `db:"id" json:"id"`
	TaskID           string                 `db:"task_id" json:"task_id"`
	ClientID         string                 `db:"client_id" json:"client_id"`
	TaskerID         string                 `db:"tasker_id" json:"tasker_id"`
	Amount           float64                `db:"amount" json:"amount"`
	PaymentMethod    constant.PaymentMethod `db:"payment_method" json:"payment_method"`
	GatewayPaymentID string                 `db:"gateway_payment_id" json:"gateway_payment_id"`
	Status           constant.PaymentStatus `db:"status" json:"status"`
	CreatedAt        time.Time              `db:"created_at" json:"created_at"`
}

// PaymentCreateRequest for creating a stub payment against a task
type PaymentCreateRequest struct {
	TaskID        string                 `validate:"required"`
	PaymentMethod constant.PaymentMethod `validate:"required,oneof=card bank_account wallet"`
	Amount        float64                `validate:"required,gt=0"`
}
