package paymentaccount

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/task-marketplace/constant"
	"github.com/muhammadheryan/task-marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type PaymentAccountRepository interface {
	Create(ctx context.Context, data *model.PaymentAccountEntity) (*model.PaymentAccountEntity, error)
	Get(ctx context.Context, id string) (*model.PaymentAccountEntity, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]model.PaymentAccountEntity, error)
	IncrementWallet(ctx context.Context, id string, amount float64) (int64, error)
}

func NewPaymentAccountRepository(conn *sqlx.DB) PaymentAccountRepository {
	return &SQL{conn: conn}
}

const (
	insertAccountQuery = `INSERT INTO payment_account (id, user_id, type, card_number, card_holder, bank_name, account_number, routing_number, wallet_balance, is_primary, gateway_customer_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?, NOW())`
	getAccountBase = `SELECT id, user_id, type, card_number, card_holder, bank_name, account_number, routing_number, wallet_balance, is_primary, gateway_customer_id, created_at FROM payment_account WHERE true`

	// Wallet balance moves with a single atomic increment, guarded on account
	// type. Balances may go negative; there is no floor.
	incrementWalletQuery = `UPDATE payment_account SET wallet_balance = wallet_balance + ? WHERE id = ? AND type = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.PaymentAccountEntity) (*model.PaymentAccountEntity, error) {
	_, err := s.conn.ExecContext(ctx, insertAccountQuery,
		data.ID, data.UserID, data.Type, data.CardNumber, data.CardHolder,
		data.BankName, data.AccountNumber, data.RoutingNumber, data.IsPrimary, data.GatewayCustomerID)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, data.ID)
}

func (s *SQL) Get(ctx context.Context, id string) (*model.PaymentAccountEntity, error) {
	var entity model.PaymentAccountEntity
	if err := s.conn.QueryRowxContext(ctx, getAccountBase+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) ListByUser(ctx context.Context, userID string, limit int) ([]model.PaymentAccountEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, getAccountBase+" AND user_id = ? LIMIT ?", userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]model.PaymentAccountEntity, 0)
	for rows.Next() {
		var entity model.PaymentAccountEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		accounts = append(accounts, entity)
	}
	return accounts, rows.Err()
}

func (s *SQL) IncrementWallet(ctx context.Context, id string, amount float64) (int64, error) {
	res, err := s.conn.ExecContext(ctx, incrementWalletQuery, amount, id, constant.PaymentMethodWallet)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
