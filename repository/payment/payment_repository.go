package payment

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

type PaymentRepository interface {
	Create(ctx context.Context, data *model.PaymentEntity) (*model.PaymentEntity, error)
	SumCompletedByTasker(ctx context.Context, taskerID string) (float64, error)
}

func NewPaymentRepository(conn *sqlx.DB) PaymentRepository {
	return &SQL{conn: conn}
}

const (
	insertPaymentQuery = `INSERT INTO payment (id, task_id, client_id, tasker_id, amount, payment_method, gateway_payment_id, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())`
	getPaymentBase         = `SELECT id, task_id, client_id, tasker_id, amount, payment_method, gateway_payment_id, status, created_at FROM payment WHERE true`
	sumCompletedByTaskerQ  = `SELECT COALESCE(SUM(amount), 0) FROM payment WHERE tasker_id = ? AND status = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.PaymentEntity) (*model.PaymentEntity, error) {
	_, err := s.conn.ExecContext(ctx, insertPaymentQuery,
		data.ID, data.TaskID, data.ClientID, data.TaskerID, data.Amount,
		data.PaymentMethod, data.GatewayPaymentID, data.Status)
	if err != nil {
		return nil, err
	}

	var entity model.PaymentEntity
	if err := s.conn.QueryRowxContext(ctx, getPaymentBase+" AND id = ?", data.ID).StructScan(&entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) SumCompletedByTasker(ctx context.Context, taskerID string) (float64, error) {
	var total sql.NullFloat64
	if err := s.conn.GetContext(ctx, &total, sumCompletedByTaskerQ, taskerID, constant.PaymentStatusCompleted); err != nil {
		return 0, err
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Float64, nil
}
