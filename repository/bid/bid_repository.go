package bid

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/task-marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type BidRepository interface {
	Create(ctx context.Context, data *model.TaskBidEntity) (*model.TaskBidEntity, error)
	ListByTask(ctx context.Context, taskID string, limit int) ([]model.TaskBidEntity, error)
}

func NewBidRepository(conn *sqlx.DB) BidRepository {
	return &SQL{conn: conn}
}

const (
	insertBidQuery = `INSERT INTO task_bid (id, task_id, tasker_id, proposed_price, message, estimated_completion, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())`
	listBidsQuery  = `SELECT id, task_id, tasker_id, proposed_price, message, estimated_completion, created_at FROM task_bid WHERE task_id = ? ORDER BY created_at DESC LIMIT ?`
)

func (s *SQL) Create(ctx context.Context, data *model.TaskBidEntity) (*model.TaskBidEntity, error) {
	_, err := s.conn.ExecContext(ctx, insertBidQuery,
		data.ID, data.TaskID, data.TaskerID, data.ProposedPrice, data.Message, data.EstimatedCompletion)
	if err != nil {
		return nil, err
	}

	var entity model.TaskBidEntity
	row := s.conn.QueryRowxContext(ctx, "SELECT id, task_id, tasker_id, proposed_price, message, estimated_completion, created_at FROM task_bid WHERE id = ?", data.ID)
	if err := row.StructScan(&entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) ListByTask(ctx context.Context, taskID string, limit int) ([]model.TaskBidEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listBidsQuery, taskID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bids := make([]model.TaskBidEntity, 0)
	for rows.Next() {
		var entity model.TaskBidEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		bids = append(bids, entity)
	}
	return bids, rows.Err()
}
