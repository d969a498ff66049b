package review

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/task-marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ReviewRepository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.ReviewEntity) error
	Get(ctx context.Context, id string) (*model.ReviewEntity, error)
	ListByReviewee(ctx context.Context, revieweeID string, limit int) ([]model.ReviewEntity, error)
}

func NewReviewRepository(conn *sqlx.DB) ReviewRepository {
	return &SQL{conn: conn}
}

const (
	insertReviewQuery = `INSERT INTO review (id, task_id, reviewer_id, reviewee_id, rating, comment, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())`
	getReviewBase     = `SELECT id, task_id, reviewer_id, reviewee_id, rating, comment, created_at FROM review WHERE true`
)

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.ReviewEntity) error {
	_, err := tx.ExecContext(ctx, insertReviewQuery,
		data.ID, data.TaskID, data.ReviewerID, data.RevieweeID, data.Rating, data.Comment)
	return err
}

func (s *SQL) Get(ctx context.Context, id string) (*model.ReviewEntity, error) {
	var entity model.ReviewEntity
	if err := s.conn.QueryRowxContext(ctx, getReviewBase+" AND id = ?", id).StructScan(&entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) ListByReviewee(ctx context.Context, revieweeID string, limit int) ([]model.ReviewEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, getReviewBase+" AND reviewee_id = ? ORDER BY created_at DESC LIMIT ?", revieweeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]model.ReviewEntity, 0)
	for rows.Next() {
		var entity model.ReviewEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		reviews = append(reviews, entity)
	}
	return reviews, rows.Err()
}
