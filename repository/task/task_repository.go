package task

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

type TaskRepository interface {
	Create(ctx context.Context, data *model.TaskEntity) (*model.TaskEntity, error)
	Get(ctx context.Context, id string) (*model.TaskEntity, error)
	List(ctx context.Context, filter *model.TaskFilter, limit int) ([]model.TaskEntity, error)
	Accept(ctx context.Context, id, taskerID string) (int64, error)
	Start(ctx context.Context, id string) (int64, error)
	Complete(ctx context.Context, id string) (int64, error)
	Cancel(ctx context.Context, id string) (int64, error)
	CountByClient(ctx context.Context, clientID string) (int, error)
	CountByTasker(ctx context.Context, taskerID string) (int, error)
}

func NewTaskRepository(conn *sqlx.DB) TaskRepository {
	return &SQL{conn: conn}
}

const (
	insertTaskQuery = `INSERT INTO task (id, title, description, category, client_id, tasker_id, location, budget_min, budget_max, status, priority, estimated_duration, required_skills, images, scheduled_time, created_at)
		VALUES (?, ?, ?, ?, ?, NULL, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`
	getTaskBase = `SELECT id, title, description, category, client_id, tasker_id, location, budget_min, budget_max, status, priority, estimated_duration, required_skills, images, scheduled_time, accepted_at, started_at, completed_at, created_at FROM task WHERE true`

	// Lifecycle transitions are single conditional updates: the status guard in
	// the WHERE clause is the compare-and-set, so two competing calls can never
	// both observe the precondition.
	acceptTaskQuery   = `UPDATE task SET tasker_id = ?, status = ?, accepted_at = NOW() WHERE id = ? AND status = ?`
	startTaskQuery    = `UPDATE task SET status = ?, started_at = NOW() WHERE id = ? AND status = ?`
	completeTaskQuery = `UPDATE task SET status = ?, completed_at = NOW() WHERE id = ? AND status = ?`
	cancelTaskQuery   = `UPDATE task SET status = ? WHERE id = ? AND status = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.TaskEntity) (*model.TaskEntity, error) {
	_, err := s.conn.ExecContext(ctx, insertTaskQuery,
		data.ID, data.Title, data.Description, data.Category, data.ClientID,
		data.Location, data.BudgetMin, data.BudgetMax, data.Status, data.Priority,
		data.EstimatedDuration, data.RequiredSkills, data.Images, data.ScheduledTime)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, data.ID)
}

func (s *SQL) Get(ctx context.Context, id string) (*model.TaskEntity, error) {
	var entity model.TaskEntity
	if err := s.conn.QueryRowxContext(ctx, getTaskBase+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, filter *model.TaskFilter, limit int) ([]model.TaskEntity, error) {
	query := getTaskBase
	args := make([]any, 0, 5)

	if filter.Category != "" {
		query += " AND category = ?"
		args = append(args, filter.Category)
	}
	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}
	if filter.ClientID != "" {
		query += " AND client_id = ?"
		args = append(args, filter.ClientID)
	}
	if filter.TaskerID != "" {
		query += " AND tasker_id = ?"
		args = append(args, filter.TaskerID)
	}
	query += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]model.TaskEntity, 0)
	for rows.Next() {
		var entity model.TaskEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		tasks = append(tasks, entity)
	}
	return tasks, rows.Err()
}

func (s *SQL) Accept(ctx context.Context, id, taskerID string) (int64, error) {
	res, err := s.conn.ExecContext(ctx, acceptTaskQuery, taskerID, constant.TaskStatusAccepted, id, constant.TaskStatusPosted)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQL) Start(ctx context.Context, id string) (int64, error) {
	res, err := s.conn.ExecContext(ctx, startTaskQuery, constant.TaskStatusInProgress, id, constant.TaskStatusAccepted)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQL) Complete(ctx context.Context, id string) (int64, error) {
	res, err := s.conn.ExecContext(ctx, completeTaskQuery, constant.TaskStatusCompleted, id, constant.TaskStatusInProgress)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQL) Cancel(ctx context.Context, id string) (int64, error) {
	res, err := s.conn.ExecContext(ctx, cancelTaskQuery, constant.TaskStatusCancelled, id, constant.TaskStatusPosted)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQL) CountByClient(ctx context.Context, clientID string) (int, error) {
	var count int
	if err := s.conn.GetContext(ctx, &count, "SELECT COUNT(*) FROM task WHERE client_id = ?", clientID); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *SQL) CountByTasker(ctx context.Context, taskerID string) (int, error) {
	var count int
	if err := s.conn.GetContext(ctx, &count, "SELECT COUNT(*) FROM task WHERE tasker_id = ?", taskerID); err != nil {
		return 0, err
	}
	return count, nil
}
