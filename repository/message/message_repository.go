package message

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/task-marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type MessageRepository interface {
	Create(ctx context.Context, data *model.MessageEntity) (*model.MessageEntity, error)
	ListByTask(ctx context.Context, taskID string, limit int) ([]model.MessageEntity, error)
}

func NewMessageRepository(conn *sqlx.DB) MessageRepository {
	return &SQL{conn: conn}
}

const (
	insertMessageQuery = `INSERT INTO message (id, task_id, sender_id, receiver_id, content, message_type, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())`
	// Thread listing is oldest-first so polling clients append in order.
	listMessagesQuery = `SELECT id, task_id, sender_id, receiver_id, content, message_type, created_at FROM message WHERE task_id = ? ORDER BY created_at ASC LIMIT ?`
)

func (s *SQL) Create(ctx context.Context, data *model.MessageEntity) (*model.MessageEntity, error) {
	_, err := s.conn.ExecContext(ctx, insertMessageQuery,
		data.ID, data.TaskID, data.SenderID, data.ReceiverID, data.Content, data.MessageType)
	if err != nil {
		return nil, err
	}

	var entity model.MessageEntity
	row := s.conn.QueryRowxContext(ctx, "SELECT id, task_id, sender_id, receiver_id, content, message_type, created_at FROM message WHERE id = ?", data.ID)
	if err := row.StructScan(&entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) ListByTask(ctx context.Context, taskID string, limit int) ([]model.MessageEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listMessagesQuery, taskID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]model.MessageEntity, 0)
	for rows.Next() {
		var entity model.MessageEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		messages = append(messages, entity)
	}
	return messages, rows.Err()
}
