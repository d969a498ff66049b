package model

import "time"

// MessageEntity represents the message table entity. Messages are append-only
// and listed in ascending creation order per task thread.
type MessageEntity struct {
	ID          string    `db:"id" json:"id"`
	TaskID      string    `db:"task_id" json:"task_id"`
	SenderID    string    `db:"sender_id" json:"sender_id"`
	ReceiverID  string    `db:"receiver_id" json:"receiver_id"`
	Content     string    `db:"content" json:"content"`
	MessageType string    `db:"message_type" json:"message_type"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// MessageCreateRequest for sending a message on a task thread
type MessageCreateRequest struct {
	TaskID      string `json:"task_id" validate:"required"`
	SenderID    string `json:"sender_id" validate:"required"`
	ReceiverID  string `json:"receiver_id" validate:"required"`
	Content     string `json:"content" validate:"required"`
	MessageType string `json:"message_type" validate:"omitempty,oneof=text image location system"`
}
