package model

import "time"

// TaskBidEntity is append-only: a bid is never updated or linked back to the
// task lifecycle.
type TaskBidEntity struct {
	ID                  string     `db:"id" json:"id"`
	TaskID              string     `db:"task_id" json:"task_id"`
	TaskerID            string     `db:"tasker_id" json:"tasker_id"`
	ProposedPrice       float64    `db:"proposed_price" json:"proposed_price"`
	Message             string     `db:"message" json:"message"`
	EstimatedCompletion *time.Time `db:"estimated_completion" json:"estimated_completion"`
	CreatedAt           time.Time  `db:"created_at" json:"created_at"`
}

// TaskBidCreateRequest for placing a bid on an open task
type TaskBidCreateRequest struct {
	TaskID              string     `json:"task_id" validate:"required"`
	TaskerID            string     `json:"tasker_id" validate:"required"`
	ProposedPrice       float64    `json:"proposed_price" validate:"required,gt=0"`
	Message             string     `json:"message" validate:"required"`
	EstimatedCompletion *time.Time `json:"estimated_completion"`
}
