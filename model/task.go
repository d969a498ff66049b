package model

import (
	"time"

	"github.com/muhammadheryan/task-marketplace/constant"
)

// TaskEntity represents the task table entity. Status drives the lifecycle;
// TaskerID stays empty until acceptance and is never reassigned.
type TaskEntity struct {
	ID                string                `db:"id" json:"id"`
	Title             string                `db:"title" json:"title"`
	Description       string                `db:"description" json:"description"`
	Category          constant.TaskCategory `db:"category" json:"category"`
	ClientID          string                `db:"client_id" json:"client_id"`
	TaskerID          *string               `db:"tasker_id" json:"tasker_id"`
	Location          Location              `db:"location" json:"location"`
	BudgetMin         float64               `db:"budget_min" json:"budget_min"`
	BudgetMax         float64               `db:"budget_max" json:"budget_max"`
	Status            constant.TaskStatus   `db:"status" json:"status"`
	Priority          string                `db:"priority" json:"priority"`
	EstimatedDuration *int                  `db:"estimated_duration" json:"estimated_duration,omitempty"`
	RequiredSkills    StringList            `db:"required_skills" json:"required_skills"`
	Images            StringList            `db:"images" json:"images"`
	ScheduledTime     *time.Time            `db:"scheduled_time" json:"scheduled_time"`
	AcceptedAt        *time.Time            `db:"accepted_at" json:"accepted_at"`
	StartedAt         *time.Time            `db:"started_at" json:"started_at"`
	CompletedAt       *time.Time            `db:"completed_at" json:"completed_at"`
	CreatedAt         time.Time             `db:"created_at" json:"created_at"`
}

// TaskFilter for querying tasks
type TaskFilter struct {
	Category constant.TaskCategory
	Status   constant.TaskStatus
	ClientID string
	TaskerID string
}

// TaskCreateRequest for posting a new task
type TaskCreateRequest struct {
	Title             string                `json:"title" validate:"required"`
	Description       string                `json:"description" validate:"required"`
	Category          constant.TaskCategory `json:"category" validate:"required,oneof=delivery cleaning handyman moving beauty tech_support tutoring pet_care transportation other"`
	ClientID          string                `json:"client_id" validate:"required"`
	Location          Location              `json:"location" validate:"required"`
	BudgetMin         float64               `json:"budget_min" validate:"gte=0"`
	BudgetMax         float64               `json:"budget_max" validate:"gtefield=BudgetMin"`
	Priority          string                `json:"priority" validate:"omitempty,oneof=normal urgent scheduled"`
	EstimatedDuration *int                  `json:"estimated_duration"`
	RequiredSkills    []string              `json:"required_skills"`
	Images            []string              `json:"images"`
	ScheduledTime     *time.Time            `json:"scheduled_time"`
}

// TransitionMessage is the body returned by lifecycle endpoints.
type TransitionMessage struct {
	Message string `json:"message"`
}
