package model

import "time"

// ReviewEntity represents the review table entity.
type ReviewEntity struct {
	ID         string    `db:"id" json:"id"`
	TaskID     string    `db:"task_id" json:"task_id"`
	ReviewerID string    `db:"reviewer_id" json:"reviewer_id"`
	RevieweeID string    `db:"reviewee_id" json:"reviewee_id"`
	Rating     int       `db:"rating" json:"rating"`
	Comment    string    `db:"comment" json:"comment"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// ReviewCreateRequest for submitting a review. The same reviewer may review
// the same reviewee for the same task more than once; no dedup applies.
type ReviewCreateRequest struct {
	TaskID     string `json:"task_id" validate:"required"`
	ReviewerID string `json:"reviewer_id" validate:"required"`
	RevieweeID string `json:"reviewee_id" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" validate:"required"`
}
