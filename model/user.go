package model

import (
	"time"

	"github.com/muhammadheryan/task-marketplace/constant"
)

// UserEntity represents the user table entity. Rating and TotalReviews are
// derived values maintained by the review application; RatingTotal is the
// running sum backing the incremental mean.
type UserEntity struct {
	ID           string            `db:"id" json:"id"`
	Email        string            `db:"email" json:"email"`
	Phone        string            `db:"phone" json:"phone"`
	Name         string            `db:"name" json:"name"`
	Role         constant.UserRole `db:"role" json:"role"`
	ProfileImage string            `db:"profile_image" json:"profile_image,omitempty"`
	Bio          string            `db:"bio" json:"bio,omitempty"`
	Skills       StringList        `db:"skills" json:"skills"`
	Location     NullLocation      `db:"location" json:"location"`
	Rating       float64           `db:"rating" json:"rating"`
	RatingTotal  int64             `db:"rating_total" json:"-"`
	TotalReviews int               `db:"total_reviews" json:"total_reviews"`
	IsVerified   bool              `db:"is_verified" json:"is_verified"`
	CreatedAt    time.Time         `db:"created_at" json:"created_at"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    string
	Role  constant.UserRole
	Skill string
}

// UserCreateRequest for user registration
type UserCreateRequest struct {
	Email  string            `json:"email" validate:"required,email"`
	Phone  string            `json:"phone" validate:"required"`
	Name   string            `json:"name" validate:"required"`
	Role   constant.UserRole `json:"role" validate:"required,oneof=client tasker both"`
	Bio    string            `json:"bio"`
	Skills []string          `json:"skills"`
}

// UserUpdateRequest carries a partial update; nil fields are left untouched.
type UserUpdateRequest struct {
	Email        *string   `json:"email" validate:"omitempty,email"`
	Phone        *string   `json:"phone"`
	Name         *string   `json:"name"`
	ProfileImage *string   `json:"profile_image"`
	Bio          *string   `json:"bio"`
	Skills       *[]string `json:"skills"`
	IsVerified   *bool     `json:"is_verified"`
}

// UserRatingState is the reviewee's aggregate read under lock during
// review recording.
type UserRatingState struct {
	RatingTotal  int64 `db:"rating_total"`
	TotalReviews int   `db:"total_reviews"`
}
