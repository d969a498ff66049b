package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/task-marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, id string) (*model.UserEntity, error)
	List(ctx context.Context, filter *model.UserFilter, limit int) ([]model.UserEntity, error)
	Update(ctx context.Context, id string, req *model.UserUpdateRequest) (int64, error)
	UpdateLocation(ctx context.Context, id string, loc *model.Location) (int64, error)
	GetRatingForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.UserRatingState, error)
	UpdateRatingTx(ctx context.Context, tx *sqlx.Tx, id string, rating float64, ratingTotal int64, totalReviews int) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO user (id, email, phone, name, role, profile_image, bio, skills, location, rating, rating_total, total_reviews, is_verified, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 0, 0, 0, false, NOW())`
	getUserBase = `SELECT id, email, phone, name, role, profile_image, bio, skills, location, rating, rating_total, total_reviews, is_verified, created_at FROM user WHERE true`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	_, err := s.conn.ExecContext(ctx, insertUserQuery,
		data.ID, data.Email, data.Phone, data.Name, data.Role,
		data.ProfileImage, data.Bio, data.Skills, data.Location)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, data.ID)
}

func (s *SQL) Get(ctx context.Context, id string) (*model.UserEntity, error) {
	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, getUserBase+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, filter *model.UserFilter, limit int) ([]model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 3)

	if filter.Role != "" {
		query += " AND role = ?"
		args = append(args, filter.Role)
	}
	if filter.Skill != "" {
		query += " AND JSON_CONTAINS(skills, JSON_QUOTE(?))"
		args = append(args, filter.Skill)
	}
	query += " LIMIT ?"
	args = append(args, limit)

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]model.UserEntity, 0)
	for rows.Next() {
		var entity model.UserEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		users = append(users, entity)
	}
	return users, rows.Err()
}

func (s *SQL) Update(ctx context.Context, id string, req *model.UserUpdateRequest) (int64, error) {
	query := "UPDATE user SET id = id"
	args := make([]any, 0, 8)

	if req.Email != nil {
		query += ", email = ?"
		args = append(args, *req.Email)
	}
	if req.Phone != nil {
		query += ", phone = ?"
		args = append(args, *req.Phone)
	}
	if req.Name != nil {
		query += ", name = ?"
		args = append(args, *req.Name)
	}
	if req.ProfileImage != nil {
		query += ", profile_image = ?"
		args = append(args, *req.ProfileImage)
	}
	if req.Bio != nil {
		query += ", bio = ?"
		args = append(args, *req.Bio)
	}
	if req.Skills != nil {
		query += ", skills = ?"
		args = append(args, model.StringList(*req.Skills))
	}
	if req.IsVerified != nil {
		query += ", is_verified = ?"
		args = append(args, *req.IsVerified)
	}
	query += " WHERE id = ?"
	args = append(args, id)

	res, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQL) UpdateLocation(ctx context.Context, id string, loc *model.Location) (int64, error) {
	res, err := s.conn.ExecContext(ctx, "UPDATE user SET location = ? WHERE id = ?", loc, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// GetRatingForUpdateTx locks the reviewee's aggregate row for the duration of
// the surrounding transaction so concurrent review writes serialize.
func (s *SQL) GetRatingForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.UserRatingState, error) {
	var state model.UserRatingState
	row := tx.QueryRowxContext(ctx, "SELECT rating_total, total_reviews FROM user WHERE id = ? FOR UPDATE", id)
	if err := row.StructScan(&state); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &state, nil
}

func (s *SQL) UpdateRatingTx(ctx context.Context, tx *sqlx.Tx, id string, rating float64, ratingTotal int64, totalReviews int) error {
	_, err := tx.ExecContext(ctx, "UPDATE user SET rating = ?, rating_total = ?, total_reviews = ? WHERE id = ?",
		rating, ratingTotal, totalReviews, id)
	return err
}
