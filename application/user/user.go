package user

import (
	"context"

	"github.com/muhammadheryan/task-marketplace/constant"
	"github.com/muhammadheryan/task-marketplace/model"
	userrepo "github.com/muhammadheryan/task-marketplace/repository/user"
	"github.com/muhammadheryan/task-marketplace/utils/errors"
	"github.com/muhammadheryan/task-marketplace/utils/logger"
	"go.uber.org/zap"
)

const listLimit = 100

type UserApp interface {
	Create(ctx context.Context, req *model.UserCreateRequest) (*model.UserEntity, error)
	Get(ctx context.Context, id string) (*model.UserEntity, error)
	Update(ctx context.Context, id string, req *model.UserUpdateRequest) (*model.UserEntity, error)
	List(ctx context.Context, filter *model.UserFilter) ([]model.UserEntity, error)
	SetLocation(ctx context.Context, id string, loc *model.Location) error
	GetLocation(ctx context.Context, id string) (*model.Location, error)
}

type userAppImpl struct {
	userRepo userrepo.UserRepository
}

func NewUserApp(userRepo userrepo.UserRepository) UserApp {
	return &userAppImpl{userRepo: userRepo}
}

// Create registers a user. A fresh user starts unrated: rating 0 with zero
// reviews, unverified.
func (s *userAppImpl) Create(ctx context.Context, req *model.UserCreateRequest) (*model.UserEntity, error) {
	entity := &model.UserEntity{
		ID:     model.NewID(),
		Email:  req.Email,
		Phone:  req.Phone,
		Name:   req.Name,
		Role:   req.Role,
		Bio:    req.Bio,
		Skills: req.Skills,
	}

	entity, err := s.userRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateUser] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *userAppImpl) Get(ctx context.Context, id string) (*model.UserEntity, error) {
	entity, err := s.userRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[GetUser] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *userAppImpl) Update(ctx context.Context, id string, req *model.UserUpdateRequest) (*model.UserEntity, error) {
	rows, err := s.userRepo.Update(ctx, id, req)
	if err != nil {
		logger.Error("[UpdateUser] err userRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if rows == 0 {
		// MySQL reports zero affected rows both for a missing id and for a
		// no-change update, so confirm existence explicitly.
		existing, err := s.userRepo.Get(ctx, id)
		if err != nil {
			logger.Error("[UpdateUser] err userRepo.Get", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if existing == nil {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		return existing, nil
	}
	return s.Get(ctx, id)
}

func (s *userAppImpl) List(ctx context.Context, filter *model.UserFilter) ([]model.UserEntity, error) {
	users, err := s.userRepo.List(ctx, filter, listLimit)
	if err != nil {
		logger.Error("[ListUsers] err userRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return users, nil
}

func (s *userAppImpl) SetLocation(ctx context.Context, id string, loc *model.Location) error {
	rows, err := s.userRepo.UpdateLocation(ctx, id, loc)
	if err != nil {
		logger.Error("[SetLocation] err userRepo.UpdateLocation", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if rows == 0 {
		existing, err := s.userRepo.Get(ctx, id)
		if err != nil {
			logger.Error("[SetLocation] err userRepo.Get", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if existing == nil {
			return errors.SetCustomError(constant.ErrNotFound)
		}
	}
	return nil
}

// GetLocation returns the user's shared location; never-set locations are
// indistinguishable from unknown users and both report not found.
func (s *userAppImpl) GetLocation(ctx context.Context, id string) (*model.Location, error) {
	entity, err := s.userRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[GetLocation] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil || entity.Location.Location == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity.Location.Location, nil
}
