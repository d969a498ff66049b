package dashboard

import (
	"context"

	"github.com/muhammadheryan/task-marketplace/cmd/config"
	"github.com/muhammadheryan/task-marketplace/constant"
	"github.com/muhammadheryan/task-marketplace/model"
	paymentrepo "github.com/muhammadheryan/task-marketplace/repository/payment"
	redisrepo "github.com/muhammadheryan/task-marketplace/repository/redis"
	taskrepo "github.com/muhammadheryan/task-marketplace/repository/task"
	userrepo "github.com/muhammadheryan/task-marketplace/repository/user"
	"github.com/muhammadheryan/task-marketplace/utils/errors"
	"github.com/muhammadheryan/task-marketplace/utils/logger"
	"go.uber.org/zap"
)

type DashboardApp interface {
	Get(ctx context.Context, userID string) (*model.DashboardResponse, error)
}

type dashboardAppImpl struct {
	config      *config.Config
	userRepo    userrepo.UserRepository
	taskRepo    taskrepo.TaskRepository
	paymentRepo paymentrepo.PaymentRepository
	redisRepo   redisrepo.Repository
}

func NewDashboardApp(cfg *config.Config, userRepo userrepo.UserRepository, taskRepo taskrepo.TaskRepository, paymentRepo paymentrepo.PaymentRepository, redisRepo redisrepo.Repository) DashboardApp {
	return &dashboardAppImpl{
		config:      cfg,
		userRepo:    userRepo,
		taskRepo:    taskRepo,
		paymentRepo: paymentRepo,
		redisRepo:   redisRepo,
	}
}

// Get assembles the user's activity summary. The result is cached with a
// short TTL; review and payment writes drop the affected user's entry.
func (s *dashboardAppImpl) Get(ctx context.Context, userID string) (*model.DashboardResponse, error) {
	cached, err := s.redisRepo.GetDashboard(ctx, userID)
	if err != nil {
		logger.Warn("[Dashboard] cache read", zap.String("error", err.Error()))
	}
	if cached != nil {
		return cached, nil
	}

	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		logger.Error("[Dashboard] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	dashboard := &model.DashboardResponse{
		User:         user,
		Rating:       user.Rating,
		TotalReviews: user.TotalReviews,
	}

	if user.Role == constant.UserRoleClient || user.Role == constant.UserRoleBoth {
		count, err := s.taskRepo.CountByClient(ctx, userID)
		if err != nil {
			logger.Error("[Dashboard] err taskRepo.CountByClient", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		dashboard.ClientTasks = count
	}

	if user.Role == constant.UserRoleTasker || user.Role == constant.UserRoleBoth {
		count, err := s.taskRepo.CountByTasker(ctx, userID)
		if err != nil {
			logger.Error("[Dashboard] err taskRepo.CountByTasker", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		dashboard.TaskerTasks = count

		earnings, err := s.paymentRepo.SumCompletedByTasker(ctx, userID)
		if err != nil {
			logger.Error("[Dashboard] err paymentRepo.SumCompletedByTasker", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		dashboard.TotalEarnings = earnings
	}

	if err := s.redisRepo.SetDashboard(ctx, userID, dashboard, s.config.Dashboard.CacheTTL); err != nil {
		logger.Warn("[Dashboard] cache write", zap.String("error", err.Error()))
	}

	return dashboard, nil
}
