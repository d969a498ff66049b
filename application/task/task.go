package task

import (
	"context"

	"github.com/muhammadheryan/task-marketplace/constant"
	"github.com/muhammadheryan/task-marketplace/model"
	taskrepo "github.com/muhammadheryan/task-marketplace/repository/task"
	"github.com/muhammadheryan/task-marketplace/thirdparty/rabbitmq"
	"github.com/muhammadheryan/task-marketplace/utils/errors"
	"github.com/muhammadheryan/task-marketplace/utils/logger"
	"go.uber.org/zap"
)

const listLimit = 100

type TaskApp interface {
	Create(ctx context.Context, req *model.TaskCreateRequest) (*model.TaskEntity, error)
	Get(ctx context.Context, id string) (*model.TaskEntity, error)
	List(ctx context.Context, filter *model.TaskFilter) ([]model.TaskEntity, error)
	Accept(ctx context.Context, id, taskerID string) error
	Start(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
}

type taskAppImpl struct {
	taskRepo  taskrepo.TaskRepository
	publisher *rabbitmq.Publisher
}

func NewTaskApp(taskRepo taskrepo.TaskRepository, publisher *rabbitmq.Publisher) TaskApp {
	return &taskAppImpl{taskRepo: taskRepo, publisher: publisher}
}

func (s *taskAppImpl) Create(ctx context.Context, req *model.TaskCreateRequest) (*model.TaskEntity, error) {
	priority := req.Priority
	if priority == "" {
		priority = constant.TaskPriorityNormal
	}

	entity := &model.TaskEntity{
		ID:                model.NewID(),
		Title:             req.Title,
		Description:       req.Description,
		Category:          req.Category,
		ClientID:          req.ClientID,
		Location:          req.Location,
		BudgetMin:         req.BudgetMin,
		BudgetMax:         req.BudgetMax,
		Status:            constant.TaskStatusPosted,
		Priority:          priority,
		EstimatedDuration: req.EstimatedDuration,
		RequiredSkills:    req.RequiredSkills,
		Images:            req.Images,
		ScheduledTime:     req.ScheduledTime,
	}

	entity, err := s.taskRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateTask] err taskRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Scheduled tasks get a delayed reminder; a publish failure never fails
	// the create.
	if entity.ScheduledTime != nil && s.publisher != nil {
		msg := rabbitmq.TaskReminderMessage{
			TaskID:      entity.ID,
			ClientID:    entity.ClientID,
			ScheduledAt: *entity.ScheduledTime,
		}
		if err := s.publisher.PublishTaskReminder(msg); err != nil {
			logger.Error("[CreateTask] publish task reminder", zap.String("error", err.Error()))
		}
	}

	return entity, nil
}

func (s *taskAppImpl) Get(ctx context.Context, id string) (*model.TaskEntity, error) {
	entity, err := s.taskRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[GetTask] err taskRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *taskAppImpl) List(ctx context.Context, filter *model.TaskFilter) ([]model.TaskEntity, error) {
	tasks, err := s.taskRepo.List(ctx, filter, listLimit)
	if err != nil {
		logger.Error("[ListTasks] err taskRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return tasks, nil
}

// Accept assigns a tasker through a single conditional update. Only a task
// still in posted status can be won; a second accept, or two racing accepts,
// fail the status guard inside the store.
func (s *taskAppImpl) Accept(ctx context.Context, id, taskerID string) error {
	rows, err := s.taskRepo.Accept(ctx, id, taskerID)
	if err != nil {
		logger.Error("[AcceptTask] err taskRepo.Accept", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if rows == 0 {
		return s.transitionFailure(ctx, id, constant.ErrTaskNotAvailable)
	}
	return nil
}

// Start requires the task to be accepted first.
func (s *taskAppImpl) Start(ctx context.Context, id string) error {
	rows, err := s.taskRepo.Start(ctx, id)
	if err != nil {
		logger.Error("[StartTask] err taskRepo.Start", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if rows == 0 {
		return s.transitionFailure(ctx, id, constant.ErrInvalidTransition)
	}
	return nil
}

// Complete requires the task to be in progress.
func (s *taskAppImpl) Complete(ctx context.Context, id string) error {
	rows, err := s.taskRepo.Complete(ctx, id)
	if err != nil {
		logger.Error("[CompleteTask] err taskRepo.Complete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if rows == 0 {
		return s.transitionFailure(ctx, id, constant.ErrInvalidTransition)
	}
	return nil
}

// Cancel withdraws a task that has not been accepted yet.
func (s *taskAppImpl) Cancel(ctx context.Context, id string) error {
	rows, err := s.taskRepo.Cancel(ctx, id)
	if err != nil {
		logger.Error("[CancelTask] err taskRepo.Cancel", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if rows == 0 {
		return s.transitionFailure(ctx, id, constant.ErrInvalidTransition)
	}
	return nil
}

// transitionFailure decides whether a zero-row conditional update means the
// task does not exist or its status blocked the transition.
func (s *taskAppImpl) transitionFailure(ctx context.Context, id string, blocked constant.ErrorType) error {
	entity, err := s.taskRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[TaskTransition] err taskRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return errors.SetCustomError(blocked)
}
