package message

import (
	"context"

	"github.com/muhammadheryan/task-marketplace/constant"
	"github.com/muhammadheryan/task-marketplace/model"
	messagerepo "github.com/muhammadheryan/task-marketplace/repository/message"
	taskrepo "github.com/muhammadheryan/task-marketplace/repository/task"
	"github.com/muhammadheryan/task-marketplace/utils/errors"
	"github.com/muhammadheryan/task-marketplace/utils/logger"
	"go.uber.org/zap"
)

const listLimit = 100

type MessageApp interface {
	Send(ctx context.Context, req *model.MessageCreateRequest) (*model.MessageEntity, error)
	ListByTask(ctx context.Context, taskID string) ([]model.MessageEntity, error)
	RecordReminder(ctx context.Context, taskID string) error
}

type messageAppImpl struct {
	messageRepo messagerepo.MessageRepository
	taskRepo    taskrepo.TaskRepository
}

func NewMessageApp(messageRepo messagerepo.MessageRepository, taskRepo taskrepo.TaskRepository) MessageApp {
	return &messageAppImpl{messageRepo: messageRepo, taskRepo: taskRepo}
}

func (s *messageAppImpl) Send(ctx context.Context, req *model.MessageCreateRequest) (*model.MessageEntity, error) {
	messageType := req.MessageType
	if messageType == "" {
		messageType = constant.MessageTypeText
	}

	entity := &model.MessageEntity{
		ID:          model.NewID(),
		TaskID:      req.TaskID,
		SenderID:    req.SenderID,
		ReceiverID:  req.ReceiverID,
		Content:     req.Content,
		MessageType: messageType,
	}

	entity, err := s.messageRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[SendMessage] err messageRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *messageAppImpl) ListByTask(ctx context.Context, taskID string) ([]model.MessageEntity, error) {
	messages, err := s.messageRepo.ListByTask(ctx, taskID, listLimit)
	if err != nil {
		logger.Error("[ListMessages] err messageRepo.ListByTask", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return messages, nil
}

// RecordReminder appends a system message to the task thread when the
// reminder consumer fires for a scheduled task. Clients pick it up on their
// next poll.
func (s *messageAppImpl) RecordReminder(ctx context.Context, taskID string) error {
	task, err := s.taskRepo.Get(ctx, taskID)
	if err != nil {
		logger.Error("[RecordReminder] err taskRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if task == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	entity := &model.MessageEntity{
		ID:          model.NewID(),
		TaskID:      task.ID,
		SenderID:    "system",
		ReceiverID:  task.ClientID,
		Content:     "Reminder: your scheduled task \"" + task.Title + "\" is due.",
		MessageType: constant.MessageTypeSystem,
	}

	if _, err := s.messageRepo.Create(ctx, entity); err != nil {
		logger.Error("[RecordReminder] err messageRepo.Create", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
