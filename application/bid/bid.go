package bid

import (
	"context"

	"github.com/muhammadheryan/task-marketplace/constant"
	"github.com/muhammadheryan/task-marketplace/model"
	bidrepo "github.com/muhammadheryan/task-marketplace/repository/bid"
	"github.com/muhammadheryan/task-marketplace/utils/errors"
	"github.com/muhammadheryan/task-marketplace/utils/logger"
	"go.uber.org/zap"
)

const listLimit = 100

type BidApp interface {
	Create(ctx context.Context, req *model.TaskBidCreateRequest) (*model.TaskBidEntity, error)
	ListByTask(ctx context.Context, taskID string) ([]model.TaskBidEntity, error)
}

type bidAppImpl struct {
	bidRepo bidrepo.BidRepository
}

func NewBidApp(bidRepo bidrepo.BidRepository) BidApp {
	return &bidAppImpl{bidRepo: bidRepo}
}

// Create appends a bid. Bids never touch the task lifecycle: a task stays
// posted no matter how many bids it collects.
func (s *bidAppImpl) Create(ctx context.Context, req *model.TaskBidCreateRequest) (*model.TaskBidEntity, error) {
	entity := &model.TaskBidEntity{
		ID:                  model.NewID(),
		TaskID:              req.TaskID,
		TaskerID:            req.TaskerID,
		ProposedPrice:       req.ProposedPrice,
		Message:             req.Message,
		EstimatedCompletion: req.EstimatedCompletion,
	}

	entity, err := s.bidRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateBid] err bidRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *bidAppImpl) ListByTask(ctx context.Context, taskID string) ([]model.TaskBidEntity, error) {
	bids, err := s.bidRepo.ListByTask(ctx, taskID, listLimit)
	if err != nil {
		logger.Error("[ListBids] err bidRepo.ListByTask", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return bids, nil
}
