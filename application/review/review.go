package review

import (
	"context"

	"github.com/muhammadheryan/task-marketplace/constant"
	"github.com/muhammadheryan/task-marketplace/model"
	redisrepo "github.com/muhammadheryan/task-marketplace/repository/redis"
	reviewrepo "github.com/muhammadheryan/task-marketplace/repository/review"
	txrepo "github.com/muhammadheryan/task-marketplace/repository/tx"
	userrepo "github.com/muhammadheryan/task-marketplace/repository/user"
	"github.com/muhammadheryan/task-marketplace/utils/errors"
	"github.com/muhammadheryan/task-marketplace/utils/logger"
	"go.uber.org/zap"
)

const listLimit = 100

type ReviewApp interface {
	Create(ctx context.Context, req *model.ReviewCreateRequest) (*model.ReviewEntity, error)
	ListByReviewee(ctx context.Context, revieweeID string) ([]model.ReviewEntity, error)
}

type reviewAppImpl struct {
	txRepo     txrepo.TxRepository
	reviewRepo reviewrepo.ReviewRepository
	userRepo   userrepo.UserRepository
	redisRepo  redisrepo.Repository
}

func NewReviewApp(txRepo txrepo.TxRepository, reviewRepo reviewrepo.ReviewRepository, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository) ReviewApp {
	return &reviewAppImpl{txRepo: txRepo, reviewRepo: reviewRepo, userRepo: userRepo, redisRepo: redisRepo}
}

// Create records the review and folds it into the reviewee's aggregate in one
// transaction. The reviewee's rating row is read under FOR UPDATE, so
// concurrent reviews for the same reviewee serialize and no update is lost.
// The stored mean always equals sum(rating)/count over all recorded reviews.
func (s *reviewAppImpl) Create(ctx context.Context, req *model.ReviewCreateRequest) (*model.ReviewEntity, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateReview] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	state, err := s.userRepo.GetRatingForUpdateTx(ctx, tx, req.RevieweeID)
	if err != nil {
		logger.Error("[CreateReview] get rating state", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if state == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	entity := &model.ReviewEntity{
		ID:         model.NewID(),
		TaskID:     req.TaskID,
		ReviewerID: req.ReviewerID,
		RevieweeID: req.RevieweeID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := s.reviewRepo.CreateTx(ctx, tx, entity); err != nil {
		logger.Error("[CreateReview] insert review", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	ratingTotal := state.RatingTotal + int64(req.Rating)
	totalReviews := state.TotalReviews + 1
	mean := float64(ratingTotal) / float64(totalReviews)

	if err := s.userRepo.UpdateRatingTx(ctx, tx, req.RevieweeID, mean, ratingTotal, totalReviews); err != nil {
		logger.Error("[CreateReview] update rating", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateReview] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	// The reviewee's dashboard summary is stale now.
	if err := s.redisRepo.DeleteDashboard(ctx, req.RevieweeID); err != nil {
		logger.Warn("[CreateReview] drop dashboard cache", zap.String("error", err.Error()))
	}

	created, err := s.reviewRepo.Get(ctx, entity.ID)
	if err != nil {
		logger.Error("[CreateReview] read back review", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return created, nil
}

func (s *reviewAppImpl) ListByReviewee(ctx context.Context, revieweeID string) ([]model.ReviewEntity, error) {
	reviews, err := s.reviewRepo.ListByReviewee(ctx, revieweeID, listLimit)
	if err != nil {
		logger.Error("[ListReviews] err reviewRepo.ListByReviewee", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return reviews, nil
}
