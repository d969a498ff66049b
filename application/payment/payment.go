package payment

import (
	"context"
	"strings"

	"github.com/muhammadheryan/task-marketplace/constant"
	"github.com/muhammadheryan/task-marketplace/model"
	paymentrepo "github.com/muhammadheryan/task-marketplace/repository/payment"
	accountrepo "github.com/muhammadheryan/task-marketplace/repository/paymentaccount"
	redisrepo "github.com/muhammadheryan/task-marketplace/repository/redis"
	taskrepo "github.com/muhammadheryan/task-marketplace/repository/task"
	"github.com/muhammadheryan/task-marketplace/thirdparty/gateway"
	"github.com/muhammadheryan/task-marketplace/utils/errors"
	"github.com/muhammadheryan/task-marketplace/utils/logger"
	"go.uber.org/zap"
)

const listLimit = 100

type PaymentApp interface {
	CreateAccount(ctx context.Context, req *model.PaymentAccountCreateRequest) (*model.PaymentAccountEntity, error)
	ListAccounts(ctx context.Context, userID string) ([]model.PaymentAccountEntity, error)
	AdjustWallet(ctx context.Context, accountID string, amount float64) error
	CreatePayment(ctx context.Context, req *model.PaymentCreateRequest) (*model.PaymentEntity, error)
}

type paymentAppImpl struct {
	accountRepo accountrepo.PaymentAccountRepository
	paymentRepo paymentrepo.PaymentRepository
	taskRepo    taskrepo.TaskRepository
	redisRepo   redisrepo.Repository
	gateway     gateway.PaymentGateway
}

func NewPaymentApp(accountRepo accountrepo.PaymentAccountRepository, paymentRepo paymentrepo.PaymentRepository, taskRepo taskrepo.TaskRepository, redisRepo redisrepo.Repository, gw gateway.PaymentGateway) PaymentApp {
	return &paymentAppImpl{
		accountRepo: accountRepo,
		paymentRepo: paymentRepo,
		taskRepo:    taskRepo,
		redisRepo:   redisRepo,
		gateway:     gw,
	}
}

// MaskCardNumber keeps the last 4 characters and replaces the rest with the
// fixed card mask pattern. The raw number is never stored.
func MaskCardNumber(number string) string {
	if number == "" {
		return ""
	}
	return "****-****-****-" + lastFour(number)
}

// MaskAccountNumber keeps the last 4 characters behind a short mask.
func MaskAccountNumber(number string) string {
	if number == "" {
		return ""
	}
	return "****" + lastFour(number)
}

func lastFour(s string) string {
	if len(s) <= 4 {
		return s
	}
	return s[len(s)-4:]
}

func (s *paymentAppImpl) CreateAccount(ctx context.Context, req *model.PaymentAccountCreateRequest) (*model.PaymentAccountEntity, error) {
	customerID, err := s.gateway.RegisterCustomer(ctx, req.UserID)
	if err != nil {
		logger.Error("[CreateAccount] err gateway.RegisterCustomer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	entity := &model.PaymentAccountEntity{
		ID:                model.NewID(),
		UserID:            req.UserID,
		Type:              req.Type,
		CardNumber:        MaskCardNumber(strings.TrimSpace(req.CardNumber)),
		CardHolder:        req.CardHolder,
		BankName:          req.BankName,
		AccountNumber:     MaskAccountNumber(strings.TrimSpace(req.AccountNumber)),
		RoutingNumber:     req.RoutingNumber,
		IsPrimary:         req.IsPrimary,
		GatewayCustomerID: customerID,
	}

	entity, err = s.accountRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateAccount] err accountRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *paymentAppImpl) ListAccounts(ctx context.Context, userID string) ([]model.PaymentAccountEntity, error) {
	accounts, err := s.accountRepo.ListByUser(ctx, userID, listLimit)
	if err != nil {
		logger.Error("[ListAccounts] err accountRepo.ListByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return accounts, nil
}

// AdjustWallet applies an unconditional increment to a wallet balance. The
// amount may be negative and the balance may go below zero.
func (s *paymentAppImpl) AdjustWallet(ctx context.Context, accountID string, amount float64) error {
	rows, err := s.accountRepo.IncrementWallet(ctx, accountID, amount)
	if err != nil {
		logger.Error("[AdjustWallet] err accountRepo.IncrementWallet", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if rows == 0 {
		account, err := s.accountRepo.Get(ctx, accountID)
		if err != nil {
			logger.Error("[AdjustWallet] err accountRepo.Get", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if account == nil {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		return errors.SetCustomError(constant.ErrNotWalletAccount)
	}
	return nil
}

// CreatePayment records a stub payment against a task. No money moves; the
// gateway only issues a placeholder payment id.
func (s *paymentAppImpl) CreatePayment(ctx context.Context, req *model.PaymentCreateRequest) (*model.PaymentEntity, error) {
	task, err := s.taskRepo.Get(ctx, req.TaskID)
	if err != nil {
		logger.Error("[CreatePayment] err taskRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if task == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	gatewayPaymentID, err := s.gateway.CreatePayment(ctx, req.TaskID, req.Amount)
	if err != nil {
		logger.Error("[CreatePayment] err gateway.CreatePayment", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	taskerID := ""
	if task.TaskerID != nil {
		taskerID = *task.TaskerID
	}

	entity := &model.PaymentEntity{
		ID:               model.NewID(),
		TaskID:           task.ID,
		ClientID:         task.ClientID,
		TaskerID:         taskerID,
		Amount:           req.Amount,
		PaymentMethod:    req.PaymentMethod,
		GatewayPaymentID: gatewayPaymentID,
		Status:           constant.PaymentStatusPending,
	}

	entity, err = s.paymentRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreatePayment] err paymentRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Earnings feed the tasker's dashboard summary.
	if taskerID != "" {
		if err := s.redisRepo.DeleteDashboard(ctx, taskerID); err != nil {
			logger.Warn("[CreatePayment] drop dashboard cache", zap.String("error", err.Error()))
		}
	}

	return entity, nil
}
