package payment_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	apppayment "github.com/muhammadheryan/task-marketplace/application/payment"
	"github.com/muhammadheryan/task-marketplace/constant"
	paymentmocks "github.com/muhammadheryan/task-marketplace/mocks/repository/payment"
	accountmocks "github.com/muhammadheryan/task-marketplace/mocks/repository/paymentaccount"
	redismocks "github.com/muhammadheryan/task-marketplace/mocks/repository/redis"
	taskmocks "github.com/muhammadheryan/task-marketplace/mocks/repository/task"
	gatewaymocks "github.com/muhammadheryan/task-marketplace/mocks/thirdparty/gateway"
	"github.com/muhammadheryan/task-marketplace/model"
	"github.com/muhammadheryan/task-marketplace/thirdparty/gateway"
	cerr "github.com/muhammadheryan/task-marketplace/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestMaskCardNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   string
	}{
		{name: "full card keeps last four", number: "4242424242424242", want: "****-****-****-4242"},
		{name: "short input is passed through behind the mask", number: "42", want: "****-****-****-42"},
		{name: "empty stays empty", number: "", want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := apppayment.MaskCardNumber(tt.number); got != tt.want {
				t.Fatalf("MaskCardNumber(%q) = %q, want %q", tt.number, got, tt.want)
			}
		})
	}
}

func TestMaskAccountNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   string
	}{
		{name: "account keeps last four", number: "123456789", want: "****6789"},
		{name: "four digits keep everything", number: "6789", want: "****6789"},
		{name: "empty stays empty", number: "", want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := apppayment.MaskAccountNumber(tt.number); got != tt.want {
				t.Fatalf("MaskAccountNumber(%q) = %q, want %q", tt.number, got, tt.want)
			}
		})
	}
}

func TestPaymentApp_CreateAccount(t *testing.T) {
	type fields struct {
		accountRepo *accountmocks.PaymentAccountRepository
		gateway     *gatewaymocks.PaymentGateway
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.PaymentAccountCreateRequest
		mockCall func(f fields)
		wantErr  bool
	}{
		{
			name: "success: card number is masked before the store sees it",
			fields: fields{
				accountRepo: accountmocks.NewPaymentAccountRepository(t),
				gateway:     gatewaymocks.NewPaymentGateway(t),
			},
			req: &model.PaymentAccountCreateRequest{
				UserID:     "user-1",
				Type:       constant.PaymentMethodCard,
				CardNumber: " 4242424242424242 ",
				CardHolder: "Jane Doe",
			},
			mockCall: func(f fields) {
				f.gateway.
					On("RegisterCustomer", mock.Anything, "user-1").
					Return(gateway.PlaceholderToken, nil).
					Once()
				f.accountRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(e *model.PaymentAccountEntity) bool {
						return e.CardNumber == "****-****-****-4242" &&
							e.GatewayCustomerID == gateway.PlaceholderToken
					})).
					Return(&model.PaymentAccountEntity{ID: "acct-1"}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "success: bank account number is masked",
			fields: fields{
				accountRepo: accountmocks.NewPaymentAccountRepository(t),
				gateway:     gatewaymocks.NewPaymentGateway(t),
			},
			req: &model.PaymentAccountCreateRequest{
				UserID:        "user-1",
				Type:          constant.PaymentMethodBankAccount,
				BankName:      "First Bank",
				AccountNumber: "123456789",
				RoutingNumber: "021000021",
			},
			mockCall: func(f fields) {
				f.gateway.
					On("RegisterCustomer", mock.Anything, "user-1").
					Return(gateway.PlaceholderToken, nil).
					Once()
				f.accountRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(e *model.PaymentAccountEntity) bool {
						return e.AccountNumber == "****6789" && e.CardNumber == ""
					})).
					Return(&model.PaymentAccountEntity{ID: "acct-2"}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: gateway registration fails",
			fields: fields{
				accountRepo: accountmocks.NewPaymentAccountRepository(t),
				gateway:     gatewaymocks.NewPaymentGateway(t),
			},
			req: &model.PaymentAccountCreateRequest{
				UserID: "user-1",
				Type:   constant.PaymentMethodWallet,
			},
			mockCall: func(f fields) {
				f.gateway.
					On("RegisterCustomer", mock.Anything, "user-1").
					Return("", errors.New("gateway down")).
					Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apppayment.NewPaymentApp(
				tt.fields.accountRepo,
				paymentmocks.NewPaymentRepository(t),
				taskmocks.NewTaskRepository(t),
				redismocks.NewRepository(t),
				tt.fields.gateway,
			)

			_, err := app.CreateAccount(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateAccount() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPaymentApp_AdjustWallet(t *testing.T) {
	type fields struct {
		accountRepo *accountmocks.PaymentAccountRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       string
		amount   float64
		mockCall func(f fields)
		wantErr  bool
		errType  constant.ErrorType
	}{
		{
			name: "success: wallet is topped up",
			fields: fields{
				accountRepo: accountmocks.NewPaymentAccountRepository(t),
			},
			id:     "acct-1",
			amount: 250,
			mockCall: func(f fields) {
				f.accountRepo.
					On("IncrementWallet", mock.Anything, "acct-1", 250.0).
					Return(int64(1), nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "success: negative amount may push the balance below zero",
			fields: fields{
				accountRepo: accountmocks.NewPaymentAccountRepository(t),
			},
			id:     "acct-1",
			amount: -100,
			mockCall: func(f fields) {
				f.accountRepo.
					On("IncrementWallet", mock.Anything, "acct-1", -100.0).
					Return(int64(1), nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: unknown account",
			fields: fields{
				accountRepo: accountmocks.NewPaymentAccountRepository(t),
			},
			id:     "nope",
			amount: 10,
			mockCall: func(f fields) {
				f.accountRepo.
					On("IncrementWallet", mock.Anything, "nope", 10.0).
					Return(int64(0), nil).
					Once()
				f.accountRepo.
					On("Get", mock.Anything, "nope").
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errType: constant.ErrNotFound,
		},
		{
			name: "error: card account has no wallet balance",
			fields: fields{
				accountRepo: accountmocks.NewPaymentAccountRepository(t),
			},
			id:     "acct-2",
			amount: 10,
			mockCall: func(f fields) {
				f.accountRepo.
					On("IncrementWallet", mock.Anything, "acct-2", 10.0).
					Return(int64(0), nil).
					Once()
				f.accountRepo.
					On("Get", mock.Anything, "acct-2").
					Return(&model.PaymentAccountEntity{ID: "acct-2", Type: constant.PaymentMethodCard}, nil).
					Once()
			},
			wantErr: true,
			errType: constant.ErrNotWalletAccount,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apppayment.NewPaymentApp(
				tt.fields.accountRepo,
				paymentmocks.NewPaymentRepository(t),
				taskmocks.NewTaskRepository(t),
				redismocks.NewRepository(t),
				gatewaymocks.NewPaymentGateway(t),
			)

			err := app.AdjustWallet(context.Background(), tt.id, tt.amount)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AdjustWallet() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errType] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errType])
				}
			}
		})
	}
}

func TestPaymentApp_CreatePayment(t *testing.T) {
	taskerID := "tasker-1"

	type fields struct {
		paymentRepo *paymentmocks.PaymentRepository
		taskRepo    *taskmocks.TaskRepository
		redisRepo   *redismocks.Repository
		gateway     *gatewaymocks.PaymentGateway
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.PaymentCreateRequest
		mockCall func(f fields)
		want     *model.PaymentEntity
		wantErr  bool
		errType  constant.ErrorType
	}{
		{
			name: "success: stub payment starts pending with the placeholder gateway id",
			fields: fields{
				paymentRepo: paymentmocks.NewPaymentRepository(t),
				taskRepo:    taskmocks.NewTaskRepository(t),
				redisRepo:   redismocks.NewRepository(t),
				gateway:     gatewaymocks.NewPaymentGateway(t),
			},
			req: &model.PaymentCreateRequest{
				TaskID:        "task-1",
				PaymentMethod: constant.PaymentMethodCard,
				Amount:        120,
			},
			mockCall: func(f fields) {
				f.taskRepo.
					On("Get", mock.Anything, "task-1").
					Return(&model.TaskEntity{
						ID:       "task-1",
						ClientID: "client-1",
						TaskerID: &taskerID,
						Status:   constant.TaskStatusCompleted,
					}, nil).
					Once()
				f.gateway.
					On("CreatePayment", mock.Anything, "task-1", 120.0).
					Return(gateway.PlaceholderToken, nil).
					Once()
				f.paymentRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(e *model.PaymentEntity) bool {
						return e.Status == constant.PaymentStatusPending &&
							e.GatewayPaymentID == gateway.PlaceholderToken &&
							e.TaskerID == "tasker-1" &&
							e.ClientID == "client-1"
					})).
					Return(&model.PaymentEntity{
						ID:     "payment-1",
						TaskID: "task-1",
						Status: constant.PaymentStatusPending,
					}, nil).
					Once()
				f.redisRepo.
					On("DeleteDashboard", mock.Anything, "tasker-1").
					Return(nil).
					Once()
			},
			want: &model.PaymentEntity{
				ID:     "payment-1",
				TaskID: "task-1",
				Status: constant.PaymentStatusPending,
			},
			wantErr: false,
		},
		{
			name: "error: payment against an unknown task",
			fields: fields{
				paymentRepo: paymentmocks.NewPaymentRepository(t),
				taskRepo:    taskmocks.NewTaskRepository(t),
				redisRepo:   redismocks.NewRepository(t),
				gateway:     gatewaymocks.NewPaymentGateway(t),
			},
			req: &model.PaymentCreateRequest{
				TaskID:        "nope",
				PaymentMethod: constant.PaymentMethodWallet,
				Amount:        50,
			},
			mockCall: func(f fields) {
				f.taskRepo.
					On("Get", mock.Anything, "nope").
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errType: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apppayment.NewPaymentApp(
				accountmocks.NewPaymentAccountRepository(t),
				tt.fields.paymentRepo,
				tt.fields.taskRepo,
				tt.fields.redisRepo,
				tt.fields.gateway,
			)

			got, err := app.CreatePayment(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreatePayment() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errType] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errType])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("CreatePayment() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
