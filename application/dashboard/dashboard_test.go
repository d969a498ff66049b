package dashboard_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	appdashboard "github.com/muhammadheryan/task-marketplace/application/dashboard"
	"github.com/muhammadheryan/task-marketplace/cmd/config"
	"github.com/muhammadheryan/task-marketplace/constant"
	paymentmocks "github.com/muhammadheryan/task-marketplace/mocks/repository/payment"
	redismocks "github.com/muhammadheryan/task-marketplace/mocks/repository/redis"
	taskmocks "github.com/muhammadheryan/task-marketplace/mocks/repository/task"
	usermocks "github.com/muhammadheryan/task-marketplace/mocks/repository/user"
	"github.com/muhammadheryan/task-marketplace/model"
	cerr "github.com/muhammadheryan/task-marketplace/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestDashboardApp_Get(t *testing.T) {
	cfg := &config.Config{
		Dashboard: config.DashboardConfig{CacheTTL: 30 * time.Second},
	}

	type fields struct {
		userRepo    *usermocks.UserRepository
		taskRepo    *taskmocks.TaskRepository
		paymentRepo *paymentmocks.PaymentRepository
		redisRepo   *redismocks.Repository
	}
	tests := []struct {
		name     string
		fields   fields
		userID   string
		mockCall func(f fields)
		want     *model.DashboardResponse
		wantErr  bool
		errType  constant.ErrorType
	}{
		{
			name: "success: cache hit skips the store entirely",
			fields: fields{
				userRepo:    usermocks.NewUserRepository(t),
				taskRepo:    taskmocks.NewTaskRepository(t),
				paymentRepo: paymentmocks.NewPaymentRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			userID: "user-1",
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetDashboard", mock.Anything, "user-1").
					Return(&model.DashboardResponse{
						User:        &model.UserEntity{ID: "user-1"},
						ClientTasks: 3,
					}, nil).
					Once()
			},
			want: &model.DashboardResponse{
				User:        &model.UserEntity{ID: "user-1"},
				ClientTasks: 3,
			},
			wantErr: false,
		},
		{
			name: "success: both-role user gets counts, earnings and rating",
			fields: fields{
				userRepo:    usermocks.NewUserRepository(t),
				taskRepo:    taskmocks.NewTaskRepository(t),
				paymentRepo: paymentmocks.NewPaymentRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			userID: "user-2",
			mockCall: func(f fields) {
				user := &model.UserEntity{
					ID:           "user-2",
					Role:         constant.UserRoleBoth,
					Rating:       4.5,
					TotalReviews: 8,
				}
				f.redisRepo.
					On("GetDashboard", mock.Anything, "user-2").
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Get", mock.Anything, "user-2").
					Return(user, nil).
					Once()
				f.taskRepo.
					On("CountByClient", mock.Anything, "user-2").
					Return(2, nil).
					Once()
				f.taskRepo.
					On("CountByTasker", mock.Anything, "user-2").
					Return(5, nil).
					Once()
				f.paymentRepo.
					On("SumCompletedByTasker", mock.Anything, "user-2").
					Return(640.0, nil).
					Once()
				f.redisRepo.
					On("SetDashboard", mock.Anything, "user-2", mock.Anything, 30*time.Second).
					Return(nil).
					Once()
			},
			want: &model.DashboardResponse{
				User: &model.UserEntity{
					ID:           "user-2",
					Role:         constant.UserRoleBoth,
					Rating:       4.5,
					TotalReviews: 8,
				},
				ClientTasks:   2,
				TaskerTasks:   5,
				TotalEarnings: 640.0,
				Rating:        4.5,
				TotalReviews:  8,
			},
			wantErr: false,
		},
		{
			name: "success: client-only user never touches tasker counters",
			fields: fields{
				userRepo:    usermocks.NewUserRepository(t),
				taskRepo:    taskmocks.NewTaskRepository(t),
				paymentRepo: paymentmocks.NewPaymentRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			userID: "user-3",
			mockCall: func(f fields) {
				user := &model.UserEntity{ID: "user-3", Role: constant.UserRoleClient}
				f.redisRepo.
					On("GetDashboard", mock.Anything, "user-3").
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Get", mock.Anything, "user-3").
					Return(user, nil).
					Once()
				f.taskRepo.
					On("CountByClient", mock.Anything, "user-3").
					Return(4, nil).
					Once()
				f.redisRepo.
					On("SetDashboard", mock.Anything, "user-3", mock.Anything, 30*time.Second).
					Return(nil).
					Once()
			},
			want: &model.DashboardResponse{
				User:        &model.UserEntity{ID: "user-3", Role: constant.UserRoleClient},
				ClientTasks: 4,
			},
			wantErr: false,
		},
		{
			name: "error: unknown user",
			fields: fields{
				userRepo:    usermocks.NewUserRepository(t),
				taskRepo:    taskmocks.NewTaskRepository(t),
				paymentRepo: paymentmocks.NewPaymentRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			userID: "nope",
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetDashboard", mock.Anything, "nope").
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Get", mock.Anything, "nope").
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errType: constant.ErrNotFound,
		},
		{
			name: "error: count failure bubbles up as internal",
			fields: fields{
				userRepo:    usermocks.NewUserRepository(t),
				taskRepo:    taskmocks.NewTaskRepository(t),
				paymentRepo: paymentmocks.NewPaymentRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			userID: "user-4",
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetDashboard", mock.Anything, "user-4").
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Get", mock.Anything, "user-4").
					Return(&model.UserEntity{ID: "user-4", Role: constant.UserRoleClient}, nil).
					Once()
				f.taskRepo.
					On("CountByClient", mock.Anything, "user-4").
					Return(0, errors.New("db error")).
					Once()
			},
			wantErr: true,
			errType: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appdashboard.NewDashboardApp(cfg, tt.fields.userRepo, tt.fields.taskRepo, tt.fields.paymentRepo, tt.fields.redisRepo)

			got, err := app.Get(context.Background(), tt.userID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Get() error = %v, wantErr %v", err, tt.wantErr)
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
				t.Fatalf("Get() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
