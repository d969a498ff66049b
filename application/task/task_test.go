package task_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	apptask "github.com/muhammadheryan/task-marketplace/application/task"
	"github.com/muhammadheryan/task-marketplace/constant"
	taskmocks "github.com/muhammadheryan/task-marketplace/mocks/repository/task"
	"github.com/muhammadheryan/task-marketplace/model"
	cerr "github.com/muhammadheryan/task-marketplace/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestTaskApp_Create(t *testing.T) {
	type fields struct {
		taskRepo *taskmocks.TaskRepository
	}
	type args struct {
		ctx context.Context
		req *model.TaskCreateRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.TaskEntity
		wantErr  bool
		errType  constant.ErrorType
	}{
		{
			name: "success: new task starts posted with default priority",
			fields: fields{
				taskRepo: taskmocks.NewTaskRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.TaskCreateRequest{
					Title:       "Assemble a bookshelf",
					Description: "Flat-pack shelf, tools provided",
					Category:    constant.CategoryHandyman,
					ClientID:    "client-1",
					Location:    model.Location{Latitude: -6.2, Longitude: 106.8, Address: "Jakarta"},
					BudgetMin:   50,
					BudgetMax:   100,
				},
			},
			mockCall: func(f fields) {
				f.taskRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(e *model.TaskEntity) bool {
						return e.ID != "" &&
							e.Status == constant.TaskStatusPosted &&
							e.Priority == constant.TaskPriorityNormal &&
							e.TaskerID == nil
					})).
					Return(&model.TaskEntity{
						ID:       "task-1",
						Title:    "Assemble a bookshelf",
						ClientID: "client-1",
						Status:   constant.TaskStatusPosted,
						Priority: constant.TaskPriorityNormal,
					}, nil).
					Once()
			},
			want: &model.TaskEntity{
				ID:       "task-1",
				Title:    "Assemble a bookshelf",
				ClientID: "client-1",
				Status:   constant.TaskStatusPosted,
				Priority: constant.TaskPriorityNormal,
			},
			wantErr: false,
		},
		{
			name: "success: explicit priority is kept",
			fields: fields{
				taskRepo: taskmocks.NewTaskRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.TaskCreateRequest{
					Title:       "Emergency pipe fix",
					Description: "Leaking pipe under the sink",
					Category:    constant.CategoryHandyman,
					ClientID:    "client-1",
					Location:    model.Location{Latitude: -6.2, Longitude: 106.8},
					BudgetMin:   80,
					BudgetMax:   150,
					Priority:    constant.TaskPriorityUrgent,
				},
			},
			mockCall: func(f fields) {
				f.taskRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(e *model.TaskEntity) bool {
						return e.Priority == constant.TaskPriorityUrgent
					})).
					Return(&model.TaskEntity{
						ID:       "task-2",
						Priority: constant.TaskPriorityUrgent,
						Status:   constant.TaskStatusPosted,
					}, nil).
					Once()
			},
			want: &model.TaskEntity{
				ID:       "task-2",
				Priority: constant.TaskPriorityUrgent,
				Status:   constant.TaskStatusPosted,
			},
			wantErr: false,
		},
		{
			name: "error: repository Create fails",
			fields: fields{
				taskRepo: taskmocks.NewTaskRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.TaskCreateRequest{
					Title:       "Walk my dog",
					Description: "Morning walk",
					Category:    constant.CategoryPetCare,
					ClientID:    "client-1",
					Location:    model.Location{Latitude: -6.2, Longitude: 106.8},
					BudgetMin:   10,
					BudgetMax:   20,
				},
			},
			mockCall: func(f fields) {
				f.taskRepo.
					On("Create", mock.Anything, mock.Anything).
					Return(nil, errors.New("db error")).
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
			app := apptask.NewTaskApp(tt.fields.taskRepo, nil)

			got, err := app.Create(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertErrType(t, err, tt.errType)
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Create() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTaskApp_Accept(t *testing.T) {
	type fields struct {
		taskRepo *taskmocks.TaskRepository
	}
	type args struct {
		ctx      context.Context
		id       string
		taskerID string
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errType  constant.ErrorType
	}{
		{
			name: "success: posted task is won",
			fields: fields{
				taskRepo: taskmocks.NewTaskRepository(t),
			},
			args: args{ctx: context.Background(), id: "task-1", taskerID: "tasker-1"},
			mockCall: func(f fields) {
				f.taskRepo.
					On("Accept", mock.Anything, "task-1", "tasker-1").
					Return(int64(1), nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: task already accepted",
			fields: fields{
				taskRepo: taskmocks.NewTaskRepository(t),
			},
			args: args{ctx: context.Background(), id: "task-1", taskerID: "tasker-2"},
			mockCall: func(f fields) {
				f.taskRepo.
					On("Accept", mock.Anything, "task-1", "tasker-2").
					Return(int64(0), nil).
					Once()
				taskerID := "tasker-1"
				f.taskRepo.
					On("Get", mock.Anything, "task-1").
					Return(&model.TaskEntity{
						ID:       "task-1",
						Status:   constant.TaskStatusAccepted,
						TaskerID: &taskerID,
					}, nil).
					Once()
			},
			wantErr: true,
			errType: constant.ErrTaskNotAvailable,
		},
		{
			name: "error: task does not exist",
			fields: fields{
				taskRepo: taskmocks.NewTaskRepository(t),
			},
			args: args{ctx: context.Background(), id: "nope", taskerID: "tasker-1"},
			mockCall: func(f fields) {
				f.taskRepo.
					On("Accept", mock.Anything, "nope", "tasker-1").
					Return(int64(0), nil).
					Once()
				f.taskRepo.
					On("Get", mock.Anything, "nope").
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errType: constant.ErrNotFound,
		},
		{
			name: "error: repository Accept fails",
			fields: fields{
				taskRepo: taskmocks.NewTaskRepository(t),
			},
			args: args{ctx: context.Background(), id: "task-1", taskerID: "tasker-1"},
			mockCall: func(f fields) {
				f.taskRepo.
					On("Accept", mock.Anything, "task-1", "tasker-1").
					Return(int64(0), errors.New("db error")).
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
			app := apptask.NewTaskApp(tt.fields.taskRepo, nil)

			err := app.Accept(tt.args.ctx, tt.args.id, tt.args.taskerID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Accept() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errType)
			}
		})
	}
}

func TestTaskApp_Start(t *testing.T) {
	type fields struct {
		taskRepo *taskmocks.TaskRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       string
		mockCall func(f fields)
		wantErr  bool
		errType  constant.ErrorType
	}{
		{
			name: "success: accepted task starts",
			fields: fields{
				taskRepo: taskmocks.NewTaskRepository(t),
			},
			id: "task-1",
			mockCall: func(f fields) {
				f.taskRepo.
					On("Start", mock.Anything, "task-1").
					Return(int64(1), nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: posted task cannot start",
			fields: fields{
				taskRepo: taskmocks.NewTaskRepository(t),
			},
			id: "task-1",
			mockCall: func(f fields) {
				f.taskRepo.
					On("Start", mock.Anything, "task-1").
					Return(int64(0), nil).
					Once()
				f.taskRepo.
					On("Get", mock.Anything, "task-1").
					Return(&model.TaskEntity{ID: "task-1", Status: constant.TaskStatusPosted}, nil).
					Once()
			},
			wantErr: true,
			errType: constant.ErrInvalidTransition,
		},
		{
			name: "error: task does not exist",
			fields: fields{
				taskRepo: taskmocks.NewTaskRepository(t),
			},
			id: "nope",
			mockCall: func(f fields) {
				f.taskRepo.
					On("Start", mock.Anything, "nope").
					Return(int64(0), nil).
					Once()
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
			app := apptask.NewTaskApp(tt.fields.taskRepo, nil)

			err := app.Start(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Start() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errType)
			}
		})
	}
}

func TestTaskApp_Complete(t *testing.T) {
	type fields struct {
		taskRepo *taskmocks.TaskRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       string
		mockCall func(f fields)
		wantErr  bool
		errType  constant.ErrorType
	}{
		{
			name: "success: in-progress task completes",
			fields: fields{
				taskRepo: taskmocks.NewTaskRepository(t),
			},
			id: "task-1",
			mockCall: func(f fields) {
				f.taskRepo.
					On("Complete", mock.Anything, "task-1").
					Return(int64(1), nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: accepted task must start first",
			fields: fields{
				taskRepo: taskmocks.NewTaskRepository(t),
			},
			id: "task-1",
			mockCall: func(f fields) {
				f.taskRepo.
					On("Complete", mock.Anything, "task-1").
					Return(int64(0), nil).
					Once()
				f.taskRepo.
					On("Get", mock.Anything, "task-1").
					Return(&model.TaskEntity{ID: "task-1", Status: constant.TaskStatusAccepted}, nil).
					Once()
			},
			wantErr: true,
			errType: constant.ErrInvalidTransition,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apptask.NewTaskApp(tt.fields.taskRepo, nil)

			err := app.Complete(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Complete() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errType)
			}
		})
	}
}

func TestTaskApp_Cancel(t *testing.T) {
	type fields struct {
		taskRepo *taskmocks.TaskRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       string
		mockCall func(f fields)
		wantErr  bool
		errType  constant.ErrorType
	}{
		{
			name: "success: posted task is withdrawn",
			fields: fields{
				taskRepo: taskmocks.NewTaskRepository(t),
			},
			id: "task-1",
			mockCall: func(f fields) {
				f.taskRepo.
					On("Cancel", mock.Anything, "task-1").
					Return(int64(1), nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: accepted task cannot be cancelled",
			fields: fields{
				taskRepo: taskmocks.NewTaskRepository(t),
			},
			id: "task-1",
			mockCall: func(f fields) {
				f.taskRepo.
					On("Cancel", mock.Anything, "task-1").
					Return(int64(0), nil).
					Once()
				f.taskRepo.
					On("Get", mock.Anything, "task-1").
					Return(&model.TaskEntity{ID: "task-1", Status: constant.TaskStatusAccepted}, nil).
					Once()
			},
			wantErr: true,
			errType: constant.ErrInvalidTransition,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apptask.NewTaskApp(tt.fields.taskRepo, nil)

			err := app.Cancel(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Cancel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errType)
			}
		})
	}
}

func TestTaskApp_Get(t *testing.T) {
	taskRepo := taskmocks.NewTaskRepository(t)
	taskRepo.
		On("Get", mock.Anything, "nope").
		Return(nil, nil).
		Once()

	app := apptask.NewTaskApp(taskRepo, nil)

	_, err := app.Get(context.Background(), "nope")
	if err == nil {
		t.Fatal("Get() error = nil, want not found")
	}
	assertErrType(t, err, constant.ErrNotFound)
}

func assertErrType(t *testing.T, err error, errType constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errType] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errType])
	}
}
