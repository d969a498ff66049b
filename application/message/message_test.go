package message_test

import (
	"context"
	"errors"
	"testing"

	appmessage "github.com/muhammadheryan/task-marketplace/application/message"
	"github.com/muhammadheryan/task-marketplace/constant"
	messagemocks "github.com/muhammadheryan/task-marketplace/mocks/repository/message"
	taskmocks "github.com/muhammadheryan/task-marketplace/mocks/repository/task"
	"github.com/muhammadheryan/task-marketplace/model"
	cerr "github.com/muhammadheryan/task-marketplace/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestMessageApp_Send(t *testing.T) {
	type fields struct {
		messageRepo *messagemocks.MessageRepository
		taskRepo    *taskmocks.TaskRepository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.MessageCreateRequest
		mockCall func(f fields)
		wantErr  bool
	}{
		{
			name: "success: omitted type defaults to text",
			fields: fields{
				messageRepo: messagemocks.NewMessageRepository(t),
				taskRepo:    taskmocks.NewTaskRepository(t),
			},
			req: &model.MessageCreateRequest{
				TaskID:     "task-1",
				SenderID:   "client-1",
				ReceiverID: "tasker-1",
				Content:    "on my way",
			},
			mockCall: func(f fields) {
				f.messageRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(e *model.MessageEntity) bool {
						return e.MessageType == constant.MessageTypeText && e.Content == "on my way"
					})).
					Return(&model.MessageEntity{ID: "msg-1", MessageType: constant.MessageTypeText}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "success: explicit type is kept",
			fields: fields{
				messageRepo: messagemocks.NewMessageRepository(t),
				taskRepo:    taskmocks.NewTaskRepository(t),
			},
			req: &model.MessageCreateRequest{
				TaskID:      "task-1",
				SenderID:    "tasker-1",
				ReceiverID:  "client-1",
				Content:     "photo of the finished shelf",
				MessageType: constant.MessageTypeImage,
			},
			mockCall: func(f fields) {
				f.messageRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(e *model.MessageEntity) bool {
						return e.MessageType == constant.MessageTypeImage
					})).
					Return(&model.MessageEntity{ID: "msg-2", MessageType: constant.MessageTypeImage}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: repository Create fails",
			fields: fields{
				messageRepo: messagemocks.NewMessageRepository(t),
				taskRepo:    taskmocks.NewTaskRepository(t),
			},
			req: &model.MessageCreateRequest{
				TaskID:     "task-1",
				SenderID:   "client-1",
				ReceiverID: "tasker-1",
				Content:    "hello",
			},
			mockCall: func(f fields) {
				f.messageRepo.
					On("Create", mock.Anything, mock.Anything).
					Return(nil, errors.New("db error")).
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
			app := appmessage.NewMessageApp(tt.fields.messageRepo, tt.fields.taskRepo)

			_, err := app.Send(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Send() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMessageApp_RecordReminder(t *testing.T) {
	type fields struct {
		messageRepo *messagemocks.MessageRepository
		taskRepo    *taskmocks.TaskRepository
	}
	tests := []struct {
		name     string
		fields   fields
		taskID   string
		mockCall func(f fields)
		wantErr  bool
		errType  constant.ErrorType
	}{
		{
			name: "success: system message lands on the task thread",
			fields: fields{
				messageRepo: messagemocks.NewMessageRepository(t),
				taskRepo:    taskmocks.NewTaskRepository(t),
			},
			taskID: "task-1",
			mockCall: func(f fields) {
				f.taskRepo.
					On("Get", mock.Anything, "task-1").
					Return(&model.TaskEntity{
						ID:       "task-1",
						Title:    "Deep clean the kitchen",
						ClientID: "client-1",
					}, nil).
					Once()
				f.messageRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(e *model.MessageEntity) bool {
						return e.SenderID == "system" &&
							e.ReceiverID == "client-1" &&
							e.MessageType == constant.MessageTypeSystem &&
							e.Content == "Reminder: your scheduled task \"Deep clean the kitchen\" is due."
					})).
					Return(&model.MessageEntity{ID: "msg-3"}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: reminder for an unknown task",
			fields: fields{
				messageRepo: messagemocks.NewMessageRepository(t),
				taskRepo:    taskmocks.NewTaskRepository(t),
			},
			taskID: "nope",
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
			app := appmessage.NewMessageApp(tt.fields.messageRepo, tt.fields.taskRepo)

			err := app.RecordReminder(context.Background(), tt.taskID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RecordReminder() error = %v, wantErr %v", err, tt.wantErr)
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
