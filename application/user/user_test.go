package user_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	appuser "github.com/muhammadheryan/task-marketplace/application/user"
	"github.com/muhammadheryan/task-marketplace/constant"
	usermocks "github.com/muhammadheryan/task-marketplace/mocks/repository/user"
	"github.com/muhammadheryan/task-marketplace/model"
	cerr "github.com/muhammadheryan/task-marketplace/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestUserApp_Create(t *testing.T) {
	userRepo := usermocks.NewUserRepository(t)
	userRepo.
		On("Create", mock.Anything, mock.MatchedBy(func(e *model.UserEntity) bool {
			return e.ID != "" &&
				e.Email == "jane@example.com" &&
				e.Role == constant.UserRoleTasker &&
				e.Rating == 0 &&
				e.TotalReviews == 0 &&
				!e.IsVerified
		})).
		Return(&model.UserEntity{
			ID:    "user-1",
			Email: "jane@example.com",
			Role:  constant.UserRoleTasker,
		}, nil).
		Once()

	app := appuser.NewUserApp(userRepo)

	got, err := app.Create(context.Background(), &model.UserCreateRequest{
		Email:  "jane@example.com",
		Phone:  "+15550100",
		Name:   "Jane",
		Role:   constant.UserRoleTasker,
		Skills: []string{"plumbing"},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got.ID != "user-1" {
		t.Fatalf("Create() id = %s, want user-1", got.ID)
	}
}

func TestUserApp_Get(t *testing.T) {
	type fields struct {
		userRepo *usermocks.UserRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       string
		mockCall func(f fields)
		want     *model.UserEntity
		wantErr  bool
		errType  constant.ErrorType
	}{
		{
			name: "success: existing user",
			fields: fields{
				userRepo: usermocks.NewUserRepository(t),
			},
			id: "user-1",
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, "user-1").
					Return(&model.UserEntity{ID: "user-1", Name: "Jane"}, nil).
					Once()
			},
			want:    &model.UserEntity{ID: "user-1", Name: "Jane"},
			wantErr: false,
		},
		{
			name: "error: unknown user",
			fields: fields{
				userRepo: usermocks.NewUserRepository(t),
			},
			id: "nope",
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, "nope").
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errType: constant.ErrNotFound,
		},
		{
			name: "error: repository Get fails",
			fields: fields{
				userRepo: usermocks.NewUserRepository(t),
			},
			id: "user-1",
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, "user-1").
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
			app := appuser.NewUserApp(tt.fields.userRepo)

			got, err := app.Get(context.Background(), tt.id)
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

func TestUserApp_Update(t *testing.T) {
	name := "Janet"

	type fields struct {
		userRepo *usermocks.UserRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       string
		req      *model.UserUpdateRequest
		mockCall func(f fields)
		want     *model.UserEntity
		wantErr  bool
		errType  constant.ErrorType
	}{
		{
			name: "success: changed row is read back",
			fields: fields{
				userRepo: usermocks.NewUserRepository(t),
			},
			id:  "user-1",
			req: &model.UserUpdateRequest{Name: &name},
			mockCall: func(f fields) {
				f.userRepo.
					On("Update", mock.Anything, "user-1", mock.Anything).
					Return(int64(1), nil).
					Once()
				f.userRepo.
					On("Get", mock.Anything, "user-1").
					Return(&model.UserEntity{ID: "user-1", Name: "Janet"}, nil).
					Once()
			},
			want:    &model.UserEntity{ID: "user-1", Name: "Janet"},
			wantErr: false,
		},
		{
			name: "success: no-change update still returns the row",
			fields: fields{
				userRepo: usermocks.NewUserRepository(t),
			},
			id:  "user-1",
			req: &model.UserUpdateRequest{Name: &name},
			mockCall: func(f fields) {
				f.userRepo.
					On("Update", mock.Anything, "user-1", mock.Anything).
					Return(int64(0), nil).
					Once()
				f.userRepo.
					On("Get", mock.Anything, "user-1").
					Return(&model.UserEntity{ID: "user-1", Name: "Janet"}, nil).
					Once()
			},
			want:    &model.UserEntity{ID: "user-1", Name: "Janet"},
			wantErr: false,
		},
		{
			name: "error: unknown user",
			fields: fields{
				userRepo: usermocks.NewUserRepository(t),
			},
			id:  "nope",
			req: &model.UserUpdateRequest{Name: &name},
			mockCall: func(f fields) {
				f.userRepo.
					On("Update", mock.Anything, "nope", mock.Anything).
					Return(int64(0), nil).
					Once()
				f.userRepo.
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
			app := appuser.NewUserApp(tt.fields.userRepo)

			got, err := app.Update(context.Background(), tt.id, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Update() error = %v, wantErr %v", err, tt.wantErr)
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
				t.Fatalf("Update() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_GetLocation(t *testing.T) {
	type fields struct {
		userRepo *usermocks.UserRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       string
		mockCall func(f fields)
		want     *model.Location
		wantErr  bool
		errType  constant.ErrorType
	}{
		{
			name: "success: shared location is returned",
			fields: fields{
				userRepo: usermocks.NewUserRepository(t),
			},
			id: "user-1",
			mockCall: func(f fields) {
				loc := &model.Location{Latitude: -6.2, Longitude: 106.8, IsShared: true}
				f.userRepo.
					On("Get", mock.Anything, "user-1").
					Return(&model.UserEntity{ID: "user-1", Location: model.NullLocation{Location: loc}}, nil).
					Once()
			},
			want:    &model.Location{Latitude: -6.2, Longitude: 106.8, IsShared: true},
			wantErr: false,
		},
		{
			name: "error: user never shared a location",
			fields: fields{
				userRepo: usermocks.NewUserRepository(t),
			},
			id: "user-2",
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, "user-2").
					Return(&model.UserEntity{ID: "user-2"}, nil).
					Once()
			},
			wantErr: true,
			errType: constant.ErrNotFound,
		},
		{
			name: "error: unknown user",
			fields: fields{
				userRepo: usermocks.NewUserRepository(t),
			},
			id: "nope",
			mockCall: func(f fields) {
				f.userRepo.
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
			app := appuser.NewUserApp(tt.fields.userRepo)

			got, err := app.GetLocation(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetLocation() error = %v, wantErr %v", err, tt.wantErr)
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
				t.Fatalf("GetLocation() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_SetLocation(t *testing.T) {
	userRepo := usermocks.NewUserRepository(t)
	loc := &model.Location{Latitude: -6.2, Longitude: 106.8, IsShared: true}
	userRepo.
		On("UpdateLocation", mock.Anything, "user-1", loc).
		Return(int64(1), nil).
		Once()

	app := appuser.NewUserApp(userRepo)

	if err := app.SetLocation(context.Background(), "user-1", loc); err != nil {
		t.Fatalf("SetLocation() error = %v", err)
	}
}
