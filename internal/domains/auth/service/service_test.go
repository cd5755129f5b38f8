package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Ayy-man/spa-booking-v2-sub002/config"
	"github.com/Ayy-man/spa-booking-v2-sub002/infras/jwt"
	jwtMocks "github.com/Ayy-man/spa-booking-v2-sub002/infras/jwt/mocks"
	"github.com/Ayy-man/spa-booking-v2-sub002/infras/otel/mocks"
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/auth/model/dto"
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/auth/service"
	userMocks "github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/user/mocks"
	userModel "github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/user/model"
	userDto "github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/user/model/dto"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/constant"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/failure"
	gModel "github.com/Ayy-man/spa-booking-v2-sub002/shared/model"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/timezone"
)

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, cfg, mockOtel, mockJWT)

	// Valid user for successful login
	validUser := userModel.User{
		ID:           "user-id-123",
		Email:        "admin@example.com",
		Name:         "Admin",
		PasswordHash: "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi", // "password" hashed
		Role:         "admin",
		Active:       true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful login",
			req: dto.LoginRequest{
				Email:    "admin@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					GetByEmail(gomock.Any(), "admin@example.com").
					Return(validUser, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(validUser.ID, validUser.Email, validUser.Role).
					Return(&jwt.TokenPair{
						AccessToken:  "access-token",
						RefreshToken: "refresh-token",
						TokenType:    "Bearer",
					}, nil)
			},
			wantErr: false,
		},
		{
			name: "user not found",
			req: dto.LoginRequest{
				Email:    "nonexistent@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					GetByEmail(gomock.Any(), "nonexistent@example.com").
					Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req: dto.LoginRequest{
				Email:    "admin@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					GetByEmail(gomock.Any(), "admin@example.com").
					Return(userModel.User{}, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "wrong password",
			req: dto.LoginRequest{
				Email:    "admin@example.com",
				Password: "wrongpassword",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					GetByEmail(gomock.Any(), "admin@example.com").
					Return(validUser, nil)
			},
			wantErr: true,
		},
		{
			name: "inactive user",
			req: dto.LoginRequest{
				Email:    "admin@example.com",
				Password: "password",
			},
			setupMock: func() {
				inactiveUser := validUser
				inactiveUser.Active = false

				mockUserRepo.EXPECT().
					GetByEmail(gomock.Any(), "admin@example.com").
					Return(inactiveUser, nil)
			},
			wantErr: true,
		},
		{
			name: "token generation failure",
			req: dto.LoginRequest{
				Email:    "admin@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					GetByEmail(gomock.Any(), "admin@example.com").
					Return(validUser, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(validUser.ID, validUser.Email, validUser.Role).
					Return(nil, errors.New("signing error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, "refresh-token", res.RefreshToken)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, &config.Config{}, mockOtel, mockJWT)

	t.Run("successful refresh", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens("valid-refresh-token").
			Return(&jwt.TokenPair{
				AccessToken:  "new-access-token",
				RefreshToken: "new-refresh-token",
			}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{
			RefreshToken: "valid-refresh-token",
		})

		assert.NoError(t, err)
		assert.Equal(t, "new-access-token", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens("expired-token").
			Return(nil, jwt.ErrExpiredToken)

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{
			RefreshToken: "expired-token",
		})

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestAuthService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, &config.Config{}, mockOtel, mockJWT)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")

	req := userDto.CreateUserRequest{
		Email:    "new.staff@example.com",
		Name:     "New Staff",
		Password: "supersecret",
		Role:     "staff",
	}

	t.Run("successful creation", func(t *testing.T) {
		mockUserRepo.EXPECT().
			ExistByEmail(gomock.Any(), req.Email).
			Return(false, nil)

		mockUserRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user userModel.User) error {
				assert.Equal(t, req.Email, user.Email)
				assert.Equal(t, "staff", user.Role)
				assert.Equal(t, "admin-1", user.CreatedBy)
				assert.NotEqual(t, req.Password, user.PasswordHash)

				return nil
			})

		err := svc.CreateUser(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("email already registered", func(t *testing.T) {
		mockUserRepo.EXPECT().
			ExistByEmail(gomock.Any(), req.Email).
			Return(true, nil)

		err := svc.CreateUser(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("insert failure", func(t *testing.T) {
		mockUserRepo.EXPECT().
			ExistByEmail(gomock.Any(), req.Email).
			Return(false, nil)

		mockUserRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		err := svc.CreateUser(ctx, req)

		assert.Error(t, err)
	})
}
