package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/courtclub/backend/internal/domain"
	"github.com/courtclub/backend/internal/pg"
	"github.com/courtclub/backend/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockMemberRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	memberRepo := NewMockMemberRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(userRepo, memberRepo, hashService, jwtService, txManager)
	defer ctrl.Finish()
	return service, userRepo, memberRepo, hashService, jwtService, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestRegister(t *testing.T) {
	service, userRepo, memberRepo, hashService, _, txManager := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		fullName      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Successful registration",
			login:    "testuser",
			password: "testpassword",
			fullName: "Test User",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(nil, nil)
				hashService.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				passthroughTx(txManager)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user *domain.User) (*domain.User, error) {
						assert.NotEmpty(t, user.ID)
						assert.Equal(t, domain.RoleUser, user.Role)
						assert.Equal(t, "hashedpassword", user.PasswordHash)
						return user, nil
					},
				)
				memberRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, member *domain.Member) (*domain.Member, error) {
						assert.Equal(t, "Test User", member.FullName)
						return member, nil
					},
				)
			},
		},
		{
			name:     "Full name defaults to the login",
			login:    "plainuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "plainuser").Return(nil, nil)
				hashService.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				passthroughTx(txManager)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user *domain.User) (*domain.User, error) {
						return user, nil
					},
				)
				memberRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, member *domain.Member) (*domain.Member, error) {
						assert.Equal(t, "plainuser", member.FullName)
						return member, nil
					},
				)
			},
		},
		{
			name:     "User already exists",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(&domain.User{Login: "testuser"}, nil)
			},
			expectedError: ErrLoginTaken,
		},
		{
			name:     "Member creation failure rolls back the user",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(nil, nil)
				hashService.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				passthroughTx(txManager)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user *domain.User) (*domain.User, error) {
						return user, nil
					},
				)
				memberRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), tt.login, tt.password, tt.fullName)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.login, user.Login)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, _, hashService, _, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Valid credentials",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(&domain.User{
					ID:           "u-1",
					Login:        "testuser",
					PasswordHash: "hashedpassword",
				}, nil)
				hashService.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
		},
		{
			name: "Unknown login",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "Wrong password",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(&domain.User{
					PasswordHash: "hashedpassword",
				}, nil)
				hashService.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), "testuser", "testpassword")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, _, jwtService, _ := NewMock(t)

	t.Run("Token carries the user id and role", func(t *testing.T) {
		jwtService.EXPECT().GenerateJWT("u-1", domain.RoleUser, gomock.Any()).Return("token", nil)

		token, err := service.GenerateToken(&domain.User{ID: "u-1", Role: domain.RoleUser})
		assert.NoError(t, err)
		assert.Equal(t, "token", token)
	})

	t.Run("Signing failure", func(t *testing.T) {
		jwtService.EXPECT().GenerateJWT("u-1", domain.RoleUser, gomock.Any()).Return("", errors.New("sign error"))

		token, err := service.GenerateToken(&domain.User{ID: "u-1", Role: domain.RoleUser})
		assert.Error(t, err)
		assert.Empty(t, token)
	})
}
