package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/courtclub/backend/internal/domain"
	"github.com/courtclub/backend/internal/pg"
	"github.com/courtclub/backend/pkg/auth"
)

type UserRepo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type MemberRepo interface {
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Member, error)
}

var (
	ErrLoginTaken         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const tokenTTL = 24 * time.Hour

type Service struct {
	userRepo    UserRepo
	memberRepo  MemberRepo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	txManager   pg.TXManager
}

func New(userRepo UserRepo, memberRepo MemberRepo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:    userRepo,
		memberRepo:  memberRepo,
		hashService: hashService,
		jwtService:  jwtService,
		txManager:   txManager,
	}
}

// Register creates the account and its member profile atomically; a user row
// without a profile would be unable to book or hold a wallet.
func (s *Service) Register(ctx context.Context, login, password, fullName string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("login", login))
		return nil, ErrLoginTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	if fullName == "" {
		fullName = login
	}

	var newUser *domain.User
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		newUser, err = s.userRepo.Create(ctx, &domain.User{
			ID:           uuid.NewString(),
			Login:        login,
			PasswordHash: hashedPassword,
			Role:         domain.RoleUser,
		})
		if err != nil {
			return err
		}
		_, err = s.memberRepo.Create(ctx, &domain.Member{
			UserID:   newUser.ID,
			FullName: fullName,
		})
		return err
	})
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	token, err := s.jwtService.GenerateJWT(user.ID, user.Role, time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
