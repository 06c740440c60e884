package service

import (
	"context"
	stderrors "errors"
	"strings"

	"event-portal/core/errors"
	"event-portal/core/logger"
	"event-portal/core/utils"
	"event-portal/modules/auth/dto"
	"event-portal/modules/auth/entity"
	"event-portal/modules/auth/mapper"
	"event-portal/modules/auth/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles user accounts and the admin credential
type AuthService struct {
	repo              repository.UserRepositoryInterface
	adminPasswordHash string
}

type AuthServiceInterface interface {
	RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (*entity.User, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*entity.User, *errors.AppError)
	AdminLogin(ctx context.Context, password string) *errors.AppError
	GetProfile(ctx context.Context, userID int64) (*dto.Profile, *errors.AppError)
	UpdateProfile(ctx context.Context, userID int64, fullName, phone string) *errors.AppError
}

// NewAuthService takes the bcrypt hash of the admin password.
func NewAuthService(repo repository.UserRepositoryInterface, adminPasswordHash string) AuthServiceInterface {
	return &AuthService{
		repo:              repo,
		adminPasswordHash: adminPasswordHash,
	}
}

func (service *AuthService) RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (*entity.User, *errors.AppError) {
	username := strings.TrimSpace(req.Username)

	existing, err := service.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check username", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "username already exists", nil)
	}

	hash, err := utils.HashPassword(req.Password)
	if stderrors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "password too long", err)
	}
	if err != nil {
		logger.Error("AuthService:RegisterUser:HashPassword:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	// A concurrent insert of the same username fails here on the unique index.
	created, err := service.repo.CreateUser(ctx, mapper.ToUserEntity(req, hash))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrRegistrationFailed, "registration failed", err)
	}

	logger.Info("AuthService:RegisterUser:Created", "userID", created.ID, "username", created.Username)
	return created, nil
}

func (service *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*entity.User, *errors.AppError) {
	user, err := service.repo.GetUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrUserNotFound, "user not found", nil)
	}
	if !utils.ComparePassword(user.PasswordHash, req.Password) {
		return nil, errors.NewAppError(errors.ErrInvalidPassword, "wrong password", nil)
	}
	return user, nil
}

func (service *AuthService) AdminLogin(ctx context.Context, password string) *errors.AppError {
	if service.adminPasswordHash == "" || !utils.ComparePassword(service.adminPasswordHash, password) {
		logger.Warn("AuthService:AdminLogin:InvalidPassword")
		return errors.NewAppError(errors.ErrInvalidPassword, "invalid admin password", nil)
	}
	return nil
}

func (service *AuthService) GetProfile(ctx context.Context, userID int64) (*dto.Profile, *errors.AppError) {
	user, err := service.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrUserNotFound, "user not found", nil)
	}
	return mapper.ToProfile(user), nil
}

// UpdateProfile stores the name and phone last used on a registration.
func (service *AuthService) UpdateProfile(ctx context.Context, userID int64, fullName, phone string) *errors.AppError {
	if err := service.repo.UpdateProfile(ctx, userID, strings.TrimSpace(fullName), strings.TrimSpace(phone)); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to update profile", err)
	}
	return nil
}
