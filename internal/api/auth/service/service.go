package authService

import (
	"Blognest/internal/api/auth"
	authRepository "Blognest/internal/api/auth/repository"
	"Blognest/internal/entity"
	"Blognest/pkg/bcrypt"
	"context"

	"github.com/sirupsen/logrus"
)

type IAuthService interface {
	Login(ctx context.Context, req auth.LoginUserRequest) (*auth.LoginUserResponse, error)
	UpdatePassword(ctx context.Context, user entity.UserLoginData, req auth.UpdatePasswordRequest) error
}

type authService struct {
	log         *logrus.Logger
	authRepo    authRepository.Repository
	bcryptUtils bcrypt.IBcrypt
}

func NewAuthService(
	log *logrus.Logger,
	authRepo authRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
) IAuthService {
	return &authService{
		log:         log,
		authRepo:    authRepo,
		bcryptUtils: bcryptUtils,
	}
}
