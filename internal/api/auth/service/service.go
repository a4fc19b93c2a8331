package authService

import (
	"FinanceTracker/internal/api/auth"
	authRepository "FinanceTracker/internal/api/auth/repository"
	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/bcrypt"
	"FinanceTracker/pkg/utils"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 24 * time.Hour
)

type AuthService interface {
	Register(c context.Context, req auth.RegisterUserRequest) (entity.User, error)
	Login(c context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error)
	Refresh(c context.Context, req auth.RefreshTokenRequest) (auth.RefreshTokenResponse, error)
}

type authService struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
}

func New(
	log *logrus.Logger,
	repo authRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) AuthService {
	return &authService{
		log:         log,
		repo:        repo,
		bcryptUtils: bcryptUtils,
		utils:       utils,
	}
}
