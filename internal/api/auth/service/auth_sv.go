package authService

import (
	"FinanceTracker/internal/api/auth"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	jwtPkg "FinanceTracker/pkg/jwt"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *authService) Register(c context.Context, req auth.RegisterUserRequest) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.User{}, err
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return entity.User{}, auth.ErrCreateUser
	}

	now := time.Now()
	ULID, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.User{}, auth.ErrCreateUser
	}

	user := entity.User{
		ID:        ULID,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Username:  req.Username,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Users.CreateUser(c, user); err != nil {
		if errors.Is(err, auth.ErrEmailAlreadyExists) {
			return entity.User{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return entity.User{}, auth.ErrCreateUser
	}

	return user, nil
}

func (s *authService) Login(c context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginUserResponse{}, err
	}

	user, err := repo.Users.GetByEmail(c, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("Login with unknown email")
			return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return auth.LoginUserResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Password comparison failed")
		return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
	}

	token, expired, err := signAccess(user)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.LoginUserResponse{}, auth.ErrIssueToken
	}

	refresh, _, err := jwtPkg.SignRefresh(map[string]interface{}{
		"id": user.ID,
	}, refreshTokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign refresh token")
		return auth.LoginUserResponse{}, auth.ErrIssueToken
	}

	return auth.LoginUserResponse{
		AccessToken:      token,
		RefreshToken:     refresh,
		ExpiresInMinutes: time.Until(time.Unix(expired, 0)).Minutes(),
		User: auth.UserResponse{
			ID:       user.ID,
			Email:    user.Email,
			Username: user.Username,
		},
	}, nil
}

// Refresh trades a refresh token for a new access token. The user is looked
// up again so a removed account cannot keep minting tokens.
func (s *authService) Refresh(c context.Context, req auth.RefreshTokenRequest) (auth.RefreshTokenResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	token, err := jwtPkg.Parse(req.RefreshToken, jwtPkg.RefreshTokenSecret)
	if err != nil || jwtPkg.TokenType(token) != jwtPkg.TypeRefresh {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Refresh token rejected")
		return auth.RefreshTokenResponse{}, auth.ErrInvalidRefreshToken
	}

	claims, _ := token.Claims.(jwt.MapClaims)
	userID, _ := claims["id"].(string)
	if userID == "" {
		return auth.RefreshTokenResponse{}, auth.ErrInvalidRefreshToken
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.RefreshTokenResponse{}, err
	}

	user, err := repo.Users.GetByID(c, userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.RefreshTokenResponse{}, auth.ErrInvalidRefreshToken
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by ID")
		return auth.RefreshTokenResponse{}, err
	}

	access, expired, err := signAccess(user)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.RefreshTokenResponse{}, auth.ErrIssueToken
	}

	return auth.RefreshTokenResponse{
		AccessToken:      access,
		ExpiresInMinutes: time.Until(time.Unix(expired, 0)).Minutes(),
	}, nil
}

func signAccess(user entity.User) (string, int64, error) {
	return jwtPkg.Sign(map[string]interface{}{
		"id":       user.ID,
		"email":    user.Email,
		"username": user.Username,
	}, accessTokenTTL)
}
