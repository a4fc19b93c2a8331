package auth

import (
	"FinanceTracker/pkg/response"
	"net/http"
)

var (
	ErrEmailAlreadyExists     = response.NewError(http.StatusConflict, "email already exists")
	ErrInvalidEmailOrPassword = response.NewError(http.StatusBadRequest, "email or password is wrong")
	ErrUserNotFound           = response.NewError(http.StatusNotFound, "user not found")
	ErrCreateUser             = response.NewError(http.StatusInternalServerError, "failed to create user")
	ErrIssueToken             = response.NewError(http.StatusInternalServerError, "failed to issue access token")
	ErrInvalidRefreshToken    = response.NewError(http.StatusUnauthorized, "refresh token invalid or expired")
)
