package authHandler

import (
	"FinanceTracker/internal/api/auth"
	authRepository "FinanceTracker/internal/api/auth/repository"
	authService "FinanceTracker/internal/api/auth/service"
	"FinanceTracker/internal/middleware"
	"FinanceTracker/pkg/bcrypt"
	jwtPkg "FinanceTracker/pkg/jwt"
	"FinanceTracker/pkg/utils"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cryptoBcrypt "golang.org/x/crypto/bcrypt"
)

func setupAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv(middleware.AccessTokenSecret, "auth-handler-secret")
	t.Setenv(jwtPkg.RefreshTokenSecret, "auth-handler-refresh")

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	svc := authService.New(logger, authRepository.NewMemory(logger), bcrypt.NewWithCost(cryptoBcrypt.MinCost), utils.New())
	mw := middleware.New(logger)

	app := fiber.New(fiber.Config{JSONEncoder: jsoniter.Marshal, JSONDecoder: jsoniter.Unmarshal})
	app.Use(mw.NewRequestIDMiddleware())
	New(logger, svc, validator.New(), mw).Start(app.Group("/api"))

	return app
}

func post(t *testing.T, app *fiber.App, target, body string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestRegisterAndLogin(t *testing.T) {
	app := setupAuthApp(t)

	status, raw := post(t, app, "/api/auth/register", `{"email":"alice@example.com","username":"alice","password":"password123"}`)
	require.Equal(t, http.StatusCreated, status, string(raw))

	var user auth.UserResponse
	require.NoError(t, jsoniter.Unmarshal(raw, &user))
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotContains(t, string(raw), "password")

	status, _ = post(t, app, "/api/auth/register", `{"email":"alice@example.com","username":"other","password":"password123"}`)
	assert.Equal(t, http.StatusConflict, status)

	status, raw = post(t, app, "/api/auth/login", `{"email":"alice@example.com","password":"password123"}`)
	require.Equal(t, http.StatusOK, status, string(raw))

	var login auth.LoginUserResponse
	require.NoError(t, jsoniter.Unmarshal(raw, &login))
	assert.NotEmpty(t, login.AccessToken)
	assert.NotEmpty(t, login.RefreshToken)
	assert.Equal(t, user.ID, login.User.ID)

	status, raw = post(t, app, "/api/auth/refresh", `{"refresh_token":"`+login.RefreshToken+`"}`)
	require.Equal(t, http.StatusOK, status, string(raw))

	var refreshed auth.RefreshTokenResponse
	require.NoError(t, jsoniter.Unmarshal(raw, &refreshed))
	assert.NotEmpty(t, refreshed.AccessToken)

	status, _ = post(t, app, "/api/auth/refresh", `{"refresh_token":"`+login.AccessToken+`"}`)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = post(t, app, "/api/auth/refresh", `{}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = post(t, app, "/api/auth/login", `{"email":"alice@example.com","password":"nope-nope"}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestRegisterValidation(t *testing.T) {
	app := setupAuthApp(t)

	for _, body := range []string{
		`{"email":"not-an-email","username":"alice","password":"password123"}`,
		`{"email":"a@example.com","username":"al","password":"password123"}`,
		`{"email":"a@example.com","username":"alice","password":"short"}`,
		`{"email":`,
	} {
		status, raw := post(t, app, "/api/auth/register", body)
		assert.Equal(t, http.StatusBadRequest, status, string(raw))
	}
}
