package jwtPkg

import (
	"FinanceTracker/internal/entity"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const (
	AccessTokenSecret  = "JWT_ACCESS_TOKEN_SECRET"
	RefreshTokenSecret = "JWT_REFRESH_TOKEN_SECRET"

	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Sign issues an HS256 access token carrying data as claims. It returns the
// token and its expiry as a unix timestamp.
func Sign(data map[string]interface{}, expiresIn time.Duration) (string, int64, error) {
	return sign(AccessTokenSecret, TypeAccess, data, expiresIn)
}

// SignRefresh issues a refresh token under its own secret.
func SignRefresh(data map[string]interface{}, expiresIn time.Duration) (string, int64, error) {
	return sign(RefreshTokenSecret, TypeRefresh, data, expiresIn)
}

func sign(secretEnvKey string, typ string, data map[string]interface{}, expiresIn time.Duration) (string, int64, error) {
	expiredAt := time.Now().Add(expiresIn).Unix()

	JWTSecretKey := os.Getenv(secretEnvKey)
	if JWTSecretKey == "" {
		return "", 0, fmt.Errorf("%s not set", secretEnvKey)
	}

	claims := jwt.MapClaims{}
	claims["exp"] = expiredAt
	claims["iat"] = time.Now().Unix()

	for k, v := range data {
		claims[k] = v
	}
	claims["typ"] = typ

	to := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := to.SignedString([]byte(JWTSecretKey))
	if err != nil {
		logrus.WithError(err).Error("Failed to sign token")
		return "", 0, err
	}

	return signed, expiredAt, nil
}

func VerifyTokenHeader(c *fiber.Ctx, secretEnvKey string) (*jwt.Token, error) {
	header := c.Get("Authorization")
	if header == "" {
		return nil, errors.New("empty Authorization header")
	}

	accessToken, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return nil, errors.New("invalid Authorization format")
	}

	return Parse(strings.TrimSpace(accessToken), secretEnvKey)
}

// Parse verifies an HS256 token signed with the secret named by
// secretEnvKey. Tokens without an expiry are rejected.
func Parse(raw string, secretEnvKey string) (*jwt.Token, error) {
	log := logrus.WithField("func", "Parse")

	if raw == "" {
		return nil, errors.New("empty token")
	}

	JWTSecretKey := os.Getenv(secretEnvKey)
	if JWTSecretKey == "" {
		log.Error("JWT secret environment variable not set")
		return nil, errors.New("JWT secret not configured")
	}

	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(JWTSecretKey), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		log.WithError(err).Debug("Failed to parse JWT token")
		return nil, err
	}

	return token, nil
}

// TokenType reads the typ claim. Tokens without one report "".
func TokenType(token *jwt.Token) string {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	typ, _ := claims["typ"].(string)
	return typ
}

func GetUserLoginData(c *fiber.Ctx) (entity.UserLoginData, error) {
	userData := c.Locals("user")

	user, ok := userData.(entity.UserLoginData)
	if !ok || user.ID == "" {
		return entity.UserLoginData{}, fiber.ErrUnauthorized
	}

	return user, nil
}
