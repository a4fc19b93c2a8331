package context

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRequestID(t *testing.T) {
	assert.Equal(t, "unknown", GetRequestID(context.Background()))
	assert.Equal(t, "unknown", GetRequestID(WithRequestID(context.Background(), "")))
	assert.Equal(t, "abc", GetRequestID(WithRequestID(context.Background(), "abc")))
}

func TestFromFiberCtx(t *testing.T) {
	app := fiber.New()

	var got string
	app.Get("/local", func(c *fiber.Ctx) error {
		c.Locals("X-Request-ID", "from-local")
		got = GetRequestID(FromFiberCtx(c))
		return nil
	})
	app.Get("/header", func(c *fiber.Ctx) error {
		got = GetRequestID(FromFiberCtx(c))
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", "/local", nil))
	require.NoError(t, err)
	assert.Equal(t, "from-local", got)

	req := httptest.NewRequest("GET", "/header", nil)
	req.Header.Set("X-Request-ID", "from-header")
	_, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "from-header", got)

	_, err = app.Test(httptest.NewRequest("GET", "/header", nil))
	require.NoError(t, err)
	assert.Equal(t, "unknown", got)
}
