package http

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", errorCode(fiber.StatusNotFound))
	assert.Equal(t, "METHOD_NOT_ALLOWED", errorCode(fiber.StatusMethodNotAllowed))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", errorCode(fiber.StatusInternalServerError))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", errorCode(999))
}

func TestCustomErrorHandler_UnmatchedRoute(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: customErrorHandler(zap.NewNop())})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/no-such-route", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"code":"NOT_FOUND"`)
	assert.NotContains(t, string(body), "INTERNAL_SERVER_ERROR")
}

func TestCustomErrorHandler_PlainError(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: customErrorHandler(zap.NewNop())})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return assert.AnError
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"code":"INTERNAL_SERVER_ERROR"`)
}
