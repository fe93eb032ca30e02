package serverutils

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct {
	errors int
}

func (l *testLogger) Debug(module, message string, details map[string]interface{}) {}
func (l *testLogger) Info(module, message string, details map[string]interface{})  {}
func (l *testLogger) Warn(module, message string, details map[string]interface{})  {}
func (l *testLogger) Error(module, message string, details map[string]interface{}) { l.errors++ }
func (l *testLogger) Sync() error                                                  { return nil }

func TestValidateRequest(t *testing.T) {
	type payload struct {
		Title string `validate:"required"`
		Kind  string `validate:"omitempty,oneof=general meeting"`
	}

	t.Run("valid payload passes", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(payload{Title: "x", Kind: "meeting"}))
	})

	t.Run("missing required field fails with 400", func(t *testing.T) {
		err := ValidateRequest(payload{})
		require.Error(t, err)

		var apiErr *ApiError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, fiber.StatusBadRequest, apiErr.Status)
	})

	t.Run("value outside oneof fails", func(t *testing.T) {
		assert.Error(t, ValidateRequest(payload{Title: "x", Kind: "diary"}))
	})
}

func TestErrorHandlerMiddleware(t *testing.T) {
	log := &testLogger{}

	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(log))
	app.Get("/missing", func(c *fiber.Ctx) error {
		return NewNotFound("thing not found")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("database exploded: credentials abc")
	})
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"fine": true})
	})

	t.Run("ApiError keeps its status and message", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/missing", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		raw, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"error":"thing not found"}`, string(raw))
	})

	t.Run("unknown errors become a generic 500 and get logged", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		// internal detail must not leak to the client
		raw, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"error":"internal server error"}`, string(raw))
		assert.Equal(t, 1, log.errors)
	})

	t.Run("success responses pass through untouched", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ok", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
