package serverutils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required,min=2"`
}

func TestValidateRequestValid(t *testing.T) {
	err := ValidateRequest(&sampleRequest{Email: "a@b.com", Name: "Al"})
	assert.NoError(t, err)
}

func TestValidateRequestFlattensViolations(t *testing.T) {
	err := ValidateRequest(&sampleRequest{Email: "not-an-email"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "Email")
	assert.Contains(t, err.Error(), "Name")
}

func TestSuccessResponseEnvelope(t *testing.T) {
	resp := SuccessResponse("Done", map[string]string{"id": "123"})

	assert.Equal(t, 200, resp.Code)
	assert.Equal(t, "Done", resp.Message)
	assert.Equal(t, "123", resp.Data["id"])
}

func TestErrorHandlerMiddlewareAppError(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/boom", func(c *fiber.Ctx) error {
		return NewError(403, "Note is locked")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 403, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var envelope Response[any]
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, 403, envelope.Code)
	assert.Equal(t, "Note is locked", envelope.Message)
}

// Signing and verification must resolve the same key even when JWT_SECRET
// is unset, otherwise every issued token fails verification.
func TestJwtMiddlewareAcceptsTokenWithFallbackSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	userId := uuid.New().String()
	claims := jwt.MapClaims{
		"user_id": userId,
		"role":    "user",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(JwtSecret())
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/me", JwtMiddleware, func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("user_id").(string))
	})

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, userId, string(body))
}

func TestErrorHandlerMiddlewareFiberError(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 404, resp.StatusCode)
}
