package gate

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/role-gate/internal/guard"
)

func TestGate_SharesRequestAcrossSegments(t *testing.T) {
	app := fiber.New()

	tag := func(ctx context.Context, req *guard.Request) error {
		req.RoleName = req.Header("X-Role")
		return nil
	}

	var seen string
	var decodedUser string
	app.Post("/",
		Gate(tag),
		Gate(func(_ context.Context, req *guard.Request) error {
			seen = req.RoleName
			payload, err := req.Payload()
			if err != nil {
				return err
			}
			decodedUser = payload.Username
			return nil
		}),
		func(c *fiber.Ctx) error {
			return c.SendString(RequestFrom(c).RoleName)
		},
	)

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":"bob"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Role", "instructor")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "instructor", seen)
	assert.Equal(t, "bob", decodedUser)
}

func TestGate_RejectionSkipsHandler(t *testing.T) {
	app := fiber.New()
	called := false

	app.Get("/",
		Gate(func(context.Context, *guard.Request) error { return guard.ErrTokenMissing }),
		func(c *fiber.Ctx) error {
			called = true
			return nil
		},
	)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.False(t, called)
	assert.NotEqual(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequestFrom_EmptyBody(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		payload, err := RequestFrom(c).Payload()
		if err != nil {
			return err
		}
		return c.SendString("[" + payload.RoleName + "]")
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
