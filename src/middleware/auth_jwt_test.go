package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"SSAAM-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentKeyAuth(t *testing.T) {
	app := fiber.New()
	app.Get("/", StudentKeyAuth("student-key"), func(c *fiber.Ctx) error { return c.SendString("ok") })

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"Valid", "Bearer student-key", fiber.StatusOK},
		{"Missing", "", fiber.StatusUnauthorized},
		{"Wrong", "Bearer nope", fiber.StatusUnauthorized},
		{"NoScheme", "student-key", fiber.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
			if tc.status == fiber.StatusUnauthorized {
				assert.Equal(t, "Unauthorized: Invalid key", readMessage(t, resp))
			}
		})
	}
}

func TestStudentKeyAuthUnsetKey(t *testing.T) {
	app := fiber.New()
	app.Get("/", StudentKeyAuth(""), func(c *fiber.Ctx) error { return c.SendString("ok") })

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer ")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMasterAuth(t *testing.T) {
	issuer := utils.NewTokenIssuer("jwt-secret", time.Hour)
	app := fiber.New()
	app.Get("/", MasterAuth(issuer), func(c *fiber.Ctx) error {
		return c.SendString(GetMaster(c).Username)
	})

	t.Run("Valid", func(t *testing.T) {
		token, err := issuer.GenerateJWT("id-1", "registrar")
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Missing", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Access denied. No token provided.", readMessage(t, resp))
	})

	t.Run("Invalid", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer not.a.jwt")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "invalid token.", readMessage(t, resp))
	})
}
