package utils

import (
	"net/http/httptest"
	"testing"

	"smartscore/backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}
	token, err := GenerateJWTToken("F1", "faculty", cfg)
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		claims, err := ExtractClaimsFromToken(c, cfg)
		if err != nil {
			return Unauthorized(c, err.Error())
		}
		return c.SendString(claims.UserID + ":" + claims.Role)
	})

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"bearer", "Bearer " + token, fiber.StatusOK},
		{"bare token", token, fiber.StatusOK},
		{"missing", "", fiber.StatusUnauthorized},
		{"garbage", "Bearer abc.def.ghi", fiber.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}

	other := &config.Config{JWTSecret: "other"}
	forged, err := GenerateJWTToken("A1", "admin", other)
	require.NoError(t, err)
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
