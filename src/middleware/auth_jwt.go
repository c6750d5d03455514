package middleware

import (
	"crypto/subtle"
	"strings"

	"SSAAM-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

// LocalsMaster is the c.Locals key holding *utils.MasterClaims.
const LocalsMaster = "master"

// MasterAuth admits requests carrying a valid, unexpired admin token.
func MasterAuth(issuer *utils.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			return reject(c, "master_auth", "missing", fiber.StatusUnauthorized, "Access denied. No token provided.")
		}

		claims, err := issuer.ParseJWT(tokenStr)
		if err != nil {
			return reject(c, "master_auth", "invalid", fiber.StatusBadRequest, "invalid token.")
		}

		c.Locals(LocalsMaster, claims)
		return c.Next()
	}
}

// StudentKeyAuth admits requests whose bearer credential equals the shared
// student API key. An unset key admits nobody.
func StudentKeyAuth(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := bearerToken(c)
		if tokenStr == "" || key == "" ||
			subtle.ConstantTimeCompare([]byte(tokenStr), []byte(key)) != 1 {
			return reject(c, "student_key", "invalid", fiber.StatusUnauthorized, "Unauthorized: Invalid key")
		}
		return c.Next()
	}
}

// GetMaster returns the admin claims stored by MasterAuth.
func GetMaster(c *fiber.Ctx) *utils.MasterClaims {
	claims, _ := c.Locals(LocalsMaster).(*utils.MasterClaims)
	return claims
}

// bearerToken returns the second space-separated word of the Authorization
// header, e.g. "abc" for "Bearer abc".
func bearerToken(c *fiber.Ctx) string {
	parts := strings.Split(c.Get(fiber.HeaderAuthorization), " ")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
