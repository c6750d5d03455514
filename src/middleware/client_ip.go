package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the
// transport peer. It returns "unknown" when none is usable.
func ClientIP(c *fiber.Ctx) string {
	if fwd := c.Get(fiber.HeaderXForwardedFor); fwd != "" {
		if first := strings.TrimSpace(strings.Split(fwd, ",")[0]); first != "" {
			return first
		}
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	if ip := c.Context().RemoteIP(); ip != nil && !ip.IsUnspecified() {
		return ip.String()
	}
	return "unknown"
}
