package middleware

import (
	"regexp"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
)

const minUserAgentLength = 10

var automationPattern = regexp.MustCompile(`(?i)bot|crawler|spider|scraper|curl|wget|python-requests|postman|insomnia|httpie`)

// AntiBot turns away requests whose User-Agent is missing, too short, or
// names a known HTTP tool or crawler. The header is client-controlled, so
// this only filters casual scripting.
func AntiBot() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ua := c.Get(fiber.HeaderUserAgent)
		if utf8.RuneCountInString(ua) < minUserAgentLength {
			return reject(c, "anti_bot", "user_agent", fiber.StatusForbidden, "Forbidden: Invalid request source")
		}
		if automationPattern.MatchString(ua) {
			return reject(c, "anti_bot", "automation", fiber.StatusForbidden, "Forbidden: Automated requests not allowed")
		}
		return c.Next()
	}
}
