package middleware

import (
	"encoding/json"
	"time"

	"SSAAM-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	// TimestampField carries the freshness token in bodies and queries.
	TimestampField = "_ssaam_access_token"
	// TimestampHeader carries it when there is no body.
	TimestampHeader = "X-SSAAM-TS"
)

// TimestampAuth requires a freshness token no older than maxAge. The token
// is looked up in the JSON body, then the query string, then the header,
// and the body field is removed before the handler sees it.
func TimestampAuth(codec *utils.TimestampCodec, maxAge time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, inBody := bodyToken(c)
		token := body
		if token == "" {
			token = c.Query(TimestampField)
		}
		if token == "" {
			token = c.Get(TimestampHeader)
		}

		if token == "" {
			return reject(c, "timestamp", "missing", fiber.StatusUnauthorized, "Unauthorized: Missing timestamp")
		}
		if !codec.IsValid(token, maxAge) {
			return reject(c, "timestamp", "invalid", fiber.StatusUnauthorized, "Unauthorized: Invalid or expired timestamp")
		}

		if inBody {
			stripBodyToken(c)
		}
		return c.Next()
	}
}

// bodyToken returns the token string from the JSON body and whether the
// field was present at all.
func bodyToken(c *fiber.Ctx) (string, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &fields); err != nil {
		return "", false
	}
	raw, ok := fields[TimestampField]
	if !ok {
		return "", false
	}
	var token string
	_ = json.Unmarshal(raw, &token)
	return token, true
}

func stripBodyToken(c *fiber.Ctx) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &fields); err != nil {
		return
	}
	delete(fields, TimestampField)
	if b, err := json.Marshal(fields); err == nil {
		c.Request().SetBody(b)
	}
}
