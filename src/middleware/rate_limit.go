package middleware

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// RegistrationLimiter allows one registration attempt per client address
// and claimed student_id per cooldown.
type RegistrationLimiter struct {
	ledger Ledger
	now    func() time.Time
	log    zerolog.Logger
}

func NewRegistrationLimiter(ledger Ledger, log zerolog.Logger) *RegistrationLimiter {
	return &RegistrationLimiter{
		ledger: ledger,
		now:    time.Now,
		log:    log.With().Str("component", "registration_limiter").Logger(),
	}
}

// Handler returns the Fiber gate. A failing ledger lets the request
// through.
func (l *RegistrationLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := ClientIP(c) + ":" + claimedStudentID(c)

		remaining, err := l.ledger.Hit(c.UserContext(), key, l.now())
		if err != nil {
			l.log.Warn().Err(err).Str("key", key).Msg("registration ledger unavailable")
			return c.Next()
		}
		if remaining > 0 {
			seconds := int(math.Ceil(remaining.Seconds()))
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(seconds))
			return reject(c, "rate_limit", "cooldown", fiber.StatusTooManyRequests,
				fmt.Sprintf("Too many registration attempts. Please wait %d seconds before trying again.", seconds))
		}
		return c.Next()
	}
}

// claimedStudentID reads student_id from the JSON body as text. Numbers and
// other non-string values are rendered rather than dropped, so each distinct
// claim gets its own key. Absent, null, false, zero and empty claims share
// "unknown".
func claimedStudentID(c *fiber.Ctx) string {
	var body map[string]any
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return "unknown"
	}
	switch v := body["student_id"].(type) {
	case nil:
		return "unknown"
	case bool:
		if !v {
			return "unknown"
		}
	case string:
		if v == "" {
			return "unknown"
		}
	case float64:
		if v == 0 {
			return "unknown"
		}
	}
	return claimText(body["student_id"])
}

func claimText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = claimText(item)
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}
