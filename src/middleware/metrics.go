package middleware

import (
	"SSAAM-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var admissionRejections = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ssaam_admission_rejections_total",
	Help: "Requests turned away by an admission gate.",
}, []string{"gate", "reason"})

// reject counts the rejection and writes the error body.
func reject(c *fiber.Ctx, gate, reason string, status int, message string) error {
	admissionRejections.WithLabelValues(gate, reason).Inc()
	return utils.HandleError(c, status, message)
}
