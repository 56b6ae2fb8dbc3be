package middleware

import (
	"sync/atomic"

	"github.com/gofiber/fiber/v2"
)

var (
	requestsTotal  int64
	requestsFailed int64
)

// RequestStats es una foto de los contadores de requests.
type RequestStats struct {
	Total  int64 `json:"total"`
	Failed int64 `json:"failed"`
}

// RequestsSnapshot retorna los contadores actuales.
func RequestsSnapshot() RequestStats {
	return RequestStats{
		Total:  atomic.LoadInt64(&requestsTotal),
		Failed: atomic.LoadInt64(&requestsFailed),
	}
}

// MetricsMiddleware cuenta cada request y las respuestas con error
// para el endpoint de estadísticas.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		atomic.AddInt64(&requestsTotal, 1)
		if err != nil || c.Response().StatusCode() >= 400 {
			atomic.AddInt64(&requestsFailed, 1)
		}
		return err
	}
}
