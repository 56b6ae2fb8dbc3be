package handlers

import (
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/liftpro/internal/cache"
	"github.com/yourorg/liftpro/internal/middleware"
)

// StatsHandler expone métricas de uso del servicio.
type StatsHandler struct {
	startTime time.Time
}

// NewStatsHandler crea un nuevo handler de estadísticas.
func NewStatsHandler() *StatsHandler {
	return &StatsHandler{startTime: time.Now()}
}

// ServiceStats son las métricas en vivo del backend.
type ServiceStats struct {
	UptimeSeconds  int64 `json:"uptime_seconds"`
	AnalysesServed int64 `json:"analyses_served"`
	RequestsTotal  int64 `json:"requests_total"`
	RequestsFailed int64 `json:"requests_failed"`
	Goroutines     int   `json:"goroutines"`
	MemoryMB       int64 `json:"memory_mb"`
	CachedAnalyses int   `json:"cached_analyses"`
	CachedReports  int   `json:"cached_reports"`
}

// GetStats handles GET /api/stats.
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	requests := middleware.RequestsSnapshot()

	stats := ServiceStats{
		UptimeSeconds:  int64(time.Since(h.startTime).Seconds()),
		AnalysesServed: AnalysesServed(),
		RequestsTotal:  requests.Total,
		RequestsFailed: requests.Failed,
		Goroutines:     runtime.NumGoroutine(),
		MemoryMB:       int64(m.Alloc / 1024 / 1024),
	}
	if cache.AnalysisCache != nil {
		stats.CachedAnalyses = cache.AnalysisCache.Count()
	}
	if cache.ReportCache != nil {
		stats.CachedReports = cache.ReportCache.Count()
	}

	return c.JSON(stats)
}
