package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/liftpro/internal/engine"
)

// BenchmarksResponse lista los objetivos de capacidad por tipo de edificio.
type BenchmarksResponse struct {
	Targets   map[engine.BuildingType]float64 `json:"targets"`
	DefaultHC float64                         `json:"default_hc_percent"`
}

// Benchmarks handles GET /api/benchmarks.
func Benchmarks(c *fiber.Ctx) error {
	if bt := c.Query("building_type"); bt != "" {
		return c.JSON(fiber.Map{
			"building_type":     bt,
			"target_hc_percent": engine.HCTarget(engine.BuildingType(bt)),
		})
	}
	return c.JSON(BenchmarksResponse{
		Targets:   engine.HCTargets(),
		DefaultHC: engine.DefaultHCTarget,
	})
}
