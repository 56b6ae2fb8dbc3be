package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sync/atomic"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/liftpro/internal/cache"
	"github.com/yourorg/liftpro/internal/engine"
	"github.com/yourorg/liftpro/internal/models"
	"github.com/yourorg/liftpro/internal/validation"
)

// analysesServed cuenta los análisis calculados desde el arranque.
var analysesServed int64

// AnalysesServed expone el contador para el endpoint de estadísticas.
func AnalysesServed() int64 {
	return atomic.LoadInt64(&analysesServed)
}

// requestHash produce la clave de caché de un request de análisis.
func requestHash(req models.AnalysisAPIRequest) string {
	raw, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// runAnalysis ejecuta el motor con caché de resultados. El motor es barato,
// pero el formulario interactivo repite el mismo cálculo en cada cambio.
func runAnalysis(req models.AnalysisAPIRequest) (engine.AnalysisResult, error) {
	key := requestHash(req)
	if key != "" && cache.AnalysisCache != nil {
		if cached, found := cache.AnalysisCache.Get("analysis:" + key); found {
			if result, ok := cached.(engine.AnalysisResult); ok {
				return result, nil
			}
		}
	}

	result, err := engine.Analyze(req.AnalysisRequest)
	if err != nil {
		return engine.AnalysisResult{}, err
	}
	atomic.AddInt64(&analysesServed, 1)

	if key != "" && cache.AnalysisCache != nil {
		cache.AnalysisCache.Set("analysis:"+key, result)
	}
	return result, nil
}

// Analyze handles POST /api/analysis.
//
// Cuerpo: AnalysisAPIRequest (modo por piso o modo bulk). RTT e Interval
// son públicos; AWT, HC y el benchmark sólo se incluyen con cuenta pro.
func Analyze(c *fiber.Ctx) error {
	var req models.AnalysisAPIRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "invalid json"})
	}

	result, err := runAnalysis(req)
	if err != nil {
		var perr *validation.ParameterError
		if errors.As(err, &perr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{Error: perr.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "analysis failed"})
	}

	return c.JSON(models.NewAnalysisResponse(result, req.BuildingType, isPro(c)))
}

// FormDefaults handles GET /api/analysis/defaults?total_floors=N.
// Entrega los valores con los que el formulario se pre-rellena.
func FormDefaults(c *fiber.Ctx) error {
	totalFloors := c.QueryInt("total_floors", 12)

	defaults := models.FormDefaults{
		RatedSpeed:    engine.DefaultRatedSpeed(totalFloors),
		FloorHeight:   engine.DefaultFloorHeight,
		WaitingFactor: engine.DefaultWaitingFactor,
		LoadFactor:    engine.DefaultLoadFactor,
		Doors:         engine.DoorTimings{Open: 4.5, Close: 4.5, Dwell: 3.0, Load: 0.5, Unload: 1.3},
		ZoningOffered: totalFloors >= engine.MinZonedFloors,
	}
	if defaults.ZoningOffered {
		defaults.SkyLobbyFloor = engine.DefaultSkyLobby(totalFloors)
	}
	return c.JSON(defaults)
}
