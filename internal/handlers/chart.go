package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/liftpro/internal/cache"
	"github.com/yourorg/liftpro/internal/chart"
	"github.com/yourorg/liftpro/internal/models"
	"github.com/yourorg/liftpro/internal/validation"
)

// chartSeed fija la semilla del histograma para que el gráfico no "baile"
// entre recálculos del mismo análisis.
const chartSeed = 20260829

// WaitTimeChart handles POST /api/chart/wait-times.
//
// El gráfico teaser es visible para todos (también cuentas gratuitas),
// igual que en el formulario original: muestra la distribución sin revelar
// el valor exacto de AWT en los metadatos para usuarios free.
func WaitTimeChart(c *fiber.Ctx) error {
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

	awt := result.Metrics.AWT

	key := "chart:" + requestHash(req)
	if cache.ChartCache != nil {
		if cached, found := cache.ChartCache.Get(key); found {
			if histogram, ok := cached.(chart.Histogram); ok {
				return c.JSON(redactIfFree(histogram, c))
			}
		}
	}

	histogram := chart.WaitTimeHistogram(awt, chart.DefaultSamples, chart.DefaultBins, chartSeed)
	if cache.ChartCache != nil {
		cache.ChartCache.Set(key, histogram)
	}
	return c.JSON(redactIfFree(histogram, c))
}

// redactIfFree quita los momentos exactos de la distribución para cuentas
// gratuitas; las barras siguen visibles como teaser.
func redactIfFree(h chart.Histogram, c *fiber.Ctx) chart.Histogram {
	if isPro(c) {
		return h
	}
	h.Mean = 0
	h.StdDev = 0
	return h
}
