package routes

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/yourorg/liftpro/internal/handlers"
	"github.com/yourorg/liftpro/internal/live"
	"github.com/yourorg/liftpro/internal/middleware"
	"github.com/yourorg/liftpro/internal/report"
)

// Register monta todos los endpoints de la API.
func Register(app *fiber.App, db *sql.DB) {
	// ============================================================================
	// API PÚBLICA
	// ============================================================================
	api := app.Group("/api")

	// Health check (sin rate limiting)
	api.Get("/health", handlers.Health)

	// ============================================================================
	// AUTENTICACIÓN Y ACTIVACIÓN PRO (con rate limiting estricto)
	// ============================================================================
	api.Post("/login", middleware.StrictRateLimiter(), handlers.Login)
	api.Post("/register", middleware.StrictRateLimiter(), handlers.Register)
	api.Post("/activate", middleware.StrictRateLimiter(), handlers.AuthRequired(), handlers.Activate)

	// ============================================================================
	// ANÁLISIS DE TRÁFICO VERTICAL
	// ============================================================================
	// El análisis es público: RTT e Interval se muestran a todos, AWT y HC
	// sólo con token pro (AuthOptional resuelve el tier).
	analysis := api.Group("/analysis", handlers.AuthOptional())

	analysis.Post("/", handlers.Analyze)
	// POST /api/analysis
	// Body: {fleet, doors, zone, floor_population | target_population+served_floors,
	//        formula_variant, building_type, ...}

	analysis.Get("/defaults", handlers.FormDefaults)
	// GET /api/analysis/defaults?total_floors=N - valores iniciales del formulario

	// ============================================================================
	// GRÁFICO TEASER (distribución de tiempos de espera)
	// ============================================================================
	api.Post("/chart/wait-times", handlers.AuthOptional(), handlers.WaitTimeChart)

	// ============================================================================
	// BENCHMARKS DE CAPACIDAD POR TIPO DE EDIFICIO
	// ============================================================================
	api.Get("/benchmarks", handlers.Benchmarks)
	// GET /api/benchmarks | /api/benchmarks?building_type=hotel

	// ============================================================================
	// INFORMES PDF (PRO ONLY)
	// RATE LIMITING: RenderRateLimiter (5 req/5min) - levanta Chrome headless
	// ============================================================================
	reportHandler := handlers.NewReportHandler(report.NewRenderer())

	reports := api.Group("/reports", handlers.AuthRequired(), handlers.ProRequired())
	reports.Post("/", middleware.RenderRateLimiter(), reportHandler.CreateReport)
	reports.Get("/:id", reportHandler.DownloadReport)

	// ============================================================================
	// ESTADÍSTICAS DEL SERVICIO
	// ============================================================================
	statsHandler := handlers.NewStatsHandler()
	api.Get("/stats", statsHandler.GetStats)

	// ============================================================================
	// RECÁLCULO EN VIVO (WebSocket del formulario)
	// ============================================================================
	// AuthOptional deja "pro" en Locals; websocket.New los copia a la conexión.
	app.Use("/ws/analysis", handlers.AuthOptional(), func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/analysis", websocket.New(func(c *websocket.Conn) {
		live.HandleAnalysisSocket(c)
	}))

	_ = db // la conexión llega a los handlers vía handlers.Setup
}
