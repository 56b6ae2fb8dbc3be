package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/yourorg/liftpro/internal/cache"
	appdb "github.com/yourorg/liftpro/internal/db"
	"github.com/yourorg/liftpro/internal/handlers"
	"github.com/yourorg/liftpro/internal/middleware"
	"github.com/yourorg/liftpro/internal/routes"
)

func main() {
	_ = godotenv.Load()

	app := fiber.New()
	app.Use(logger.New())
	app.Use(middleware.MetricsMiddleware())
	app.Use(middleware.GlobalRateLimiter())

	// ============================================================================
	// CACHÉS EN MEMORIA (análisis, informes, gráficos)
	// ============================================================================
	cache.InitCaches()
	log.Println("✅ Cachés inicializados")

	// ============================================================================
	// DB CONNECTION
	// ============================================================================
	// La base sólo guarda usuarios y códigos de acceso; el motor de análisis
	// no la necesita, así que el servidor arranca aunque la DB demore.
	var dbReady bool

	go func() {
		for {
			db, err := appdb.Connect()
			if err != nil {
				log.Printf("db connect error: %v (retrying in 5s)", err)
				time.Sleep(5 * time.Second)
				continue
			}
			if err := appdb.EnsureSchema(db); err != nil {
				log.Printf("ensure schema error: %v (retrying in 5s)", err)
				time.Sleep(5 * time.Second)
				continue
			}
			handlers.Setup(db)
			routes.Register(app, db)
			dbReady = true
			log.Printf("✅ Database ready and routes registered")
			return
		}
	}()

	// Wait briefly for DB to be ready
	for i := 0; i < 10 && !dbReady; i++ {
		time.Sleep(500 * time.Millisecond)
	}

	// ============================================================================
	// GRACEFUL SHUTDOWN
	// ============================================================================
	// Capturar señales de terminación (Ctrl+C, kill, etc.)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("\n🛑 Señal de terminación recibida, cerrando servidor...")

		cache.StopCaches()

		if err := app.Shutdown(); err != nil {
			log.Printf("⚠️  Error cerrando servidor: %v", err)
		}

		log.Println("✅ Servidor cerrado correctamente")
		os.Exit(0)
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Servidor escuchando en :%s", port)
	log.Println("📍 Endpoints disponibles:")
	log.Println("   ═══ ANÁLISIS DE TRÁFICO VERTICAL ═══")
	log.Println("   POST /api/analysis                  - RTT, intervalo, AWT y HC")
	log.Println("   GET  /api/analysis/defaults         - Valores iniciales del formulario")
	log.Println("   POST /api/chart/wait-times          - Distribución de tiempos de espera")
	log.Println("   GET  /api/benchmarks                - Metas de HC% por tipo de edificio")
	log.Println("   WS   /ws/analysis                   - Recálculo en vivo del formulario")
	log.Println("")
	log.Println("   ═══ CUENTA Y PRO ═══")
	log.Println("   POST /api/register | /api/login     - Cuentas")
	log.Println("   POST /api/activate                  - Canjear código de acceso pro")
	log.Println("   POST /api/reports                   - Informe PDF (pro)")
	log.Println("   GET  /api/reports/:id               - Descargar informe generado")
	log.Println("")
	log.Println("💡 Presiona Ctrl+C para detener")
	log.Println("💡 AWT y HC requieren cuenta pro; RTT e intervalo son públicos")

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
