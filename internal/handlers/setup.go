package handlers

import (
	"database/sql"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/yourorg/liftpro/internal/models"
)

// package-level dependencies
var (
	setupOnce sync.Once    // Garantiza inicialización única
	setupMu   sync.RWMutex // Protege acceso a variables globales
	dbConn    *sql.DB
	jwtSecret []byte
	tokenTTL  = 24 * time.Hour
)

// Setup wires shared dependencies for handlers. Call this during app bootstrap.
func Setup(db *sql.DB) {
	setupOnce.Do(func() {
		setupMu.Lock()
		defer setupMu.Unlock()

		dbConn = db
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			if os.Getenv("ENV") == "production" || os.Getenv("ENVIRONMENT") == "production" {
				log.Fatal("❌ CRITICAL: JWT_SECRET must be set in production environment")
			}
			log.Println("⚠️ WARNING: Using default JWT secret (development only)")
			secret = "dev-secret-change-me-please-32ch"
		}

		if len(secret) < 32 {
			log.Fatalf("❌ CRITICAL: JWT_SECRET must be at least 32 characters long (current: %d)", len(secret))
		}

		jwtSecret = []byte(secret)

		if ttl := os.Getenv("JWT_TTL"); ttl != "" {
			dur, err := time.ParseDuration(ttl)
			if err != nil || dur <= 0 {
				log.Printf("invalid JWT_TTL=%q, using default %s", ttl, tokenTTL)
			} else {
				tokenTTL = dur
			}
		}
	})
}

// getDBConn retorna la conexión de base de datos de forma segura
func getDBConn() *sql.DB {
	setupMu.RLock()
	defer setupMu.RUnlock()
	return dbConn
}

// getJWTSecret retorna el secret JWT de forma segura
func getJWTSecret() []byte {
	setupMu.RLock()
	defer setupMu.RUnlock()
	return jwtSecret
}

type userClaims struct {
	Username string `json:"username"`
	Pro      bool   `json:"pro"`
	jwt.RegisteredClaims
}

func issueToken(userID int64, username string, pro bool) (string, time.Time, error) {
	now := time.Now()
	expires := now.Add(tokenTTL)
	claims := userClaims{
		Username: username,
		Pro:      pro,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(getJWTSecret())
	return signed, expires, err
}

func parseToken(raw string) (*userClaims, error) {
	claims := &userClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return getJWTSecret(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func bearerToken(c *fiber.Ctx) string {
	auth := c.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	// Fallback para WebSocket y descargas directas desde el navegador
	return strings.TrimSpace(c.Query("token"))
}

// AuthOptional resuelve el token si viene, sin exigirlo. Deja userID,
// username y pro en Locals para los endpoints con vista gratuita.
func AuthOptional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if raw := bearerToken(c); raw != "" {
			if claims, err := parseToken(raw); err == nil {
				if id, err := strconv.ParseInt(claims.Subject, 10, 64); err == nil {
					c.Locals("userID", id)
				}
				c.Locals("username", claims.Username)
				c.Locals("pro", claims.Pro)
			}
		}
		return c.Next()
	}
}

// AuthRequired exige un token válido.
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := bearerToken(c)
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Error: "authentication required"})
		}
		claims, err := parseToken(raw)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Error: "invalid or expired token"})
		}
		id, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Error: "invalid token subject"})
		}
		c.Locals("userID", id)
		c.Locals("username", claims.Username)
		c.Locals("pro", claims.Pro)
		return c.Next()
	}
}

// ProRequired exige una suscripción pro activa (gate de AWT/HC/PDF).
func ProRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !isPro(c) {
			return c.Status(fiber.StatusPaymentRequired).JSON(models.ErrorResponse{
				Error: models.ProUpgradeNotice,
			})
		}
		return c.Next()
	}
}

func isPro(c *fiber.Ctx) bool {
	pro, _ := c.Locals("pro").(bool)
	return pro
}
