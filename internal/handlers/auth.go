package handlers

import (
	"database/sql"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/yourorg/liftpro/internal/models"
)

// Register handles POST /api/register.
func Register(c *fiber.Ctx) error {
	db := getDBConn()
	if db == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "server not ready"})
	}
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "invalid json"})
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Name = strings.TrimSpace(req.Name)

	if req.Username == "" || req.Email == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{Error: "username and email required"})
	}
	if !strings.Contains(req.Email, "@") {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{Error: "invalid email"})
	}
	if req.Password == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{Error: "password required"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "failed to secure password"})
	}

	res, err := db.Exec(`
		INSERT INTO users (username, email, name, password_hash)
		VALUES (?, ?, ?, ?)
	`, req.Username, req.Email, req.Name, string(hash))
	if err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse{Error: "username or email already exists"})
		}
		log.Printf("❌ Error insertando usuario: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "db error"})
	}

	userID, _ := res.LastInsertId()
	log.Printf("✅ Usuario registrado: id=%d, username=%s", userID, req.Username)

	token, expiresAt, err := issueToken(userID, req.Username, false)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "failed to sign token"})
	}
	c.Set("Cache-Control", "no-store")
	return c.Status(fiber.StatusCreated).JSON(models.LoginResponse{
		Token:     token,
		User:      models.UserDTO{ID: userID, Username: req.Username, Name: req.Name},
		ExpiresAt: expiresAt,
	})
}

// Login handles POST /api/login.
func Login(c *fiber.Ctx) error {
	db := getDBConn()
	if db == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "server not ready"})
	}
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "invalid json"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{Error: "username and password required"})
	}

	var (
		userID int64
		name   string
		email  string
		hash   string
		isPro  bool
	)
	err := db.QueryRow(`
		SELECT id, name, email, password_hash, is_pro FROM users WHERE username = ?
	`, req.Username).Scan(&userID, &name, &email, &hash, &isPro)
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Error: "invalid credentials"})
	}
	if err != nil {
		log.Printf("❌ Error consultando usuario: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "db error"})
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Error: "invalid credentials"})
	}

	token, expiresAt, err := issueToken(userID, req.Username, isPro)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "failed to sign token"})
	}
	c.Set("Cache-Control", "no-store")
	return c.JSON(models.LoginResponse{
		Token:     token,
		User:      models.UserDTO{ID: userID, Username: req.Username, Name: name, Email: email, IsPro: isPro},
		ExpiresAt: expiresAt,
	})
}

// Activate handles POST /api/activate: canjea un código de acceso pro.
// El código debe estar emitido para el email de la cuenta y sin canjear.
func Activate(c *fiber.Ctx) error {
	db := getDBConn()
	if db == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "server not ready"})
	}

	userID, ok := c.Locals("userID").(int64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Error: "authentication required"})
	}
	username, _ := c.Locals("username").(string)

	var req models.ActivateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "invalid json"})
	}
	req.AccessCode = strings.TrimSpace(req.AccessCode)
	if req.AccessCode == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{Error: "access_code required"})
	}

	var email string
	if err := db.QueryRow(`SELECT email FROM users WHERE id = ?`, userID).Scan(&email); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "db error"})
	}

	// El código tiene que coincidir con el email registrado, igual que la
	// tabla manual de suscriptores que reemplaza.
	res, err := db.Exec(`
		UPDATE access_codes
		SET redeemed_by = ?, redeemed_at = NOW()
		WHERE code = ? AND email = ? AND redeemed_at IS NULL
	`, userID, req.AccessCode, email)
	if err != nil {
		log.Printf("❌ Error canjeando código: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "db error"})
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		log.Printf("⚠️ Código inválido para %s", email)
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse{Error: "invalid code for this email"})
	}

	if _, err := db.Exec(`UPDATE users SET is_pro = 1, pro_since = NOW() WHERE id = ?`, userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "db error"})
	}

	log.Printf("✅ Pro activado: user_id=%d", userID)

	token, expiresAt, err := issueToken(userID, username, true)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "failed to sign token"})
	}
	c.Set("Cache-Control", "no-store")
	return c.JSON(models.LoginResponse{
		Token:     token,
		User:      models.UserDTO{ID: userID, Username: username, Email: email, IsPro: true},
		ExpiresAt: expiresAt,
	})
}
