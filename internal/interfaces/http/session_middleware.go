package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/smartax-ai/smartax-api/internal/application/dto"
)

// LocalSessionID clave en c.Locals del id de sesión.
const LocalSessionID = "session_id"

// SessionResolver valida un token y devuelve el id de la sesión vigente.
type SessionResolver interface {
	Resolve(token string) (string, error)
}

// SessionMiddleware valida el Bearer Token de sesión y carga el id en c.Locals.
func SessionMiddleware(sessions SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		sessionID, err := sessions.Resolve(tokenString)
		if err != nil {
			return writeError(c, err)
		}
		c.Locals(LocalSessionID, sessionID)
		return c.Next()
	}
}

// GetSessionID devuelve el id de sesión del contexto (después del middleware).
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
