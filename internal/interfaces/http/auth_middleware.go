package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/empleados-api/internal/application/dto"
	"github.com/jhoicas/empleados-api/pkg/jwt"
)

// Local key para el UserID en Fiber.
const LocalUserID = "user_id"

// AuthMiddleware valida el token JWT del header Authorization y deja el UserID
// en c.Locals. El prefijo "Bearer " es opcional: si está se descarta, si no el
// valor crudo del header se toma como token.
//
// Sin header -> 401. Header presente pero token inválido/expirado -> 400 (los
// dos códigos se mantienen distintos por compatibilidad con el contrato original).
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
