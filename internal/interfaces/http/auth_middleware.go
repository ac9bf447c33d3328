package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/foodforgood-api/internal/application/dto"
	"github.com/jhoicas/foodforgood-api/pkg/jwt"
)

// HeaderAuthToken es el header que usa el cliente móvil para el token de sesión.
// Se mantiene el nombre histórico del contrato (sin prefijo Bearer).
const HeaderAuthToken = "x-auth-token"

// Locals keys para los claims del actor autenticado en Fiber.
const (
	LocalUserID   = "user_id"
	LocalEmail    = "email"
	LocalFullName = "full_name"
	LocalUserType = "user_type"
)

// AuthMiddleware valida el token JWT del header x-auth-token y extrae los
// claims a c.Locals. Token ausente, malformado o expirado responde 401.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := strings.TrimSpace(c.Get(HeaderAuthToken))
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header x-auth-token requerido"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalFullName, claims.FullName)
		c.Locals(LocalUserType, claims.UserType)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetEmail devuelve el email del contexto.
func GetEmail(c *fiber.Ctx) string {
	return localString(c, LocalEmail)
}

// GetUserType devuelve el tipo de usuario del token. Es informativo: los
// casos de uso releen el user_type persistido antes de autorizar.
func GetUserType(c *fiber.Ctx) string {
	return localString(c, LocalUserType)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
