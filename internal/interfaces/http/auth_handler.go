package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/dto"
)

// AuthHandler maneja registro, login y perfil.
type AuthHandler struct {
	uc      *auth.AuthUseCase
	metrics *Metrics
}

// NewAuthHandler construye el handler de auth. metrics puede ser nil.
func NewAuthHandler(uc *auth.AuthUseCase, metrics *Metrics) *AuthHandler {
	return &AuthHandler{uc: uc, metrics: metrics}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username, email, password, firstName, lastName, role"
// @Success      200   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		h.metrics.recordLogin("error")
		return writeError(c, err)
	}
	if out == nil {
		h.metrics.recordLogin("rejected")
		return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas")
	}
	h.metrics.recordLogin("success")
	return c.JSON(out)
}

// Me godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserInfo
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "user_id no encontrado en el token")
	}
	out, err := h.uc.GetUserInfo(c.UserContext(), userID)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "usuario no encontrado")
	}
	return c.JSON(out)
}

// Verify godoc
// @Summary      Verificar token
// @Description  Responde con la identidad contenida en el token, sin consultar la base.
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/verify [get]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	claims := GetClaims(c)
	if claims == nil {
		return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "token requerido")
	}
	return c.JSON(fiber.Map{
		"message": "token válido",
		"user": fiber.Map{
			"id":        claims.UserID,
			"username":  claims.Username,
			"email":     claims.Email,
			"firstName": claims.FirstName,
			"lastName":  claims.LastName,
			"fullName":  claims.FullName,
			"role":      claims.Role,
		},
	})
}
