package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/elb0ni/mis-finanzas-server/internal/application/dto"
	"github.com/elb0ni/mis-finanzas-server/internal/domain"
)

// exito envuelve la respuesta de los endpoints de análisis y reportes en el
// sobre {success, data} que espera el cliente.
func exito(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

// respondError traduce errores de dominio a HTTP. Los errores de precondición
// del punto de equilibrio salen como 428 con el cuerpo accionable; el resto
// son los mapeos usuales. El detalle de un error interno no se filtra al
// cliente, solo queda en el log del recover.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case domain.EsPrecondicion(err):
		return c.Status(fiber.StatusPreconditionRequired).JSON(dto.PrecondicionResponse{
			Success: false,
			Error:   err.Error(),
			Message: mensajePrecondicion(err),
			Action:  "SHOW_GENERATION_MODAL",
		})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recurso duplicado"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}

func mensajePrecondicion(err error) string {
	if errors.Is(err, domain.ErrFaltaConfiguracionCostosFijos) {
		return "Se requiere configuración de costos fijos"
	}
	return "Se requiere generar costos mensuales"
}

// badRequest atajo para errores de entrada detectados en el handler.
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: message})
}

// paramID lee un parámetro de ruta como entero positivo.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}
