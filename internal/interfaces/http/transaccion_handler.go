package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/elb0ni/mis-finanzas-server/internal/application/dto"
	"github.com/elb0ni/mis-finanzas-server/internal/application/transacciones"
)

// TransaccionHandler maneja el registro y la consulta de transacciones.
type TransaccionHandler struct {
	uc *transacciones.UseCase
}

// NewTransaccionHandler construye el handler de transacciones.
func NewTransaccionHandler(uc *transacciones.UseCase) *TransaccionHandler {
	return &TransaccionHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar transacción
// @Tags         transacciones
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransaccionRequest  true  "venta con detalles o egreso con categoría"
// @Success      201   {object}  dto.TransaccionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transacciones [post]
func (h *TransaccionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransaccionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	transaccion, err := h.uc.Crear(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(transaccion)
}

// GetByID devuelve una transacción por id.
// GET /api/transacciones/:id
func (h *TransaccionHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	transaccion, err := h.uc.Buscar(id, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(transaccion)
}

// ListByPuntoVenta lista las transacciones del punto de venta en el rango
// ?desde=YYYY-MM-DD&hasta=YYYY-MM-DD (ambos requeridos).
// GET /api/puntos-venta/:id/transacciones
func (h *TransaccionHandler) ListByPuntoVenta(c *fiber.Ctx) error {
	puntoVentaID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	desde, err := parseFechaOpcional(c.Query("desde"))
	if err != nil {
		return badRequest(c, "desde debe ser YYYY-MM-DD")
	}
	hasta, err := parseFechaOpcional(c.Query("hasta"))
	if err != nil {
		return badRequest(c, "hasta debe ser YYYY-MM-DD")
	}
	if desde == nil || hasta == nil {
		return badRequest(c, "desde y hasta son requeridos")
	}
	out, err := h.uc.Listar(puntoVentaID, GetUserID(c), *desde, *hasta)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
