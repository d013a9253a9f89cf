package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/elb0ni/mis-finanzas-server/internal/application/analisis"
	"github.com/elb0ni/mis-finanzas-server/internal/application/dto"
)

// CostosHandler maneja la configuración de costos fijos y el histórico mensual.
type CostosHandler struct {
	uc *analisis.CostosUseCase
}

// NewCostosHandler construye el handler de costos fijos.
func NewCostosHandler(uc *analisis.CostosUseCase) *CostosHandler {
	return &CostosHandler{uc: uc}
}

// Create registra un costo fijo mensual esperado.
// POST /api/costos-fijos
func (h *CostosHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCostoFijoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	config, err := h.uc.CrearConfiguracion(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(config)
}

// List lista la configuración de costos fijos del negocio.
// GET /api/negocios/:id/costos-fijos
func (h *CostosHandler) List(c *fiber.Ctx) error {
	negocioID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListarConfiguracion(negocioID, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update edita una configuración de costo fijo. No reescribe el histórico.
// PUT /api/negocios/:id/costos-fijos/:configId
func (h *CostosHandler) Update(c *fiber.Ctx) error {
	negocioID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	configID, err := paramID(c, "configId")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateCostoFijoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	config, err := h.uc.ActualizarConfiguracion(c.Context(), GetUserID(c), negocioID, configID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(config)
}

// Delete borra una configuración de costo fijo.
// DELETE /api/negocios/:id/costos-fijos/:configId
func (h *CostosHandler) Delete(c *fiber.Ctx) error {
	negocioID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	configID, err := paramID(c, "configId")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.EliminarConfiguracion(c.Context(), GetUserID(c), negocioID, configID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GenerarSnapshot godoc
// @Summary      Materializar el snapshot mensual de costos fijos
// @Description  Idempotente: si el registro del mes ya existe no se duplica.
// @Tags         costos-fijos
// @Produce      json
// @Param        id   path   int  true   "id del negocio"
// @Param        año  query  int  false  "año (default: actual)"
// @Param        mes  query  int  false  "mes 1-12 (default: actual)"
// @Success      200  {object}  dto.GenerarSnapshotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/negocios/{id}/costos-fijos/generar [post]
func (h *CostosHandler) GenerarSnapshot(c *fiber.Ctx) error {
	negocioID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	año, mes, err := parseAñoMes(c)
	if err != nil {
		return badRequest(c, "año y mes deben ser enteros")
	}
	out, err := h.uc.GenerarSnapshot(negocioID, GetUserID(c), año, mes)
	if err != nil {
		return respondError(c, err)
	}
	return exito(c, out)
}

// Historico lista los registros mensuales materializados del negocio.
// GET /api/negocios/:id/costos-fijos/historico
func (h *CostosHandler) Historico(c *fiber.Ctx) error {
	negocioID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListarHistorico(negocioID, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// parseAñoMes lee año y mes de la query; ausentes quedan en cero y el use case
// usa el mes calendario actual.
func parseAñoMes(c *fiber.Ctx) (año, mes int, err error) {
	if s := c.Query("año"); s != "" {
		if año, err = strconv.Atoi(s); err != nil {
			return 0, 0, err
		}
	}
	if s := c.Query("mes"); s != "" {
		if mes, err = strconv.Atoi(s); err != nil {
			return 0, 0, err
		}
	}
	return año, mes, nil
}
