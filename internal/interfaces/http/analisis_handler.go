package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/elb0ni/mis-finanzas-server/internal/application/analisis"
	"github.com/elb0ni/mis-finanzas-server/internal/application/reportes"
)

// AnalisisHandler maneja el punto de equilibrio y los reportes de desempeño y
// rentabilidad. Todas las respuestas van en el sobre {success, data}.
type AnalisisHandler struct {
	equilibrioUC   *analisis.EquilibrioUseCase
	periodoUC      *reportes.PeriodoUseCase
	rentabilidadUC *reportes.RentabilidadUseCase
}

// NewAnalisisHandler construye el handler de análisis financiero.
func NewAnalisisHandler(equilibrioUC *analisis.EquilibrioUseCase, periodoUC *reportes.PeriodoUseCase, rentabilidadUC *reportes.RentabilidadUseCase) *AnalisisHandler {
	return &AnalisisHandler{
		equilibrioUC:   equilibrioUC,
		periodoUC:      periodoUC,
		rentabilidadUC: rentabilidadUC,
	}
}

// BalancePoint godoc
// @Summary      Punto de equilibrio del mes
// @Description  Con autoGenerar=true, la falta del snapshot mensual se
// @Description  recupera generándolo desde la configuración activa.
// @Tags         analisis
// @Produce      json
// @Param        negocioId    path   int   true   "id del negocio"
// @Param        año          query  int   false  "año (default: actual)"
// @Param        mes          query  int   false  "mes 1-12 (default: actual)"
// @Param        autoGenerar  query  bool  false  "generar snapshot faltante"
// @Success      200  {object}  dto.PuntoEquilibrioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      428  {object}  dto.PrecondicionResponse
// @Router       /api/analisis/balancepoint/{negocioId} [get]
func (h *AnalisisHandler) BalancePoint(c *fiber.Ctx) error {
	negocioID, err := paramID(c, "negocioId")
	if err != nil {
		return respondError(c, err)
	}
	año, mes, err := parseAñoMes(c)
	if err != nil {
		return badRequest(c, "año y mes deben ser enteros")
	}
	if año == 0 || mes == 0 {
		ahora := time.Now()
		año, mes = ahora.Year(), int(ahora.Month())
	}
	autoGenerar := c.Query("autoGenerar") == "true"

	out, err := h.equilibrioUC.Calcular(c.Context(), negocioID, año, mes, GetUserID(c), autoGenerar)
	if err != nil {
		return respondError(c, err)
	}
	return exito(c, out)
}

// ReporteDia devuelve el reporte diario. ?fecha=YYYY-MM-DD (default: hoy).
// GET /api/reportes/dia/:negocioId
func (h *AnalisisHandler) ReporteDia(c *fiber.Ctx) error {
	negocioID, err := paramID(c, "negocioId")
	if err != nil {
		return respondError(c, err)
	}
	fecha, err := parseFecha(c.Query("fecha"))
	if err != nil {
		return badRequest(c, "fecha debe ser YYYY-MM-DD")
	}
	out, err := h.periodoUC.Dia(c.Context(), negocioID, fecha, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return exito(c, out)
}

// ReporteSemana devuelve el reporte de la semana lunes-domingo que contiene
// ?fecha (default: hoy).
// GET /api/reportes/semana/:negocioId
func (h *AnalisisHandler) ReporteSemana(c *fiber.Ctx) error {
	negocioID, err := paramID(c, "negocioId")
	if err != nil {
		return respondError(c, err)
	}
	fecha, err := parseFecha(c.Query("fecha"))
	if err != nil {
		return badRequest(c, "fecha debe ser YYYY-MM-DD")
	}
	out, err := h.periodoUC.Semana(c.Context(), negocioID, fecha, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return exito(c, out)
}

// ReporteMes devuelve el reporte del mes calendario que contiene ?fecha
// (default: hoy).
// GET /api/reportes/mes/:negocioId
func (h *AnalisisHandler) ReporteMes(c *fiber.Ctx) error {
	negocioID, err := paramID(c, "negocioId")
	if err != nil {
		return respondError(c, err)
	}
	fecha, err := parseFecha(c.Query("fecha"))
	if err != nil {
		return badRequest(c, "fecha debe ser YYYY-MM-DD")
	}
	out, err := h.periodoUC.Mes(c.Context(), negocioID, fecha, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return exito(c, out)
}

// ProductProfit godoc
// @Summary      Rentabilidad por producto
// @Description  Rango opcional ?fechaInicio y ?fechaFin; sin rango se usa el
// @Description  histórico completo.
// @Tags         analisis
// @Produce      json
// @Param        negocioId    path   int     true   "id del negocio"
// @Param        fechaInicio  query  string  false  "YYYY-MM-DD"
// @Param        fechaFin     query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.RentabilidadResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/analisis/productprofit/{negocioId} [get]
func (h *AnalisisHandler) ProductProfit(c *fiber.Ctx) error {
	negocioID, err := paramID(c, "negocioId")
	if err != nil {
		return respondError(c, err)
	}
	desde, err := parseFechaOpcional(c.Query("fechaInicio"))
	if err != nil {
		return badRequest(c, "fechaInicio debe ser YYYY-MM-DD")
	}
	hasta, err := parseFechaOpcional(c.Query("fechaFin"))
	if err != nil {
		return badRequest(c, "fechaFin debe ser YYYY-MM-DD")
	}
	out, err := h.rentabilidadUC.Calcular(c.Context(), negocioID, GetUserID(c), desde, hasta)
	if err != nil {
		return respondError(c, err)
	}
	return exito(c, out)
}
