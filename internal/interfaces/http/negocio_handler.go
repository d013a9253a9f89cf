package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/elb0ni/mis-finanzas-server/internal/application/dto"
	"github.com/elb0ni/mis-finanzas-server/internal/application/negocios"
)

// NegocioHandler maneja negocios, puntos de venta, productos y categorías.
type NegocioHandler struct {
	uc *negocios.UseCase
}

// NewNegocioHandler construye el handler de negocios.
func NewNegocioHandler(uc *negocios.UseCase) *NegocioHandler {
	return &NegocioHandler{uc: uc}
}

// ── Negocios ──────────────────────────────────────────────────────────────────

// Create godoc
// @Summary      Crear negocio
// @Tags         negocios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNegocioRequest  true  "nombre, descripcion"
// @Success      201   {object}  dto.NegocioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/negocios [post]
func (h *NegocioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNegocioRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	negocio, err := h.uc.Crear(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(negocio)
}

// List devuelve los negocios del usuario autenticado.
// GET /api/negocios
func (h *NegocioHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Listar(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID devuelve un negocio por id.
// GET /api/negocios/:id
func (h *NegocioHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	negocio, err := h.uc.Buscar(id, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(negocio)
}

// Update edita un negocio.
// PUT /api/negocios/:id
func (h *NegocioHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateNegocioRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	negocio, err := h.uc.Actualizar(id, GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(negocio)
}

// Delete borra un negocio.
// DELETE /api/negocios/:id
func (h *NegocioHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Eliminar(id, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Puntos de venta ───────────────────────────────────────────────────────────

// CreatePuntoVenta registra un punto de venta.
// POST /api/puntos-venta
func (h *NegocioHandler) CreatePuntoVenta(c *fiber.Ctx) error {
	var in dto.CreatePuntoVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	punto, err := h.uc.CrearPuntoVenta(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(punto)
}

// ListPuntosVenta lista los puntos de venta del negocio.
// GET /api/negocios/:id/puntos-venta
func (h *NegocioHandler) ListPuntosVenta(c *fiber.Ctx) error {
	negocioID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListarPuntosVenta(negocioID, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdatePuntoVenta edita un punto de venta.
// PUT /api/puntos-venta/:id
func (h *NegocioHandler) UpdatePuntoVenta(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdatePuntoVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	punto, err := h.uc.ActualizarPuntoVenta(id, GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(punto)
}

// DeletePuntoVenta borra un punto de venta.
// DELETE /api/puntos-venta/:id
func (h *NegocioHandler) DeletePuntoVenta(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.EliminarPuntoVenta(id, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Productos ─────────────────────────────────────────────────────────────────

// CreateProducto registra un producto del catálogo.
// POST /api/productos
func (h *NegocioHandler) CreateProducto(c *fiber.Ctx) error {
	var in dto.CreateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	producto, err := h.uc.CrearProducto(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(producto)
}

// ListProductos lista el catálogo del negocio. ?activos=true excluye los
// productos desactivados.
// GET /api/negocios/:id/productos
func (h *NegocioHandler) ListProductos(c *fiber.Ctx) error {
	negocioID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	soloActivos := c.Query("activos") == "true"
	out, err := h.uc.ListarProductos(negocioID, GetUserID(c), soloActivos)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateProducto edita un producto.
// PUT /api/negocios/:id/productos/:productoId
func (h *NegocioHandler) UpdateProducto(c *fiber.Ctx) error {
	negocioID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	productoID, err := paramID(c, "productoId")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	producto, err := h.uc.ActualizarProducto(negocioID, productoID, GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(producto)
}

// DeleteProducto desactiva un producto (borrado lógico).
// DELETE /api/negocios/:id/productos/:productoId
func (h *NegocioHandler) DeleteProducto(c *fiber.Ctx) error {
	negocioID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	productoID, err := paramID(c, "productoId")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.DesactivarProducto(negocioID, productoID, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Categorías de egreso ──────────────────────────────────────────────────────

// CreateCategoria registra una categoría de egreso.
// POST /api/categorias
func (h *NegocioHandler) CreateCategoria(c *fiber.Ctx) error {
	var in dto.CreateCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	categoria, err := h.uc.CrearCategoria(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(categoria)
}

// ListCategorias lista las categorías del negocio. ?tipo=fijo|variable filtra
// por tipo de costo.
// GET /api/negocios/:id/categorias
func (h *NegocioHandler) ListCategorias(c *fiber.Ctx) error {
	negocioID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListarCategorias(negocioID, GetUserID(c), c.Query("tipo"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateCategoria edita una categoría de egreso.
// PUT /api/negocios/:id/categorias/:categoriaId
func (h *NegocioHandler) UpdateCategoria(c *fiber.Ctx) error {
	negocioID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	categoriaID, err := paramID(c, "categoriaId")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	categoria, err := h.uc.ActualizarCategoria(negocioID, categoriaID, GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categoria)
}

// DeleteCategoria borra una categoría de egreso.
// DELETE /api/negocios/:id/categorias/:categoriaId
func (h *NegocioHandler) DeleteCategoria(c *fiber.Ctx) error {
	negocioID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	categoriaID, err := paramID(c, "categoriaId")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.EliminarCategoria(negocioID, categoriaID, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
