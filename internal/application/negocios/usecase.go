// Package negocios contiene el caso de uso de administración del negocio:
// el negocio mismo, sus puntos de venta, su catálogo de productos y sus
// categorías de egreso.
package negocios

import (
	"strings"

	"github.com/elb0ni/mis-finanzas-server/internal/application/dto"
	"github.com/elb0ni/mis-finanzas-server/internal/domain"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/entity"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/repository"
)

// UseCase CRUD de negocios y sus recursos anidados. Toda operación exige que
// el negocio pertenezca al usuario autenticado.
type UseCase struct {
	negocioRepo   repository.NegocioRepository
	puntoRepo     repository.PuntoVentaRepository
	productoRepo  repository.ProductoRepository
	categoriaRepo repository.CategoriaEgresoRepository
}

// NewUseCase construye el caso de uso de negocios.
func NewUseCase(negocioRepo repository.NegocioRepository, puntoRepo repository.PuntoVentaRepository, productoRepo repository.ProductoRepository, categoriaRepo repository.CategoriaEgresoRepository) *UseCase {
	return &UseCase{
		negocioRepo:   negocioRepo,
		puntoRepo:     puntoRepo,
		productoRepo:  productoRepo,
		categoriaRepo: categoriaRepo,
	}
}

// verificarPropiedad confirma que el negocio existe y es del usuario.
// "No existe" y "no es tuyo" son el mismo ErrNotFound a propósito.
func (uc *UseCase) verificarPropiedad(negocioID int64, propietario string) error {
	negocio, err := uc.negocioRepo.BuscarPropio(negocioID, propietario)
	if err != nil {
		return err
	}
	if negocio == nil {
		return domain.ErrNotFound
	}
	return nil
}

// ── Negocios ──────────────────────────────────────────────────────────────────

// Crear registra un negocio del usuario.
func (uc *UseCase) Crear(propietario string, in dto.CreateNegocioRequest) (*dto.NegocioResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrInvalidInput
	}
	negocio := &entity.Negocio{
		Propietario: propietario,
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
	}
	if err := uc.negocioRepo.Crear(negocio); err != nil {
		return nil, err
	}
	return negocioToDTO(negocio), nil
}

// Listar devuelve los negocios del usuario.
func (uc *UseCase) Listar(propietario string) ([]dto.NegocioResponse, error) {
	negocios, err := uc.negocioRepo.ListarPorPropietario(propietario)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NegocioResponse, 0, len(negocios))
	for _, n := range negocios {
		out = append(out, *negocioToDTO(n))
	}
	return out, nil
}

// Buscar devuelve un negocio del usuario por id.
func (uc *UseCase) Buscar(id int64, propietario string) (*dto.NegocioResponse, error) {
	negocio, err := uc.negocioRepo.BuscarPropio(id, propietario)
	if err != nil {
		return nil, err
	}
	if negocio == nil {
		return nil, domain.ErrNotFound
	}
	return negocioToDTO(negocio), nil
}

// Actualizar edita nombre y descripción del negocio.
func (uc *UseCase) Actualizar(id int64, propietario string, in dto.UpdateNegocioRequest) (*dto.NegocioResponse, error) {
	negocio, err := uc.negocioRepo.BuscarPropio(id, propietario)
	if err != nil {
		return nil, err
	}
	if negocio == nil {
		return nil, domain.ErrNotFound
	}
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrInvalidInput
	}
	negocio.Nombre = in.Nombre
	negocio.Descripcion = in.Descripcion
	if err := uc.negocioRepo.Actualizar(negocio, propietario); err != nil {
		return nil, err
	}
	return negocioToDTO(negocio), nil
}

// Eliminar borra el negocio del usuario.
func (uc *UseCase) Eliminar(id int64, propietario string) error {
	if err := uc.verificarPropiedad(id, propietario); err != nil {
		return err
	}
	return uc.negocioRepo.Eliminar(id, propietario)
}

// ── Puntos de venta ───────────────────────────────────────────────────────────

// CrearPuntoVenta registra un punto de venta en un negocio del usuario.
func (uc *UseCase) CrearPuntoVenta(propietario string, in dto.CreatePuntoVentaRequest) (*dto.PuntoVentaResponse, error) {
	if err := uc.verificarPropiedad(in.NegocioID, propietario); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrInvalidInput
	}
	punto := &entity.PuntoVenta{
		NegocioID: in.NegocioID,
		Nombre:    in.Nombre,
		Direccion: in.Direccion,
		Activo:    true,
	}
	if err := uc.puntoRepo.Crear(punto); err != nil {
		return nil, err
	}
	return puntoToDTO(punto), nil
}

// ListarPuntosVenta devuelve los puntos de venta del negocio.
func (uc *UseCase) ListarPuntosVenta(negocioID int64, propietario string) ([]dto.PuntoVentaResponse, error) {
	if err := uc.verificarPropiedad(negocioID, propietario); err != nil {
		return nil, err
	}
	puntos, err := uc.puntoRepo.ListarPorNegocio(negocioID, propietario)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PuntoVentaResponse, 0, len(puntos))
	for _, p := range puntos {
		out = append(out, *puntoToDTO(p))
	}
	return out, nil
}

// ActualizarPuntoVenta edita un punto de venta del usuario.
func (uc *UseCase) ActualizarPuntoVenta(id int64, propietario string, in dto.UpdatePuntoVentaRequest) (*dto.PuntoVentaResponse, error) {
	punto, err := uc.puntoRepo.BuscarPropio(id, propietario)
	if err != nil {
		return nil, err
	}
	if punto == nil {
		return nil, domain.ErrNotFound
	}
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrInvalidInput
	}
	punto.Nombre = in.Nombre
	punto.Direccion = in.Direccion
	punto.Activo = in.Activo
	if err := uc.puntoRepo.Actualizar(punto, propietario); err != nil {
		return nil, err
	}
	return puntoToDTO(punto), nil
}

// EliminarPuntoVenta borra un punto de venta del usuario.
func (uc *UseCase) EliminarPuntoVenta(id int64, propietario string) error {
	punto, err := uc.puntoRepo.BuscarPropio(id, propietario)
	if err != nil {
		return err
	}
	if punto == nil {
		return domain.ErrNotFound
	}
	return uc.puntoRepo.Eliminar(id, propietario)
}

// ── Productos ─────────────────────────────────────────────────────────────────

// CrearProducto registra un producto del catálogo. Precio y costo no pueden
// ser negativos; la ganancia unitaria se deriva al responder.
func (uc *UseCase) CrearProducto(propietario string, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if err := uc.verificarPropiedad(in.NegocioID, propietario); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Nombre) == "" || in.PrecioUnitario.Sign() < 0 || in.CostoUnitario.Sign() < 0 {
		return nil, domain.ErrInvalidInput
	}
	producto := &entity.Producto{
		NegocioID:      in.NegocioID,
		Nombre:         in.Nombre,
		Descripcion:    in.Descripcion,
		PrecioUnitario: in.PrecioUnitario,
		CostoUnitario:  in.CostoUnitario,
		Activo:         true,
	}
	if err := uc.productoRepo.Crear(producto); err != nil {
		return nil, err
	}
	return productoToDTO(producto), nil
}

// ListarProductos devuelve el catálogo del negocio; con soloActivos excluye
// los desactivados.
func (uc *UseCase) ListarProductos(negocioID int64, propietario string, soloActivos bool) ([]dto.ProductoResponse, error) {
	if err := uc.verificarPropiedad(negocioID, propietario); err != nil {
		return nil, err
	}
	productos, err := uc.productoRepo.ListarPorNegocio(negocioID, soloActivos)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, *productoToDTO(p))
	}
	return out, nil
}

// ActualizarProducto edita un producto del catálogo.
func (uc *UseCase) ActualizarProducto(negocioID, productoID int64, propietario string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	if err := uc.verificarPropiedad(negocioID, propietario); err != nil {
		return nil, err
	}
	producto, err := uc.productoRepo.BuscarPorID(productoID, negocioID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	if strings.TrimSpace(in.Nombre) == "" || in.PrecioUnitario.Sign() < 0 || in.CostoUnitario.Sign() < 0 {
		return nil, domain.ErrInvalidInput
	}
	producto.Nombre = in.Nombre
	producto.Descripcion = in.Descripcion
	producto.PrecioUnitario = in.PrecioUnitario
	producto.CostoUnitario = in.CostoUnitario
	producto.Activo = in.Activo
	if err := uc.productoRepo.Actualizar(producto); err != nil {
		return nil, err
	}
	return productoToDTO(producto), nil
}

// DesactivarProducto marca el producto como inactivo. No se borra: el detalle
// histórico de transacciones lo sigue referenciando.
func (uc *UseCase) DesactivarProducto(negocioID, productoID int64, propietario string) error {
	if err := uc.verificarPropiedad(negocioID, propietario); err != nil {
		return err
	}
	producto, err := uc.productoRepo.BuscarPorID(productoID, negocioID)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	return uc.productoRepo.Desactivar(productoID, negocioID)
}

// ── Categorías de egreso ──────────────────────────────────────────────────────

// CrearCategoria registra una categoría de egreso del negocio.
func (uc *UseCase) CrearCategoria(propietario string, in dto.CreateCategoriaRequest) (*dto.CategoriaResponse, error) {
	if err := uc.verificarPropiedad(in.NegocioID, propietario); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Nombre) == "" || !tipoCostoValido(in.TipoCosto) {
		return nil, domain.ErrInvalidInput
	}
	categoria := &entity.CategoriaEgreso{
		NegocioID:   in.NegocioID,
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		TipoCosto:   in.TipoCosto,
		Activo:      true,
	}
	if err := uc.categoriaRepo.Crear(categoria); err != nil {
		return nil, err
	}
	return categoriaToDTO(categoria), nil
}

// ListarCategorias devuelve las categorías del negocio, opcionalmente
// filtradas por tipo de costo.
func (uc *UseCase) ListarCategorias(negocioID int64, propietario, tipoCosto string) ([]dto.CategoriaResponse, error) {
	if err := uc.verificarPropiedad(negocioID, propietario); err != nil {
		return nil, err
	}
	if tipoCosto != "" && !tipoCostoValido(tipoCosto) {
		return nil, domain.ErrInvalidInput
	}
	categorias, err := uc.categoriaRepo.ListarPorNegocio(negocioID, tipoCosto)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, *categoriaToDTO(c))
	}
	return out, nil
}

// ActualizarCategoria edita una categoría de egreso.
func (uc *UseCase) ActualizarCategoria(negocioID, categoriaID int64, propietario string, in dto.UpdateCategoriaRequest) (*dto.CategoriaResponse, error) {
	if err := uc.verificarPropiedad(negocioID, propietario); err != nil {
		return nil, err
	}
	categoria, err := uc.categoriaRepo.BuscarPorID(categoriaID, negocioID)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNotFound
	}
	if strings.TrimSpace(in.Nombre) == "" || !tipoCostoValido(in.TipoCosto) {
		return nil, domain.ErrInvalidInput
	}
	categoria.Nombre = in.Nombre
	categoria.Descripcion = in.Descripcion
	categoria.TipoCosto = in.TipoCosto
	categoria.Activo = in.Activo
	if err := uc.categoriaRepo.Actualizar(categoria); err != nil {
		return nil, err
	}
	return categoriaToDTO(categoria), nil
}

// EliminarCategoria borra una categoría de egreso del negocio.
func (uc *UseCase) EliminarCategoria(negocioID, categoriaID int64, propietario string) error {
	if err := uc.verificarPropiedad(negocioID, propietario); err != nil {
		return err
	}
	categoria, err := uc.categoriaRepo.BuscarPorID(categoriaID, negocioID)
	if err != nil {
		return err
	}
	if categoria == nil {
		return domain.ErrNotFound
	}
	return uc.categoriaRepo.Eliminar(categoriaID, negocioID)
}

func tipoCostoValido(t string) bool {
	return t == entity.CostoFijo || t == entity.CostoVariable
}

func negocioToDTO(n *entity.Negocio) *dto.NegocioResponse {
	return &dto.NegocioResponse{
		ID:            n.ID,
		Nombre:        n.Nombre,
		Descripcion:   n.Descripcion,
		FechaCreacion: n.FechaCreacion,
	}
}

func puntoToDTO(p *entity.PuntoVenta) *dto.PuntoVentaResponse {
	return &dto.PuntoVentaResponse{
		ID:            p.ID,
		NegocioID:     p.NegocioID,
		Nombre:        p.Nombre,
		Direccion:     p.Direccion,
		Activo:        p.Activo,
		FechaCreacion: p.FechaCreacion,
	}
}

func productoToDTO(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:               p.ID,
		NegocioID:        p.NegocioID,
		Nombre:           p.Nombre,
		Descripcion:      p.Descripcion,
		PrecioUnitario:   p.PrecioUnitario,
		CostoUnitario:    p.CostoUnitario,
		GananciaUnitaria: p.GananciaUnitaria(),
		Activo:           p.Activo,
		FechaCreacion:    p.FechaCreacion,
	}
}

func categoriaToDTO(c *entity.CategoriaEgreso) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{
		ID:            c.ID,
		NegocioID:     c.NegocioID,
		Nombre:        c.Nombre,
		Descripcion:   c.Descripcion,
		TipoCosto:     c.TipoCosto,
		Activo:        c.Activo,
		FechaCreacion: c.FechaCreacion,
	}
}
