package repository

import "github.com/elb0ni/mis-finanzas-server/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	Crear(producto *entity.Producto) error
	BuscarPorID(id, negocioID int64) (*entity.Producto, error)
	// ListarPorNegocio devuelve el catálogo del negocio; con soloActivos
	// excluye los productos desactivados.
	ListarPorNegocio(negocioID int64, soloActivos bool) ([]*entity.Producto, error)
	Actualizar(producto *entity.Producto) error
	// Desactivar marca el producto como inactivo sin borrarlo: puede seguir
	// apareciendo en el detalle histórico de transacciones.
	Desactivar(id, negocioID int64) error
}
