package repository

import "github.com/elb0ni/mis-finanzas-server/internal/domain/entity"

// CategoriaEgresoRepository define el puerto de persistencia para CategoriaEgreso.
type CategoriaEgresoRepository interface {
	Crear(categoria *entity.CategoriaEgreso) error
	BuscarPorID(id, negocioID int64) (*entity.CategoriaEgreso, error)
	// ListarPorNegocio filtra opcionalmente por tipo de costo ("fijo" o
	// "variable"); cadena vacía devuelve todas.
	ListarPorNegocio(negocioID int64, tipoCosto string) ([]*entity.CategoriaEgreso, error)
	Actualizar(categoria *entity.CategoriaEgreso) error
	Eliminar(id, negocioID int64) error
}
