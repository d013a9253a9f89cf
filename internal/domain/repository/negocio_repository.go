package repository

import "github.com/elb0ni/mis-finanzas-server/internal/domain/entity"

// NegocioRepository define el puerto de persistencia para Negocio (DIP).
// Todas las lecturas van filtradas por propietario: un negocio ajeno y un
// negocio inexistente son indistinguibles (ambos devuelven nil).
type NegocioRepository interface {
	Crear(negocio *entity.Negocio) error
	BuscarPropio(id int64, propietario string) (*entity.Negocio, error)
	ListarPorPropietario(propietario string) ([]*entity.Negocio, error)
	Actualizar(negocio *entity.Negocio, propietario string) error
	Eliminar(id int64, propietario string) error
}

// PuntoVentaRepository define el puerto de persistencia para PuntoVenta.
type PuntoVentaRepository interface {
	Crear(punto *entity.PuntoVenta) error
	BuscarPropio(id int64, propietario string) (*entity.PuntoVenta, error)
	ListarPorNegocio(negocioID int64, propietario string) ([]*entity.PuntoVenta, error)
	Actualizar(punto *entity.PuntoVenta, propietario string) error
	Eliminar(id int64, propietario string) error
}
