package repository

import "github.com/elb0ni/mis-finanzas-server/internal/domain/entity"

// CostosFijosRepository define el puerto de persistencia para la configuración
// de costos fijos y su histórico mensual (DIP).
type CostosFijosRepository interface {
	CrearConfiguracion(config *entity.ConfiguracionCostoFijo) error
	BuscarConfiguracion(id, negocioID int64) (*entity.ConfiguracionCostoFijo, error)
	ListarConfiguracion(negocioID int64) ([]*entity.ConfiguracionCostoFijo, error)
	ActualizarConfiguracion(config *entity.ConfiguracionCostoFijo) error
	EliminarConfiguracion(id, negocioID int64) error

	// ContarConfiguracionActiva cuenta las configuraciones activas del negocio.
	// Cero significa "configuración faltante", no "costo cero".
	ContarConfiguracionActiva(negocioID int64) (int, error)

	// GenerarSnapshot materializa la suma de configuraciones activas como
	// registro histórico de (negocio, año, mes). Es idempotente: si el
	// registro ya existe, o no hay configuraciones activas, no inserta nada
	// y devuelve false.
	GenerarSnapshot(negocioID int64, año, mes int) (bool, error)

	// ObtenerSnapshot devuelve el histórico de (negocio, año, mes), o nil si
	// aún no fue generado.
	ObtenerSnapshot(negocioID int64, año, mes int) (*entity.HistoricoCostoFijoMensual, error)

	// ListarHistorico devuelve los registros mensuales del negocio, más
	// recientes primero.
	ListarHistorico(negocioID int64) ([]*entity.HistoricoCostoFijoMensual, error)
}
