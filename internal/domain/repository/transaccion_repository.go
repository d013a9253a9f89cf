package repository

import (
	"time"

	"github.com/elb0ni/mis-finanzas-server/internal/domain/entity"
)

// TransaccionRepository define el puerto de persistencia para Transaccion.
// Las transacciones son append-only: no hay Update ni Delete.
type TransaccionRepository interface {
	// Crear inserta la transacción y sus detalles. Debe invocarse dentro de
	// una transacción de base de datos (ver TxRunner) para que cabecera y
	// detalles queden como unidad atómica.
	Crear(transaccion *entity.Transaccion) error
	BuscarPropia(id int64, propietario string) (*entity.Transaccion, error)
	// ListarPorPuntoVenta devuelve las transacciones del punto de venta en el
	// rango [desde, hasta] inclusive, más recientes primero.
	ListarPorPuntoVenta(puntoVentaID int64, propietario string, desde, hasta time.Time) ([]*entity.Transaccion, error)
}
