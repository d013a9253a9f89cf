package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción. Mutuamente excluyentes: ninguna transacción es ambas.
const (
	TipoIngreso = "ingreso"
	TipoEgreso  = "egreso"
)

// Transaccion pertenece a un punto de venta y es append-only: se crea una vez,
// atómicamente con sus detalles, y nunca se actualiza ni se borra.
// La fecha gobierna todas las ventanas temporales de los reportes.
type Transaccion struct {
	ID           int64
	PuntoVentaID int64
	Tipo         string // ingreso | egreso
	MontoTotal   decimal.Decimal
	Fecha        time.Time
	CategoriaID  *int64 // solo egresos
	Concepto     string
	Detalles     []DetalleTransaccion
}

// DetalleTransaccion línea de venta de un ingreso: producto + cantidad.
// Subtotal = cantidad × precio unitario vigente al momento de la venta.
type DetalleTransaccion struct {
	ID            int64
	TransaccionID int64
	ProductoID    *int64
	Cantidad      int64
	Subtotal      decimal.Decimal
}
