package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DetalleTransaccionRequest línea de venta de un ingreso.
type DetalleTransaccionRequest struct {
	ProductoID *int64          `json:"producto_id"`
	Cantidad   int64           `json:"cantidad" validate:"required,min=1"`
	Subtotal   decimal.Decimal `json:"subtotal" validate:"required"`
}

// CreateTransaccionRequest entrada para registrar una transacción. Un ingreso
// lleva detalles cuya suma debe igualar monto_total (tolerancia ±0.01); un
// egreso lleva categoría y monto directo, sin detalles.
type CreateTransaccionRequest struct {
	PuntoVentaID int64                       `json:"punto_venta_id" validate:"required"`
	Tipo         string                      `json:"tipo" validate:"required,oneof=ingreso egreso"`
	MontoTotal   decimal.Decimal             `json:"monto_total" validate:"required"`
	Fecha        string                      `json:"fecha" validate:"required"` // YYYY-MM-DD
	CategoriaID  *int64                      `json:"categoria_id"`
	Concepto     string                      `json:"concepto" validate:"omitempty,max=300"`
	Detalles     []DetalleTransaccionRequest `json:"detalles" validate:"dive"`
}

// DetalleTransaccionResponse línea de detalle en la salida.
type DetalleTransaccionResponse struct {
	ID         int64           `json:"id"`
	ProductoID *int64          `json:"producto_id"`
	Cantidad   int64           `json:"cantidad"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// TransaccionResponse salida de una transacción.
type TransaccionResponse struct {
	ID           int64                        `json:"id"`
	PuntoVentaID int64                        `json:"punto_venta_id"`
	Tipo         string                       `json:"tipo"`
	MontoTotal   decimal.Decimal              `json:"monto_total"`
	Fecha        time.Time                    `json:"fecha"`
	CategoriaID  *int64                       `json:"categoria_id,omitempty"`
	Concepto     string                       `json:"concepto,omitempty"`
	Detalles     []DetalleTransaccionResponse `json:"detalles,omitempty"`
}
