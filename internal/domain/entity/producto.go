package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto pertenece a un negocio. La ganancia unitaria (precio - costo) es
// derivada, nunca se almacena. Un producto desactivado no aparece en rankings
// ni rentabilidad, pero sí en el detalle histórico de transacciones.
type Producto struct {
	ID             int64
	NegocioID      int64
	Nombre         string
	Descripcion    string
	PrecioUnitario decimal.Decimal
	CostoUnitario  decimal.Decimal
	Activo         bool
	FechaCreacion  time.Time
}

// GananciaUnitaria devuelve precio - costo.
func (p Producto) GananciaUnitaria() decimal.Decimal {
	return p.PrecioUnitario.Sub(p.CostoUnitario)
}
