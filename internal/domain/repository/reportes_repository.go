package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MargenCatalogo resultado crudo del promedio de márgenes sobre el catálogo.
// Promedio simple por producto, NO ponderado por volumen de ventas: cada
// producto activo con precio > 0 y costo > 0 pesa igual.
type MargenCatalogo struct {
	Productos      int             // cuántos productos califican
	MargenUnitario decimal.Decimal // promedio de (precio - costo)
	MargenPct      decimal.Decimal // promedio de 100 × (precio - costo) / precio
}

// ProgresoVentas resultado crudo de las ventas acumuladas en una ventana:
// unidades y subtotales de los detalles de ingreso con producto asociado.
type ProgresoVentas struct {
	Unidades int64
	Ingresos decimal.Decimal
}

// TotalesDia resultado crudo de los agregados de un día. Ventas suma los
// subtotales del detalle de ingresos (no el monto de la cabecera); Gastos suma
// el monto total de los egresos.
type TotalesDia struct {
	Ventas           decimal.Decimal
	Gastos           decimal.Decimal
	NumIngresos      int
	NumEgresos       int
	UnidadesVendidas int64
}

// TotalDiario una fila por día con actividad dentro de un rango. A diferencia
// de TotalesDia, aquí ingresos y egresos suman el monto total de la cabecera.
type TotalDiario struct {
	Fecha    time.Time
	Ingresos decimal.Decimal
	Egresos  decimal.Decimal
}

// VentaProducto resultado crudo de ventas por producto en una ventana.
// Lo produce la DB; el use case calcula ranking y porcentajes.
type VentaProducto struct {
	ProductoID int64
	Nombre     string
	Cantidad   int64
	Ingresos   decimal.Decimal
	Ganancia   decimal.Decimal // cantidad × (precio - costo), redondeada a 2 decimales
}

// RentabilidadProducto resultado crudo de rentabilidad por producto. Incluye
// productos activos sin ventas en el rango (cantidad y ganancia en cero).
type RentabilidadProducto struct {
	ProductoID     int64
	Nombre         string
	PrecioUnitario decimal.Decimal
	CostoUnitario  decimal.Decimal
	Cantidad       int64
	GananciaTotal  decimal.Decimal
}

// ReportesRepository define las consultas de lectura para los reportes de
// desempeño y rentabilidad. Las implementaciones son read-only.
type ReportesRepository interface {
	// MargenCatalogo promedia los márgenes del catálogo activo del negocio.
	MargenCatalogo(ctx context.Context, negocioID int64) (MargenCatalogo, error)

	// ProgresoVentas acumula unidades e ingresos de los detalles de venta en
	// [inicio, fin] inclusive. COALESCE a cero cuando no hay ventas.
	ProgresoVentas(ctx context.Context, negocioID int64, inicio, fin time.Time) (ProgresoVentas, error)

	// TotalesDia agrega la actividad de un único día calendario.
	TotalesDia(ctx context.Context, negocioID int64, dia time.Time) (TotalesDia, error)

	// TotalesPorDia devuelve una fila por día con actividad en [inicio, fin]
	// inclusive, ordenadas por fecha. Los días sin actividad no aparecen; el
	// use case los rellena en cero.
	TotalesPorDia(ctx context.Context, negocioID int64, inicio, fin time.Time) ([]TotalDiario, error)

	// VentasPorProducto devuelve los productos activos con al menos una venta
	// en [inicio, fin], ordenados por cantidad descendente e ingresos
	// descendentes como desempate.
	VentasPorProducto(ctx context.Context, negocioID int64, inicio, fin time.Time) ([]VentaProducto, error)

	// Rentabilidad devuelve el catálogo activo con sus ventas acumuladas en el
	// rango opcional (cada extremo puede ser nil; ambos nil = histórico completo).
	Rentabilidad(ctx context.Context, negocioID int64, desde, hasta *time.Time) ([]RentabilidadProducto, error)
}
