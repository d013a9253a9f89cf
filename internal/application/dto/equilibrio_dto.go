package dto

import "github.com/shopspring/decimal"

// PuntoEquilibrioDTO resultado del cálculo de punto de equilibrio del mes.
// Todos los cocientes llegan con división por cero resuelta a 0, nunca como
// error ni infinito.
type PuntoEquilibrioDTO struct {
	TotalCostosFijos           decimal.Decimal `json:"total_costos_fijos"`
	GananciaPromedioUnitaria   decimal.Decimal `json:"ganancia_promedio_unitaria"`
	MargenPromedioPorcentaje   decimal.Decimal `json:"margen_promedio_porcentaje"`
	UnidadesPuntoEquilibrio    decimal.Decimal `json:"unidades_punto_equilibrio"`
	VentasPuntoEquilibrio      decimal.Decimal `json:"ventas_punto_equilibrio_pesos"`
	TotalVendido               decimal.Decimal `json:"total_vendido"`
	CantidadVendida            int64           `json:"cantidad_vendida"`
	ProgresoUnidadesPorcentaje decimal.Decimal `json:"progreso_unidades_porcentaje"`
	ProgresoVentasPorcentaje   decimal.Decimal `json:"progreso_ventas_porcentaje"`
}

// PuntoEquilibrioResponse envoltura de éxito del endpoint.
type PuntoEquilibrioResponse struct {
	Success bool               `json:"success"`
	Data    PuntoEquilibrioDTO `json:"data"`
}
