// Package reportes contiene los casos de uso de reportes de desempeño
// (día, semana, mes), el ranking de productos más vendidos y la rentabilidad
// por producto.
package reportes

import (
	"github.com/shopspring/decimal"

	"github.com/elb0ni/mis-finanzas-server/internal/application/dto"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/reporting"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/repository"
)

var cien = decimal.NewFromInt(100)

// construirMasVendidos transforma las filas crudas de ventas por producto en el
// ranking de la respuesta. Las filas ya vienen ordenadas por cantidad
// descendente; aquí se asigna ranking por competencia (un empate comparte
// puesto y el siguiente salta) y el porcentaje de cada producto sobre el total
// de unidades.
func construirMasVendidos(ventas []repository.VentaProducto) []dto.MasVendidoDTO {
	out := make([]dto.MasVendidoDTO, 0, len(ventas))

	var total int64
	for _, v := range ventas {
		total += v.Cantidad
	}
	totalDec := decimal.NewFromInt(total)

	for i, v := range ventas {
		ranking := i + 1
		if i > 0 && v.Cantidad == ventas[i-1].Cantidad {
			ranking = out[i-1].RankingPorCantidad
		}
		porcentaje := decimal.Zero
		if total > 0 {
			porcentaje = decimal.NewFromInt(v.Cantidad).Mul(cien).Div(totalDec).Round(2)
		}
		out = append(out, dto.MasVendidoDTO{
			ProductoID:            v.ProductoID,
			ProductoNombre:        v.Nombre,
			CantidadTotalVendida:  v.Cantidad,
			IngresosGenerados:     v.Ingresos,
			GananciaTotalProducto: v.Ganancia,
			RankingPorCantidad:    ranking,
			PorcentajeCantidad:    porcentaje,
			IngresosFormatted:     reporting.Abreviado(v.Ingresos),
		})
	}
	return out
}
