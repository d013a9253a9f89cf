package analisis

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/elb0ni/mis-finanzas-server/internal/application/dto"
	"github.com/elb0ni/mis-finanzas-server/internal/domain"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/reporting"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/repository"
)

var cien = decimal.NewFromInt(100)

// EquilibrioUseCase calcula el punto de equilibrio de un mes: combina el
// snapshot de costos fijos con el margen promedio del catálogo y el progreso
// real de ventas del mes.
type EquilibrioUseCase struct {
	negocioRepo  repository.NegocioRepository
	costosRepo   repository.CostosFijosRepository
	reportesRepo repository.ReportesRepository
}

// NewEquilibrioUseCase construye el caso de uso de punto de equilibrio.
func NewEquilibrioUseCase(negocioRepo repository.NegocioRepository, costosRepo repository.CostosFijosRepository, reportesRepo repository.ReportesRepository) *EquilibrioUseCase {
	return &EquilibrioUseCase{negocioRepo: negocioRepo, costosRepo: costosRepo, reportesRepo: reportesRepo}
}

// Calcular computa el punto de equilibrio de (negocio, año, mes).
//
// Precondiciones, en orden:
//  1. El negocio es del usuario (si no, ErrNotFound).
//  2. Hay al menos una configuración de costo fijo activa (si no,
//     ErrFaltaConfiguracionCostosFijos).
//  3. Existe el snapshot del mes (si no, ErrFaltaHistoricoMensual; con
//     autoGenerar se intenta generarlo antes de fallar).
//
// Toda división está protegida: cociente sobre cero da 0, nunca error.
func (uc *EquilibrioUseCase) Calcular(ctx context.Context, negocioID int64, año, mes int, propietario string, autoGenerar bool) (*dto.PuntoEquilibrioDTO, error) {
	negocio, err := uc.negocioRepo.BuscarPropio(negocioID, propietario)
	if err != nil {
		return nil, err
	}
	if negocio == nil {
		return nil, domain.ErrNotFound
	}
	if mes < 1 || mes > 12 {
		return nil, domain.ErrInvalidInput
	}

	activas, err := uc.costosRepo.ContarConfiguracionActiva(negocioID)
	if err != nil {
		return nil, err
	}
	if activas == 0 {
		return nil, domain.ErrFaltaConfiguracionCostosFijos
	}

	snapshot, err := uc.costosRepo.ObtenerSnapshot(negocioID, año, mes)
	if err != nil {
		return nil, err
	}
	if snapshot == nil && autoGenerar {
		if _, err := uc.costosRepo.GenerarSnapshot(negocioID, año, mes); err != nil {
			return nil, fmt.Errorf("auto-generar snapshot: %w", err)
		}
		snapshot, err = uc.costosRepo.ObtenerSnapshot(negocioID, año, mes)
		if err != nil {
			return nil, err
		}
	}
	if snapshot == nil {
		return nil, domain.ErrFaltaHistoricoMensual
	}

	margen, err := uc.reportesRepo.MargenCatalogo(ctx, negocioID)
	if err != nil {
		return nil, err
	}

	ventanaMes := reporting.VentanaMes(time.Date(año, time.Month(mes), 1, 0, 0, 0, 0, time.UTC))
	progreso, err := uc.reportesRepo.ProgresoVentas(ctx, negocioID, ventanaMes.Inicio, ventanaMes.Fin)
	if err != nil {
		return nil, err
	}

	costosFijos := snapshot.Monto
	resultado := &dto.PuntoEquilibrioDTO{
		TotalCostosFijos:         costosFijos,
		GananciaPromedioUnitaria: margen.MargenUnitario,
		MargenPromedioPorcentaje: margen.MargenPct,
		TotalVendido:             progreso.Ingresos,
		CantidadVendida:          progreso.Unidades,
	}

	// Unidades para cubrir los costos fijos. Ceiling, nunca floor ni
	// redondeo: media unidad no se puede vender.
	if margen.MargenUnitario.Sign() > 0 {
		resultado.UnidadesPuntoEquilibrio = costosFijos.Div(margen.MargenUnitario).Ceil()
	}
	if margen.MargenPct.Sign() > 0 {
		resultado.VentasPuntoEquilibrio = costosFijos.Div(margen.MargenPct.Div(cien))
	}
	if margen.MargenUnitario.Sign() > 0 && costosFijos.Sign() > 0 {
		cantidad := decimal.NewFromInt(progreso.Unidades)
		resultado.ProgresoUnidadesPorcentaje = cantidad.
			Div(resultado.UnidadesPuntoEquilibrio).Mul(cien).Round(2)
	}
	if margen.MargenPct.Sign() > 0 && costosFijos.Sign() > 0 {
		resultado.ProgresoVentasPorcentaje = progreso.Ingresos.
			Div(resultado.VentasPuntoEquilibrio).Mul(cien).Round(2)
	}
	return resultado, nil
}
