package analisis_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elb0ni/mis-finanzas-server/internal/application/analisis"
	"github.com/elb0ni/mis-finanzas-server/internal/domain"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/entity"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/repository"
)

const (
	duenoID = "00000000-0000-0000-0000-000000000001"
	otroID  = "00000000-0000-0000-0000-000000000002"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// entorno arma un negocio con configuración activa y snapshot de marzo 2025.
func entorno(t *testing.T, costosFijos string) (*analisis.EquilibrioUseCase, *fakeCostosRepo, *fakeReportesRepo) {
	t.Helper()
	negocios := &fakeNegocioRepo{duenos: map[int64]string{1: duenoID}}
	costos := newFakeCostosRepo()
	costos.activas = 2
	costos.snapshots[claveSnapshot(1, 2025, 3)] = &entity.HistoricoCostoFijoMensual{
		NegocioID: 1, Año: 2025, Mes: 3,
		Monto:  dec(costosFijos),
		Origen: entity.OrigenConfiguracion,
	}
	reportes := &fakeReportesRepo{}
	return analisis.NewEquilibrioUseCase(negocios, costos, reportes), costos, reportes
}

// Con costos fijos 1000 y ganancia promedio 333.34, el punto de equilibrio es
// 3 unidades: siempre techo, nunca piso ni redondeo bancario.
func TestCalcular_UnidadesRedondeanHaciaArriba(t *testing.T) {
	uc, _, reportes := entorno(t, "1000")
	reportes.margen = repository.MargenCatalogo{
		Productos:      3,
		MargenUnitario: dec("333.34"),
		MargenPct:      dec("40"),
	}

	r, err := uc.Calcular(context.Background(), 1, 2025, 3, duenoID, false)
	require.NoError(t, err)

	assert.True(t, dec("3").Equal(r.UnidadesPuntoEquilibrio),
		"ceil(1000/333.34) = 3, se obtuvo %s", r.UnidadesPuntoEquilibrio)
	assert.True(t, dec("2500").Equal(r.VentasPuntoEquilibrio),
		"1000 / 0.40 = 2500, se obtuvo %s", r.VentasPuntoEquilibrio)
}

// Sin productos con precio y costo positivos, el margen promedio es 0 y todos
// los derivados quedan en 0: jamás división por cero ni infinito.
func TestCalcular_CatalogoSinMargenesDevuelveCeros(t *testing.T) {
	uc, _, reportes := entorno(t, "1000")
	reportes.margen = repository.MargenCatalogo{} // sin productos que califiquen
	reportes.progreso = repository.ProgresoVentas{Unidades: 10, Ingresos: dec("500")}

	r, err := uc.Calcular(context.Background(), 1, 2025, 3, duenoID, false)
	require.NoError(t, err)

	assert.True(t, r.UnidadesPuntoEquilibrio.IsZero())
	assert.True(t, r.VentasPuntoEquilibrio.IsZero())
	assert.True(t, r.ProgresoUnidadesPorcentaje.IsZero())
	assert.True(t, r.ProgresoVentasPorcentaje.IsZero())
	// Las ventas reales del mes sí se reportan aunque no haya punto de equilibrio.
	assert.Equal(t, int64(10), r.CantidadVendida)
}

func TestCalcular_ProgresoContraPuntoDeEquilibrio(t *testing.T) {
	uc, _, reportes := entorno(t, "1000")
	reportes.margen = repository.MargenCatalogo{
		Productos:      1,
		MargenUnitario: dec("100"),
		MargenPct:      dec("50"),
	}
	reportes.progreso = repository.ProgresoVentas{Unidades: 5, Ingresos: dec("1000")}

	r, err := uc.Calcular(context.Background(), 1, 2025, 3, duenoID, false)
	require.NoError(t, err)

	// 10 unidades de equilibrio, 5 vendidas → 50%.
	assert.True(t, dec("50").Equal(r.ProgresoUnidadesPorcentaje), "se obtuvo %s", r.ProgresoUnidadesPorcentaje)
	// 2000 pesos de equilibrio, 1000 vendidos → 50%.
	assert.True(t, dec("50").Equal(r.ProgresoVentasPorcentaje), "se obtuvo %s", r.ProgresoVentasPorcentaje)
}

func TestCalcular_SinConfiguracionActivaFalla(t *testing.T) {
	uc, costos, _ := entorno(t, "1000")
	costos.activas = 0

	_, err := uc.Calcular(context.Background(), 1, 2025, 3, duenoID, false)
	assert.ErrorIs(t, err, domain.ErrFaltaConfiguracionCostosFijos)
}

func TestCalcular_SinSnapshotDelMesFalla(t *testing.T) {
	uc, _, _ := entorno(t, "1000")

	_, err := uc.Calcular(context.Background(), 1, 2025, 4, duenoID, false)
	assert.ErrorIs(t, err, domain.ErrFaltaHistoricoMensual)
}

// Con autoGenerar, la falta de snapshot se recupera generándolo desde la
// configuración activa en lugar de fallar.
func TestCalcular_AutoGenerarRecuperaElSnapshot(t *testing.T) {
	uc, costos, reportes := entorno(t, "1000")
	costos.montoTotal = dec("800")
	reportes.margen = repository.MargenCatalogo{Productos: 1, MargenUnitario: dec("100"), MargenPct: dec("50")}

	r, err := uc.Calcular(context.Background(), 1, 2025, 4, duenoID, true)
	require.NoError(t, err)
	assert.True(t, dec("800").Equal(r.TotalCostosFijos))
}

// Un negocio ajeno y uno inexistente devuelven exactamente el mismo error.
func TestCalcular_AislamientoDePropiedad(t *testing.T) {
	uc, _, _ := entorno(t, "1000")

	_, errAjeno := uc.Calcular(context.Background(), 1, 2025, 3, otroID, false)
	_, errInexistente := uc.Calcular(context.Background(), 99, 2025, 3, duenoID, false)

	assert.ErrorIs(t, errAjeno, domain.ErrNotFound)
	assert.ErrorIs(t, errInexistente, domain.ErrNotFound)
	assert.Equal(t, errAjeno, errInexistente)
}
