package reportes

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elb0ni/mis-finanzas-server/internal/domain"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/entity"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/reporting"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/repository"
)

const (
	duenoID = "00000000-0000-0000-0000-000000000001"
	otroID  = "00000000-0000-0000-0000-000000000002"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fecha(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

type fakeNegocioRepo struct{}

func (f *fakeNegocioRepo) Crear(*entity.Negocio) error { panic("no usado") }

func (f *fakeNegocioRepo) BuscarPropio(id int64, propietario string) (*entity.Negocio, error) {
	if id != 1 || propietario != duenoID {
		return nil, nil
	}
	return &entity.Negocio{ID: 1, Propietario: duenoID, Nombre: "Cafetería"}, nil
}

func (f *fakeNegocioRepo) ListarPorPropietario(string) ([]*entity.Negocio, error) { panic("no usado") }
func (f *fakeNegocioRepo) Actualizar(*entity.Negocio, string) error               { panic("no usado") }
func (f *fakeNegocioRepo) Eliminar(int64, string) error                           { panic("no usado") }

// fakeReportesRepo datos fijos por consulta; totalesDia indexado por fecha.
type fakeReportesRepo struct {
	totalesDia   map[string]repository.TotalesDia
	totalesRango []repository.TotalDiario
	ventas       []repository.VentaProducto
	rentabilidad []repository.RentabilidadProducto
}

func (f *fakeReportesRepo) MargenCatalogo(context.Context, int64) (repository.MargenCatalogo, error) {
	panic("no usado")
}

func (f *fakeReportesRepo) ProgresoVentas(context.Context, int64, time.Time, time.Time) (repository.ProgresoVentas, error) {
	panic("no usado")
}

func (f *fakeReportesRepo) TotalesDia(ctx context.Context, negocioID int64, dia time.Time) (repository.TotalesDia, error) {
	return f.totalesDia[dia.Format("2006-01-02")], nil
}

func (f *fakeReportesRepo) TotalesPorDia(ctx context.Context, negocioID int64, inicio, fin time.Time) ([]repository.TotalDiario, error) {
	ventana := reporting.Ventana{Inicio: inicio, Fin: fin}
	var out []repository.TotalDiario
	for _, t := range f.totalesRango {
		if ventana.Contiene(t.Fecha) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeReportesRepo) VentasPorProducto(context.Context, int64, time.Time, time.Time) ([]repository.VentaProducto, error) {
	return f.ventas, nil
}

func (f *fakeReportesRepo) Rentabilidad(context.Context, int64, *time.Time, *time.Time) ([]repository.RentabilidadProducto, error) {
	return f.rentabilidad, nil
}

func armarPeriodo(repo *fakeReportesRepo) *PeriodoUseCase {
	uc := NewPeriodoUseCase(&fakeNegocioRepo{}, repo)
	uc.ahora = func() time.Time { return fecha("2025-08-15") }
	return uc
}

// El ranking es por competencia: un empate comparte puesto y el siguiente
// salta. 50, 50, 40 unidades dan puestos 1, 1, 3.
func TestConstruirMasVendidos_RankingYPorcentaje(t *testing.T) {
	ranking := construirMasVendidos([]repository.VentaProducto{
		{ProductoID: 1, Nombre: "Café", Cantidad: 50, Ingresos: dec("1500")},
		{ProductoID: 2, Nombre: "Pan", Cantidad: 50, Ingresos: dec("1000")},
		{ProductoID: 3, Nombre: "Jugo", Cantidad: 40, Ingresos: dec("800")},
	})
	require.Len(t, ranking, 3)

	assert.Equal(t, 1, ranking[0].RankingPorCantidad)
	assert.Equal(t, 1, ranking[1].RankingPorCantidad)
	assert.Equal(t, 3, ranking[2].RankingPorCantidad)

	// 50 de 140 unidades → 35.71%.
	assert.True(t, dec("35.71").Equal(ranking[0].PorcentajeCantidad), "se obtuvo %s", ranking[0].PorcentajeCantidad)
	assert.True(t, dec("28.57").Equal(ranking[2].PorcentajeCantidad), "se obtuvo %s", ranking[2].PorcentajeCantidad)

	assert.Equal(t, "1.5K", ranking[0].IngresosFormatted)
}

func TestConstruirMasVendidos_Vacio(t *testing.T) {
	ranking := construirMasVendidos(nil)
	assert.NotNil(t, ranking)
	assert.Empty(t, ranking)
}

func TestDia_ComparacionContraAyer(t *testing.T) {
	repo := &fakeReportesRepo{totalesDia: map[string]repository.TotalesDia{
		"2025-03-10": {Ventas: dec("200"), Gastos: dec("50"), NumIngresos: 4, NumEgresos: 1, UnidadesVendidas: 12},
		"2025-03-09": {Ventas: dec("100"), Gastos: dec("100"), NumIngresos: 2, NumEgresos: 2},
	}}
	uc := armarPeriodo(repo)

	r, err := uc.Dia(context.Background(), 1, fecha("2025-03-10"), duenoID)
	require.NoError(t, err)

	comp := r.ResponsePerformance.ComparacionAyer
	// Ventas 100 → 200: +100% verde.
	assert.True(t, dec("100").Equal(comp.Ventas.Porcentaje))
	assert.Equal(t, "+", comp.Ventas.Signo)
	assert.Equal(t, reporting.ColorVerde, comp.Ventas.Color)
	// Gastos 100 → 50: -50%, y bajar gastos es favorable.
	assert.True(t, dec("-50").Equal(comp.Gastos.Porcentaje))
	assert.Equal(t, "", comp.Gastos.Signo)
	assert.Equal(t, reporting.ColorVerde, comp.Gastos.Color)
	// Utilidad 0 → 150: el cero de ayer se sustituye por +100% azul.
	assert.True(t, dec("100").Equal(comp.Utilidad.Porcentaje))
	assert.Equal(t, reporting.ColorAzul, comp.Utilidad.Color)

	assert.Equal(t, 5, r.Insights.TodayTransactions)
	assert.Equal(t, int64(12), r.Insights.ProductsSold)
	// Ticket promedio: 200 / 4 ingresos.
	assert.True(t, dec("50").Equal(r.ResponsePerformance.DesgloseDia.TicketPromedio.Valor))
	// Margen: 150 / 200 × 100.
	assert.True(t, dec("75").Equal(r.ResponsePerformance.DesgloseDia.MargenDia.Porcentaje))
}

// Sin actividad hoy ni ayer, la comparación entera queda gris y sin signo.
func TestDia_SinActividadQuedaGris(t *testing.T) {
	uc := armarPeriodo(&fakeReportesRepo{totalesDia: map[string]repository.TotalesDia{}})

	r, err := uc.Dia(context.Background(), 1, fecha("2025-03-10"), duenoID)
	require.NoError(t, err)

	for _, v := range []struct{ nombre, signo, color string }{
		{"ventas", r.ResponsePerformance.ComparacionAyer.Ventas.Signo, r.ResponsePerformance.ComparacionAyer.Ventas.Color},
		{"gastos", r.ResponsePerformance.ComparacionAyer.Gastos.Signo, r.ResponsePerformance.ComparacionAyer.Gastos.Color},
		{"utilidad", r.ResponsePerformance.ComparacionAyer.Utilidad.Signo, r.ResponsePerformance.ComparacionAyer.Utilidad.Color},
	} {
		assert.Equal(t, "", v.signo, v.nombre)
		assert.Equal(t, reporting.ColorGris, v.color, v.nombre)
	}
}

func TestSemana_RellenaLosSieteDias(t *testing.T) {
	// Semana del lunes 2025-03-10 al domingo 2025-03-16; actividad solo el
	// miércoles 12 y el viernes 14.
	repo := &fakeReportesRepo{
		totalesRango: []repository.TotalDiario{
			{Fecha: fecha("2025-03-12"), Ingresos: dec("300"), Egresos: dec("100")},
			{Fecha: fecha("2025-03-14"), Ingresos: dec("500"), Egresos: dec("50")},
		},
		ventas: []repository.VentaProducto{
			{ProductoID: 1, Nombre: "Café", Cantidad: 30, Ingresos: dec("600")},
			{ProductoID: 2, Nombre: "Pan", Cantidad: 10, Ingresos: dec("200")},
		},
	}
	uc := armarPeriodo(repo)

	r, err := uc.Semana(context.Background(), 1, fecha("2025-03-12"), duenoID)
	require.NoError(t, err)
	require.Len(t, r.ResponsePerformance, 7)

	lunes := r.ResponsePerformance[0]
	assert.Equal(t, 1, lunes.DiaNumero)
	assert.Equal(t, "2025-03-10", lunes.FechaDia)
	assert.Equal(t, "Lun", lunes.NombreDia)
	assert.True(t, lunes.TotalIngresos.IsZero(), "día sin actividad va en cero")

	miercoles := r.ResponsePerformance[2]
	assert.Equal(t, "SÍ", miercoles.EsFechaConsultada)
	assert.True(t, dec("200").Equal(miercoles.GananciaNeta))

	domingo := r.ResponsePerformance[6]
	assert.Equal(t, 7, domingo.DiaNumero)
	assert.Equal(t, "NO", domingo.EsFechaConsultada)

	// El viernes (500-50=450) le gana al miércoles (200).
	assert.Equal(t, "Vie", r.Insights.BestDay)
	assert.Equal(t, int64(40), r.Insights.ProductsSold)
}

// Un domingo pertenece a la semana que terminó, no a la que empieza.
func TestSemana_DomingoCierraLaSemana(t *testing.T) {
	uc := armarPeriodo(&fakeReportesRepo{})

	r, err := uc.Semana(context.Background(), 1, fecha("2025-03-16"), duenoID)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", r.ResponsePerformance[0].FechaDia)
	assert.Equal(t, "SÍ", r.ResponsePerformance[6].EsFechaConsultada)
}

func TestMes_BucketsSemanales(t *testing.T) {
	// Marzo 2025 arranca en sábado: la semana 1 va del lunes 3 al domingo 9 y
	// la semana 5 (lunes 31) cruza hasta el 6 de abril. El 1 y 2 de marzo no
	// pertenecen a ningún bucket.
	repo := &fakeReportesRepo{
		totalesRango: []repository.TotalDiario{
			{Fecha: fecha("2025-03-01"), Ingresos: dec("100"), Egresos: decimal.Zero},
			{Fecha: fecha("2025-03-05"), Ingresos: dec("300"), Egresos: dec("80")},
			{Fecha: fecha("2025-03-31"), Ingresos: dec("150"), Egresos: decimal.Zero},
			{Fecha: fecha("2025-04-02"), Ingresos: dec("900"), Egresos: dec("10")},
		},
	}
	uc := armarPeriodo(repo)

	r, err := uc.Mes(context.Background(), 1, fecha("2025-03-15"), duenoID)
	require.NoError(t, err)
	require.Len(t, r.ResponsePerformance, 5)

	sem1 := r.ResponsePerformance[0]
	assert.Equal(t, "Sem 1", sem1.SemanaLabel)
	assert.Equal(t, "2025-03-03", sem1.FechaInicioSemana)
	assert.True(t, dec("300").Equal(sem1.TotalIngresos), "el 1 de marzo no entra en ningún bucket")

	// La semana 5 absorbe los días de abril que le pertenecen.
	sem5 := r.ResponsePerformance[4]
	assert.Equal(t, "2025-04-06", sem5.FechaFinSemana)
	assert.True(t, dec("1050").Equal(sem5.TotalIngresos), "se obtuvo %s", sem5.TotalIngresos)
	assert.Equal(t, "NO", sem5.EsSemanaActual)

	// Mes pasado completo; días con ventas solo dentro del mes calendario:
	// 1, 5 y 31 de marzo, no el 2 de abril.
	assert.Equal(t, 31, r.Insights.DaysElapsed)
	assert.Equal(t, 3, r.Insights.DaysWithSales)
}

func TestMes_MesFuturoSinDiasTranscurridos(t *testing.T) {
	uc := armarPeriodo(&fakeReportesRepo{})

	r, err := uc.Mes(context.Background(), 1, fecha("2025-12-01"), duenoID)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Insights.DaysElapsed)
}

func TestMes_MesEnCurso(t *testing.T) {
	uc := armarPeriodo(&fakeReportesRepo{})

	// ahora = 2025-08-15: van 15 días del mes y la semana del 11 es la actual.
	r, err := uc.Mes(context.Background(), 1, fecha("2025-08-01"), duenoID)
	require.NoError(t, err)
	assert.Equal(t, 15, r.Insights.DaysElapsed)

	var actuales []string
	for _, s := range r.ResponsePerformance {
		if s.EsSemanaActual == "SÍ" {
			actuales = append(actuales, s.FechaInicioSemana)
		}
	}
	assert.Equal(t, []string{"2025-08-11"}, actuales)
}

func TestPeriodo_NegocioAjeno(t *testing.T) {
	uc := armarPeriodo(&fakeReportesRepo{})
	ctx := context.Background()
	dia := fecha("2025-03-10")

	_, err := uc.Dia(ctx, 1, dia, otroID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Semana(ctx, 1, dia, otroID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Mes(ctx, 1, dia, otroID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
