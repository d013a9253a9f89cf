package reportes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elb0ni/mis-finanzas-server/internal/domain"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/repository"
)

func catalogoDePrueba() []repository.RentabilidadProducto {
	return []repository.RentabilidadProducto{
		{ProductoID: 1, Nombre: "Café", PrecioUnitario: dec("10"), CostoUnitario: dec("6"), Cantidad: 25, GananciaTotal: dec("100")},
		{ProductoID: 2, Nombre: "Promo", PrecioUnitario: dec("5"), CostoUnitario: dec("7"), Cantidad: 25, GananciaTotal: dec("-50")},
		{ProductoID: 3, Nombre: "Nuevo", PrecioUnitario: dec("8"), CostoUnitario: dec("4"), Cantidad: 0, GananciaTotal: dec("0")},
		{ProductoID: 4, Nombre: "Pan", PrecioUnitario: dec("4"), CostoUnitario: dec("3"), Cantidad: 30, GananciaTotal: dec("30")},
	}
}

func armarRentabilidad(filas []repository.RentabilidadProducto) *RentabilidadUseCase {
	return NewRentabilidadUseCase(&fakeNegocioRepo{}, &fakeReportesRepo{rentabilidad: filas})
}

func TestRentabilidad_PorProducto(t *testing.T) {
	uc := armarRentabilidad(catalogoDePrueba())

	r, err := uc.Calcular(context.Background(), 1, duenoID, nil, nil)
	require.NoError(t, err)
	require.Len(t, r.Productos, 4)

	cafe := r.Productos[0]
	assert.True(t, dec("4").Equal(cafe.GananciaUnitaria))
	assert.True(t, dec("40").Equal(cafe.MargenGananciaPorcentaje), "se obtuvo %s", cafe.MargenGananciaPorcentaje)

	promo := r.Productos[1]
	assert.True(t, dec("-40").Equal(promo.MargenGananciaPorcentaje), "margen negativo se reporta tal cual")
}

// Los promedios del catálogo son simples por producto, no ponderados por
// volumen de ventas.
func TestRentabilidad_EstadisticasGenerales(t *testing.T) {
	uc := armarRentabilidad(catalogoDePrueba())

	r, err := uc.Calcular(context.Background(), 1, duenoID, nil, nil)
	require.NoError(t, err)

	e := r.EstadisticasGenerales
	assert.Equal(t, 4, e.TotalProductos)
	// (4 + (-2) + 4 + 1) / 4 = 1.75
	assert.True(t, dec("1.75").Equal(e.GananciaPromedioUnitaria), "se obtuvo %s", e.GananciaPromedioUnitaria)
	// 100 - 50 + 0 + 30
	assert.True(t, dec("80").Equal(e.GananciaTotalNegocio))
	assert.Equal(t, int64(80), e.TotalProductosVendidos)
}

// El top excluye ganancias no positivas; el bottom excluye lo que nunca se
// vendió. Un producto que pierde plata aparece solo en el bottom.
func TestRentabilidad_TopYBottomAsimetricos(t *testing.T) {
	uc := armarRentabilidad(catalogoDePrueba())

	r, err := uc.Calcular(context.Background(), 1, duenoID, nil, nil)
	require.NoError(t, err)

	var top, bottom []string
	for _, p := range r.ProductosMasRentables {
		top = append(top, p.Nombre)
	}
	for _, p := range r.ProductosMenosRentables {
		bottom = append(bottom, p.Nombre)
	}

	assert.Equal(t, []string{"Café", "Pan"}, top)
	assert.Equal(t, []string{"Promo", "Pan", "Café"}, bottom)
	assert.NotContains(t, top, "Promo", "pérdida no es rentabilidad")
	assert.NotContains(t, bottom, "Nuevo", "sin ventas no entra al bottom")
}

func TestRentabilidad_Periodo(t *testing.T) {
	uc := armarRentabilidad(nil)
	ctx := context.Background()

	r, err := uc.Calcular(ctx, 1, duenoID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Sin filtro", r.Periodo.FechaInicio)
	assert.Equal(t, "Sin filtro", r.Periodo.FechaFin)

	desde := fecha("2025-01-01")
	r, err = uc.Calcular(ctx, 1, duenoID, &desde, nil)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", r.Periodo.FechaInicio)
	assert.Equal(t, "Sin filtro", r.Periodo.FechaFin)
}

func TestRentabilidad_PrecioCeroNoDivide(t *testing.T) {
	uc := armarRentabilidad([]repository.RentabilidadProducto{
		{ProductoID: 9, Nombre: "Regalo", PrecioUnitario: dec("0"), CostoUnitario: dec("2"), Cantidad: 1, GananciaTotal: dec("-2")},
	})

	r, err := uc.Calcular(context.Background(), 1, duenoID, nil, nil)
	require.NoError(t, err)
	assert.True(t, r.Productos[0].MargenGananciaPorcentaje.IsZero())
}

func TestRentabilidad_NegocioAjeno(t *testing.T) {
	uc := armarRentabilidad(nil)

	_, err := uc.Calcular(context.Background(), 1, otroID, nil, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
