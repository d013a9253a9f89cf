package analisis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elb0ni/mis-finanzas-server/internal/application/analisis"
	"github.com/elb0ni/mis-finanzas-server/internal/application/dto"
	"github.com/elb0ni/mis-finanzas-server/internal/domain"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/entity"
)

func armarCostosUseCase() (*analisis.CostosUseCase, *fakeCostosRepo) {
	negocios := &fakeNegocioRepo{duenos: map[int64]string{1: duenoID}}
	costos := newFakeCostosRepo()
	categorias := &fakeCategoriaRepo{categorias: map[int64]*entity.CategoriaEgreso{
		10: {ID: 10, NegocioID: 1, Nombre: "Arriendo", TipoCosto: entity.CostoFijo},
	}}
	runner := &fakeTxRunner{costos: costos, categorias: categorias}
	return analisis.NewCostosUseCase(negocios, costos, runner), costos
}

// Generar dos veces el snapshot del mismo mes produce exactamente un registro:
// la segunda invocación es un no-op aunque la configuración haya cambiado.
func TestGenerarSnapshot_Idempotente(t *testing.T) {
	uc, costos := armarCostosUseCase()
	ctx := context.Background()

	_, err := uc.CrearConfiguracion(ctx, duenoID, dto.CreateCostoFijoRequest{
		NegocioID: 1, CategoriaEgresoID: 10, MontoMensual: dec("500"),
	})
	require.NoError(t, err)

	primero, err := uc.GenerarSnapshot(1, duenoID, 2025, 3)
	require.NoError(t, err)
	assert.True(t, primero.Insertado)

	// Cambia la configuración entre llamadas: el snapshot no se reescribe.
	_, err = uc.CrearConfiguracion(ctx, duenoID, dto.CreateCostoFijoRequest{
		NegocioID: 1, CategoriaEgresoID: 10, MontoMensual: dec("900"),
	})
	require.NoError(t, err)

	segundo, err := uc.GenerarSnapshot(1, duenoID, 2025, 3)
	require.NoError(t, err)
	assert.False(t, segundo.Insertado)

	snapshot, err := costos.ObtenerSnapshot(1, 2025, 3)
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.True(t, dec("500").Equal(snapshot.Monto), "el monto del primer snapshot debe conservarse")
}

// Sin configuraciones activas no se inserta nada: el vacío es la señal
// "configuración faltante", no un snapshot de cero.
func TestGenerarSnapshot_SinConfiguracionNoInserta(t *testing.T) {
	uc, costos := armarCostosUseCase()

	r, err := uc.GenerarSnapshot(1, duenoID, 2025, 3)
	require.NoError(t, err)
	assert.False(t, r.Insertado)

	snapshot, err := costos.ObtenerSnapshot(1, 2025, 3)
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestCrearConfiguracion_ValidaCategoriaYMonto(t *testing.T) {
	uc, _ := armarCostosUseCase()
	ctx := context.Background()

	_, err := uc.CrearConfiguracion(ctx, duenoID, dto.CreateCostoFijoRequest{
		NegocioID: 1, CategoriaEgresoID: 99, MontoMensual: dec("500"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "categoría inexistente")

	_, err = uc.CrearConfiguracion(ctx, duenoID, dto.CreateCostoFijoRequest{
		NegocioID: 1, CategoriaEgresoID: 10, MontoMensual: dec("0"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto cero")
}

func TestCrearConfiguracion_NegocioAjeno(t *testing.T) {
	uc, _ := armarCostosUseCase()

	_, err := uc.CrearConfiguracion(context.Background(), otroID, dto.CreateCostoFijoRequest{
		NegocioID: 1, CategoriaEgresoID: 10, MontoMensual: dec("500"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
