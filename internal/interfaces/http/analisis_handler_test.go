package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elb0ni/mis-finanzas-server/internal/application/analisis"
	"github.com/elb0ni/mis-finanzas-server/internal/application/reportes"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/entity"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/repository"
	apphttp "github.com/elb0ni/mis-finanzas-server/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs de persistencia para el endpoint de punto de equilibrio
// ──────────────────────────────────────────────────────────────────────────────

type stubNegocioRepo struct{}

func (s *stubNegocioRepo) Crear(*entity.Negocio) error { panic("no usado") }

func (s *stubNegocioRepo) BuscarPropio(id int64, propietario string) (*entity.Negocio, error) {
	if id != 1 || propietario != testUserID {
		return nil, nil
	}
	return &entity.Negocio{ID: 1, Propietario: testUserID, Nombre: "Cafetería"}, nil
}

func (s *stubNegocioRepo) ListarPorPropietario(string) ([]*entity.Negocio, error) {
	panic("no usado")
}
func (s *stubNegocioRepo) Actualizar(*entity.Negocio, string) error { panic("no usado") }
func (s *stubNegocioRepo) Eliminar(int64, string) error             { panic("no usado") }

type stubCostosRepo struct {
	activas  int
	snapshot *entity.HistoricoCostoFijoMensual
}

func (s *stubCostosRepo) CrearConfiguracion(*entity.ConfiguracionCostoFijo) error {
	panic("no usado")
}

func (s *stubCostosRepo) BuscarConfiguracion(int64, int64) (*entity.ConfiguracionCostoFijo, error) {
	panic("no usado")
}

func (s *stubCostosRepo) ListarConfiguracion(int64) ([]*entity.ConfiguracionCostoFijo, error) {
	panic("no usado")
}

func (s *stubCostosRepo) ActualizarConfiguracion(*entity.ConfiguracionCostoFijo) error {
	panic("no usado")
}

func (s *stubCostosRepo) EliminarConfiguracion(int64, int64) error { panic("no usado") }

func (s *stubCostosRepo) ContarConfiguracionActiva(int64) (int, error) {
	return s.activas, nil
}

func (s *stubCostosRepo) GenerarSnapshot(int64, int, int) (bool, error) {
	return false, nil
}

func (s *stubCostosRepo) ObtenerSnapshot(int64, int, int) (*entity.HistoricoCostoFijoMensual, error) {
	return s.snapshot, nil
}

func (s *stubCostosRepo) ListarHistorico(int64) ([]*entity.HistoricoCostoFijoMensual, error) {
	panic("no usado")
}

type stubReportesRepo struct{}

func (s *stubReportesRepo) MargenCatalogo(ctx context.Context, negocioID int64) (repository.MargenCatalogo, error) {
	return repository.MargenCatalogo{
		Productos:      1,
		MargenUnitario: decimal.RequireFromString("100"),
		MargenPct:      decimal.RequireFromString("50"),
	}, nil
}

func (s *stubReportesRepo) ProgresoVentas(ctx context.Context, negocioID int64, inicio, fin time.Time) (repository.ProgresoVentas, error) {
	return repository.ProgresoVentas{}, nil
}

func (s *stubReportesRepo) TotalesDia(context.Context, int64, time.Time) (repository.TotalesDia, error) {
	panic("no usado")
}

func (s *stubReportesRepo) TotalesPorDia(context.Context, int64, time.Time, time.Time) ([]repository.TotalDiario, error) {
	panic("no usado")
}

func (s *stubReportesRepo) VentasPorProducto(context.Context, int64, time.Time, time.Time) ([]repository.VentaProducto, error) {
	panic("no usado")
}

func (s *stubReportesRepo) Rentabilidad(context.Context, int64, *time.Time, *time.Time) ([]repository.RentabilidadProducto, error) {
	panic("no usado")
}

func buildAnalisisApp(costos *stubCostosRepo) *fiber.App {
	negocioRepo := &stubNegocioRepo{}
	reportesRepo := &stubReportesRepo{}
	handler := apphttp.NewAnalisisHandler(
		analisis.NewEquilibrioUseCase(negocioRepo, costos, reportesRepo),
		reportes.NewPeriodoUseCase(negocioRepo, reportesRepo),
		reportes.NewRentabilidadUseCase(negocioRepo, reportesRepo),
	)

	app := fiber.New()
	app.Get("/api/analisis/balancepoint/:negocioId",
		apphttp.AuthMiddleware(testJWTSecret), handler.BalancePoint)
	return app
}

func getBalancePoint(t *testing.T, app *fiber.App, url, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", authHeader)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del endpoint de punto de equilibrio
// ──────────────────────────────────────────────────────────────────────────────

// Sin configuración de costos fijos activa, el endpoint responde 428 con el
// cuerpo accionable que dispara el flujo de generación en el cliente.
func TestBalancePoint_SinConfiguracion_Retorna428(t *testing.T) {
	app := buildAnalisisApp(&stubCostosRepo{activas: 0})
	resp := getBalancePoint(t, app, "/api/analisis/balancepoint/1?año=2025&mes=3", tokenValido(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusPreconditionRequired, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "MISSING_FIXED_COSTS_CONFIG", body["error"])
	assert.Equal(t, "Se requiere configuración de costos fijos", body["message"])
	assert.Equal(t, "SHOW_GENERATION_MODAL", body["action"])
}

// Con configuración activa pero sin el snapshot del mes, el 428 cambia de
// señal: falta generar los costos mensuales.
func TestBalancePoint_SinSnapshot_Retorna428(t *testing.T) {
	app := buildAnalisisApp(&stubCostosRepo{activas: 2})
	resp := getBalancePoint(t, app, "/api/analisis/balancepoint/1?año=2025&mes=3", tokenValido(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusPreconditionRequired, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "MISSING_MONTHLY_COSTS", body["error"])
	assert.Equal(t, "Se requiere generar costos mensuales", body["message"])
	assert.Equal(t, "SHOW_GENERATION_MODAL", body["action"])
}

func TestBalancePoint_ConSnapshot_RespondeSobreDeExito(t *testing.T) {
	app := buildAnalisisApp(&stubCostosRepo{
		activas: 2,
		snapshot: &entity.HistoricoCostoFijoMensual{
			NegocioID: 1, Año: 2025, Mes: 3,
			Monto:  decimal.RequireFromString("1000"),
			Origen: entity.OrigenConfiguracion,
		},
	})
	resp := getBalancePoint(t, app, "/api/analisis/balancepoint/1?año=2025&mes=3", tokenValido(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			TotalCostosFijos        string `json:"total_costos_fijos"`
			UnidadesPuntoEquilibrio string `json:"unidades_punto_equilibrio"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "1000", body.Data.TotalCostosFijos)
	assert.Equal(t, "10", body.Data.UnidadesPuntoEquilibrio, "1000 / 100 de margen unitario")
}

// Un negocio de otro usuario es indistinguible de uno inexistente: 404 en
// ambos casos, nunca 403.
func TestBalancePoint_NegocioAjeno_Retorna404(t *testing.T) {
	app := buildAnalisisApp(&stubCostosRepo{activas: 2})

	ajeno := getBalancePoint(t, app, "/api/analisis/balancepoint/99?año=2025&mes=3", tokenValido(t))
	defer ajeno.Body.Close()

	assert.Equal(t, http.StatusNotFound, ajeno.StatusCode)
}
