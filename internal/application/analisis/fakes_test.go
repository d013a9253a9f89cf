package analisis_test

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/elb0ni/mis-finanzas-server/internal/application/analisis"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/entity"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

// fakeNegocioRepo mapa id → propietario.
type fakeNegocioRepo struct {
	duenos map[int64]string
}

func (f *fakeNegocioRepo) Crear(n *entity.Negocio) error { panic("no usado") }

func (f *fakeNegocioRepo) BuscarPropio(id int64, propietario string) (*entity.Negocio, error) {
	if f.duenos[id] != propietario {
		return nil, nil
	}
	return &entity.Negocio{ID: id, Propietario: propietario, Nombre: "Negocio de prueba"}, nil
}

func (f *fakeNegocioRepo) ListarPorPropietario(string) ([]*entity.Negocio, error) { panic("no usado") }
func (f *fakeNegocioRepo) Actualizar(*entity.Negocio, string) error               { panic("no usado") }
func (f *fakeNegocioRepo) Eliminar(int64, string) error                           { panic("no usado") }

// fakeCostosRepo replica la semántica del INSERT condicional: el snapshot solo
// se inserta si no existe y hay configuraciones activas.
type fakeCostosRepo struct {
	configs    map[int64]*entity.ConfiguracionCostoFijo
	activas    int
	snapshots  map[string]*entity.HistoricoCostoFijoMensual
	montoTotal decimal.Decimal
	siguiente  int64
}

func newFakeCostosRepo() *fakeCostosRepo {
	return &fakeCostosRepo{
		configs:   map[int64]*entity.ConfiguracionCostoFijo{},
		snapshots: map[string]*entity.HistoricoCostoFijoMensual{},
	}
}

func claveSnapshot(negocioID int64, año, mes int) string {
	return fmt.Sprintf("%d-%d-%d", negocioID, año, mes)
}

func (f *fakeCostosRepo) CrearConfiguracion(c *entity.ConfiguracionCostoFijo) error {
	f.siguiente++
	c.ID = f.siguiente
	c.FechaCreacion = time.Now()
	c.UltimaActualizacion = c.FechaCreacion
	f.configs[c.ID] = c
	if c.Activo {
		f.activas++
		f.montoTotal = f.montoTotal.Add(c.MontoMensual)
	}
	return nil
}

func (f *fakeCostosRepo) BuscarConfiguracion(id, negocioID int64) (*entity.ConfiguracionCostoFijo, error) {
	c, ok := f.configs[id]
	if !ok || c.NegocioID != negocioID {
		return nil, nil
	}
	return c, nil
}

func (f *fakeCostosRepo) ListarConfiguracion(negocioID int64) ([]*entity.ConfiguracionCostoFijo, error) {
	var out []*entity.ConfiguracionCostoFijo
	for _, c := range f.configs {
		if c.NegocioID == negocioID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCostosRepo) ActualizarConfiguracion(c *entity.ConfiguracionCostoFijo) error {
	f.configs[c.ID] = c
	return nil
}

func (f *fakeCostosRepo) EliminarConfiguracion(id, negocioID int64) error {
	delete(f.configs, id)
	return nil
}

func (f *fakeCostosRepo) ContarConfiguracionActiva(negocioID int64) (int, error) {
	return f.activas, nil
}

func (f *fakeCostosRepo) GenerarSnapshot(negocioID int64, año, mes int) (bool, error) {
	clave := claveSnapshot(negocioID, año, mes)
	if _, existe := f.snapshots[clave]; existe {
		return false, nil
	}
	if f.activas == 0 {
		return false, nil
	}
	f.snapshots[clave] = &entity.HistoricoCostoFijoMensual{
		NegocioID:     negocioID,
		Año:           año,
		Mes:           mes,
		Monto:         f.montoTotal,
		Origen:        entity.OrigenConfiguracion,
		Observaciones: fmt.Sprintf("Suma automática de %d costos fijos configurados", f.activas),
	}
	return true, nil
}

func (f *fakeCostosRepo) ObtenerSnapshot(negocioID int64, año, mes int) (*entity.HistoricoCostoFijoMensual, error) {
	return f.snapshots[claveSnapshot(negocioID, año, mes)], nil
}

func (f *fakeCostosRepo) ListarHistorico(negocioID int64) ([]*entity.HistoricoCostoFijoMensual, error) {
	var out []*entity.HistoricoCostoFijoMensual
	for _, h := range f.snapshots {
		if h.NegocioID == negocioID {
			out = append(out, h)
		}
	}
	return out, nil
}

// fakeCategoriaRepo categorías existentes por ID.
type fakeCategoriaRepo struct {
	categorias map[int64]*entity.CategoriaEgreso
}

func (f *fakeCategoriaRepo) Crear(*entity.CategoriaEgreso) error { panic("no usado") }

func (f *fakeCategoriaRepo) BuscarPorID(id, negocioID int64) (*entity.CategoriaEgreso, error) {
	c, ok := f.categorias[id]
	if !ok || c.NegocioID != negocioID {
		return nil, nil
	}
	return c, nil
}

func (f *fakeCategoriaRepo) ListarPorNegocio(int64, string) ([]*entity.CategoriaEgreso, error) {
	panic("no usado")
}
func (f *fakeCategoriaRepo) Actualizar(*entity.CategoriaEgreso) error { panic("no usado") }
func (f *fakeCategoriaRepo) Eliminar(int64, int64) error              { panic("no usado") }

// fakeReportesRepo devuelve valores fijos configurados por el test.
type fakeReportesRepo struct {
	margen   repository.MargenCatalogo
	progreso repository.ProgresoVentas
}

func (f *fakeReportesRepo) MargenCatalogo(ctx context.Context, negocioID int64) (repository.MargenCatalogo, error) {
	return f.margen, nil
}

func (f *fakeReportesRepo) ProgresoVentas(ctx context.Context, negocioID int64, inicio, fin time.Time) (repository.ProgresoVentas, error) {
	return f.progreso, nil
}

func (f *fakeReportesRepo) TotalesDia(context.Context, int64, time.Time) (repository.TotalesDia, error) {
	panic("no usado")
}

func (f *fakeReportesRepo) TotalesPorDia(context.Context, int64, time.Time, time.Time) ([]repository.TotalDiario, error) {
	panic("no usado")
}

func (f *fakeReportesRepo) VentasPorProducto(context.Context, int64, time.Time, time.Time) ([]repository.VentaProducto, error) {
	panic("no usado")
}

func (f *fakeReportesRepo) Rentabilidad(context.Context, int64, *time.Time, *time.Time) ([]repository.RentabilidadProducto, error) {
	panic("no usado")
}

// fakeTxRunner ejecuta el callback directamente, sin transacción real.
type fakeTxRunner struct {
	costos     *fakeCostosRepo
	categorias *fakeCategoriaRepo
}

var _ analisis.CostosTxRunner = (*fakeTxRunner)(nil)

func (f *fakeTxRunner) RunCostos(ctx context.Context, fn func(
	costosRepo repository.CostosFijosRepository,
	categoriaRepo repository.CategoriaEgresoRepository,
) error) error {
	return fn(f.costos, f.categorias)
}
