package reportes

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/elb0ni/mis-finanzas-server/internal/application/dto"
	"github.com/elb0ni/mis-finanzas-server/internal/domain"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/repository"
)

// RentabilidadUseCase reporta la ganancia por producto del catálogo activo,
// con los agregados del negocio y los top/bottom cinco por ganancia total.
type RentabilidadUseCase struct {
	negocioRepo  repository.NegocioRepository
	reportesRepo repository.ReportesRepository
}

// NewRentabilidadUseCase construye el caso de uso de rentabilidad.
func NewRentabilidadUseCase(negocioRepo repository.NegocioRepository, reportesRepo repository.ReportesRepository) *RentabilidadUseCase {
	return &RentabilidadUseCase{negocioRepo: negocioRepo, reportesRepo: reportesRepo}
}

// Calcular arma el reporte de rentabilidad. El rango es opcional: cada extremo
// en nil significa sin filtro por ese lado.
func (uc *RentabilidadUseCase) Calcular(ctx context.Context, negocioID int64, propietario string, desde, hasta *time.Time) (*dto.RentabilidadResponse, error) {
	negocio, err := uc.negocioRepo.BuscarPropio(negocioID, propietario)
	if err != nil {
		return nil, err
	}
	if negocio == nil {
		return nil, domain.ErrNotFound
	}

	filas, err := uc.reportesRepo.Rentabilidad(ctx, negocioID, desde, hasta)
	if err != nil {
		return nil, err
	}

	productos := make([]dto.ProductoRentabilidadDTO, 0, len(filas))
	var (
		sumaGanancia  decimal.Decimal
		sumaMargen    decimal.Decimal
		gananciaTotal decimal.Decimal
		unidades      int64
	)
	for _, f := range filas {
		gananciaUnitaria := f.PrecioUnitario.Sub(f.CostoUnitario)
		margen := decimal.Zero
		if f.PrecioUnitario.Sign() > 0 {
			margen = gananciaUnitaria.Div(f.PrecioUnitario).Mul(cien).Round(2)
		}
		productos = append(productos, dto.ProductoRentabilidadDTO{
			ProductoID:               f.ProductoID,
			ProductoNombre:           f.Nombre,
			PrecioUnitario:           f.PrecioUnitario,
			CostoUnitario:            f.CostoUnitario,
			GananciaUnitaria:         gananciaUnitaria,
			CantidadVendida:          f.Cantidad,
			GananciaTotal:            f.GananciaTotal,
			MargenGananciaPorcentaje: margen,
		})
		sumaGanancia = sumaGanancia.Add(gananciaUnitaria)
		sumaMargen = sumaMargen.Add(margen)
		gananciaTotal = gananciaTotal.Add(f.GananciaTotal)
		unidades += f.Cantidad
	}

	estadisticas := dto.EstadisticasGeneralesDTO{
		TotalProductos:         len(filas),
		GananciaTotalNegocio:   gananciaTotal,
		TotalProductosVendidos: unidades,
	}
	if n := len(filas); n > 0 {
		divisor := decimal.NewFromInt(int64(n))
		estadisticas.GananciaPromedioUnitaria = sumaGanancia.Div(divisor).Round(2)
		estadisticas.MargenPromedioPorcentaje = sumaMargen.Div(divisor).Round(2)
	}

	return &dto.RentabilidadResponse{
		Productos:               productos,
		EstadisticasGenerales:   estadisticas,
		ProductosMasRentables:   masRentables(filas),
		ProductosMenosRentables: menosRentables(filas),
		Periodo: dto.PeriodoDTO{
			FechaInicio: etiquetaFecha(desde),
			FechaFin:    etiquetaFecha(hasta),
		},
	}, nil
}

// masRentables top cinco por ganancia total. Solo entran productos que dejaron
// ganancia positiva: un catálogo sin ventas devuelve lista vacía.
func masRentables(filas []repository.RentabilidadProducto) []dto.RankingRentabilidadDTO {
	var conGanancia []repository.RentabilidadProducto
	for _, f := range filas {
		if f.GananciaTotal.Sign() > 0 {
			conGanancia = append(conGanancia, f)
		}
	}
	sort.SliceStable(conGanancia, func(i, j int) bool {
		return conGanancia[i].GananciaTotal.GreaterThan(conGanancia[j].GananciaTotal)
	})
	return top5(conGanancia)
}

// menosRentables bottom cinco por ganancia total entre los productos que sí se
// vendieron. Un producto sin ventas no es "poco rentable", es invendido: no
// entra al ranking.
func menosRentables(filas []repository.RentabilidadProducto) []dto.RankingRentabilidadDTO {
	var vendidos []repository.RentabilidadProducto
	for _, f := range filas {
		if f.Cantidad > 0 {
			vendidos = append(vendidos, f)
		}
	}
	sort.SliceStable(vendidos, func(i, j int) bool {
		return vendidos[i].GananciaTotal.LessThan(vendidos[j].GananciaTotal)
	})
	return top5(vendidos)
}

func top5(filas []repository.RentabilidadProducto) []dto.RankingRentabilidadDTO {
	if len(filas) > 5 {
		filas = filas[:5]
	}
	out := make([]dto.RankingRentabilidadDTO, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.RankingRentabilidadDTO{Nombre: f.Nombre, GananciaTotal: f.GananciaTotal})
	}
	return out
}

func etiquetaFecha(t *time.Time) string {
	if t == nil {
		return "Sin filtro"
	}
	return t.Format("2006-01-02")
}
