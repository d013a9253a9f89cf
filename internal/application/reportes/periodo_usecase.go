package reportes

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/elb0ni/mis-finanzas-server/internal/application/dto"
	"github.com/elb0ni/mis-finanzas-server/internal/domain"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/reporting"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/repository"
)

// PeriodoUseCase arma los reportes de desempeño por día, semana y mes.
type PeriodoUseCase struct {
	negocioRepo  repository.NegocioRepository
	reportesRepo repository.ReportesRepository
	// ahora inyectable en tests; por defecto time.Now.
	ahora func() time.Time
}

// NewPeriodoUseCase construye el caso de uso de reportes por período.
func NewPeriodoUseCase(negocioRepo repository.NegocioRepository, reportesRepo repository.ReportesRepository) *PeriodoUseCase {
	return &PeriodoUseCase{negocioRepo: negocioRepo, reportesRepo: reportesRepo, ahora: time.Now}
}

func (uc *PeriodoUseCase) verificarPropiedad(negocioID int64, propietario string) error {
	negocio, err := uc.negocioRepo.BuscarPropio(negocioID, propietario)
	if err != nil {
		return err
	}
	if negocio == nil {
		return domain.ErrNotFound
	}
	return nil
}

// Dia arma el reporte del día consultado: métricas del día, comparación contra
// el día anterior y ranking de más vendidos. Las tres consultas son
// independientes y se lanzan en paralelo.
func (uc *PeriodoUseCase) Dia(ctx context.Context, negocioID int64, fecha time.Time, propietario string) (*dto.ReporteDiaResponse, error) {
	if err := uc.verificarPropiedad(negocioID, propietario); err != nil {
		return nil, err
	}
	ventanaDia, ventanaAyer := reporting.VentanaDia(fecha)

	var (
		wg                        sync.WaitGroup
		hoy, ayer                 repository.TotalesDia
		ventas                    []repository.VentaProducto
		errHoy, errAyer, errVenta error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		hoy, errHoy = uc.reportesRepo.TotalesDia(ctx, negocioID, ventanaDia.Inicio)
	}()
	go func() {
		defer wg.Done()
		ayer, errAyer = uc.reportesRepo.TotalesDia(ctx, negocioID, ventanaAyer.Inicio)
	}()
	go func() {
		defer wg.Done()
		ventas, errVenta = uc.reportesRepo.VentasPorProducto(ctx, negocioID, ventanaDia.Inicio, ventanaDia.Fin)
	}()
	wg.Wait()
	for _, err := range []error{errHoy, errAyer, errVenta} {
		if err != nil {
			return nil, fmt.Errorf("reporte diario: %w", err)
		}
	}

	utilidadHoy := hoy.Ventas.Sub(hoy.Gastos)
	utilidadAyer := ayer.Ventas.Sub(ayer.Gastos)
	transaccionesHoy := hoy.NumIngresos + hoy.NumEgresos

	comparacion := dto.ComparacionAyerDTO{
		Ventas:   variacion(hoy.Ventas, ayer.Ventas, reporting.ColorVentas),
		Gastos:   variacion(hoy.Gastos, ayer.Gastos, reporting.ColorGastos),
		Utilidad: variacion(utilidadHoy, utilidadAyer, reporting.ColorUtilidad),
	}
	// Sin actividad hoy ni ayer la comparación no significa nada: todo gris
	// y sin signo, para que la UI muestre el estado vacío.
	if transaccionesHoy == 0 && ayer.Ventas.IsZero() && ayer.Gastos.IsZero() {
		vacia := dto.VariacionDTO{Porcentaje: decimal.Zero, Signo: "", Color: reporting.ColorGris}
		comparacion = dto.ComparacionAyerDTO{Ventas: vacia, Gastos: vacia, Utilidad: vacia}
	}

	ticketPromedio := decimal.Zero
	if hoy.NumIngresos > 0 {
		ticketPromedio = hoy.Ventas.Div(decimal.NewFromInt(int64(hoy.NumIngresos))).Round(2)
	}
	margenDia := decimal.Zero
	if hoy.Ventas.Sign() > 0 {
		margenDia = utilidadHoy.Div(hoy.Ventas).Mul(cien).Round(2)
	}

	return &dto.ReporteDiaResponse{
		Insights: dto.InsightsDiaDTO{
			TodayTransactions: transaccionesHoy,
			ProductsSold:      hoy.UnidadesVendidas,
		},
		ResponsePerformance: dto.RendimientoDiaDTO{
			Fecha: dto.FechaDTO{
				FechaConsulta:   ventanaDia.Inicio.Format("2006-01-02"),
				FechaFormateada: reporting.FormatearFecha(ventanaDia.Inicio),
				DiaSemana:       reporting.NombreDia(ventanaDia.Inicio),
			},
			MetricasPrincipales: dto.MetricasPrincipalesDTO{
				VentasRegistradas: formateado(hoy.Ventas),
				GastosRegistrados: formateado(hoy.Gastos),
				UtilidadDia:       formateado(utilidadHoy),
			},
			ComparacionAyer: comparacion,
			DesgloseDia: dto.DesgloseDiaDTO{
				TransaccionesRealizadas: transaccionesHoy,
				ProductosVendidos:       hoy.UnidadesVendidas,
				TicketPromedio:          formateado(ticketPromedio),
				MargenDia:               dto.MargenDiaDTO{Porcentaje: margenDia},
			},
		},
		ResponseBestSellers: construirMasVendidos(ventas),
	}, nil
}

// Semana arma el reporte de la semana lunes-domingo que contiene la fecha.
// Siempre devuelve siete filas: los días sin actividad van en cero.
func (uc *PeriodoUseCase) Semana(ctx context.Context, negocioID int64, fecha time.Time, propietario string) (*dto.ReporteSemanaResponse, error) {
	if err := uc.verificarPropiedad(negocioID, propietario); err != nil {
		return nil, err
	}
	ventana := reporting.VentanaSemana(fecha)

	totales, err := uc.reportesRepo.TotalesPorDia(ctx, negocioID, ventana.Inicio, ventana.Fin)
	if err != nil {
		return nil, fmt.Errorf("reporte semanal: %w", err)
	}
	ventas, err := uc.reportesRepo.VentasPorProducto(ctx, negocioID, ventana.Inicio, ventana.Fin)
	if err != nil {
		return nil, fmt.Errorf("reporte semanal: %w", err)
	}

	porDia := make(map[string]repository.TotalDiario, len(totales))
	for _, t := range totales {
		porDia[t.Fecha.Format("2006-01-02")] = t
	}

	consultado := reporting.Dia(fecha)
	dias := make([]dto.DiaSemanaDTO, 0, 7)
	for i := 0; i < 7; i++ {
		d := ventana.Inicio.AddDate(0, 0, i)
		clave := d.Format("2006-01-02")
		ingresos, egresos := decimal.Zero, decimal.Zero
		if fila, ok := porDia[clave]; ok {
			ingresos, egresos = fila.Ingresos, fila.Egresos
		}
		esConsultada := "NO"
		if d.Equal(consultado) {
			esConsultada = "SÍ"
		}
		dias = append(dias, dto.DiaSemanaDTO{
			DiaNumero:         i + 1,
			FechaDia:          clave,
			NombreDia:         reporting.NombreDiaCorto(d),
			FechaFormateada:   reporting.FormatearFecha(d),
			TotalIngresos:     ingresos,
			TotalEgresos:      egresos,
			GananciaNeta:      ingresos.Sub(egresos),
			EsFechaConsultada: esConsultada,
		})
	}

	masVendidos := construirMasVendidos(ventas)
	var unidades int64
	for _, m := range masVendidos {
		unidades += m.CantidadTotalVendida
	}

	return &dto.ReporteSemanaResponse{
		Insights: dto.InsightsSemanaDTO{
			BestDay:      mejorDia(dias),
			ProductsSold: unidades,
		},
		ResponsePerformance: dias,
		ResponseBestSellers: masVendidos,
	}, nil
}

// mejorDia devuelve el nombre del día con mayor ganancia neta. Un empate lo
// gana el día más temprano de la semana.
func mejorDia(dias []dto.DiaSemanaDTO) string {
	if len(dias) == 0 {
		return ""
	}
	mejor := dias[0]
	for _, d := range dias[1:] {
		if d.GananciaNeta.GreaterThan(mejor.GananciaNeta) {
			mejor = d
		}
	}
	return mejor.NombreDia
}

// Mes arma el reporte mensual: buckets semanales de desempeño y ranking de más
// vendidos sobre el mes calendario completo. Los buckets arrancan en el primer
// lunes del mes y el último puede cruzar el fin de mes, así que la consulta de
// totales cubre hasta el fin del último bucket.
func (uc *PeriodoUseCase) Mes(ctx context.Context, negocioID int64, fecha time.Time, propietario string) (*dto.ReporteMesResponse, error) {
	if err := uc.verificarPropiedad(negocioID, propietario); err != nil {
		return nil, err
	}
	mes := reporting.VentanaMes(fecha)
	semanas := reporting.SemanasDelMes(fecha)

	finRango := mes.Fin
	if n := len(semanas); n > 0 && semanas[n-1].Ventana.Fin.After(finRango) {
		finRango = semanas[n-1].Ventana.Fin
	}
	totales, err := uc.reportesRepo.TotalesPorDia(ctx, negocioID, mes.Inicio, finRango)
	if err != nil {
		return nil, fmt.Errorf("reporte mensual: %w", err)
	}
	ventas, err := uc.reportesRepo.VentasPorProducto(ctx, negocioID, mes.Inicio, mes.Fin)
	if err != nil {
		return nil, fmt.Errorf("reporte mensual: %w", err)
	}

	ahora := uc.ahora()
	rendimiento := make([]dto.SemanaMesDTO, 0, len(semanas))
	for _, s := range semanas {
		ingresos, egresos := decimal.Zero, decimal.Zero
		for _, t := range totales {
			if s.Ventana.Contiene(t.Fecha) {
				ingresos = ingresos.Add(t.Ingresos)
				egresos = egresos.Add(t.Egresos)
			}
		}
		esActual := "NO"
		if s.Ventana.Contiene(ahora) {
			esActual = "SÍ"
		}
		rendimiento = append(rendimiento, dto.SemanaMesDTO{
			SemanaNumero:          s.Numero,
			SemanaLabel:           fmt.Sprintf("Sem %d", s.Numero),
			FechaInicioSemana:     s.Ventana.Inicio.Format("2006-01-02"),
			FechaFinSemana:        s.Ventana.Fin.Format("2006-01-02"),
			FechaInicioFormateada: reporting.FormatearFecha(s.Ventana.Inicio),
			FechaFinFormateada:    reporting.FormatearFecha(s.Ventana.Fin),
			EsSemanaActual:        esActual,
			TotalIngresos:         ingresos,
			TotalEgresos:          egresos,
		})
	}

	diasConVentas := 0
	for _, t := range totales {
		if mes.Contiene(t.Fecha) && t.Ingresos.Sign() > 0 {
			diasConVentas++
		}
	}

	return &dto.ReporteMesResponse{
		Insights: dto.InsightsMesDTO{
			DaysElapsed:   diasTranscurridos(mes, ahora),
			DaysWithSales: diasConVentas,
		},
		ResponsePerformance: rendimiento,
		ResponseBestSellers: construirMasVendidos(ventas),
	}, nil
}

// diasTranscurridos cuenta los días del mes ya corridos: cero para un mes
// futuro, el día de hoy para el mes en curso, el mes completo si ya pasó.
func diasTranscurridos(mes reporting.Ventana, ahora time.Time) int {
	hoy := reporting.Dia(ahora)
	switch {
	case mes.Inicio.After(hoy):
		return 0
	case mes.Contiene(hoy):
		return hoy.Day()
	default:
		return mes.Fin.Day()
	}
}

func variacion(hoy, ayer decimal.Decimal, color func(decimal.Decimal) string) dto.VariacionDTO {
	pct := reporting.VariacionPorcentaje(hoy, ayer)
	return dto.VariacionDTO{
		Porcentaje: pct,
		Signo:      reporting.Signo(pct),
		Color:      color(pct),
	}
}

func formateado(v decimal.Decimal) dto.ValorFormateado {
	return dto.ValorFormateado{Valor: v, Formatted: reporting.Abreviado(v)}
}
