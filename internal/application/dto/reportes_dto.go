package dto

import "github.com/shopspring/decimal"

// ValorFormateado cifra monetaria cruda más su forma abreviada ("1.5K", "2.0M").
type ValorFormateado struct {
	Valor     decimal.Decimal `json:"valor"`
	Formatted string          `json:"formatted"`
}

// VariacionDTO variación porcentual contra el período anterior, con signo y
// color semántico ("green"|"red"|"blue"|"gray"). El color de gastos se
// invierte respecto a ventas: subir gastos es desfavorable.
type VariacionDTO struct {
	Porcentaje decimal.Decimal `json:"porcentaje"`
	Signo      string          `json:"signo"`
	Color      string          `json:"color"`
}

// FechaDTO metadatos de la fecha consultada.
type FechaDTO struct {
	FechaConsulta   string `json:"fecha_consulta"`   // YYYY-MM-DD
	FechaFormateada string `json:"fecha_formateada"` // dd/mm/yyyy
	DiaSemana       string `json:"dia_semana"`
}

// MetricasPrincipalesDTO ventas, gastos y utilidad del día.
type MetricasPrincipalesDTO struct {
	VentasRegistradas ValorFormateado `json:"ventas_registradas"`
	GastosRegistrados ValorFormateado `json:"gastos_registrados"`
	UtilidadDia       ValorFormateado `json:"utilidad_dia"`
}

// ComparacionAyerDTO variaciones del día contra el día anterior.
type ComparacionAyerDTO struct {
	Ventas   VariacionDTO `json:"ventas"`
	Gastos   VariacionDTO `json:"gastos"`
	Utilidad VariacionDTO `json:"utilidad"`
}

// DesgloseDiaDTO conteos y derivados del día.
type DesgloseDiaDTO struct {
	TransaccionesRealizadas int             `json:"transacciones_realizadas"`
	ProductosVendidos       int64           `json:"productos_vendidos"`
	TicketPromedio          ValorFormateado `json:"ticket_promedio"`
	MargenDia               MargenDiaDTO    `json:"margen_dia"`
}

// MargenDiaDTO porcentaje de utilidad sobre ventas del día.
type MargenDiaDTO struct {
	Porcentaje decimal.Decimal `json:"porcentaje"`
}

// RendimientoDiaDTO vista diaria completa.
type RendimientoDiaDTO struct {
	Fecha               FechaDTO               `json:"fecha"`
	MetricasPrincipales MetricasPrincipalesDTO `json:"metricas_principales"`
	ComparacionAyer     ComparacionAyerDTO     `json:"comparacion_ayer"`
	DesgloseDia         DesgloseDiaDTO         `json:"desglose_dia"`
}

// DiaSemanaDTO una fila por día de la semana Lun..Dom. Los días sin actividad
// aparecen con agregados en cero.
type DiaSemanaDTO struct {
	DiaNumero         int             `json:"dia_numero"` // 1=Lun .. 7=Dom
	FechaDia          string          `json:"fecha_dia"`  // YYYY-MM-DD
	NombreDia         string          `json:"nombre_dia"` // Lun, Mar, ...
	FechaFormateada   string          `json:"fecha_formateada"`
	TotalIngresos     decimal.Decimal `json:"total_ingresos"`
	TotalEgresos      decimal.Decimal `json:"total_egresos"`
	GananciaNeta      decimal.Decimal `json:"ganancia_neta"`
	EsFechaConsultada string          `json:"es_fecha_consultada"` // SÍ | NO
}

// SemanaMesDTO un bucket semanal del mes. La semana 1 arranca en el primer
// lunes igual o posterior al día 1; el último bucket puede cruzar el fin de mes.
type SemanaMesDTO struct {
	SemanaNumero          int             `json:"semana_numero"`
	SemanaLabel           string          `json:"semana_label"` // "Sem 1"
	FechaInicioSemana     string          `json:"fecha_inicio_semana"`
	FechaFinSemana        string          `json:"fecha_fin_semana"`
	FechaInicioFormateada string          `json:"fecha_inicio_formateada"`
	FechaFinFormateada    string          `json:"fecha_fin_formateada"`
	EsSemanaActual        string          `json:"es_semana_actual"` // SÍ | NO
	TotalIngresos         decimal.Decimal `json:"total_ingresos"`
	TotalEgresos          decimal.Decimal `json:"total_egresos"`
}

// MasVendidoDTO un producto del ranking de más vendidos de la ventana.
type MasVendidoDTO struct {
	ProductoID            int64           `json:"producto_id"`
	ProductoNombre        string          `json:"producto_nombre"`
	CantidadTotalVendida  int64           `json:"cantidad_total_vendida"`
	IngresosGenerados     decimal.Decimal `json:"ingresos_generados"`
	GananciaTotalProducto decimal.Decimal `json:"ganancia_total_producto"`
	RankingPorCantidad    int             `json:"ranking_por_cantidad"`
	PorcentajeCantidad    decimal.Decimal `json:"porcentaje_cantidad"`
	IngresosFormatted     string          `json:"ingresos_formatted"`
}

// InsightsDiaDTO resumen rápido del día.
type InsightsDiaDTO struct {
	TodayTransactions int   `json:"todayTransactions"`
	ProductsSold      int64 `json:"productsSold"`
}

// InsightsSemanaDTO resumen rápido de la semana.
type InsightsSemanaDTO struct {
	BestDay      string `json:"bestDay"`
	ProductsSold int64  `json:"productsSold"`
}

// InsightsMesDTO resumen rápido del mes.
type InsightsMesDTO struct {
	DaysElapsed   int `json:"daysElapsed"`
	DaysWithSales int `json:"daysWithSales"`
}

// ReporteDiaResponse respuesta de la vista diaria.
type ReporteDiaResponse struct {
	Insights            InsightsDiaDTO    `json:"insights"`
	ResponsePerformance RendimientoDiaDTO `json:"responsePerformance"`
	ResponseBestSellers []MasVendidoDTO   `json:"responseBestSellers"`
}

// ReporteSemanaResponse respuesta de la vista semanal.
type ReporteSemanaResponse struct {
	Insights            InsightsSemanaDTO `json:"insights"`
	ResponsePerformance []DiaSemanaDTO    `json:"responsePerformance"`
	ResponseBestSellers []MasVendidoDTO   `json:"responseBestSellers"`
}

// ReporteMesResponse respuesta de la vista mensual.
type ReporteMesResponse struct {
	Insights            InsightsMesDTO  `json:"insights"`
	ResponsePerformance []SemanaMesDTO  `json:"responsePerformance"`
	ResponseBestSellers []MasVendidoDTO `json:"responseBestSellers"`
}

// ProductoRentabilidadDTO rentabilidad de un producto del catálogo.
type ProductoRentabilidadDTO struct {
	ProductoID               int64           `json:"producto_id"`
	ProductoNombre           string          `json:"producto_nombre"`
	PrecioUnitario           decimal.Decimal `json:"precio_unitario"`
	CostoUnitario            decimal.Decimal `json:"costo_unitario"`
	GananciaUnitaria         decimal.Decimal `json:"ganancia_unitaria"`
	CantidadVendida          int64           `json:"cantidad_vendida"`
	GananciaTotal            decimal.Decimal `json:"ganancia_total"`
	MargenGananciaPorcentaje decimal.Decimal `json:"margen_ganancia_porcentaje"`
}

// EstadisticasGeneralesDTO agregados del catálogo. Los promedios son simples
// por producto, no ponderados por ventas.
type EstadisticasGeneralesDTO struct {
	TotalProductos           int             `json:"total_productos"`
	GananciaPromedioUnitaria decimal.Decimal `json:"ganancia_promedio_unitaria"`
	GananciaTotalNegocio     decimal.Decimal `json:"ganancia_total_negocio"`
	TotalProductosVendidos   int64           `json:"total_productos_vendidos"`
	MargenPromedioPorcentaje decimal.Decimal `json:"margen_promedio_porcentaje"`
}

// RankingRentabilidadDTO entrada de los top/bottom 5 por ganancia.
type RankingRentabilidadDTO struct {
	Nombre        string          `json:"nombre"`
	GananciaTotal decimal.Decimal `json:"ganancia_total"`
}

// PeriodoDTO rango consultado; "Sin filtro" cuando el extremo no se envió.
type PeriodoDTO struct {
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
}

// RentabilidadResponse respuesta del reporte de ganancia por producto.
type RentabilidadResponse struct {
	Productos               []ProductoRentabilidadDTO `json:"productos"`
	EstadisticasGenerales   EstadisticasGeneralesDTO  `json:"estadisticas_generales"`
	ProductosMasRentables   []RankingRentabilidadDTO  `json:"productos_mas_rentables"`
	ProductosMenosRentables []RankingRentabilidadDTO  `json:"productos_menos_rentables"`
	Periodo                 PeriodoDTO                `json:"periodo"`
}
