package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elb0ni/mis-finanzas-server/internal/domain/repository"
)

var _ repository.ReportesRepository = (*ReportesRepo)(nil)

// ReportesRepo consultas de solo lectura para reportes de desempeño,
// más vendidos y rentabilidad.
type ReportesRepo struct {
	pool *pgxpool.Pool
}

// NewReportesRepository construye el adaptador de reportes.
func NewReportesRepository(pool *pgxpool.Pool) *ReportesRepo {
	return &ReportesRepo{pool: pool}
}

// MargenCatalogo promedia los márgenes del catálogo activo con precio y costo
// positivos. Promedio simple por producto, no ponderado por ventas: cada
// producto califica con el mismo peso sin importar cuánto vendió.
func (r *ReportesRepo) MargenCatalogo(ctx context.Context, negocioID int64) (repository.MargenCatalogo, error) {
	const query = `
	SELECT
	    COUNT(*)                                                                     AS productos,
	    COALESCE(AVG(precio_unitario - costo_unitario), 0)                           AS margen_unitario,
	    COALESCE(AVG((precio_unitario - costo_unitario) / precio_unitario * 100), 0) AS margen_pct
	FROM productos
	WHERE negocio_id = $1
	  AND activo
	  AND precio_unitario > 0
	  AND costo_unitario > 0`

	var m repository.MargenCatalogo
	err := r.pool.QueryRow(ctx, query, negocioID).
		Scan(&m.Productos, &m.MargenUnitario, &m.MargenPct)
	if err != nil {
		return repository.MargenCatalogo{}, fmt.Errorf("reportes.MargenCatalogo: %w", err)
	}
	return m, nil
}

// ProgresoVentas acumula unidades e ingresos de los detalles de venta con
// producto asociado en [inicio, fin]. COALESCE devuelve cero si no hay ventas.
func (r *ReportesRepo) ProgresoVentas(ctx context.Context, negocioID int64, inicio, fin time.Time) (repository.ProgresoVentas, error) {
	const query = `
	SELECT
	    COALESCE(SUM(dt.cantidad), 0) AS unidades,
	    COALESCE(SUM(dt.subtotal), 0) AS ingresos
	FROM transacciones t
	JOIN detalle_transacciones dt ON dt.transaccion_id = t.id
	JOIN puntos_venta pv          ON pv.id             = t.punto_venta_id
	WHERE pv.negocio_id = $1
	  AND t.tipo = 'ingreso'
	  AND dt.producto_id IS NOT NULL
	  AND t.fecha::date BETWEEN $2 AND $3`

	var p repository.ProgresoVentas
	err := r.pool.QueryRow(ctx, query, negocioID, inicio, fin).
		Scan(&p.Unidades, &p.Ingresos)
	if err != nil {
		return repository.ProgresoVentas{}, fmt.Errorf("reportes.ProgresoVentas: %w", err)
	}
	return p, nil
}

// TotalesDia agrega la actividad de un día calendario. Las ventas suman los
// subtotales del detalle de ingresos; los gastos suman el monto total de la
// cabecera del egreso (los egresos no llevan detalle, por lo que el LEFT JOIN
// no los duplica).
func (r *ReportesRepo) TotalesDia(ctx context.Context, negocioID int64, dia time.Time) (repository.TotalesDia, error) {
	const query = `
	SELECT
	    COALESCE(SUM(dt.subtotal)     FILTER (WHERE t.tipo = 'ingreso'), 0) AS ventas,
	    COALESCE(SUM(t.monto_total)   FILTER (WHERE t.tipo = 'egreso'),  0) AS gastos,
	    COUNT(DISTINCT t.id)          FILTER (WHERE t.tipo = 'ingreso')     AS num_ingresos,
	    COUNT(DISTINCT t.id)          FILTER (WHERE t.tipo = 'egreso')      AS num_egresos,
	    COALESCE(SUM(dt.cantidad)     FILTER (WHERE t.tipo = 'ingreso'), 0) AS unidades_vendidas
	FROM transacciones t
	JOIN puntos_venta pv ON pv.id = t.punto_venta_id
	LEFT JOIN detalle_transacciones dt ON dt.transaccion_id = t.id
	WHERE pv.negocio_id = $1
	  AND t.fecha::date = $2`

	var d repository.TotalesDia
	err := r.pool.QueryRow(ctx, query, negocioID, dia).Scan(
		&d.Ventas, &d.Gastos, &d.NumIngresos, &d.NumEgresos, &d.UnidadesVendidas,
	)
	if err != nil {
		return repository.TotalesDia{}, fmt.Errorf("reportes.TotalesDia: %w", err)
	}
	return d, nil
}

// TotalesPorDia devuelve una fila por día con actividad en [inicio, fin],
// sumando el monto total de la cabecera por tipo. Los días sin actividad no
// aparecen; el use case los rellena con ceros.
func (r *ReportesRepo) TotalesPorDia(ctx context.Context, negocioID int64, inicio, fin time.Time) ([]repository.TotalDiario, error) {
	const query = `
	SELECT
	    t.fecha::date                                                     AS fecha,
	    COALESCE(SUM(t.monto_total) FILTER (WHERE t.tipo = 'ingreso'), 0) AS ingresos,
	    COALESCE(SUM(t.monto_total) FILTER (WHERE t.tipo = 'egreso'),  0) AS egresos
	FROM transacciones t
	JOIN puntos_venta pv ON pv.id = t.punto_venta_id
	WHERE pv.negocio_id = $1
	  AND t.fecha::date BETWEEN $2 AND $3
	GROUP BY t.fecha::date
	ORDER BY fecha`

	rows, err := r.pool.Query(ctx, query, negocioID, inicio, fin)
	if err != nil {
		return nil, fmt.Errorf("reportes.TotalesPorDia: %w", err)
	}
	defer rows.Close()

	var totales []repository.TotalDiario
	for rows.Next() {
		var t repository.TotalDiario
		if err := rows.Scan(&t.Fecha, &t.Ingresos, &t.Egresos); err != nil {
			return nil, fmt.Errorf("reportes.TotalesPorDia scan: %w", err)
		}
		totales = append(totales, t)
	}
	return totales, rows.Err()
}

// VentasPorProducto agrega cantidad, ingresos y ganancia por producto activo
// con al menos una venta en [inicio, fin]. El orden (cantidad desc, ingresos
// desc) es el orden final del ranking; el use case solo numera.
func (r *ReportesRepo) VentasPorProducto(ctx context.Context, negocioID int64, inicio, fin time.Time) ([]repository.VentaProducto, error) {
	const query = `
	SELECT
	    p.id                                                                     AS producto_id,
	    p.nombre                                                                 AS nombre,
	    SUM(dt.cantidad)                                                         AS cantidad,
	    SUM(dt.subtotal)                                                         AS ingresos,
	    ROUND(SUM(dt.cantidad * (p.precio_unitario - p.costo_unitario)), 2)      AS ganancia
	FROM productos p
	JOIN detalle_transacciones dt ON dt.producto_id    = p.id
	JOIN transacciones t          ON t.id              = dt.transaccion_id AND t.tipo = 'ingreso'
	JOIN puntos_venta pv          ON pv.id             = t.punto_venta_id
	WHERE p.negocio_id = $1
	  AND p.activo
	  AND t.fecha::date BETWEEN $2 AND $3
	GROUP BY p.id, p.nombre, p.precio_unitario, p.costo_unitario
	ORDER BY cantidad DESC, ingresos DESC`

	rows, err := r.pool.Query(ctx, query, negocioID, inicio, fin)
	if err != nil {
		return nil, fmt.Errorf("reportes.VentasPorProducto: %w", err)
	}
	defer rows.Close()

	var ventas []repository.VentaProducto
	for rows.Next() {
		var v repository.VentaProducto
		if err := rows.Scan(&v.ProductoID, &v.Nombre, &v.Cantidad, &v.Ingresos, &v.Ganancia); err != nil {
			return nil, fmt.Errorf("reportes.VentasPorProducto scan: %w", err)
		}
		ventas = append(ventas, v)
	}
	return ventas, rows.Err()
}

// Rentabilidad devuelve el catálogo activo con ventas acumuladas en el rango
// opcional. El CTE separa la agregación de ventas del catálogo para que los
// productos sin ventas aparezcan con cantidad y ganancia en cero.
func (r *ReportesRepo) Rentabilidad(ctx context.Context, negocioID int64, desde, hasta *time.Time) ([]repository.RentabilidadProducto, error) {
	const query = `
	WITH ventas AS (
	    SELECT
	        dt.producto_id,
	        SUM(dt.cantidad)                                              AS cantidad,
	        SUM(dt.cantidad * (p.precio_unitario - p.costo_unitario))     AS ganancia
	    FROM detalle_transacciones dt
	    JOIN transacciones t ON t.id  = dt.transaccion_id AND t.tipo = 'ingreso'
	    JOIN puntos_venta pv ON pv.id = t.punto_venta_id
	    JOIN productos p     ON p.id  = dt.producto_id
	    WHERE pv.negocio_id = $1
	      AND ($2::date IS NULL OR t.fecha::date >= $2)
	      AND ($3::date IS NULL OR t.fecha::date <= $3)
	    GROUP BY dt.producto_id
	)
	SELECT
	    p.id,
	    p.nombre,
	    p.precio_unitario,
	    p.costo_unitario,
	    COALESCE(v.cantidad, 0) AS cantidad,
	    COALESCE(v.ganancia, 0) AS ganancia_total
	FROM productos p
	LEFT JOIN ventas v ON v.producto_id = p.id
	WHERE p.negocio_id = $1
	  AND p.activo
	ORDER BY ganancia_total DESC, p.nombre`

	rows, err := r.pool.Query(ctx, query, negocioID, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("reportes.Rentabilidad: %w", err)
	}
	defer rows.Close()

	var productos []repository.RentabilidadProducto
	for rows.Next() {
		var p repository.RentabilidadProducto
		if err := rows.Scan(
			&p.ProductoID, &p.Nombre, &p.PrecioUnitario, &p.CostoUnitario,
			&p.Cantidad, &p.GananciaTotal,
		); err != nil {
			return nil, fmt.Errorf("reportes.Rentabilidad scan: %w", err)
		}
		productos = append(productos, p)
	}
	return productos, rows.Err()
}
