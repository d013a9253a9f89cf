package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/elb0ni/mis-finanzas-server/internal/domain/entity"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/repository"
)

var _ repository.TransaccionRepository = (*TransaccionRepo)(nil)

// TransaccionRepo implementación del puerto TransaccionRepository sobre PostgreSQL.
// Para Crear debe recibir una tx (ver TxRunner): cabecera y detalles son una
// unidad atómica.
type TransaccionRepo struct {
	q Querier
}

// NewTransaccionRepository construye el adaptador de transacciones. Pasar pool o tx (Querier).
func NewTransaccionRepository(q Querier) *TransaccionRepo {
	return &TransaccionRepo{q: q}
}

// Crear inserta la cabecera y sus detalles. Las transacciones son append-only:
// no existe camino de actualización ni borrado.
func (r *TransaccionRepo) Crear(transaccion *entity.Transaccion) error {
	query := `
		INSERT INTO transacciones (punto_venta_id, tipo, monto_total, fecha, categoria_id, concepto)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		transaccion.PuntoVentaID, transaccion.Tipo, transaccion.MontoTotal,
		transaccion.Fecha, transaccion.CategoriaID, transaccion.Concepto,
	).Scan(&transaccion.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert transacción: punto de venta o categoría inexistente: %w", err)
		}
		return fmt.Errorf("insert transacción: %w", err)
	}

	for i := range transaccion.Detalles {
		d := &transaccion.Detalles[i]
		d.TransaccionID = transaccion.ID
		err := r.q.QueryRow(context.Background(),
			`INSERT INTO detalle_transacciones (transaccion_id, producto_id, cantidad, subtotal)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			d.TransaccionID, d.ProductoID, d.Cantidad, d.Subtotal,
		).Scan(&d.ID)
		if err != nil {
			return fmt.Errorf("insert detalle de transacción: %w", err)
		}
	}
	return nil
}

// BuscarPropia obtiene una transacción con sus detalles, solo si el punto de
// venta pertenece a un negocio del propietario.
func (r *TransaccionRepo) BuscarPropia(id int64, propietario string) (*entity.Transaccion, error) {
	query := `
		SELECT t.id, t.punto_venta_id, t.tipo, t.monto_total, t.fecha, t.categoria_id, t.concepto
		FROM transacciones t
		JOIN puntos_venta pv ON pv.id = t.punto_venta_id
		JOIN negocios n ON n.id = pv.negocio_id
		WHERE t.id = $1 AND n.propietario = $2`
	var t entity.Transaccion
	err := r.q.QueryRow(context.Background(), query, id, propietario).Scan(
		&t.ID, &t.PuntoVentaID, &t.Tipo, &t.MontoTotal, &t.Fecha, &t.CategoriaID, &t.Concepto,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transacción: %w", err)
	}

	detalles, err := r.detallesDe(t.ID)
	if err != nil {
		return nil, err
	}
	t.Detalles = detalles
	return &t, nil
}

// ListarPorPuntoVenta devuelve las transacciones del punto de venta en el
// rango, más recientes primero, sin detalles (solo cabeceras).
func (r *TransaccionRepo) ListarPorPuntoVenta(puntoVentaID int64, propietario string, desde, hasta time.Time) ([]*entity.Transaccion, error) {
	query := `
		SELECT t.id, t.punto_venta_id, t.tipo, t.monto_total, t.fecha, t.categoria_id, t.concepto
		FROM transacciones t
		JOIN puntos_venta pv ON pv.id = t.punto_venta_id
		JOIN negocios n ON n.id = pv.negocio_id
		WHERE t.punto_venta_id = $1 AND n.propietario = $2
		  AND t.fecha::date BETWEEN $3 AND $4
		ORDER BY t.fecha DESC, t.id DESC`
	rows, err := r.q.Query(context.Background(), query, puntoVentaID, propietario, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("list transacciones: %w", err)
	}
	defer rows.Close()

	var transacciones []*entity.Transaccion
	for rows.Next() {
		var t entity.Transaccion
		if err := rows.Scan(
			&t.ID, &t.PuntoVentaID, &t.Tipo, &t.MontoTotal, &t.Fecha, &t.CategoriaID, &t.Concepto,
		); err != nil {
			return nil, fmt.Errorf("scan transacción: %w", err)
		}
		transacciones = append(transacciones, &t)
	}
	return transacciones, rows.Err()
}

func (r *TransaccionRepo) detallesDe(transaccionID int64) ([]entity.DetalleTransaccion, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, transaccion_id, producto_id, cantidad, subtotal
		 FROM detalle_transacciones WHERE transaccion_id = $1 ORDER BY id`,
		transaccionID)
	if err != nil {
		return nil, fmt.Errorf("list detalles: %w", err)
	}
	defer rows.Close()

	var detalles []entity.DetalleTransaccion
	for rows.Next() {
		var d entity.DetalleTransaccion
		if err := rows.Scan(&d.ID, &d.TransaccionID, &d.ProductoID, &d.Cantidad, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan detalle: %w", err)
		}
		detalles = append(detalles, d)
	}
	return detalles, rows.Err()
}
