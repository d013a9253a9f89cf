package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/elb0ni/mis-finanzas-server/internal/domain/entity"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/repository"
)

var _ repository.NegocioRepository = (*NegocioRepo)(nil)

// NegocioRepo implementación del puerto NegocioRepository sobre PostgreSQL (usable con pool o tx).
type NegocioRepo struct {
	q Querier
}

// NewNegocioRepository construye el adaptador de persistencia para negocios. Pasar pool o tx (Querier).
func NewNegocioRepository(q Querier) *NegocioRepo {
	return &NegocioRepo{q: q}
}

// Crear persiste un nuevo negocio y asigna el ID generado.
func (r *NegocioRepo) Crear(negocio *entity.Negocio) error {
	query := `
		INSERT INTO negocios (propietario, nombre, descripcion)
		VALUES ($1, $2, $3)
		RETURNING id, fecha_creacion`
	err := r.q.QueryRow(context.Background(), query,
		negocio.Propietario, negocio.Nombre, negocio.Descripcion,
	).Scan(&negocio.ID, &negocio.FechaCreacion)
	if err != nil {
		return fmt.Errorf("insert negocio: %w", err)
	}
	return nil
}

// BuscarPropio obtiene un negocio por ID solo si pertenece al propietario.
// Devuelve nil (sin error) tanto si no existe como si es de otro usuario.
func (r *NegocioRepo) BuscarPropio(id int64, propietario string) (*entity.Negocio, error) {
	query := `
		SELECT id, propietario, nombre, descripcion, fecha_creacion
		FROM negocios WHERE id = $1 AND propietario = $2`
	var n entity.Negocio
	err := r.q.QueryRow(context.Background(), query, id, propietario).Scan(
		&n.ID, &n.Propietario, &n.Nombre, &n.Descripcion, &n.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get negocio: %w", err)
	}
	return &n, nil
}

// ListarPorPropietario devuelve los negocios del usuario.
func (r *NegocioRepo) ListarPorPropietario(propietario string) ([]*entity.Negocio, error) {
	query := `
		SELECT id, propietario, nombre, descripcion, fecha_creacion
		FROM negocios WHERE propietario = $1 ORDER BY fecha_creacion DESC`
	rows, err := r.q.Query(context.Background(), query, propietario)
	if err != nil {
		return nil, fmt.Errorf("list negocios: %w", err)
	}
	defer rows.Close()

	var negocios []*entity.Negocio
	for rows.Next() {
		var n entity.Negocio
		if err := rows.Scan(&n.ID, &n.Propietario, &n.Nombre, &n.Descripcion, &n.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan negocio: %w", err)
		}
		negocios = append(negocios, &n)
	}
	return negocios, rows.Err()
}

// Actualizar modifica nombre y descripción si el negocio es del propietario.
func (r *NegocioRepo) Actualizar(negocio *entity.Negocio, propietario string) error {
	query := `
		UPDATE negocios SET nombre = $1, descripcion = $2
		WHERE id = $3 AND propietario = $4`
	_, err := r.q.Exec(context.Background(), query,
		negocio.Nombre, negocio.Descripcion, negocio.ID, propietario,
	)
	if err != nil {
		return fmt.Errorf("update negocio: %w", err)
	}
	return nil
}

// Eliminar borra el negocio si pertenece al propietario.
func (r *NegocioRepo) Eliminar(id int64, propietario string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM negocios WHERE id = $1 AND propietario = $2`, id, propietario)
	if err != nil {
		return fmt.Errorf("delete negocio: %w", err)
	}
	return nil
}

var _ repository.PuntoVentaRepository = (*PuntoVentaRepo)(nil)

// PuntoVentaRepo implementación del puerto PuntoVentaRepository sobre PostgreSQL.
type PuntoVentaRepo struct {
	q Querier
}

// NewPuntoVentaRepository construye el adaptador de puntos de venta. Pasar pool o tx (Querier).
func NewPuntoVentaRepository(q Querier) *PuntoVentaRepo {
	return &PuntoVentaRepo{q: q}
}

// Crear persiste un punto de venta y asigna el ID generado.
func (r *PuntoVentaRepo) Crear(punto *entity.PuntoVenta) error {
	query := `
		INSERT INTO puntos_venta (negocio_id, nombre, direccion, activo)
		VALUES ($1, $2, $3, $4)
		RETURNING id, fecha_creacion`
	err := r.q.QueryRow(context.Background(), query,
		punto.NegocioID, punto.Nombre, punto.Direccion, punto.Activo,
	).Scan(&punto.ID, &punto.FechaCreacion)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert punto de venta: negocio inexistente: %w", err)
		}
		return fmt.Errorf("insert punto de venta: %w", err)
	}
	return nil
}

// BuscarPropio obtiene un punto de venta solo si su negocio es del propietario.
func (r *PuntoVentaRepo) BuscarPropio(id int64, propietario string) (*entity.PuntoVenta, error) {
	query := `
		SELECT pv.id, pv.negocio_id, pv.nombre, pv.direccion, pv.activo, pv.fecha_creacion
		FROM puntos_venta pv
		JOIN negocios n ON n.id = pv.negocio_id
		WHERE pv.id = $1 AND n.propietario = $2`
	var p entity.PuntoVenta
	err := r.q.QueryRow(context.Background(), query, id, propietario).Scan(
		&p.ID, &p.NegocioID, &p.Nombre, &p.Direccion, &p.Activo, &p.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get punto de venta: %w", err)
	}
	return &p, nil
}

// ListarPorNegocio devuelve los puntos de venta de un negocio del propietario.
func (r *PuntoVentaRepo) ListarPorNegocio(negocioID int64, propietario string) ([]*entity.PuntoVenta, error) {
	query := `
		SELECT pv.id, pv.negocio_id, pv.nombre, pv.direccion, pv.activo, pv.fecha_creacion
		FROM puntos_venta pv
		JOIN negocios n ON n.id = pv.negocio_id
		WHERE pv.negocio_id = $1 AND n.propietario = $2
		ORDER BY pv.nombre`
	rows, err := r.q.Query(context.Background(), query, negocioID, propietario)
	if err != nil {
		return nil, fmt.Errorf("list puntos de venta: %w", err)
	}
	defer rows.Close()

	var puntos []*entity.PuntoVenta
	for rows.Next() {
		var p entity.PuntoVenta
		if err := rows.Scan(&p.ID, &p.NegocioID, &p.Nombre, &p.Direccion, &p.Activo, &p.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan punto de venta: %w", err)
		}
		puntos = append(puntos, &p)
	}
	return puntos, rows.Err()
}

// Actualizar modifica el punto de venta si su negocio es del propietario.
func (r *PuntoVentaRepo) Actualizar(punto *entity.PuntoVenta, propietario string) error {
	query := `
		UPDATE puntos_venta pv SET nombre = $1, direccion = $2, activo = $3
		FROM negocios n
		WHERE pv.id = $4 AND n.id = pv.negocio_id AND n.propietario = $5`
	_, err := r.q.Exec(context.Background(), query,
		punto.Nombre, punto.Direccion, punto.Activo, punto.ID, propietario,
	)
	if err != nil {
		return fmt.Errorf("update punto de venta: %w", err)
	}
	return nil
}

// Eliminar borra el punto de venta si su negocio es del propietario.
func (r *PuntoVentaRepo) Eliminar(id int64, propietario string) error {
	query := `
		DELETE FROM puntos_venta pv
		USING negocios n
		WHERE pv.id = $1 AND n.id = pv.negocio_id AND n.propietario = $2`
	_, err := r.q.Exec(context.Background(), query, id, propietario)
	if err != nil {
		return fmt.Errorf("delete punto de venta: %w", err)
	}
	return nil
}
