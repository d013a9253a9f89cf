package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/elb0ni/mis-finanzas-server/internal/domain/entity"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/repository"
)

var _ repository.CategoriaEgresoRepository = (*CategoriaEgresoRepo)(nil)

// CategoriaEgresoRepo implementación del puerto CategoriaEgresoRepository sobre PostgreSQL.
type CategoriaEgresoRepo struct {
	q Querier
}

// NewCategoriaEgresoRepository construye el adaptador de categorías de egreso. Pasar pool o tx (Querier).
func NewCategoriaEgresoRepository(q Querier) *CategoriaEgresoRepo {
	return &CategoriaEgresoRepo{q: q}
}

// Crear persiste una categoría de egreso y asigna el ID generado.
func (r *CategoriaEgresoRepo) Crear(categoria *entity.CategoriaEgreso) error {
	query := `
		INSERT INTO categorias_egresos (negocio_id, nombre, descripcion, tipo_costo, activo)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, fecha_creacion`
	err := r.q.QueryRow(context.Background(), query,
		categoria.NegocioID, categoria.Nombre, categoria.Descripcion,
		categoria.TipoCosto, categoria.Activo,
	).Scan(&categoria.ID, &categoria.FechaCreacion)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert categoría: nombre duplicado: %w", err)
		}
		return fmt.Errorf("insert categoría: %w", err)
	}
	return nil
}

// BuscarPorID obtiene una categoría del negocio, o nil si no existe.
func (r *CategoriaEgresoRepo) BuscarPorID(id, negocioID int64) (*entity.CategoriaEgreso, error) {
	query := `
		SELECT id, negocio_id, nombre, descripcion, tipo_costo, activo, fecha_creacion
		FROM categorias_egresos WHERE id = $1 AND negocio_id = $2`
	var c entity.CategoriaEgreso
	err := r.q.QueryRow(context.Background(), query, id, negocioID).Scan(
		&c.ID, &c.NegocioID, &c.Nombre, &c.Descripcion, &c.TipoCosto, &c.Activo, &c.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoría: %w", err)
	}
	return &c, nil
}

// ListarPorNegocio devuelve las categorías del negocio; tipoCosto vacío devuelve todas.
func (r *CategoriaEgresoRepo) ListarPorNegocio(negocioID int64, tipoCosto string) ([]*entity.CategoriaEgreso, error) {
	query := `
		SELECT id, negocio_id, nombre, descripcion, tipo_costo, activo, fecha_creacion
		FROM categorias_egresos
		WHERE negocio_id = $1 AND ($2 = '' OR tipo_costo = $2)
		ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query, negocioID, tipoCosto)
	if err != nil {
		return nil, fmt.Errorf("list categorías: %w", err)
	}
	defer rows.Close()

	var categorias []*entity.CategoriaEgreso
	for rows.Next() {
		var c entity.CategoriaEgreso
		if err := rows.Scan(
			&c.ID, &c.NegocioID, &c.Nombre, &c.Descripcion, &c.TipoCosto, &c.Activo, &c.FechaCreacion,
		); err != nil {
			return nil, fmt.Errorf("scan categoría: %w", err)
		}
		categorias = append(categorias, &c)
	}
	return categorias, rows.Err()
}

// Actualizar modifica los campos editables de la categoría.
func (r *CategoriaEgresoRepo) Actualizar(categoria *entity.CategoriaEgreso) error {
	query := `
		UPDATE categorias_egresos
		SET nombre = $1, descripcion = $2, tipo_costo = $3, activo = $4
		WHERE id = $5 AND negocio_id = $6`
	_, err := r.q.Exec(context.Background(), query,
		categoria.Nombre, categoria.Descripcion, categoria.TipoCosto,
		categoria.Activo, categoria.ID, categoria.NegocioID,
	)
	if err != nil {
		return fmt.Errorf("update categoría: %w", err)
	}
	return nil
}

// Eliminar borra la categoría. Si hay configuraciones de costo fijo o egresos
// que la referencian, la FK lo impide y el error se propaga.
func (r *CategoriaEgresoRepo) Eliminar(id, negocioID int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM categorias_egresos WHERE id = $1 AND negocio_id = $2`, id, negocioID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("delete categoría: está referenciada por costos fijos o egresos: %w", err)
		}
		return fmt.Errorf("delete categoría: %w", err)
	}
	return nil
}
