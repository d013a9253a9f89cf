package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/elb0ni/mis-finanzas-server/internal/domain/entity"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Crear persiste un producto nuevo y asigna el ID generado.
func (r *ProductoRepo) Crear(producto *entity.Producto) error {
	query := `
		INSERT INTO productos (negocio_id, nombre, descripcion, precio_unitario, costo_unitario, activo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, fecha_creacion`
	err := r.q.QueryRow(context.Background(), query,
		producto.NegocioID, producto.Nombre, producto.Descripcion,
		producto.PrecioUnitario, producto.CostoUnitario, producto.Activo,
	).Scan(&producto.ID, &producto.FechaCreacion)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert producto: negocio inexistente: %w", err)
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// BuscarPorID obtiene un producto del negocio, o nil si no existe.
func (r *ProductoRepo) BuscarPorID(id, negocioID int64) (*entity.Producto, error) {
	query := `
		SELECT id, negocio_id, nombre, descripcion, precio_unitario, costo_unitario, activo, fecha_creacion
		FROM productos WHERE id = $1 AND negocio_id = $2`
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, id, negocioID).Scan(
		&p.ID, &p.NegocioID, &p.Nombre, &p.Descripcion,
		&p.PrecioUnitario, &p.CostoUnitario, &p.Activo, &p.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// ListarPorNegocio devuelve el catálogo del negocio, opcionalmente solo activos.
func (r *ProductoRepo) ListarPorNegocio(negocioID int64, soloActivos bool) ([]*entity.Producto, error) {
	query := `
		SELECT id, negocio_id, nombre, descripcion, precio_unitario, costo_unitario, activo, fecha_creacion
		FROM productos WHERE negocio_id = $1 AND ($2 = false OR activo)
		ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query, negocioID, soloActivos)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var productos []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(
			&p.ID, &p.NegocioID, &p.Nombre, &p.Descripcion,
			&p.PrecioUnitario, &p.CostoUnitario, &p.Activo, &p.FechaCreacion,
		); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		productos = append(productos, &p)
	}
	return productos, rows.Err()
}

// Actualizar modifica los campos editables del producto.
func (r *ProductoRepo) Actualizar(producto *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $1, descripcion = $2, precio_unitario = $3, costo_unitario = $4, activo = $5
		WHERE id = $6 AND negocio_id = $7`
	_, err := r.q.Exec(context.Background(), query,
		producto.Nombre, producto.Descripcion, producto.PrecioUnitario,
		producto.CostoUnitario, producto.Activo, producto.ID, producto.NegocioID,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// Desactivar marca el producto como inactivo (soft delete).
func (r *ProductoRepo) Desactivar(id, negocioID int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET activo = false WHERE id = $1 AND negocio_id = $2`, id, negocioID)
	if err != nil {
		return fmt.Errorf("desactivar producto: %w", err)
	}
	return nil
}
