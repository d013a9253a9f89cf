package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elb0ni/mis-finanzas-server/internal/application/analisis"
	"github.com/elb0ni/mis-finanzas-server/internal/application/transacciones"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/repository"
)

// Ensure TxRunner implements transacciones.TxRunner and analisis.CostosTxRunner.
var _ transacciones.TxRunner = (*TxRunner)(nil)
var _ analisis.CostosTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Se usa para crear transacciones de venta/egreso: la
// validación de productos y el insert de cabecera + detalles son una unidad.
func (r *TxRunner) Run(ctx context.Context, fn func(
	transaccionRepo repository.TransaccionRepository,
	productoRepo repository.ProductoRepository,
	puntoVentaRepo repository.PuntoVentaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	transaccionRepo := NewTransaccionRepository(tx)
	productoRepo := NewProductoRepository(tx)
	puntoVentaRepo := NewPuntoVentaRepository(tx)

	if err := fn(transaccionRepo, productoRepo, puntoVentaRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCostos inicia una transacción con repos de costos fijos y categorías.
// Las escrituras de configuración validan la categoría dentro de la misma
// transacción que el insert: si alguien borra la categoría en medio, la FK lo
// detecta y todo se revierte.
func (r *TxRunner) RunCostos(ctx context.Context, fn func(
	costosRepo repository.CostosFijosRepository,
	categoriaRepo repository.CategoriaEgresoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	costosRepo := NewCostosFijosRepository(tx)
	categoriaRepo := NewCategoriaEgresoRepository(tx)

	if err := fn(costosRepo, categoriaRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
