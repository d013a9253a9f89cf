package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/elb0ni/mis-finanzas-server/internal/domain/entity"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/repository"
)

var _ repository.CostosFijosRepository = (*CostosFijosRepo)(nil)

// CostosFijosRepo implementación del puerto CostosFijosRepository sobre PostgreSQL
// (usable con pool o tx).
type CostosFijosRepo struct {
	q Querier
}

// NewCostosFijosRepository construye el adaptador de costos fijos. Pasar pool o tx (Querier).
func NewCostosFijosRepository(q Querier) *CostosFijosRepo {
	return &CostosFijosRepo{q: q}
}

// CrearConfiguracion persiste una configuración de costo fijo.
func (r *CostosFijosRepo) CrearConfiguracion(config *entity.ConfiguracionCostoFijo) error {
	query := `
		INSERT INTO configuracion_costos_fijos (negocio_id, categoria_egreso_id, monto_mensual, descripcion, activo)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, fecha_creacion, ultima_actualizacion`
	err := r.q.QueryRow(context.Background(), query,
		config.NegocioID, config.CategoriaEgresoID, config.MontoMensual,
		config.Descripcion, config.Activo,
	).Scan(&config.ID, &config.FechaCreacion, &config.UltimaActualizacion)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert configuración: categoría inexistente: %w", err)
		}
		return fmt.Errorf("insert configuración: %w", err)
	}
	return nil
}

// BuscarConfiguracion obtiene una configuración del negocio, o nil si no existe.
func (r *CostosFijosRepo) BuscarConfiguracion(id, negocioID int64) (*entity.ConfiguracionCostoFijo, error) {
	query := `
		SELECT id, negocio_id, categoria_egreso_id, monto_mensual, descripcion, activo, fecha_creacion, ultima_actualizacion
		FROM configuracion_costos_fijos WHERE id = $1 AND negocio_id = $2`
	var c entity.ConfiguracionCostoFijo
	err := r.q.QueryRow(context.Background(), query, id, negocioID).Scan(
		&c.ID, &c.NegocioID, &c.CategoriaEgresoID, &c.MontoMensual,
		&c.Descripcion, &c.Activo, &c.FechaCreacion, &c.UltimaActualizacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get configuración: %w", err)
	}
	return &c, nil
}

// ListarConfiguracion devuelve las configuraciones del negocio, activas primero.
func (r *CostosFijosRepo) ListarConfiguracion(negocioID int64) ([]*entity.ConfiguracionCostoFijo, error) {
	query := `
		SELECT id, negocio_id, categoria_egreso_id, monto_mensual, descripcion, activo, fecha_creacion, ultima_actualizacion
		FROM configuracion_costos_fijos
		WHERE negocio_id = $1
		ORDER BY activo DESC, fecha_creacion DESC`
	rows, err := r.q.Query(context.Background(), query, negocioID)
	if err != nil {
		return nil, fmt.Errorf("list configuraciones: %w", err)
	}
	defer rows.Close()

	var configs []*entity.ConfiguracionCostoFijo
	for rows.Next() {
		var c entity.ConfiguracionCostoFijo
		if err := rows.Scan(
			&c.ID, &c.NegocioID, &c.CategoriaEgresoID, &c.MontoMensual,
			&c.Descripcion, &c.Activo, &c.FechaCreacion, &c.UltimaActualizacion,
		); err != nil {
			return nil, fmt.Errorf("scan configuración: %w", err)
		}
		configs = append(configs, &c)
	}
	return configs, rows.Err()
}

// ActualizarConfiguracion modifica monto, descripción, categoría y estado.
// No toca el histórico: los snapshots pasados quedan como estaban.
func (r *CostosFijosRepo) ActualizarConfiguracion(config *entity.ConfiguracionCostoFijo) error {
	query := `
		UPDATE configuracion_costos_fijos
		SET categoria_egreso_id = $1, monto_mensual = $2, descripcion = $3, activo = $4,
		    ultima_actualizacion = now()
		WHERE id = $5 AND negocio_id = $6`
	_, err := r.q.Exec(context.Background(), query,
		config.CategoriaEgresoID, config.MontoMensual, config.Descripcion,
		config.Activo, config.ID, config.NegocioID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("update configuración: categoría inexistente: %w", err)
		}
		return fmt.Errorf("update configuración: %w", err)
	}
	return nil
}

// EliminarConfiguracion borra la configuración del negocio.
func (r *CostosFijosRepo) EliminarConfiguracion(id, negocioID int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM configuracion_costos_fijos WHERE id = $1 AND negocio_id = $2`, id, negocioID)
	if err != nil {
		return fmt.Errorf("delete configuración: %w", err)
	}
	return nil
}

// ContarConfiguracionActiva cuenta las configuraciones activas del negocio.
func (r *CostosFijosRepo) ContarConfiguracionActiva(negocioID int64) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM configuracion_costos_fijos WHERE negocio_id = $1 AND activo`,
		negocioID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("contar configuraciones activas: %w", err)
	}
	return n, nil
}

// GenerarSnapshot materializa la suma de configuraciones activas como registro
// histórico de (negocio, año, mes) en un único INSERT condicional: el NOT
// EXISTS lo hace idempotente y el HAVING evita insertar cuando no hay
// configuraciones activas (ese vacío es la señal "configuración faltante").
func (r *CostosFijosRepo) GenerarSnapshot(negocioID int64, año, mes int) (bool, error) {
	query := `
		INSERT INTO historico_costos_fijos_mensuales (negocio_id, año, mes, monto, origen, observaciones)
		SELECT
		    ccf.negocio_id,
		    $2,
		    $3,
		    SUM(ccf.monto_mensual),
		    'configuracion',
		    'Suma automática de ' || COUNT(*) || ' costos fijos configurados'
		FROM configuracion_costos_fijos ccf
		WHERE ccf.negocio_id = $1
		  AND ccf.activo
		  AND NOT EXISTS (
		      SELECT 1
		      FROM historico_costos_fijos_mensuales hcfm
		      WHERE hcfm.negocio_id = $1 AND hcfm.año = $2 AND hcfm.mes = $3
		  )
		GROUP BY ccf.negocio_id
		HAVING COUNT(*) > 0`
	tag, err := r.q.Exec(context.Background(), query, negocioID, año, mes)
	if err != nil {
		if isUniqueViolation(err) {
			// Carrera con otra generación del mismo mes: ya existe, no-op.
			return false, nil
		}
		return false, fmt.Errorf("generar snapshot de costos fijos: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ObtenerSnapshot devuelve el histórico de (negocio, año, mes), o nil si no existe.
func (r *CostosFijosRepo) ObtenerSnapshot(negocioID int64, año, mes int) (*entity.HistoricoCostoFijoMensual, error) {
	query := `
		SELECT id, negocio_id, año, mes, monto, origen, observaciones, fecha_creacion
		FROM historico_costos_fijos_mensuales
		WHERE negocio_id = $1 AND año = $2 AND mes = $3`
	var h entity.HistoricoCostoFijoMensual
	err := r.q.QueryRow(context.Background(), query, negocioID, año, mes).Scan(
		&h.ID, &h.NegocioID, &h.Año, &h.Mes, &h.Monto, &h.Origen, &h.Observaciones, &h.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return &h, nil
}

// ListarHistorico devuelve los registros mensuales del negocio, más recientes primero.
func (r *CostosFijosRepo) ListarHistorico(negocioID int64) ([]*entity.HistoricoCostoFijoMensual, error) {
	query := `
		SELECT id, negocio_id, año, mes, monto, origen, observaciones, fecha_creacion
		FROM historico_costos_fijos_mensuales
		WHERE negocio_id = $1
		ORDER BY año DESC, mes DESC`
	rows, err := r.q.Query(context.Background(), query, negocioID)
	if err != nil {
		return nil, fmt.Errorf("list histórico: %w", err)
	}
	defer rows.Close()

	var historico []*entity.HistoricoCostoFijoMensual
	for rows.Next() {
		var h entity.HistoricoCostoFijoMensual
		if err := rows.Scan(
			&h.ID, &h.NegocioID, &h.Año, &h.Mes, &h.Monto, &h.Origen, &h.Observaciones, &h.FechaCreacion,
		); err != nil {
			return nil, fmt.Errorf("scan histórico: %w", err)
		}
		historico = append(historico, &h)
	}
	return historico, rows.Err()
}
