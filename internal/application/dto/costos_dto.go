package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCostoFijoRequest entrada para configurar un costo fijo mensual esperado.
type CreateCostoFijoRequest struct {
	NegocioID         int64           `json:"negocio_id" validate:"required"`
	CategoriaEgresoID int64           `json:"categoria_egreso_id" validate:"required"`
	MontoMensual      decimal.Decimal `json:"monto_mensual" validate:"required"`
	Descripcion       string          `json:"descripcion" validate:"omitempty,max=300"`
}

// UpdateCostoFijoRequest entrada para actualizar una configuración de costo fijo.
type UpdateCostoFijoRequest struct {
	CategoriaEgresoID int64           `json:"categoria_egreso_id" validate:"required"`
	MontoMensual      decimal.Decimal `json:"monto_mensual" validate:"required"`
	Descripcion       string          `json:"descripcion" validate:"omitempty,max=300"`
	Activo            bool            `json:"activo"`
}

// CostoFijoResponse salida de una configuración de costo fijo.
type CostoFijoResponse struct {
	ID                  int64           `json:"id"`
	NegocioID           int64           `json:"negocio_id"`
	CategoriaEgresoID   int64           `json:"categoria_egreso_id"`
	MontoMensual        decimal.Decimal `json:"monto_mensual"`
	Descripcion         string          `json:"descripcion"`
	Activo              bool            `json:"activo"`
	FechaCreacion       time.Time       `json:"fecha_creacion"`
	UltimaActualizacion time.Time       `json:"ultima_actualizacion"`
}

// HistoricoCostoFijoResponse salida de un registro del histórico mensual.
type HistoricoCostoFijoResponse struct {
	ID            int64           `json:"id"`
	NegocioID     int64           `json:"negocio_id"`
	Año           int             `json:"año"`
	Mes           int             `json:"mes"`
	Monto         decimal.Decimal `json:"monto"`
	Origen        string          `json:"origen"`
	Observaciones string          `json:"observaciones"`
	FechaCreacion time.Time       `json:"fecha_creacion"`
}

// GenerarSnapshotResponse resultado de materializar el snapshot del mes.
// Insertado es false cuando el registro ya existía (no-op idempotente) o
// cuando el negocio no tiene configuraciones activas.
type GenerarSnapshotResponse struct {
	NegocioID int64 `json:"negocio_id"`
	Año       int   `json:"año"`
	Mes       int   `json:"mes"`
	Insertado bool  `json:"insertado"`
}
