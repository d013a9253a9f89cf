package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateNegocioRequest entrada para crear un negocio.
type CreateNegocioRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion string `json:"descripcion" validate:"omitempty,max=500"`
}

// UpdateNegocioRequest entrada para actualizar un negocio.
type UpdateNegocioRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion string `json:"descripcion" validate:"omitempty,max=500"`
}

// NegocioResponse salida de un negocio.
type NegocioResponse struct {
	ID            int64     `json:"id"`
	Nombre        string    `json:"nombre"`
	Descripcion   string    `json:"descripcion"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// CreatePuntoVentaRequest entrada para crear un punto de venta.
type CreatePuntoVentaRequest struct {
	NegocioID int64  `json:"negocio_id" validate:"required"`
	Nombre    string `json:"nombre" validate:"required,min=1,max=200"`
	Direccion string `json:"direccion" validate:"omitempty,max=300"`
}

// UpdatePuntoVentaRequest entrada para actualizar un punto de venta.
type UpdatePuntoVentaRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=1,max=200"`
	Direccion string `json:"direccion" validate:"omitempty,max=300"`
	Activo    bool   `json:"activo"`
}

// PuntoVentaResponse salida de un punto de venta.
type PuntoVentaResponse struct {
	ID            int64     `json:"id"`
	NegocioID     int64     `json:"negocio_id"`
	Nombre        string    `json:"nombre"`
	Direccion     string    `json:"direccion"`
	Activo        bool      `json:"activo"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// CreateProductoRequest entrada para crear un producto. Precio y costo no
// pueden ser negativos; la ganancia unitaria se deriva, nunca se envía.
type CreateProductoRequest struct {
	NegocioID      int64           `json:"negocio_id" validate:"required"`
	Nombre         string          `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion    string          `json:"descripcion" validate:"omitempty,max=500"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required"`
	CostoUnitario  decimal.Decimal `json:"costo_unitario" validate:"required"`
}

// UpdateProductoRequest entrada para actualizar un producto.
type UpdateProductoRequest struct {
	Nombre         string          `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion    string          `json:"descripcion" validate:"omitempty,max=500"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required"`
	CostoUnitario  decimal.Decimal `json:"costo_unitario" validate:"required"`
	Activo         bool            `json:"activo"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID               int64           `json:"id"`
	NegocioID        int64           `json:"negocio_id"`
	Nombre           string          `json:"nombre"`
	Descripcion      string          `json:"descripcion"`
	PrecioUnitario   decimal.Decimal `json:"precio_unitario"`
	CostoUnitario    decimal.Decimal `json:"costo_unitario"`
	GananciaUnitaria decimal.Decimal `json:"ganancia_unitaria"`
	Activo           bool            `json:"activo"`
	FechaCreacion    time.Time       `json:"fecha_creacion"`
}

// CreateCategoriaRequest entrada para crear una categoría de egreso.
type CreateCategoriaRequest struct {
	NegocioID   int64  `json:"negocio_id" validate:"required"`
	Nombre      string `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion string `json:"descripcion" validate:"omitempty,max=500"`
	TipoCosto   string `json:"tipo_costo" validate:"required,oneof=fijo variable"`
}

// UpdateCategoriaRequest entrada para actualizar una categoría de egreso.
type UpdateCategoriaRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion string `json:"descripcion" validate:"omitempty,max=500"`
	TipoCosto   string `json:"tipo_costo" validate:"required,oneof=fijo variable"`
	Activo      bool   `json:"activo"`
}

// CategoriaResponse salida de una categoría de egreso.
type CategoriaResponse struct {
	ID            int64     `json:"id"`
	NegocioID     int64     `json:"negocio_id"`
	Nombre        string    `json:"nombre"`
	Descripcion   string    `json:"descripcion"`
	TipoCosto     string    `json:"tipo_costo"`
	Activo        bool      `json:"activo"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}
