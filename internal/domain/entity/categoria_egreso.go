package entity

import "time"

// Tipos de costo de una categoría de egreso.
const (
	CostoFijo     = "fijo"
	CostoVariable = "variable"
)

// CategoriaEgreso clasifica transacciones de egreso por negocio.
// El punto de equilibrio solo considera categorías de costo fijo, y lo hace
// vía el histórico mensual, nunca agregando egresos en vivo.
type CategoriaEgreso struct {
	ID            int64
	NegocioID     int64
	Nombre        string
	Descripcion   string
	TipoCosto     string // fijo | variable
	Activo        bool
	FechaCreacion time.Time
}
