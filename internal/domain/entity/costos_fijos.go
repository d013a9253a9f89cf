package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConfiguracionCostoFijo es el costo recurrente *esperado* de una categoría por
// mes. Es mutable: editar una configuración hoy no reescribe cálculos pasados,
// porque el punto de equilibrio lee el histórico, no esta tabla.
type ConfiguracionCostoFijo struct {
	ID                  int64
	NegocioID           int64
	CategoriaEgresoID   int64
	MontoMensual        decimal.Decimal
	Descripcion         string
	Activo              bool
	FechaCreacion       time.Time
	UltimaActualizacion time.Time
}

// OrigenConfiguracion marca snapshots generados desde la configuración activa.
const OrigenConfiguracion = "configuracion"

// HistoricoCostoFijoMensual es el registro inmutable por (negocio, año, mes)
// de la suma de costos fijos activos al momento de la generación. Una vez
// creado, el núcleo nunca lo actualiza ni lo elimina.
type HistoricoCostoFijoMensual struct {
	ID            int64
	NegocioID     int64
	Año           int
	Mes           int
	Monto         decimal.Decimal
	Origen        string
	Observaciones string
	FechaCreacion time.Time
}
