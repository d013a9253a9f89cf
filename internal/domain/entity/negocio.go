package entity

import "time"

// Negocio es la unidad de tenencia: todo reporte se consulta por negocio y se
// valida contra su propietario antes de devolver datos.
type Negocio struct {
	ID            int64
	Propietario   string // user id (sub del token)
	Nombre        string
	Descripcion   string
	FechaCreacion time.Time
}

// PuntoVenta pertenece a exactamente un negocio. Las transacciones se registran
// siempre contra un punto de venta, nunca contra el negocio directamente.
type PuntoVenta struct {
	ID            int64
	NegocioID     int64
	Nombre        string
	Direccion     string
	Activo        bool
	FechaCreacion time.Time
}
