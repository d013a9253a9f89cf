// Package transacciones contiene el caso de uso de registro y consulta de
// transacciones: ventas (ingresos con detalle por producto) y egresos
// categorizados.
package transacciones

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/elb0ni/mis-finanzas-server/internal/application/dto"
	"github.com/elb0ni/mis-finanzas-server/internal/domain"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/entity"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/repository"
)

// tolerancia de cuadre entre monto_total y la suma de subtotales. Absorbe
// diferencias de redondeo del cliente, no errores de captura.
var tolerancia = decimal.RequireFromString("0.01")

// TxRunner ejecuta la creación de una transacción dentro de una transacción de
// base de datos. Lo implementa la infraestructura (postgres.TxRunner).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		transaccionRepo repository.TransaccionRepository,
		productoRepo repository.ProductoRepository,
		puntoVentaRepo repository.PuntoVentaRepository,
	) error) error
}

// UseCase registra y consulta transacciones de los puntos de venta del usuario.
type UseCase struct {
	transaccionRepo repository.TransaccionRepository
	puntoVentaRepo  repository.PuntoVentaRepository
	categoriaRepo   repository.CategoriaEgresoRepository
	txRunner        TxRunner
}

// NewUseCase construye el caso de uso de transacciones.
func NewUseCase(transaccionRepo repository.TransaccionRepository, puntoVentaRepo repository.PuntoVentaRepository, categoriaRepo repository.CategoriaEgresoRepository, txRunner TxRunner) *UseCase {
	return &UseCase{
		transaccionRepo: transaccionRepo,
		puntoVentaRepo:  puntoVentaRepo,
		categoriaRepo:   categoriaRepo,
		txRunner:        txRunner,
	}
}

// Crear registra una transacción en un punto de venta del usuario.
//
// Un ingreso lleva detalles: cada línea con cantidad positiva y subtotal no
// negativo, y la suma de subtotales debe cuadrar con monto_total dentro de la
// tolerancia. Un egreso lleva categoría del negocio y nunca detalles.
// Cabecera y detalles se insertan como unidad atómica.
func (uc *UseCase) Crear(ctx context.Context, propietario string, in dto.CreateTransaccionRequest) (*dto.TransaccionResponse, error) {
	fecha, err := time.Parse("2006-01-02", in.Fecha)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Tipo != entity.TipoIngreso && in.Tipo != entity.TipoEgreso {
		return nil, domain.ErrInvalidInput
	}
	if in.MontoTotal.Sign() <= 0 {
		return nil, domain.ErrInvalidInput
	}

	punto, err := uc.puntoVentaRepo.BuscarPropio(in.PuntoVentaID, propietario)
	if err != nil {
		return nil, err
	}
	if punto == nil {
		return nil, domain.ErrNotFound
	}

	transaccion := &entity.Transaccion{
		PuntoVentaID: in.PuntoVentaID,
		Tipo:         in.Tipo,
		MontoTotal:   in.MontoTotal,
		Fecha:        fecha,
		Concepto:     in.Concepto,
	}

	switch in.Tipo {
	case entity.TipoIngreso:
		if len(in.Detalles) == 0 {
			return nil, domain.ErrInvalidInput
		}
		suma := decimal.Zero
		for _, d := range in.Detalles {
			if d.Cantidad < 1 || d.Subtotal.Sign() < 0 {
				return nil, domain.ErrInvalidInput
			}
			suma = suma.Add(d.Subtotal)
			transaccion.Detalles = append(transaccion.Detalles, entity.DetalleTransaccion{
				ProductoID: d.ProductoID,
				Cantidad:   d.Cantidad,
				Subtotal:   d.Subtotal,
			})
		}
		if suma.Sub(in.MontoTotal).Abs().GreaterThan(tolerancia) {
			return nil, domain.ErrInvalidInput
		}
	case entity.TipoEgreso:
		if len(in.Detalles) > 0 {
			return nil, domain.ErrInvalidInput
		}
		if in.CategoriaID == nil {
			return nil, domain.ErrInvalidInput
		}
		categoria, err := uc.categoriaRepo.BuscarPorID(*in.CategoriaID, punto.NegocioID)
		if err != nil {
			return nil, err
		}
		if categoria == nil {
			return nil, domain.ErrNotFound
		}
		transaccion.CategoriaID = in.CategoriaID
	}

	err = uc.txRunner.Run(ctx, func(transaccionRepo repository.TransaccionRepository, productoRepo repository.ProductoRepository, _ repository.PuntoVentaRepository) error {
		// Los productos vendidos deben ser del mismo negocio que el punto
		// de venta. Se verifica dentro de la tx junto con el insert.
		for _, d := range transaccion.Detalles {
			if d.ProductoID == nil {
				continue
			}
			producto, err := productoRepo.BuscarPorID(*d.ProductoID, punto.NegocioID)
			if err != nil {
				return err
			}
			if producto == nil {
				return domain.ErrNotFound
			}
		}
		return transaccionRepo.Crear(transaccion)
	})
	if err != nil {
		return nil, err
	}
	return transaccionToDTO(transaccion), nil
}

// Buscar devuelve una transacción del usuario por id.
func (uc *UseCase) Buscar(id int64, propietario string) (*dto.TransaccionResponse, error) {
	transaccion, err := uc.transaccionRepo.BuscarPropia(id, propietario)
	if err != nil {
		return nil, err
	}
	if transaccion == nil {
		return nil, domain.ErrNotFound
	}
	return transaccionToDTO(transaccion), nil
}

// Listar devuelve las transacciones del punto de venta en el rango
// [desde, hasta], más recientes primero.
func (uc *UseCase) Listar(puntoVentaID int64, propietario string, desde, hasta time.Time) ([]dto.TransaccionResponse, error) {
	punto, err := uc.puntoVentaRepo.BuscarPropio(puntoVentaID, propietario)
	if err != nil {
		return nil, err
	}
	if punto == nil {
		return nil, domain.ErrNotFound
	}
	transacciones, err := uc.transaccionRepo.ListarPorPuntoVenta(puntoVentaID, propietario, desde, hasta)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransaccionResponse, 0, len(transacciones))
	for _, t := range transacciones {
		out = append(out, *transaccionToDTO(t))
	}
	return out, nil
}

func transaccionToDTO(t *entity.Transaccion) *dto.TransaccionResponse {
	resp := &dto.TransaccionResponse{
		ID:           t.ID,
		PuntoVentaID: t.PuntoVentaID,
		Tipo:         t.Tipo,
		MontoTotal:   t.MontoTotal,
		Fecha:        t.Fecha,
		CategoriaID:  t.CategoriaID,
		Concepto:     t.Concepto,
	}
	for _, d := range t.Detalles {
		resp.Detalles = append(resp.Detalles, dto.DetalleTransaccionResponse{
			ID:         d.ID,
			ProductoID: d.ProductoID,
			Cantidad:   d.Cantidad,
			Subtotal:   d.Subtotal,
		})
	}
	return resp
}
