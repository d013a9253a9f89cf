// Package analisis contiene los casos de uso del análisis financiero:
// configuración de costos fijos, snapshot mensual y punto de equilibrio.
package analisis

import (
	"context"
	"time"

	"github.com/elb0ni/mis-finanzas-server/internal/application/dto"
	"github.com/elb0ni/mis-finanzas-server/internal/domain"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/entity"
	"github.com/elb0ni/mis-finanzas-server/internal/domain/repository"
)

// CostosTxRunner ejecuta escrituras de configuración dentro de una transacción
// de base de datos. Lo implementa la infraestructura (postgres.TxRunner).
type CostosTxRunner interface {
	RunCostos(ctx context.Context, fn func(
		costosRepo repository.CostosFijosRepository,
		categoriaRepo repository.CategoriaEgresoRepository,
	) error) error
}

// CostosUseCase CRUD de configuración de costos fijos y generación del
// snapshot mensual.
type CostosUseCase struct {
	negocioRepo repository.NegocioRepository
	costosRepo  repository.CostosFijosRepository
	txRunner    CostosTxRunner
}

// NewCostosUseCase construye el caso de uso de costos fijos.
func NewCostosUseCase(negocioRepo repository.NegocioRepository, costosRepo repository.CostosFijosRepository, txRunner CostosTxRunner) *CostosUseCase {
	return &CostosUseCase{negocioRepo: negocioRepo, costosRepo: costosRepo, txRunner: txRunner}
}

// verificarPropiedad confirma que el negocio existe y es del usuario.
// "No existe" y "no es tuyo" devuelven el mismo ErrNotFound a propósito.
func (uc *CostosUseCase) verificarPropiedad(negocioID int64, propietario string) error {
	negocio, err := uc.negocioRepo.BuscarPropio(negocioID, propietario)
	if err != nil {
		return err
	}
	if negocio == nil {
		return domain.ErrNotFound
	}
	return nil
}

// CrearConfiguracion registra un costo fijo mensual esperado. La validación de
// la categoría y el insert corren en la misma transacción: un borrado
// concurrente de la categoría lo detecta la FK y todo se revierte.
func (uc *CostosUseCase) CrearConfiguracion(ctx context.Context, propietario string, in dto.CreateCostoFijoRequest) (*dto.CostoFijoResponse, error) {
	if err := uc.verificarPropiedad(in.NegocioID, propietario); err != nil {
		return nil, err
	}
	if in.MontoMensual.Sign() <= 0 {
		return nil, domain.ErrInvalidInput
	}

	config := &entity.ConfiguracionCostoFijo{
		NegocioID:         in.NegocioID,
		CategoriaEgresoID: in.CategoriaEgresoID,
		MontoMensual:      in.MontoMensual,
		Descripcion:       in.Descripcion,
		Activo:            true,
	}
	err := uc.txRunner.RunCostos(ctx, func(costosRepo repository.CostosFijosRepository, categoriaRepo repository.CategoriaEgresoRepository) error {
		categoria, err := categoriaRepo.BuscarPorID(in.CategoriaEgresoID, in.NegocioID)
		if err != nil {
			return err
		}
		if categoria == nil {
			return domain.ErrNotFound
		}
		return costosRepo.CrearConfiguracion(config)
	})
	if err != nil {
		return nil, err
	}
	return configToDTO(config), nil
}

// ListarConfiguracion devuelve las configuraciones del negocio.
func (uc *CostosUseCase) ListarConfiguracion(negocioID int64, propietario string) ([]dto.CostoFijoResponse, error) {
	if err := uc.verificarPropiedad(negocioID, propietario); err != nil {
		return nil, err
	}
	configs, err := uc.costosRepo.ListarConfiguracion(negocioID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CostoFijoResponse, 0, len(configs))
	for _, c := range configs {
		out = append(out, *configToDTO(c))
	}
	return out, nil
}

// ActualizarConfiguracion edita una configuración existente. No toca el
// histórico: los puntos de equilibrio de meses pasados no se reescriben.
func (uc *CostosUseCase) ActualizarConfiguracion(ctx context.Context, propietario string, negocioID, configID int64, in dto.UpdateCostoFijoRequest) (*dto.CostoFijoResponse, error) {
	if err := uc.verificarPropiedad(negocioID, propietario); err != nil {
		return nil, err
	}
	if in.MontoMensual.Sign() <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var actualizada *entity.ConfiguracionCostoFijo
	err := uc.txRunner.RunCostos(ctx, func(costosRepo repository.CostosFijosRepository, categoriaRepo repository.CategoriaEgresoRepository) error {
		config, err := costosRepo.BuscarConfiguracion(configID, negocioID)
		if err != nil {
			return err
		}
		if config == nil {
			return domain.ErrNotFound
		}
		categoria, err := categoriaRepo.BuscarPorID(in.CategoriaEgresoID, negocioID)
		if err != nil {
			return err
		}
		if categoria == nil {
			return domain.ErrNotFound
		}
		config.CategoriaEgresoID = in.CategoriaEgresoID
		config.MontoMensual = in.MontoMensual
		config.Descripcion = in.Descripcion
		config.Activo = in.Activo
		if err := costosRepo.ActualizarConfiguracion(config); err != nil {
			return err
		}
		actualizada = config
		return nil
	})
	if err != nil {
		return nil, err
	}
	return configToDTO(actualizada), nil
}

// EliminarConfiguracion borra una configuración del negocio.
func (uc *CostosUseCase) EliminarConfiguracion(ctx context.Context, propietario string, negocioID, configID int64) error {
	if err := uc.verificarPropiedad(negocioID, propietario); err != nil {
		return err
	}
	return uc.txRunner.RunCostos(ctx, func(costosRepo repository.CostosFijosRepository, _ repository.CategoriaEgresoRepository) error {
		config, err := costosRepo.BuscarConfiguracion(configID, negocioID)
		if err != nil {
			return err
		}
		if config == nil {
			return domain.ErrNotFound
		}
		return costosRepo.EliminarConfiguracion(configID, negocioID)
	})
}

// GenerarSnapshot materializa el histórico de (negocio, año, mes). Año/mes en
// cero usan el mes calendario actual. Idempotente: reinvocar no duplica.
func (uc *CostosUseCase) GenerarSnapshot(negocioID int64, propietario string, año, mes int) (*dto.GenerarSnapshotResponse, error) {
	if err := uc.verificarPropiedad(negocioID, propietario); err != nil {
		return nil, err
	}
	if año == 0 || mes == 0 {
		ahora := time.Now()
		año = ahora.Year()
		mes = int(ahora.Month())
	}
	if mes < 1 || mes > 12 {
		return nil, domain.ErrInvalidInput
	}
	insertado, err := uc.costosRepo.GenerarSnapshot(negocioID, año, mes)
	if err != nil {
		return nil, err
	}
	return &dto.GenerarSnapshotResponse{
		NegocioID: negocioID,
		Año:       año,
		Mes:       mes,
		Insertado: insertado,
	}, nil
}

// ListarHistorico devuelve los registros mensuales del negocio.
func (uc *CostosUseCase) ListarHistorico(negocioID int64, propietario string) ([]dto.HistoricoCostoFijoResponse, error) {
	if err := uc.verificarPropiedad(negocioID, propietario); err != nil {
		return nil, err
	}
	historico, err := uc.costosRepo.ListarHistorico(negocioID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HistoricoCostoFijoResponse, 0, len(historico))
	for _, h := range historico {
		out = append(out, dto.HistoricoCostoFijoResponse{
			ID:            h.ID,
			NegocioID:     h.NegocioID,
			Año:           h.Año,
			Mes:           h.Mes,
			Monto:         h.Monto,
			Origen:        h.Origen,
			Observaciones: h.Observaciones,
			FechaCreacion: h.FechaCreacion,
		})
	}
	return out, nil
}

func configToDTO(c *entity.ConfiguracionCostoFijo) *dto.CostoFijoResponse {
	return &dto.CostoFijoResponse{
		ID:                  c.ID,
		NegocioID:           c.NegocioID,
		CategoriaEgresoID:   c.CategoriaEgresoID,
		MontoMensual:        c.MontoMensual,
		Descripcion:         c.Descripcion,
		Activo:              c.Activo,
		FechaCreacion:       c.FechaCreacion,
		UltimaActualizacion: c.UltimaActualizacion,
	}
}
