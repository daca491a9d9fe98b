package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"ti-management/internal/dto"
	"ti-management/internal/entities"
	"ti-management/internal/repositories"
	"ti-management/pkg/apperrors"
)

type ProveedorService struct {
	proveedorRepository repositories.ProveedorRepositoryInterface
	contratoRepository  repositories.ContratoRepositoryInterface
	logger              *zap.Logger
}

func NewProveedorService(
	proveedorRepository repositories.ProveedorRepositoryInterface,
	contratoRepository repositories.ContratoRepositoryInterface,
	logger *zap.Logger,
) *ProveedorService {
	return &ProveedorService{
		proveedorRepository: proveedorRepository,
		contratoRepository:  contratoRepository,
		logger:              logger,
	}
}

func (s *ProveedorService) GetProveedores(ctx context.Context, activo *bool) ([]entities.Proveedor, error) {
	return s.proveedorRepository.GetProveedores(ctx, activo)
}

func (s *ProveedorService) FindProveedor(ctx context.Context, id int64) (*dto.ProveedorDetalleDTO, error) {
	proveedor, err := s.proveedorRepository.FindProveedor(ctx, id)
	if err != nil {
		return nil, err
	}

	stats, err := s.proveedorRepository.GetEstadisticasCompras(ctx, id)
	if err != nil {
		return nil, err
	}

	contratos, err := s.contratoRepository.GetContratosPorProveedor(ctx, id)
	if err != nil {
		return nil, err
	}
	if contratos == nil {
		contratos = []entities.Contrato{}
	}

	return &dto.ProveedorDetalleDTO{
		Proveedor:           *proveedor,
		EstadisticasCompras: *stats,
		Contratos:           contratos,
	}, nil
}

func (s *ProveedorService) CreateProveedor(ctx context.Context, payload dto.CreateProveedorDTO) (int64, error) {
	id, err := s.proveedorRepository.CreateProveedor(ctx, payload)
	if err != nil {
		s.logger.Error("error al crear proveedor", zap.Error(err))
		return 0, err
	}
	s.logger.Info("proveedor creado", zap.Int64("id", id), zap.String("ruc", payload.RUC))
	return id, nil
}

func (s *ProveedorService) UpdateProveedor(ctx context.Context, id int64, payload dto.UpdateProveedorDTO) error {
	return s.proveedorRepository.UpdateProveedor(ctx, id, payload)
}

func (s *ProveedorService) GetContratos(ctx context.Context, proveedorID *int64) ([]entities.Contrato, error) {
	return s.contratoRepository.GetContratos(ctx, proveedorID)
}

// CreateContrato calcula el estado del contrato a partir de la fecha de fin:
// vigente si termina hoy o después, vencido si ya terminó. El estado no se
// recalcula en lecturas posteriores.
func (s *ProveedorService) CreateContrato(ctx context.Context, payload dto.CreateContratoDTO) (int64, error) {
	existe, err := s.proveedorRepository.ExisteProveedor(ctx, payload.ProveedorID)
	if err != nil {
		return 0, err
	}
	if !existe {
		return 0, apperrors.NewHttpError(http.StatusBadRequest,
			fmt.Sprintf("El proveedor con ID %d no existe", payload.ProveedorID), nil, nil)
	}

	fechaFin, err := time.Parse("2006-01-02", payload.FechaFin)
	if err != nil {
		return 0, apperrors.NewHttpError(http.StatusBadRequest, "Fecha de fin inválida", err, nil)
	}

	estado := EstadoContrato(fechaFin, time.Now())

	id, err := s.contratoRepository.CreateContrato(ctx, payload, estado)
	if err != nil {
		s.logger.Error("error al crear contrato", zap.Error(err))
		return 0, err
	}
	s.logger.Info("contrato creado",
		zap.Int64("id", id),
		zap.String("numero", payload.NumeroContrato),
		zap.String("estado", estado))
	return id, nil
}

// EstadoContrato compara la fecha de fin contra el día actual, ignorando la
// hora.
func EstadoContrato(fechaFin, ahora time.Time) string {
	hoy := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, ahora.Location())
	fin := time.Date(fechaFin.Year(), fechaFin.Month(), fechaFin.Day(), 0, 0, 0, 0, ahora.Location())
	if fin.Before(hoy) {
		return entities.ContratoVencido
	}
	return entities.ContratoVigente
}
