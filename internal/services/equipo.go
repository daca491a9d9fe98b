package services

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"ti-management/internal/dto"
	"ti-management/internal/entities"
	"ti-management/internal/repositories"
	"ti-management/pkg/apperrors"
	"ti-management/pkg/types"
)

type EquipoService struct {
	equipoRepository     repositories.EquipoRepositoryInterface
	categoriaRepository  repositories.CategoriaRepositoryInterface
	ubicacionRepository  repositories.UbicacionRepositoryInterface
	movimientoRepository repositories.MovimientoRepositoryInterface
	proveedorRepository  repositories.ProveedorRepositoryInterface
	logger               *zap.Logger
}

func NewEquipoService(
	equipoRepository repositories.EquipoRepositoryInterface,
	categoriaRepository repositories.CategoriaRepositoryInterface,
	ubicacionRepository repositories.UbicacionRepositoryInterface,
	movimientoRepository repositories.MovimientoRepositoryInterface,
	proveedorRepository repositories.ProveedorRepositoryInterface,
	logger *zap.Logger,
) *EquipoService {
	return &EquipoService{
		equipoRepository:     equipoRepository,
		categoriaRepository:  categoriaRepository,
		ubicacionRepository:  ubicacionRepository,
		movimientoRepository: movimientoRepository,
		proveedorRepository:  proveedorRepository,
		logger:               logger,
	}
}

func (s *EquipoService) GetEquipos(ctx context.Context, params types.ListParams) ([]entities.Equipo, error) {
	return s.equipoRepository.GetEquipos(ctx, params)
}

func (s *EquipoService) FindEquipo(ctx context.Context, id int64) (*dto.EquipoDetalleDTO, error) {
	equipo, err := s.equipoRepository.FindEquipo(ctx, id)
	if err != nil {
		return nil, err
	}

	historial, err := s.movimientoRepository.GetHistorial(ctx, id)
	if err != nil {
		return nil, err
	}
	if historial == nil {
		historial = []entities.Movimiento{}
	}

	return &dto.EquipoDetalleDTO{Equipo: *equipo, HistorialMovimientos: historial}, nil
}

// CreateEquipo verifica las referencias antes de insertar para devolver un
// mensaje que nombre la referencia ofensora en lugar de un error de FK.
func (s *EquipoService) CreateEquipo(ctx context.Context, payload dto.CreateEquipoDTO) (int64, error) {
	existe, err := s.categoriaRepository.ExisteCategoria(ctx, payload.CategoriaID)
	if err != nil {
		return 0, err
	}
	if !existe {
		return 0, apperrors.NewHttpError(http.StatusBadRequest,
			fmt.Sprintf("La categoría con ID %d no existe", payload.CategoriaID), nil, nil)
	}

	if payload.ProveedorID != nil {
		existe, err := s.proveedorRepository.ExisteProveedor(ctx, *payload.ProveedorID)
		if err != nil {
			return 0, err
		}
		if !existe {
			return 0, apperrors.NewHttpError(http.StatusBadRequest,
				fmt.Sprintf("El proveedor con ID %d no existe", *payload.ProveedorID), nil, nil)
		}
	}

	if payload.UbicacionActualID != nil {
		existe, err := s.ubicacionRepository.ExisteUbicacionActiva(ctx, *payload.UbicacionActualID)
		if err != nil {
			return 0, err
		}
		if !existe {
			return 0, apperrors.NewHttpError(http.StatusBadRequest,
				fmt.Sprintf("La ubicación con ID %d no existe o está inactiva", *payload.UbicacionActualID), nil, nil)
		}
	}

	if payload.EstadoOperativo == "" {
		payload.EstadoOperativo = entities.EstadoOperativo
	}
	if payload.EstadoFisico == "" {
		payload.EstadoFisico = "bueno"
	}

	id, err := s.equipoRepository.CreateEquipo(ctx, payload)
	if err != nil {
		s.logger.Error("error al crear equipo", zap.Error(err))
		return 0, err
	}
	s.logger.Info("equipo creado", zap.Int64("id", id), zap.String("codigo", payload.CodigoInventario))
	return id, nil
}

func (s *EquipoService) UpdateEquipo(ctx context.Context, id int64, payload dto.UpdateEquipoDTO) error {
	return s.equipoRepository.UpdateEquipo(ctx, id, payload)
}

func (s *EquipoService) DeleteEquipo(ctx context.Context, id int64) error {
	return s.equipoRepository.DeleteEquipo(ctx, id)
}

// CreateMovimiento registra el traslado y después actualiza la ubicación del
// equipo. Son dos sentencias independientes, igual que el resto de escrituras
// compuestas del sistema.
func (s *EquipoService) CreateMovimiento(ctx context.Context, payload dto.CreateMovimientoDTO) error {
	origenID, err := s.equipoRepository.GetUbicacionActual(ctx, payload.EquipoID)
	if err != nil {
		return err
	}

	if err := s.movimientoRepository.CreateMovimiento(ctx, origenID, payload); err != nil {
		s.logger.Error("error al registrar movimiento", zap.Error(err))
		return err
	}

	if err := s.equipoRepository.UpdateUbicacion(ctx, payload.EquipoID, payload.UbicacionDestinoID); err != nil {
		return err
	}

	s.logger.Info("movimiento registrado",
		zap.Int64("equipo_id", payload.EquipoID),
		zap.Int64("destino", payload.UbicacionDestinoID))
	return nil
}

func (s *EquipoService) GetCategorias(ctx context.Context) ([]entities.Categoria, error) {
	return s.categoriaRepository.GetCategorias(ctx)
}

func (s *EquipoService) GetUbicaciones(ctx context.Context) ([]entities.Ubicacion, error) {
	return s.ubicacionRepository.GetUbicaciones(ctx)
}
