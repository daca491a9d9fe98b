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

type MantenimientoService struct {
	mantenimientoRepository repositories.MantenimientoRepositoryInterface
	equipoRepository        repositories.EquipoRepositoryInterface
	usuarioRepository       repositories.UsuarioRepositoryInterface
	proveedorRepository     repositories.ProveedorRepositoryInterface
	logger                  *zap.Logger
}

func NewMantenimientoService(
	mantenimientoRepository repositories.MantenimientoRepositoryInterface,
	equipoRepository repositories.EquipoRepositoryInterface,
	usuarioRepository repositories.UsuarioRepositoryInterface,
	proveedorRepository repositories.ProveedorRepositoryInterface,
	logger *zap.Logger,
) *MantenimientoService {
	return &MantenimientoService{
		mantenimientoRepository: mantenimientoRepository,
		equipoRepository:        equipoRepository,
		usuarioRepository:       usuarioRepository,
		proveedorRepository:     proveedorRepository,
		logger:                  logger,
	}
}

func (s *MantenimientoService) GetMantenimientos(ctx context.Context, params types.ListParams) ([]entities.Mantenimiento, error) {
	return s.mantenimientoRepository.GetMantenimientos(ctx, params)
}

func (s *MantenimientoService) FindMantenimiento(ctx context.Context, id int64) (*entities.Mantenimiento, error) {
	return s.mantenimientoRepository.FindMantenimiento(ctx, id)
}

// CreateMantenimiento inserta el registro siempre en estado programado. Si el
// mantenimiento es correctivo, el equipo pasa a en_reparacion con una
// sentencia aparte: si esa segunda escritura falla, el mantenimiento ya quedó
// creado.
func (s *MantenimientoService) CreateMantenimiento(ctx context.Context, payload dto.CreateMantenimientoDTO) (int64, error) {
	existe, err := s.equipoRepository.ExisteEquipo(ctx, payload.EquipoID)
	if err != nil {
		return 0, err
	}
	if !existe {
		return 0, apperrors.NewHttpError(http.StatusBadRequest,
			fmt.Sprintf("El equipo con ID %d no existe", payload.EquipoID), nil, nil)
	}

	if payload.TecnicoID != nil {
		esTecnico, err := s.usuarioRepository.ExisteTecnico(ctx, *payload.TecnicoID)
		if err != nil {
			return 0, err
		}
		if !esTecnico {
			return 0, apperrors.NewHttpError(http.StatusBadRequest,
				fmt.Sprintf("El técnico con ID %d no existe", *payload.TecnicoID), nil, nil)
		}
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

	if payload.Prioridad == "" {
		payload.Prioridad = "media"
	}

	id, err := s.mantenimientoRepository.CreateMantenimiento(ctx, payload, entities.MantenimientoProgramado)
	if err != nil {
		s.logger.Error("error al crear mantenimiento", zap.Error(err))
		return 0, err
	}

	if payload.Tipo == entities.MantenimientoCorrectivo {
		if err := s.equipoRepository.UpdateEstadoOperativo(ctx, payload.EquipoID, entities.EstadoEnReparacion); err != nil {
			s.logger.Error("error al marcar equipo en reparación",
				zap.Int64("equipo_id", payload.EquipoID), zap.Error(err))
			return 0, err
		}
	}

	s.logger.Info("mantenimiento creado",
		zap.Int64("id", id),
		zap.String("tipo", payload.Tipo),
		zap.Int64("equipo_id", payload.EquipoID))
	return id, nil
}

// UpdateMantenimiento aplica el subconjunto de campos enviado tal cual, sin
// validar la transición de estado. Completar un correctivo devuelve el equipo
// a operativo sin importar su estado actual.
func (s *MantenimientoService) UpdateMantenimiento(ctx context.Context, id int64, payload dto.UpdateMantenimientoDTO) error {
	equipoID, _, tipo, err := s.mantenimientoRepository.FindResumen(ctx, id)
	if err != nil {
		return err
	}

	if err := s.mantenimientoRepository.UpdateMantenimiento(ctx, id, payload); err != nil {
		return err
	}

	if payload.Estado != nil && *payload.Estado == entities.MantenimientoCompletado &&
		tipo == entities.MantenimientoCorrectivo {
		if err := s.equipoRepository.UpdateEstadoOperativo(ctx, equipoID, entities.EstadoOperativo); err != nil {
			s.logger.Error("error al restaurar estado del equipo",
				zap.Int64("equipo_id", equipoID), zap.Error(err))
			return err
		}
	}
	return nil
}

func (s *MantenimientoService) DeleteMantenimiento(ctx context.Context, id int64) error {
	return s.mantenimientoRepository.DeleteMantenimiento(ctx, id)
}

func (s *MantenimientoService) GetCalendario(ctx context.Context, mes, anio int) ([]entities.CalendarioItem, error) {
	return s.mantenimientoRepository.GetCalendario(ctx, mes, anio)
}

func (s *MantenimientoService) GetEstadisticas(ctx context.Context) (*entities.EstadisticasMantenimiento, error) {
	return s.mantenimientoRepository.GetEstadisticas(ctx)
}
