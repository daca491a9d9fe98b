package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"ti-management/internal/entities"
	"ti-management/internal/repositories"
	"ti-management/pkg/apperrors"
)

const (
	dashboardCacheKey = "reportes:dashboard"
	dashboardCacheTTL = time.Minute
)

type ReporteService struct {
	reporteRepository repositories.ReporteRepositoryInterface
	cache             repositories.CacheRepositoryInterface
	exportDir         string
	logger            *zap.Logger
}

func NewReporteService(
	reporteRepository repositories.ReporteRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	exportDir string,
	logger *zap.Logger,
) *ReporteService {
	return &ReporteService{
		reporteRepository: reporteRepository,
		cache:             cache,
		exportDir:         exportDir,
		logger:            logger,
	}
}

// GetDashboard sirve el dashboard desde Redis cuando hay una copia fresca.
// Si el caché no responde se consulta la base igualmente.
func (s *ReporteService) GetDashboard(ctx context.Context) (*entities.Dashboard, error) {
	if cached, err := s.cache.Get(ctx, dashboardCacheKey); err == nil {
		var d entities.Dashboard
		if err := json.Unmarshal([]byte(cached), &d); err == nil {
			return &d, nil
		}
	}

	dashboard, err := s.reporteRepository.GetDashboard(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(dashboard); err == nil {
		if err := s.cache.Set(ctx, dashboardCacheKey, raw, dashboardCacheTTL); err != nil {
			s.logger.Warn("no se pudo cachear el dashboard", zap.Error(err))
		}
	}
	return dashboard, nil
}

func (s *ReporteService) EquiposPorUbicacion(ctx context.Context) ([]entities.EquiposPorUbicacion, error) {
	return s.reporteRepository.EquiposPorUbicacion(ctx)
}

func (s *ReporteService) EquiposPorEstado(ctx context.Context) ([]entities.EquiposPorEstado, error) {
	return s.reporteRepository.EquiposPorEstado(ctx)
}

func (s *ReporteService) EquiposPorCategoria(ctx context.Context) ([]entities.EquiposPorCategoria, error) {
	return s.reporteRepository.EquiposPorCategoria(ctx)
}

func (s *ReporteService) EquiposPorAntiguedad(ctx context.Context) ([]entities.EquiposPorAntiguedad, error) {
	return s.reporteRepository.EquiposPorAntiguedad(ctx)
}

func (s *ReporteService) EquiposPorGarantia(ctx context.Context) ([]entities.EquiposPorGarantia, error) {
	return s.reporteRepository.EquiposPorGarantia(ctx)
}

func (s *ReporteService) CostosMantenimiento(ctx context.Context, year int) ([]entities.CostoMantenimientoMensual, error) {
	if year == 0 {
		year = time.Now().Year()
	}
	return s.reporteRepository.CostosMantenimiento(ctx, year)
}

func (s *ReporteService) MantenimientosPorPrioridad(ctx context.Context) ([]entities.MantenimientosPorPrioridad, error) {
	return s.reporteRepository.MantenimientosPorPrioridad(ctx)
}

// ExportExcel genera el archivo en el directorio de exportación y devuelve la
// ruta. Sólo se admiten los reportes de equipos y mantenimientos.
func (s *ReporteService) ExportExcel(ctx context.Context, tipo string) (string, error) {
	file := excelize.NewFile()
	defer file.Close()
	sheet := file.GetSheetName(0)

	switch tipo {
	case "equipos":
		equipos, err := s.reporteRepository.ExportEquipos(ctx)
		if err != nil {
			return "", err
		}
		headers := []interface{}{"Código", "Nombre", "Marca", "Modelo", "Categoría", "Estado", "Ubicación", "Fecha compra", "Costo compra"}
		if err := file.SetSheetRow(sheet, "A1", &headers); err != nil {
			return "", err
		}
		for i, e := range equipos {
			row := []interface{}{
				e.CodigoInventario, e.Nombre, e.Marca.String, e.Modelo.String,
				e.Categoria.String, e.EstadoOperativo, e.Ubicacion.String,
				formatoFecha(e.FechaCompra.Time, e.FechaCompra.Valid), e.CostoCompra.Float64,
			}
			if err := file.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
				return "", err
			}
		}
	case "mantenimientos":
		mantenimientos, err := s.reporteRepository.ExportMantenimientos(ctx)
		if err != nil {
			return "", err
		}
		headers := []interface{}{"ID", "Tipo", "Fecha programada", "Fecha realizada", "Código", "Equipo", "Estado", "Costo", "Descripción"}
		if err := file.SetSheetRow(sheet, "A1", &headers); err != nil {
			return "", err
		}
		for i, m := range mantenimientos {
			row := []interface{}{
				m.ID, m.Tipo, m.FechaProgramada.Format("2006-01-02"),
				formatoFecha(m.FechaRealizada.Time, m.FechaRealizada.Valid),
				m.CodigoInventario, m.Equipo, m.Estado, m.Costo.Float64, m.Descripcion,
			}
			if err := file.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
				return "", err
			}
		}
	default:
		return "", apperrors.NewHttpError(http.StatusBadRequest, "Tipo de reporte no válido", nil, nil)
	}

	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return "", err
	}
	filename := filepath.Join(s.exportDir,
		fmt.Sprintf("%s_%s_%s.xlsx", tipo, time.Now().Format("20060102_150405"), uuid.NewString()[:8]))
	if err := file.SaveAs(filename); err != nil {
		return "", err
	}

	s.logger.Info("reporte exportado", zap.String("tipo", tipo), zap.String("archivo", filename))
	return filename, nil
}

func formatoFecha(t time.Time, valid bool) string {
	if !valid {
		return ""
	}
	return t.Format("2006-01-02")
}
