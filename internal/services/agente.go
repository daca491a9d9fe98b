package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ti-management/internal/dto"
	"ti-management/internal/entities"
	"ti-management/internal/repositories"
)

// Límite por defecto y tope del listado de notificaciones.
const (
	notificacionesDefaultLimit = 50
	notificacionesMaxLimit     = 500
)

// AgenteService ejecuta las reglas que generan notificaciones. Cada regla
// devuelve su resultado en el cuerpo de la respuesta, incluso cuando falla:
// el llamador siempre recibe 200 y decide qué hacer con un status de error.
type AgenteService struct {
	notificacionRepository repositories.NotificacionRepositoryInterface
	logger                 *zap.Logger
}

func NewAgenteService(
	notificacionRepository repositories.NotificacionRepositoryInterface,
	logger *zap.Logger,
) *AgenteService {
	return &AgenteService{
		notificacionRepository: notificacionRepository,
		logger:                 logger,
	}
}

func fechaSolo(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func diasEntre(desde, hasta time.Time) int {
	return int(fechaSolo(hasta).Sub(fechaSolo(desde)).Hours() / 24)
}

func resultadoError(err error) dto.ResultadoAgenteDTO {
	return dto.ResultadoAgenteDTO{
		Status:         "error",
		Error:          err.Error(),
		FechaEjecucion: time.Now().Format(time.RFC3339),
	}
}

// CheckMantenimientos revisa los mantenimientos programados: próximos a 7
// días (con deduplicación diaria), urgentes a 3 días y vencidos. Las dos
// últimas ventanas no se deduplican, así que cada corrida vuelve a avisar.
func (s *AgenteService) CheckMantenimientos(ctx context.Context) dto.ResultadoAgenteDTO {
	hoy := fechaSolo(time.Now())
	limite7 := hoy.AddDate(0, 0, 7)
	limite3 := hoy.AddDate(0, 0, 3)
	generadas := 0

	proximos, err := s.notificacionRepository.MantenimientosProximos(ctx, hoy, limite7)
	if err != nil {
		return resultadoError(err)
	}
	for _, m := range proximos {
		dias := diasEntre(hoy, m.FechaProgramada)
		mensaje := fmt.Sprintf("El equipo %s (%s) tiene un mantenimiento programado en %d días.",
			m.EquipoNombre, m.CodigoInventario, dias)
		titulo := fmt.Sprintf("Mantenimiento programado en %d días", dias)
		if err := s.notificacionRepository.CreateNotificacion(ctx,
			entities.NotifMantenimientoProximo, titulo, mensaje, &m.EquipoID, &m.ID); err != nil {
			return resultadoError(err)
		}
		generadas++
	}

	urgentes, err := s.notificacionRepository.MantenimientosUrgentes(ctx, hoy, limite3)
	if err != nil {
		return resultadoError(err)
	}
	for _, m := range urgentes {
		dias := diasEntre(hoy, m.FechaProgramada)
		mensaje := fmt.Sprintf("⚠️ URGENTE: El equipo %s (%s) tiene un mantenimiento programado en %d días. Por favor, asegurar disponibilidad de técnicos y recursos.",
			m.EquipoNombre, m.CodigoInventario, dias)
		titulo := fmt.Sprintf("⚠️ Mantenimiento URGENTE en %d días", dias)
		if err := s.notificacionRepository.CreateNotificacion(ctx,
			entities.NotifMantenimientoUrgente, titulo, mensaje, &m.EquipoID, &m.ID); err != nil {
			return resultadoError(err)
		}
		generadas++
	}

	vencidos, err := s.notificacionRepository.MantenimientosVencidos(ctx, hoy)
	if err != nil {
		return resultadoError(err)
	}
	for _, m := range vencidos {
		dias := diasEntre(m.FechaProgramada, hoy)
		mensaje := fmt.Sprintf("🚨 El mantenimiento del equipo %s (%s) está vencido por %d días.",
			m.EquipoNombre, m.CodigoInventario, dias)
		if err := s.notificacionRepository.CreateNotificacion(ctx,
			entities.NotifMantenimientoVencido, "🚨 Mantenimiento VENCIDO", mensaje, &m.EquipoID, &m.ID); err != nil {
			return resultadoError(err)
		}
		generadas++
	}

	return dto.ResultadoAgenteDTO{
		Status:                  "success",
		NotificacionesGeneradas: generadas,
		FechaEjecucion:          time.Now().Format(time.RFC3339),
	}
}

// CheckObsolescencia avisa de equipos que superaron la vida útil de su
// categoría (deduplicado a 30 días) y de los que entran en su último año.
func (s *AgenteService) CheckObsolescencia(ctx context.Context) dto.ResultadoAgenteDTO {
	generadas := 0

	obsoletos, err := s.notificacionRepository.EquiposObsoletos(ctx)
	if err != nil {
		return resultadoError(err)
	}
	for _, e := range obsoletos {
		equipoID := e.ID
		mensaje := fmt.Sprintf("El equipo %s (%s) tiene %d años de uso, superando la vida útil de %d años. Se recomienda evaluar su reemplazo.",
			e.Nombre, e.CodigoInventario, e.AnosUso, e.VidaUtilAnos)
		if err := s.notificacionRepository.CreateNotificacion(ctx,
			entities.NotifEquipoObsoleto, "Equipo ha superado su vida útil", mensaje, &equipoID, nil); err != nil {
			return resultadoError(err)
		}
		generadas++
	}

	proximos, err := s.notificacionRepository.EquiposProximosObsolescencia(ctx)
	if err != nil {
		return resultadoError(err)
	}
	for _, e := range proximos {
		equipoID := e.ID
		restantes := e.VidaUtilAnos - e.AnosUso
		mensaje := fmt.Sprintf("El equipo %s (%s) se acerca al fin de su vida útil. Quedan aproximadamente %d años. Considere incluirlo en el próximo plan de renovación.",
			e.Nombre, e.CodigoInventario, restantes)
		if err := s.notificacionRepository.CreateNotificacion(ctx,
			entities.NotifEquipoProximoObsolescencia, "Equipo próximo a fin de vida útil", mensaje, &equipoID, nil); err != nil {
			return resultadoError(err)
		}
		generadas++
	}

	return dto.ResultadoAgenteDTO{
		Status:                  "success",
		NotificacionesGeneradas: generadas,
		FechaEjecucion:          time.Now().Format(time.RFC3339),
	}
}

// CheckGarantias avisa de garantías que vencen dentro de 60 días, con
// deduplicación a 30 días por equipo.
func (s *AgenteService) CheckGarantias(ctx context.Context) dto.ResultadoAgenteDTO {
	hoy := fechaSolo(time.Now())
	limite := hoy.AddDate(0, 0, 60)
	generadas := 0

	equipos, err := s.notificacionRepository.EquiposGarantiaProxima(ctx, hoy, limite)
	if err != nil {
		return resultadoError(err)
	}
	for _, e := range equipos {
		equipoID := e.ID
		dias := diasEntre(hoy, e.FechaGarantiaFin)
		proveedor := "N/A"
		if e.Proveedor.Valid {
			proveedor = e.Proveedor.String
		}
		mensaje := fmt.Sprintf("La garantía del equipo %s (%s) vence en %d días (%s). Proveedor: %s",
			e.Nombre, e.CodigoInventario, dias, e.FechaGarantiaFin.Format("02/01/2006"), proveedor)
		titulo := fmt.Sprintf("Garantía vence en %d días", dias)
		if err := s.notificacionRepository.CreateNotificacion(ctx,
			entities.NotifGarantiaProximaVencer, titulo, mensaje, &equipoID, nil); err != nil {
			return resultadoError(err)
		}
		generadas++
	}

	return dto.ResultadoAgenteDTO{
		Status:                  "success",
		NotificacionesGeneradas: generadas,
		FechaEjecucion:          time.Now().Format(time.RFC3339),
	}
}

// AnalizarCostos identifica equipos cuyos mantenimientos del último año
// superan la mitad de su costo de compra. Sin deduplicación: cada corrida
// vuelve a notificar.
func (s *AgenteService) AnalizarCostos(ctx context.Context) dto.ResultadoAgenteDTO {
	equipos, err := s.notificacionRepository.EquiposAltoCosto(ctx)
	if err != nil {
		return resultadoError(err)
	}

	detalle := []dto.AltoCostoDetail{}
	for _, e := range equipos {
		equipoID := e.ID
		porcentaje := 0
		if e.CostoCompra.Valid && e.CostoCompra.Float64 > 0 {
			porcentaje = int(e.CostoTotalMantenimiento / e.CostoCompra.Float64 * 100)
		}
		mensaje := fmt.Sprintf("El equipo %s (%s) ha generado costos de mantenimiento por $%.2f en el último año (%d%% de su valor de compra). Se recomienda evaluar su reemplazo.",
			e.Nombre, e.CodigoInventario, e.CostoTotalMantenimiento, porcentaje)
		if err := s.notificacionRepository.CreateNotificacion(ctx,
			entities.NotifAltoCostoMantenimiento, "Equipo con altos costos de mantenimiento", mensaje, &equipoID, nil); err != nil {
			return resultadoError(err)
		}

		detalle = append(detalle, dto.AltoCostoDetail{
			EquipoID:           e.ID,
			Codigo:             e.CodigoInventario,
			CostoMantenimiento: e.CostoTotalMantenimiento,
			NumMantenimientos:  e.NumMantenimientos,
		})
	}

	return dto.ResultadoAgenteDTO{
		Status:               "success",
		EquiposIdentificados: len(detalle),
		Detalle:              detalle,
		FechaEjecucion:       time.Now().Format(time.RFC3339),
	}
}

// RunAll lanza las cuatro reglas en segundo plano y responde de inmediato.
// El fallo de una regla no detiene a las demás; sólo queda en los logs.
func (s *AgenteService) RunAll() {
	go func() {
		ctx := context.Background()
		reglas := []struct {
			nombre string
			run    func(context.Context) dto.ResultadoAgenteDTO
		}{
			{"check-maintenance", s.CheckMantenimientos},
			{"check-obsolescence", s.CheckObsolescencia},
			{"check-warranties", s.CheckGarantias},
			{"analyze-maintenance-costs", s.AnalizarCostos},
		}
		for _, regla := range reglas {
			resultado := regla.run(ctx)
			if resultado.Status != "success" {
				s.logger.Error("regla del agente falló",
					zap.String("regla", regla.nombre),
					zap.String("error", resultado.Error))
				continue
			}
			s.logger.Info("regla del agente ejecutada",
				zap.String("regla", regla.nombre),
				zap.Int("notificaciones", resultado.NotificacionesGeneradas),
				zap.Int("equipos", resultado.EquiposIdentificados))
		}
	}()
}

func (s *AgenteService) GetNotificaciones(ctx context.Context, leida bool, limit uint64) ([]entities.Notificacion, error) {
	if limit == 0 {
		limit = notificacionesDefaultLimit
	}
	if limit > notificacionesMaxLimit {
		limit = notificacionesMaxLimit
	}
	return s.notificacionRepository.GetNotificaciones(ctx, leida, limit)
}

func (s *AgenteService) MarcarLeida(ctx context.Context, id int64) error {
	return s.notificacionRepository.MarcarLeida(ctx, id)
}
