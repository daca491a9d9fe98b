package validation

import (
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"

	"ti-management/pkg/apperrors"
)

// CustomValidator adapta go-playground/validator a echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

func New() (*CustomValidator, error) {
	v := validator.New()
	if err := RegisterCustomValidations(v); err != nil {
		return nil, err
	}
	return &CustomValidator{validator: v}, nil
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return apperrors.NewHttpError(http.StatusBadRequest, "Datos de entrada inválidos", err, nil)
	}
	return nil
}

// RegisterCustomValidations registra las reglas propias del dominio.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("estado_operativo", isEstadoOperativo); err != nil {
		return err
	}
	if err := v.RegisterValidation("estado_fisico", isEstadoFisico); err != nil {
		return err
	}
	if err := v.RegisterValidation("tipo_mantenimiento", isTipoMantenimiento); err != nil {
		return err
	}
	if err := v.RegisterValidation("estado_mantenimiento", isEstadoMantenimiento); err != nil {
		return err
	}
	if err := v.RegisterValidation("prioridad", isPrioridad); err != nil {
		return err
	}
	if err := v.RegisterValidation("ruc", isRUC); err != nil {
		return err
	}
	return nil
}

var estadosOperativos = map[string]bool{
	"operativo": true, "en_reparacion": true, "obsoleto": true,
	"dado_baja": true, "en_almacen": true,
}

var estadosFisicos = map[string]bool{
	"excelente": true, "bueno": true, "regular": true, "malo": true,
}

// Cualquier estado es asignable desde cualquier estado: el servidor no
// valida la legalidad de la transición, sólo el vocabulario.
var estadosMantenimiento = map[string]bool{
	"programado": true, "en_proceso": true, "completado": true, "cancelado": true,
}

var prioridades = map[string]bool{
	"urgente": true, "alta": true, "media": true, "baja": true,
}

var rucRegex = regexp.MustCompile(`^\d{11}$`)

func isEstadoOperativo(fl validator.FieldLevel) bool {
	return estadosOperativos[fl.Field().String()]
}

func isEstadoFisico(fl validator.FieldLevel) bool {
	return estadosFisicos[fl.Field().String()]
}

func isTipoMantenimiento(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "preventivo" || s == "correctivo"
}

func isEstadoMantenimiento(fl validator.FieldLevel) bool {
	return estadosMantenimiento[fl.Field().String()]
}

func isPrioridad(fl validator.FieldLevel) bool {
	return prioridades[fl.Field().String()]
}

func isRUC(fl validator.FieldLevel) bool {
	return rucRegex.MatchString(fl.Field().String())
}
