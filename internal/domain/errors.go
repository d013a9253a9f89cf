package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// ErrNotFound cubre tanto "no existe" como "existe pero no es tuyo": los
// reportes nunca distinguen ambos casos para no permitir enumerar negocios.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// Errores de precondición del punto de equilibrio. No son fallos genéricos:
// el cliente debe mostrar el flujo de generación de configuración, no un toast.
var (
	ErrFaltaConfiguracionCostosFijos = errors.New("MISSING_FIXED_COSTS_CONFIG")
	ErrFaltaHistoricoMensual         = errors.New("MISSING_MONTHLY_COSTS")
)

// EsPrecondicion indica si el error es una de las dos señales de precondición.
func EsPrecondicion(err error) bool {
	return errors.Is(err, ErrFaltaConfiguracionCostosFijos) || errors.Is(err, ErrFaltaHistoricoMensual)
}
