package http

import (
	"regexp"
	"time"

	"github.com/elb0ni/mis-finanzas-server/internal/domain"
)

// formatoFecha acepta solo YYYY-MM-DD estricto: nada de timestamps ni
// separadores alternos, para que "2025-3-1" y "2025-03-01T00:00" fallen igual.
var formatoFecha = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// parseFecha valida y parsea una fecha de query/ruta. Cadena vacía usa hoy.
func parseFecha(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	if !formatoFecha.MatchString(s) {
		return time.Time{}, domain.ErrInvalidInput
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}

// parseFechaOpcional igual que parseFecha pero cadena vacía devuelve nil.
func parseFechaOpcional(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseFecha(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
