package reporting

import "github.com/shopspring/decimal"

// Colores semánticos de las comparaciones día a día.
const (
	ColorVerde = "green"
	ColorRojo  = "red"
	ColorAzul  = "blue"
	ColorGris  = "gray"
)

var cien = decimal.NewFromInt(100)

// VariacionPorcentaje calcula ((hoy - ayer) / ayer) × 100 redondeado a 1
// decimal. Cuando ayer es cero se sustituye explícitamente: 100 si hoy tiene
// actividad, 0 si tampoco la hay. Regla de negocio heredada, no un artefacto:
// "sin actividad ayer" y "actividad cero ayer" se tratan igual a propósito.
func VariacionPorcentaje(hoy, ayer decimal.Decimal) decimal.Decimal {
	if ayer.IsZero() {
		if hoy.IsZero() {
			return decimal.Zero
		}
		return cien
	}
	return hoy.Sub(ayer).Div(ayer).Mul(cien).Round(1)
}

// Signo devuelve "+" para variaciones no negativas y cadena vacía en caso
// contrario (el signo negativo ya viene en el número).
func Signo(v decimal.Decimal) string {
	if v.Sign() >= 0 {
		return "+"
	}
	return ""
}

// ColorVentas: más ventas es favorable.
func ColorVentas(v decimal.Decimal) string {
	if v.Sign() >= 0 {
		return ColorVerde
	}
	return ColorRojo
}

// ColorGastos: el mapeo se invierte respecto a ventas, porque un aumento de
// gastos es desfavorable.
func ColorGastos(v decimal.Decimal) string {
	if v.Sign() >= 0 {
		return ColorRojo
	}
	return ColorVerde
}

// ColorUtilidad: más utilidad es favorable.
func ColorUtilidad(v decimal.Decimal) string {
	if v.Sign() >= 0 {
		return ColorAzul
	}
	return ColorRojo
}
