package reporting

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	mil    = decimal.NewFromInt(1_000)
	millon = decimal.NewFromInt(1_000_000)
)

// Abreviado devuelve la forma legible de una cifra monetaria: valores con
// magnitud >= 1.000.000 como "1.0M", >= 1.000 como "1.0K", el resto como el
// número plano. El umbral se evalúa sobre el valor absoluto para conservar el
// signo en utilidades negativas. Un valor bajo el millón cuya mantisa en miles
// redondea a 1000.0 se deja plano: "999999" en vez del engañoso "1000.0K".
func Abreviado(v decimal.Decimal) string {
	abs := v.Abs()
	switch {
	case abs.GreaterThanOrEqual(millon):
		return v.Div(millon).Round(1).StringFixed(1) + "M"
	case abs.GreaterThanOrEqual(mil):
		enMiles := v.Div(mil).Round(1)
		if enMiles.Abs().GreaterThanOrEqual(mil) {
			return v.String()
		}
		return enMiles.StringFixed(1) + "K"
	default:
		return v.String()
	}
}

// FormatearFecha devuelve la fecha en formato dd/mm/yyyy.
func FormatearFecha(t time.Time) string {
	return t.Format("02/01/2006")
}

var diasSemana = [...]string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

var diasSemanaCortos = [...]string{"Dom", "Lun", "Mar", "Mie", "Jue", "Vie", "Sab"}

// NombreDia nombre del día de la semana en español.
func NombreDia(t time.Time) string {
	return diasSemana[t.Weekday()]
}

// NombreDiaCorto abreviatura de tres letras del día, como la usa la vista semanal.
func NombreDiaCorto(t time.Time) string {
	return diasSemanaCortos[t.Weekday()]
}

var meses = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// NombreMes etiqueta legible del mes, ej: "Febrero 2026".
func NombreMes(t time.Time) string {
	return fmt.Sprintf("%s %d", meses[t.Month()-1], t.Year())
}
