// Package reporting contiene la aritmética de calendario y el formato numérico
// de los reportes. Son funciones puras: resuelven ventanas de fecha y
// porcentajes sin tocar la base de datos, para que las consultas de agregación
// solo consuman rangos ya calculados.
package reporting

import "time"

// Ventana rango de días inclusivo [Inicio, Fin], ambos a medianoche.
type Ventana struct {
	Inicio time.Time
	Fin    time.Time
}

// Contiene indica si el día de t cae dentro de la ventana.
func (v Ventana) Contiene(t time.Time) bool {
	d := Dia(t)
	return !d.Before(v.Inicio) && !d.After(v.Fin)
}

// Dia trunca un instante a su día calendario (medianoche, misma zona).
func Dia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// VentanaDia devuelve la ventana del día consultado y la del día
// inmediatamente anterior (ventana de comparación).
func VentanaDia(fecha time.Time) (dia, anterior Ventana) {
	d := Dia(fecha)
	ayer := d.AddDate(0, 0, -1)
	return Ventana{Inicio: d, Fin: d}, Ventana{Inicio: ayer, Fin: ayer}
}

// VentanaSemana devuelve lunes–domingo de la semana que contiene la fecha.
// La semana siempre inicia en lunes: para un domingo, el lunes queda 6 días
// atrás, nunca en la semana siguiente.
func VentanaSemana(fecha time.Time) Ventana {
	lunes := LunesDe(fecha)
	return Ventana{Inicio: lunes, Fin: lunes.AddDate(0, 0, 6)}
}

// LunesDe devuelve el lunes de la semana que contiene la fecha.
func LunesDe(fecha time.Time) time.Time {
	d := Dia(fecha)
	// time.Weekday: domingo=0 … sábado=6; desplazar para que lunes sea 0.
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// VentanaMes devuelve del primer al último día calendario del mes de la fecha.
func VentanaMes(fecha time.Time) Ventana {
	d := Dia(fecha)
	inicio := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
	fin := inicio.AddDate(0, 1, -1)
	return Ventana{Inicio: inicio, Fin: fin}
}

// SemanaMes un bucket semanal dentro de la vista mensual.
type SemanaMes struct {
	Numero  int
	Ventana Ventana
}

// SemanasDelMes subdivide el mes de la fecha en buckets de 7 días. La semana 1
// comienza en el primer lunes igual o posterior al día 1: los días previos a
// ese lunes no pertenecen a ningún bucket, y el último bucket puede extenderse
// más allá del fin de mes. Comportamiento deliberado del reporte mensual.
func SemanasDelMes(fecha time.Time) []SemanaMes {
	mes := VentanaMes(fecha)

	primerLunes := mes.Inicio
	if primerLunes.Weekday() != time.Monday {
		offset := (8 - int(primerLunes.Weekday())) % 7
		primerLunes = primerLunes.AddDate(0, 0, offset)
	}

	var semanas []SemanaMes
	for inicio, n := primerLunes, 1; !inicio.After(mes.Fin); inicio, n = inicio.AddDate(0, 0, 7), n+1 {
		semanas = append(semanas, SemanaMes{
			Numero:  n,
			Ventana: Ventana{Inicio: inicio, Fin: inicio.AddDate(0, 0, 6)},
		})
	}
	return semanas
}
