package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

var cien = decimal.NewFromInt(100)

// pctChange variación porcentual de prev a cur, redondeada a 1 decimal.
// Con base cero no hay porcentaje real: se reporta 100 si hubo crecimiento
// y 0 si ambos son cero.
func pctChange(prev, cur decimal.Decimal) float64 {
	if prev.IsZero() {
		if cur.GreaterThan(decimal.Zero) {
			return 100
		}
		return 0
	}
	f, _ := cur.Sub(prev).Div(prev).Mul(cien).Round(1).Float64()
	return f
}

// mesesHasta enumera las claves YYYY-MM de los últimos n meses terminando en
// la fecha dada, en orden ascendente.
func mesesHasta(hasta time.Time, n int) []string {
	meses := make([]string, 0, n)
	año, mes, _ := hasta.Date()
	primero := time.Date(año, mes, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(n - 1), 0)
	for i := 0; i < n; i++ {
		meses = append(meses, primero.AddDate(0, i, 0).Format("2006-01"))
	}
	return meses
}

// mesesEntre enumera las claves YYYY-MM desde el mes de la primera fecha
// hasta el mes de la segunda, en orden ascendente.
func mesesEntre(desde, hasta time.Time) []string {
	meses := []string{}
	for m := inicioDeMes(desde); !m.After(hasta); m = m.AddDate(0, 1, 0) {
		meses = append(meses, m.Format("2006-01"))
	}
	return meses
}

// inicioDeMes primer día del mes de la fecha dada.
func inicioDeMes(t time.Time) time.Time {
	año, mes, _ := t.Date()
	return time.Date(año, mes, 1, 0, 0, 0, 0, time.UTC)
}

// inicioDeSemana lunes de la semana de la fecha dada.
func inicioDeSemana(t time.Time) time.Time {
	dia := t.Truncate(24 * time.Hour)
	offset := (int(dia.Weekday()) + 6) % 7 // lunes=0 ... domingo=6
	return dia.AddDate(0, 0, -offset)
}

// diasParaDomingo días que faltan para el cierre de la semana; domingo es 0.
func diasParaDomingo(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 0
	}
	return 7 - int(t.Weekday())
}

// nombresDia etiquetas en el orden de EXTRACT(DOW): 0=domingo.
var nombresDia = [7]string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}
