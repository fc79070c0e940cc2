package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPctChange(t *testing.T) {
	tests := []struct {
		name string
		prev string
		cur  string
		want float64
	}{
		{"crecimiento desde cero", "0", "50", 100},
		{"ambos cero", "0", "0", 0},
		{"crecimiento normal", "100", "150", 50},
		{"caida", "100", "80", -20},
		{"redondeo a un decimal", "300", "400", 33.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := decimal.RequireFromString(tt.prev)
			cur := decimal.RequireFromString(tt.cur)
			assert.Equal(t, tt.want, pctChange(prev, cur))
		})
	}
}

func TestMesesHasta(t *testing.T) {
	hasta := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{"2026-01", "2026-02", "2026-03"}, mesesHasta(hasta, 3))

	// cruce de año
	enero := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{"2025-11", "2025-12", "2026-01"}, mesesHasta(enero, 3))
}

func TestDiasParaDomingo(t *testing.T) {
	domingo := time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Sunday, domingo.Weekday())
	assert.Equal(t, 0, diasParaDomingo(domingo))

	lunes := domingo.AddDate(0, 0, 1)
	assert.Equal(t, 6, diasParaDomingo(lunes))

	sabado := domingo.AddDate(0, 0, 6)
	assert.Equal(t, 1, diasParaDomingo(sabado))
}

func TestInicioDeSemana(t *testing.T) {
	lunes := time.Date(2026, time.August, 17, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Monday, lunes.Weekday())

	// cualquier día de esa semana vuelve al mismo lunes
	for i := 0; i < 7; i++ {
		dia := lunes.AddDate(0, 0, i)
		assert.Equal(t, lunes, inicioDeSemana(dia), "día %s", dia.Weekday())
	}
}
