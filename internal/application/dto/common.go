package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/docuexpress/docuexpress-api/internal/domain/repository"
)

// ErrorResponse cuerpo estándar de error de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Page respuesta paginada genérica.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
}

// NewPage arma la página calculando total_pages; items nunca viaja como null.
func NewPage[T any](items []T, total, page, perPage int) Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if perPage > 0 {
		totalPages = (total + perPage - 1) / perPage
	}
	return Page[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}

// FechaLayout formato de fecha de negocio en toda la API.
const FechaLayout = "2006-01-02"

// ParseFecha interpreta una fecha YYYY-MM-DD.
func ParseFecha(s string) (time.Time, error) {
	t, err := time.Parse(FechaLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q (se espera YYYY-MM-DD)", s)
	}
	return t, nil
}

// RangoFechas filtro opcional de fechas en query string.
type RangoFechas struct {
	Desde string `query:"fecha_desde"`
	Hasta string `query:"fecha_hasta"`
}

// Bounds construye el rango solo cuando vienen las dos fechas; con una sola
// cota (o ninguna) devuelve nil, que significa "sin filtro".
func (r RangoFechas) Bounds() (*repository.Rango, error) {
	if r.Desde == "" || r.Hasta == "" {
		return nil, nil
	}
	desde, err := ParseFecha(r.Desde)
	if err != nil {
		return nil, err
	}
	hasta, err := ParseFecha(r.Hasta)
	if err != nil {
		return nil, err
	}
	if hasta.Before(desde) {
		return nil, fmt.Errorf("fecha_hasta anterior a fecha_desde")
	}
	return &repository.Rango{Desde: desde, Hasta: hasta}, nil
}

// Money redondea un monto a 2 decimales para la respuesta JSON.
func Money(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// MoneyPtr versión para montos opcionales: nil se conserva.
func MoneyPtr(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := Money(*d)
	return &f
}

// Pct redondea un porcentaje a 1 decimal.
func Pct(d decimal.Decimal) float64 {
	f, _ := d.Round(1).Float64()
	return f
}
