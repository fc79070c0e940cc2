package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tramite representa un trámite cobrado en una papelería.
// La ganancia (precio - costo) siempre se deriva, nunca se persiste.
type Tramite struct {
	ID          string
	PapeleriaID string
	UserID      string
	Tramite     string // nombre del tipo de trámite (texto libre)
	Fecha       time.Time
	Precio      decimal.Decimal
	Costo       decimal.Decimal
	CreatedAt   time.Time
}

// Ganancia devuelve precio - costo.
func (t Tramite) Ganancia() decimal.Decimal {
	return t.Precio.Sub(t.Costo)
}

// TramitesPredefinidos catálogo base de trámites que toda cuenta ve al
// configurar precios, además de los que haya registrado con otro nombre.
var TramitesPredefinidos = []string{
	"ACTA DE NACIMIENTO",
	"ACTA DE MATRIMONIO",
	"ACTA DE DEFUNCION",
	"CURP",
	"RFC",
	"CONSTANCIA DE SITUACION FISCAL",
	"CERTIFICADO DE ESTUDIOS",
	"CARTA DE NO ANTECEDENTES PENALES",
}
