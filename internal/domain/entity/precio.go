package entity

import "github.com/shopspring/decimal"

// TramiteCosto es el costo por defecto de un tipo de trámite para un usuario.
// Una fila por (usuario, trámite); semántica upsert.
type TramiteCosto struct {
	ID      string
	UserID  string
	Tramite string
	Costo   decimal.Decimal
}

// PapeleriaPrecio es el precio acordado de un trámite en una papelería
// concreta. Una fila por (papelería, trámite); semántica upsert.
type PapeleriaPrecio struct {
	ID          string
	PapeleriaID string
	Tramite     string
	Precio      decimal.Decimal
}
