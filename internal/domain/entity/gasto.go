package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gasto representa un gasto operativo general, no ligado a un trámite.
// ReceiptFilename referencia un comprobante guardado por un servicio externo;
// aquí solo se persiste el nombre del archivo.
type Gasto struct {
	ID              string
	UserID          string
	ProveedorID     string
	Descripcion     string
	Monto           decimal.Decimal
	Fecha           time.Time
	Categoria       string
	ReceiptFilename string
	CreatedAt       time.Time
}
