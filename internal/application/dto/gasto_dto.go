package dto

import (
	"github.com/shopspring/decimal"

	"github.com/docuexpress/docuexpress-api/internal/domain/repository"
)

// CreateGastoRequest alta o edición de un gasto operativo.
type CreateGastoRequest struct {
	ProveedorID     string          `json:"proveedor_id"`
	Descripcion     string          `json:"descripcion"`
	Monto           decimal.Decimal `json:"monto"`
	Fecha           string          `json:"fecha"` // YYYY-MM-DD; vacío = hoy
	Categoria       string          `json:"categoria"`
	ReceiptFilename string          `json:"receipt_filename"`
}

// GastoFilterRequest filtros del listado de gastos.
type GastoFilterRequest struct {
	RangoFechas
	Categoria string `query:"categoria"`
	Page      int    `query:"page"`
	PerPage   int    `query:"per_page"`
}

// GastoResponse vista de un gasto con el nombre de su proveedor.
type GastoResponse struct {
	ID              string  `json:"id"`
	ProveedorID     string  `json:"proveedor_id"`
	ProveedorNombre string  `json:"proveedor_nombre,omitempty"`
	Descripcion     string  `json:"descripcion"`
	Monto           float64 `json:"monto"`
	Fecha           string  `json:"fecha"`
	Categoria       string  `json:"categoria"`
	ReceiptFilename string  `json:"receipt_filename,omitempty"`
}

// GastoSummaryResponse total de gastos del período filtrado.
type GastoSummaryResponse struct {
	Total float64 `json:"total"`
}

func ToGastoResponse(g repository.GastoConProveedor) GastoResponse {
	return GastoResponse{
		ID:              g.ID,
		ProveedorID:     g.ProveedorID,
		ProveedorNombre: g.ProveedorNombre,
		Descripcion:     g.Descripcion,
		Monto:           Money(g.Monto),
		Fecha:           g.Fecha.Format(FechaLayout),
		Categoria:       g.Categoria,
		ReceiptFilename: g.ReceiptFilename,
	}
}
