package dto

import "github.com/docuexpress/docuexpress-api/internal/domain/entity"

// CreateProveedorRequest alta o renombrado de proveedor.
type CreateProveedorRequest struct {
	Nombre string `json:"nombre"`
}

// ProveedorResponse vista de un proveedor.
type ProveedorResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

func ToProveedorResponse(p *entity.Proveedor) ProveedorResponse {
	return ProveedorResponse{ID: p.ID, Nombre: p.Nombre}
}
