package dto

// SetPreciosRequest configuración masiva de precios de una papelería.
// Los valores llegan como texto crudo del formulario: los vacíos se omiten y
// los inválidos se reportan todos juntos.
type SetPreciosRequest struct {
	Precios map[string]string `json:"precios"` // trámite -> precio crudo
}

// SetPreciosResponse resultado del guardado masivo. Con Errores no vacío no
// se guardó nada: trae un mensaje por cada trámite con valor inválido.
// TotalConfigurados es el acumulado de precios definidos para la papelería
// tras el guardado.
type SetPreciosResponse struct {
	Guardados         int      `json:"guardados"`
	TotalConfigurados int      `json:"total_configurados"`
	Errores           []string `json:"errores,omitempty"`
}

// SetCostoRequest costo por defecto de un tipo de trámite.
type SetCostoRequest struct {
	Tramite string `json:"tramite"`
	Costo   string `json:"costo"` // texto crudo, misma validación que precios
}

// PrecioConfigRow fila de la pantalla de configuración: el costo general del
// trámite y, si existe, el precio pactado con esta papelería.
type PrecioConfigRow struct {
	Tramite          string   `json:"tramite"`
	CostoGeneral     *float64 `json:"costo_general"`
	PrecioEspecifico *float64 `json:"precio_especifico"`
}

// PrecioCostoResponse respuesta del autocompletado al capturar un cobro.
type PrecioCostoResponse struct {
	Precio *float64 `json:"precio"`
	Costo  *float64 `json:"costo"`
}

// BackfillResponse filas retrocargadas con el costo por defecto.
type BackfillResponse struct {
	Actualizados int64 `json:"actualizados"`
}
