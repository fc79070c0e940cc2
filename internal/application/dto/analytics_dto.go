package dto

// NombreValor par genérico de las gráficas (barras, pastel).
type NombreValor struct {
	Nombre string  `json:"nombre"`
	Valor  float64 `json:"valor"`
}

// EtiquetaConteo etiqueta con su conteo (distribuciones por tipo).
type EtiquetaConteo struct {
	Etiqueta string `json:"etiqueta"`
	Cuantos  int    `json:"cuantos"`
}

// SerieMensual series alineadas por mes para las gráficas de línea.
// Todos los slices tienen la misma longitud: meses sin actividad van en cero.
type SerieMensual struct {
	Meses     []string  `json:"meses"` // claves YYYY-MM
	Ingresos  []float64 `json:"ingresos"`
	Costos    []float64 `json:"costos"`
	Ganancias []float64 `json:"ganancias"`
}

// ComparativaMensual mes actual contra el anterior: ingresos, egresos y
// ganancia con su variación porcentual.
type ComparativaMensual struct {
	IngresosActual    float64 `json:"ingresos_actual"`
	IngresosAnterior  float64 `json:"ingresos_anterior"`
	CostosActual      float64 `json:"costos_actual"`
	CostosAnterior    float64 `json:"costos_anterior"`
	GananciaActual    float64 `json:"ganancia_actual"`
	GananciaAnterior  float64 `json:"ganancia_anterior"`
	CambioIngresosPct float64 `json:"cambio_ingresos_pct"`
	CambioCostosPct   float64 `json:"cambio_costos_pct"`
	CambioGananciaPct float64 `json:"cambio_ganancia_pct"`
}

// TotalesResumen suma simple de todas las filas del resumen.
type TotalesResumen struct {
	Ingresos float64 `json:"ingresos"`
	Costos   float64 `json:"costos"`
	Gastos   float64 `json:"gastos"`
	Ganancia float64 `json:"ganancia"`
}

// ResumenMensualResponse resumen financiero del rango pedido. En la serie,
// Costos es el egreso completo del mes (costos de trámites más gastos
// generales) y Gastos desglosa la parte de gastos generales.
type ResumenMensualResponse struct {
	Serie       SerieMensual       `json:"serie"`
	Gastos      []float64          `json:"gastos"` // alineado con Serie.Meses
	Comparativa ComparativaMensual `json:"comparativa"`
	Totales     TotalesResumen     `json:"totales"`
}

// DashboardChartsResponse datos de las gráficas de la pantalla principal.
type DashboardChartsResponse struct {
	TopPapelerias        []NombreValor                 `json:"top_papelerias"`
	DistribucionTramites []EtiquetaConteo              `json:"distribucion_tramites"`
	GastosPorCategoria   []NombreValor                 `json:"gastos_por_categoria"`
	TramitesRecientes    []TramiteConPapeleriaResponse `json:"tramites_recientes"`
	GastosRecientes      []GastoResponse               `json:"gastos_recientes"`
}

// PapeleriaChartsResponse gráficas del detalle de una papelería.
type PapeleriaChartsResponse struct {
	Serie                SerieMensual     `json:"serie"`
	DistribucionTramites []EtiquetaConteo `json:"distribucion_tramites"`
	Totales              TotalesResponse  `json:"totales"`
}

// MetaResponse progreso hacia la meta mensual de ganancia: el porcentaje y lo
// que falta se miden contra lo ganado en el mes en curso. La semana corre de
// lunes a domingo: DiasParaDomingo es 0 cuando hoy es domingo.
type MetaResponse struct {
	Objetivo        float64 `json:"objetivo"`
	GananciaMes     float64 `json:"ganancia_mes"`
	GananciaSemana  float64 `json:"ganancia_semana"`
	ProgresoPct     float64 `json:"progreso_pct"`
	Falta           float64 `json:"falta"`
	DiasParaDomingo int     `json:"dias_para_domingo"`
}

// MejorMesResponse mes histórico con más ganancia; null si no hay datos.
type MejorMesResponse struct {
	Mes      string  `json:"mes"`
	Ganancia float64 `json:"ganancia"`
}

// DiaProductivoResponse día de la semana con más ganancia acumulada.
type DiaProductivoResponse struct {
	Dia      string  `json:"dia"`
	Ganancia float64 `json:"ganancia"`
	Cuantos  int     `json:"cuantos"`
}

// MargenResponse margen global del negocio.
type MargenResponse struct {
	Ingresos      float64 `json:"ingresos"`
	Costos        float64 `json:"costos"`
	MargenPct     float64 `json:"margen_pct"`
	CostoPromedio float64 `json:"costo_promedio"`
}

// RentabilidadResponse rentabilidad de un tipo de trámite.
type RentabilidadResponse struct {
	Tramite        string  `json:"tramite"`
	Cuantos        int     `json:"cuantos"`
	MargenPromedio float64 `json:"margen_promedio"`
	GananciaTotal  float64 `json:"ganancia_total"`
}

// ProyeccionResponse estimación del cierre del mes en curso a partir del
// ritmo de los días transcurridos.
type ProyeccionResponse struct {
	GananciaMes       float64 `json:"ganancia_mes"`
	DiasTranscurridos int     `json:"dias_transcurridos"`
	DiasDelMes        int     `json:"dias_del_mes"`
	Proyeccion        float64 `json:"proyeccion"`
}

// HoyVsAyerResponse trámites registrados hoy contra ayer.
type HoyVsAyerResponse struct {
	Hoy       int     `json:"hoy"`
	Ayer      int     `json:"ayer"`
	CambioPct float64 `json:"cambio_pct"`
}

// AnalyticsAvanzadoResponse panel de indicadores avanzados.
type AnalyticsAvanzadoResponse struct {
	Meta             MetaResponse           `json:"meta"`
	MejorMes         *MejorMesResponse      `json:"mejor_mes"`
	DiaMasProductivo *DiaProductivoResponse `json:"dia_mas_productivo"`
	Margen           MargenResponse         `json:"margen"`
	ROI              []NombreValor          `json:"roi"`
	Rentabilidad     []RentabilidadResponse `json:"rentabilidad"`
	Proyeccion       ProyeccionResponse     `json:"proyeccion"`
	HoyVsAyer        HoyVsAyerResponse      `json:"hoy_vs_ayer"`
}

// BuscarResponse resultados de la búsqueda global.
type BuscarResponse struct {
	Papelerias  []PapeleriaStatsResponse      `json:"papelerias"`
	Tramites    []TramiteConPapeleriaResponse `json:"tramites"`
	Proveedores []ProveedorResponse           `json:"proveedores"`
	Gastos      []GastoResponse               `json:"gastos"`
}
