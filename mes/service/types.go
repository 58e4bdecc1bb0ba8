package service

import mes "github.com/doitintl/hello/agent-data-api/mes/domain"

type Index struct {
	Message   string   `json:"message"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

// ShiftRequest names the shift to analyze. Shift is a pointer so turno 0 is a
// shift and only an absent turno is rejected.
type ShiftRequest struct {
	Line  string  `json:"linea" validate:"required"`
	Shift *int    `json:"turno" validate:"required"`
	Date  *string `json:"fecha,omitempty"`
}

// ShiftNumber returns the requested shift, 0 when absent.
func (r ShiftRequest) ShiftNumber() int {
	if r.Shift == nil {
		return 0
	}

	return *r.Shift
}

type MaterialRequest struct {
	OrderID string `json:"orden_id" validate:"required"`
}

// LineProduction is the live state of a line. Only Line, State, OrderID and
// Message are set when no order is in progress.
type LineProduction struct {
	Line             any      `json:"linea"`
	State            any      `json:"estado"`
	OrderID          any      `json:"orden_id"`
	Product          any      `json:"producto,omitempty"`
	TargetQty        any      `json:"cantidad_objetivo,omitempty"`
	ProducedQty      any      `json:"cantidad_producida,omitempty"`
	CompletedPercent *float64 `json:"porcentaje_completado,omitempty"`
	Shift            any      `json:"turno_actual,omitempty"`
	Operators        any      `json:"operadores,omitempty"`
	CycleTime        any      `json:"tiempo_ciclo_actual,omitempty"`
	OEE              any      `json:"oee_actual,omitempty"`
	Message          string   `json:"mensaje,omitempty"`
}

type ShiftAnalysis struct {
	Line            string          `json:"linea"`
	Shift           int             `json:"turno"`
	OrderID         any             `json:"orden_id"`
	Product         any             `json:"producto"`
	OutputDeviation mes.Deviation   `json:"desviacion_output"`
	ShiftOEE        any             `json:"oee_turno"`
	RootCauses      []mes.RootCause `json:"causas_raiz"`
	Recommendations []string        `json:"recomendaciones"`
	DowntimeMinutes float64         `json:"downtime_total_minutos"`
	ScrapUnits      float64         `json:"scrap_total_unidades"`
}

type MissingMaterials struct {
	OrderID    string         `json:"orden_id"`
	Product    any            `json:"producto"`
	PendingQty float64        `json:"cantidad_pendiente"`
	Shortages  []mes.Shortage `json:"materiales_faltantes"`
	Total      int            `json:"total_faltantes"`
}
