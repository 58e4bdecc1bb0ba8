package mes

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	CategoryDowntime  = "DOWNTIME"
	CategoryCycleTime = "TIEMPO_CICLO_ELEVADO"
	CategoryScrap     = "SCRAP_ELEVADO"

	CriticalityCritical = "CRÍTICO"
	CriticalityHigh     = "ALTO"
	CriticalityMedium   = "MEDIO"
)

// Round rounds x to the given decimals, halves going to the even digit.
func Round(x float64, decimals int) float64 {
	return scalar.RoundEven(x, decimals)
}

type Deviation struct {
	Actual    float64 `json:"real"`
	Target    float64 `json:"objetivo"`
	Deviation float64 `json:"desviacion"`
	Percent   float64 `json:"porcentaje"`
}

// OutputDeviation compares produced against target units.
func OutputDeviation(actual, target float64) Deviation {
	d := Deviation{
		Actual:    actual,
		Target:    target,
		Deviation: actual - target,
	}

	if target > 0 {
		d.Percent = Round(d.Deviation/target*100, 1)
	}

	return d
}

// RootCause is one contributor to a shift deviation. Only the fields of its
// category are set.
type RootCause struct {
	Category          string  `json:"categoria"`
	Description       any     `json:"descripcion"`
	DurationMinutes   any     `json:"duracion_minutos,omitempty"`
	ImpactPercent     float64 `json:"impacto_porcentaje"`
	UnitsLost         any     `json:"unidades_perdidas,omitempty"`
	ActualCycleTime   any     `json:"tiempo_real,omitempty"`
	StandardCycleTime any     `json:"tiempo_estandar,omitempty"`
	RejectedUnits     any     `json:"unidades_rechazadas,omitempty"`
}

// DowntimeEvent is one stop of a line.
type DowntimeEvent struct {
	Cause     any
	Minutes   float64
	UnitsLost any
}

// CycleTimes of a line, in the units of its workbook.
type CycleTimes struct {
	Actual   float64
	Standard float64
}

func (c CycleTimes) Exceeds(factor float64) bool {
	return c.Actual > c.Standard*factor
}

// RootCauses lists the downtime events when the line stopped for more than
// half an hour in total, a cycle time over 110% of standard and any scrap.
func RootCauses(events []DowntimeEvent, downtimeTotal float64, cycle CycleTimes, scrapTotal float64) []RootCause {
	causes := make([]RootCause, 0)

	if downtimeTotal > downtimeThreshold {
		for _, e := range events {
			causes = append(causes, RootCause{
				Category:        CategoryDowntime,
				Description:     e.Cause,
				DurationMinutes: e.Minutes,
				ImpactPercent:   Round(e.Minutes/downtimeTotal*100, 1),
				UnitsLost:       e.UnitsLost,
			})
		}
	}

	if cycle.Exceeds(cycleTimeTolerance) && cycle.Standard != 0 {
		increase := (cycle.Actual - cycle.Standard) / cycle.Standard * 100
		causes = append(causes, RootCause{
			Category:          CategoryCycleTime,
			Description:       fmt.Sprintf("Tiempo ciclo %s%% sobre estándar", formatOneDecimal(increase)),
			ActualCycleTime:   cycle.Actual,
			StandardCycleTime: cycle.Standard,
			ImpactPercent:     cycleTimeImpactPercent,
		})
	}

	if scrapTotal > 0 {
		causes = append(causes, RootCause{
			Category:      CategoryScrap,
			Description:   "Scrap por encima del estándar",
			RejectedUnits: int64(scrapTotal),
			ImpactPercent: scrapImpactPercent,
		})
	}

	return causes
}

func formatOneDecimal(x float64) string {
	return fmt.Sprintf("%.1f", Round(x, 1))
}

// Recommendations follow from the output deviation, the downtime and the cycle time.
func Recommendations(d Deviation, downtimeTotal float64, cycle CycleTimes) []string {
	recs := make([]string, 0)

	if d.Percent < lowOutputPercent {
		recs = append(recs, "URGENTE: Investigar causas de bajo rendimiento")
	}

	if downtimeTotal > downtimeThreshold {
		recs = append(recs, "Revisar disponibilidad de materiales para próximo turno")
	}

	if cycle.Exceeds(cycleTimeTraining) {
		recs = append(recs, "Considerar entrenamiento adicional para operadores")
	}

	return recs
}

// Criticality grades a material by the hours of production it still covers.
func Criticality(hours float64) string {
	switch {
	case hours < 2:
		return CriticalityCritical
	case hours < 4:
		return CriticalityHigh
	default:
		return CriticalityMedium
	}
}

type Shortage struct {
	Material       any     `json:"material"`
	Needed         float64 `json:"necesario"`
	Available      any     `json:"disponible"`
	Missing        float64 `json:"faltante"`
	Unit           any     `json:"unidad"`
	HoursAvailable float64 `json:"horas_disponibles"`
	Criticality    string  `json:"criticidad"`
}

// MaterialNeed is the BOM line of one material of an order.
type MaterialNeed struct {
	Material  any
	Unit      any
	PerUnit   float64
	Available float64
	// AvailableRaw is the inventory cell as read.
	AvailableRaw any
}

// MaterialShortage returns the shortage of m for the units still pending, or
// false when the inventory covers them. An eight hour shift produces target units.
func MaterialShortage(m MaterialNeed, pending, target float64) (Shortage, bool) {
	needed := m.PerUnit * pending
	if m.Available >= needed {
		return Shortage{}, false
	}

	var hours float64
	if m.PerUnit != 0 && target != 0 {
		hours = (m.Available / m.PerUnit) / (target / shiftHours)
	}

	hours = Round(hours, 1)

	return Shortage{
		Material:       m.Material,
		Needed:         Round(needed, 2),
		Available:      m.AvailableRaw,
		Missing:        Round(needed-m.Available, 2),
		Unit:           m.Unit,
		HoursAvailable: hours,
		Criticality:    Criticality(hours),
	}, true
}

type OEE struct {
	Line              string  `json:"linea"`
	OEE               float64 `json:"oee"`
	Availability      float64 `json:"disponibilidad"`
	Performance       float64 `json:"performance"`
	Quality           float64 `json:"calidad"`
	DowntimeMinutes   float64 `json:"downtime_minutos"`
	ActualCycleTime   any     `json:"tiempo_ciclo_real"`
	StandardCycleTime any     `json:"tiempo_ciclo_estandar"`
}

// ComputeOEE multiplies availability over one shift, performance against the
// standard cycle time and quality of the produced units. produced is nil when
// the line has no order in progress.
func ComputeOEE(downtime float64, cycle CycleTimes, produced *float64, scrap float64) (availability, performance, quality, oee float64) {
	availability = (ShiftMinutes - downtime) / ShiftMinutes

	if cycle.Actual > 0 {
		performance = cycle.Standard / cycle.Actual
	}

	quality = 1

	if produced != nil {
		total := *produced + scrap
		if total > 0 {
			quality = (total - scrap) / total
		}
	}

	oee = Round(availability*performance*quality, 2)

	return Round(availability, 3), Round(performance, 3), Round(quality, 3), oee
}
