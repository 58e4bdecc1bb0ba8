package mes

const (
	WorkbookOrders    = "datos_ordenes_produccion.xlsx"
	WorkbookLines     = "datos_estado_lineas.xlsx"
	WorkbookDowntime  = "datos_downtime.xlsx"
	WorkbookScrap     = "datos_scrap.xlsx"
	WorkbookMaterials = "datos_consumo_materiales.xlsx"
	WorkbookStaff     = "datos_personal.xlsx"
)

// Columns shared by the workbooks.
const (
	ColumnLine             = "Linea"
	ColumnState            = "Estado"
	ColumnOrderID          = "Orden_ID"
	ColumnProduct          = "Producto"
	ColumnTargetQty        = "Cantidad_Objetivo"
	ColumnProducedQty      = "Cantidad_Producida"
	ColumnShift            = "Turno_Actual"
	ColumnOperators        = "Operadores_Asignados"
	ColumnCycleTime        = "Tiempo_Ciclo_Actual"
	ColumnStdCycleTime     = "Tiempo_Ciclo_Estandar"
	ColumnOEE              = "OEE_Actual"
	ColumnDurationMinutes  = "Duracion_Minutos"
	ColumnCause            = "Causa"
	ColumnUnitsLost        = "Unidades_Perdidas"
	ColumnQuantity         = "Cantidad"
	ColumnMaterial         = "Material"
	ColumnBOMQty           = "Cantidad_BOM"
	ColumnInventory        = "Inventario_Disponible"
	ColumnUnit             = "Unidad"
	StateInProgress        = "En Proceso"
	StateStarted           = "Iniciada"
	ShiftMinutes           = 480
	shiftHours             = 8
	downtimeThreshold      = 30
	cycleTimeTolerance     = 1.1
	cycleTimeTraining      = 1.15
	lowOutputPercent       = -10
	cycleTimeImpactPercent = 20
	scrapImpactPercent     = 10
)

// ActiveStates are the order states listed as active.
var ActiveStates = []string{StateInProgress, StateStarted}

var Endpoints = []string{
	"/ordenes-produccion/list",
	"/ordenes-produccion/activas",
	"/produccion-actual",
	"/analisis-turno",
	"/consumo-materiales",
	"/downtime/list",
	"/scrap/list",
	"/oee/calcular",
	"/material-faltante",
}
