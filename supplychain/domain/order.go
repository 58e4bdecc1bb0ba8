package supplychain

const (
	ColumnPartNumber   = "Número de Parte"
	ColumnDescription  = "Descripción"
	ColumnQuantitySent = "Cantidad Enviada"

	AutomaticShipping = "Automático"
)

// Order is a replenishment order line. Quantity is a pointer so a missing
// Cantidad is rejected instead of becoming a zero order.
type Order struct {
	PartNumber   string `json:"Numero_de_Parte" validate:"required"`
	Description  string `json:"Descripcion" validate:"required"`
	Quantity     *int64 `json:"Cantidad" validate:"required,gte=0"`
	ShippingType string `json:"Tipo_Envio" validate:"required"`
}

func Quantity(n int64) *int64 {
	return &n
}

var OrderColumns = []string{"Numero_de_Parte", "Descripcion", "Cantidad", "Tipo_Envio"}

func (o Order) Record() map[string]any {
	return map[string]any{
		"Numero_de_Parte": o.PartNumber,
		"Descripcion":     o.Description,
		"Cantidad":        quantity(o.Quantity),
		"Tipo_Envio":      o.ShippingType,
	}
}

func quantity(n *int64) int64 {
	if n == nil {
		return 0
	}

	return *n
}
