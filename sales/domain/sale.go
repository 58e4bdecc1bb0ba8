package sales

const (
	ColumnProductID   = "Product_ID"
	ColumnProductName = "Product_Name"
)

// Sale is a purchase request naming a catalog product by id or name.
type Sale struct {
	FullName string `json:"nombre_completo" validate:"required"`
	Phone    string `json:"telefono" validate:"required"`
	Email    string `json:"correo_electronico" validate:"required,email"`
	Address  string `json:"direccion" validate:"required"`
	Product  string `json:"producto" validate:"required"`
}

// LedgerColumns are the sales ledger columns in file order.
var LedgerColumns = []string{
	"Nombre completo",
	"Teléfono",
	"Correo electrónico",
	"Dirección",
	"Producto",
}

// LedgerRecord is the ledger row of s for the matched product name.
func (s Sale) LedgerRecord(productName string) map[string]any {
	return map[string]any{
		"Nombre completo":    s.FullName,
		"Teléfono":           s.Phone,
		"Correo electrónico": s.Email,
		"Dirección":          s.Address,
		"Producto":           productName,
	}
}
