package supplychain

import "errors"

var (
	ErrNotInInventory = errors.New("Número de parte no encontrado en inventario.")
	ErrNotInTransit   = errors.New("Número de parte no encontrado en tránsito.")
	ErrNotInBoth      = errors.New("El número de parte no se encontró en ambas bases.")
)
