package sales

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound     = errors.New("Producto no encontrado.")
	ErrProductNotInCatalog = errors.New("Producto no encontrado en catálogo.")
	ErrLocalFileMissing    = func(path string) error { return fmt.Errorf("Archivo local %s no encontrado.", path) }
)
