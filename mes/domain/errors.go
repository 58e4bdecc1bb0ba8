package mes

import "errors"

var (
	ErrLineNotFound  = errors.New("Línea no encontrada")
	ErrOrderNotFound = errors.New("Orden no encontrada")
	ErrNoActiveOrder = errors.New("No hay orden activa en esta línea")
)
