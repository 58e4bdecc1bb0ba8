package employees

import (
	"errors"
	"fmt"
)

var (
	ErrNotConnected = errors.New("Error de conexión con Google Sheets. Revise credenciales.")
	ErrUserNotFound = func(id string) error { return fmt.Errorf("Usuario %s no encontrado", id) }
	ErrDuplicateNum = func(num string) error { return fmt.Errorf("Ya existe un registro con num=%s", num) }
	ErrUpdateFailed = func(id string) error {
		return fmt.Errorf("No se pudo actualizar el registro %s. Verifique si el ID o el nombre de la columna son correctos.", id)
	}
	ErrKeyMismatch = errors.New("num del cuerpo no coincide con el ID de la ruta")
)
