package manufacturing

import (
	"errors"
	"fmt"
	"strings"
)

const GitHubNotConfigured = "GitHub not configured — local save only"

var (
	ErrInvalidDataset    = errors.New("Dataset inválido")
	ErrPartNumberMissing = func(part string) error { return fmt.Errorf("Número de parte %s no encontrado", part) }
	ErrNoPartColumn      = func(columns []string) error {
		return fmt.Errorf("No se encontró columna de Part Number. Columnas disponibles: [%s]", strings.Join(columns, ", "))
	}
)
