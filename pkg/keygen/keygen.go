// Package keygen genera claves de negocio opacas del tipo PREFIJO-<uuid v7>.
// El UUID v7 lleva el timestamp en milisegundos seguido de bits aleatorios,
// por lo que las claves se ordenan por fecha de creación.
package keygen

import (
	"strings"

	"github.com/google/uuid"
)

// Prefijos de las entidades con clave generada por el servidor.
const (
	PrefixCustomerService = "CS"
	PrefixPart            = "PRT"
	PrefixPartsOrder      = "PO"
)

// New devuelve una clave nueva con el prefijo indicado.
func New(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return prefix + "-" + strings.ToUpper(id.String())
}
