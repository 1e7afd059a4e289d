package repository

import (
	"context"
	"time"

	"github.com/jhoicas/dealership-api/internal/domain/entity"
)

// PartRepository puerto de persistencia del inventario de repuestos.
// Usado dentro de transacciones para acreditar stock al entregar un pedido.
type PartRepository interface {
	Records[entity.Part, entity.PartPatch]
	// AddStock suma qty a quantity_available y fija last_restocked_date.
	// Devuelve false si el repuesto no existe.
	AddStock(ctx context.Context, partID string, qty int, restockedAt time.Time) (bool, error)
}

// PartsOrderRepository puerto de persistencia de los pedidos de repuestos.
type PartsOrderRepository interface {
	Records[entity.PartsOrder, entity.PartsOrderPatch]
	// GetForUpdate bloquea la fila del pedido (SELECT FOR UPDATE). Nil si no existe.
	GetForUpdate(ctx context.Context, partsOrderID string) (*entity.PartsOrder, error)
	// CountByPart cuenta los pedidos que referencian el repuesto.
	CountByPart(ctx context.Context, partID string) (int, error)
}
