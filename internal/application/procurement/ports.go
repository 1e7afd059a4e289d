package procurement

import (
	"context"

	"github.com/jhoicas/dealership-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que la acreditación de stock y la actualización del pedido persistan juntas o ninguna.
type TxRunner interface {
	RunProcurement(ctx context.Context, fn func(
		orders repository.PartsOrderRepository,
		parts repository.PartRepository,
	) error) error
}
