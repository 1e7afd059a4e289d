package procurement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/dealership-api/internal/application/dto"
	"github.com/jhoicas/dealership-api/internal/domain"
	"github.com/jhoicas/dealership-api/internal/domain/entity"
	"github.com/jhoicas/dealership-api/internal/domain/repository"
	"github.com/jhoicas/dealership-api/pkg/keygen"
	"github.com/jhoicas/dealership-api/pkg/logger"
)

// UseCase pedidos de repuestos con conciliación de entregas contra el inventario.
type UseCase struct {
	orders   repository.PartsOrderRepository
	parts    repository.PartRepository
	txRunner TxRunner
	log      *logger.Logger
	now      func() time.Time
}

// NewUseCase construye el caso de uso. orders y parts operan fuera de transacción (lecturas y altas).
func NewUseCase(orders repository.PartsOrderRepository, parts repository.PartRepository, txRunner TxRunner, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{orders: orders, parts: parts, txRunner: txRunner, log: log, now: time.Now}
}

// List lista pedidos con filtros y paginación.
func (uc *UseCase) List(ctx context.Context, q repository.ListQuery) ([]entity.PartsOrder, int, error) {
	return uc.orders.List(ctx, q)
}

// Get obtiene un pedido por parts_order_id. Nil si no existe.
func (uc *UseCase) Get(ctx context.Context, id string) (*entity.PartsOrder, error) {
	return uc.orders.GetByKey(ctx, id)
}

// Create registra un pedido en estado no terminal. El repuesto referenciado debe existir.
func (uc *UseCase) Create(ctx context.Context, in dto.CreatePartsOrderRequest) (*entity.PartsOrder, error) {
	order, err := in.ToEntity()
	if err != nil {
		return nil, err
	}
	if order.PartsOrderID == "" {
		order.PartsOrderID = keygen.New(keygen.PrefixPartsOrder)
	}
	now := uc.now().UTC()
	if err := order.Prepare(now); err != nil {
		return nil, err
	}
	part, err := uc.parts.GetByKey(ctx, order.PartID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownPart, order.PartID)
	}
	order.Stamp(now)
	if err := uc.orders.Create(ctx, order); err != nil {
		// El repuesto pudo borrarse entre la consulta y el INSERT.
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownPart, order.PartID)
		}
		return nil, err
	}
	return order, nil
}

// Update aplica una actualización parcial. Si el patch pasa el pedido a Delivered y no lo estaba,
// acredita quantity_ordered en el repuesto dentro de la misma transacción.
func (uc *UseCase) Update(ctx context.Context, id string, patch entity.PartsOrderPatch) (*entity.PartsOrder, error) {
	if patch.IsEmpty() {
		return nil, domain.ErrNothingToUpdate
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var out *entity.PartsOrder
	err := uc.txRunner.RunProcurement(ctx, func(orders repository.PartsOrderRepository, parts repository.PartRepository) error {
		current, err := orders.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		if current.Delivered() && patch.OrderStatus != nil && !patch.MarksDelivered() {
			return fmt.Errorf("%w: un pedido entregado no puede cambiar de estado", domain.ErrInvalidInput)
		}

		now := uc.now().UTC()
		if patch.MarksDelivered() && !current.Delivered() {
			ok, err := parts.AddStock(ctx, current.PartID, current.QuantityOrdered, now)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %s", domain.ErrUnknownPart, current.PartID)
			}
			uc.log.Info().
				Str("parts_order_id", id).
				Str("part_id", current.PartID).
				Int("quantity", current.QuantityOrdered).
				Msg("stock acreditado por entrega")
		}

		if patch.ChangesCost() {
			qty, cost := current.QuantityOrdered, current.UnitCost
			if patch.QuantityOrdered != nil {
				qty = *patch.QuantityOrdered
			}
			if patch.UnitCost != nil {
				cost = *patch.UnitCost
			}
			total := entity.OrderTotal(qty, cost)
			patch.TotalCost = &total
		}

		updated, err := orders.Update(ctx, id, patch, now)
		if err != nil {
			return err
		}
		if updated == nil {
			return domain.ErrNotFound
		}
		out = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un pedido que todavía no fue entregado.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.RunProcurement(ctx, func(orders repository.PartsOrderRepository, _ repository.PartRepository) error {
		current, err := orders.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		if current.Delivered() {
			return domain.ErrDeliveredOrder
		}
		ok, err := orders.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		return nil
	})
}
