package postgres

import (
	"context"

	"github.com/jhoicas/dealership-api/internal/domain/entity"
	"github.com/jhoicas/dealership-api/internal/domain/repository"
)

var _ repository.PartsOrderRepository = (*PartsOrderRepo)(nil)

var partsOrderTable = &recordTable[entity.PartsOrder, entity.PartsOrderPatch]{
	name: "parts_orders",
	columns: []string{"parts_order_id", "part_id", "quantity_ordered", "supplier_id", "expected_delivery",
		"order_status", "unit_cost", "total_cost", "payment_status", "delivery_tracking_id"},
	fields: func(o *entity.PartsOrder) []any {
		return []any{&o.PartsOrderID, &o.PartID, &o.QuantityOrdered, &o.SupplierID, &o.ExpectedDelivery,
			&o.OrderStatus, &o.UnitCost, &o.TotalCost, &o.PaymentStatus, &o.DeliveryTrackingID}
	},
	meta: func(o *entity.PartsOrder) *entity.Meta { return &o.Meta },
	filters: map[string]string{"order_status": "order_status", "payment_status": "payment_status",
		"supplier_id": "supplier_id", "part_id": "part_id"},
	orderBy: "created_at DESC",
	assign: func(p entity.PartsOrderPatch) []assignment {
		var s []assignment
		s = setIf(s, "quantity_ordered", p.QuantityOrdered)
		s = setIf(s, "supplier_id", p.SupplierID)
		s = setIf(s, "expected_delivery", p.ExpectedDelivery)
		s = setIf(s, "order_status", p.OrderStatus)
		s = setIf(s, "unit_cost", p.UnitCost)
		s = setIf(s, "total_cost", p.TotalCost)
		s = setIf(s, "payment_status", p.PaymentStatus)
		s = setIf(s, "delivery_tracking_id", p.DeliveryTrackingID)
		return s
	},
}

// PartsOrderRepo implementación del puerto PartsOrderRepository sobre PostgreSQL (usable con pool o tx).
type PartsOrderRepo struct {
	*recordRepo[entity.PartsOrder, entity.PartsOrderPatch]
}

// NewPartsOrderRepository construye el adaptador de persistencia para pedidos de repuestos.
func NewPartsOrderRepository(q Querier) *PartsOrderRepo {
	return &PartsOrderRepo{recordRepo: newRecordRepo(q, partsOrderTable)}
}

// GetForUpdate obtiene el pedido bloqueando la fila hasta el fin de la transacción.
func (r *PartsOrderRepo) GetForUpdate(ctx context.Context, partsOrderID string) (*entity.PartsOrder, error) {
	return r.get(ctx, partsOrderID, " FOR UPDATE")
}

// CountByPart cuenta los pedidos que referencian un repuesto.
func (r *PartsOrderRepo) CountByPart(ctx context.Context, partID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM parts_orders WHERE part_id = $1`, partID).Scan(&n); err != nil {
		return 0, wrap("count parts orders", err)
	}
	return n, nil
}
