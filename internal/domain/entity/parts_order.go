package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido de repuestos.
const (
	OrderStatusPending   = "Pending"
	OrderStatusConfirmed = "Confirmed"
	OrderStatusInTransit = "In Transit"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

// Estados de pago (compartidos con order_management).
const (
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
	PaymentStatusPartial = "Partial"
	PaymentStatusOverdue = "Overdue"
)

var (
	PartsOrderStatuses   = []string{OrderStatusPending, OrderStatusConfirmed, OrderStatusInTransit, OrderStatusDelivered, OrderStatusCancelled}
	PartsPaymentStatuses = []string{PaymentStatusPending, PaymentStatusPaid, PaymentStatusPartial, PaymentStatusOverdue}
)

// PartsOrder pedido de reposición de un repuesto a un proveedor (tabla parts_orders).
// PartID es una referencia débil: se usa para consultar y para acreditar stock al entregar.
type PartsOrder struct {
	Meta
	PartsOrderID       string          `json:"parts_order_id"`
	PartID             string          `json:"part_id"`
	QuantityOrdered    int             `json:"quantity_ordered"`
	SupplierID         string          `json:"supplier_id"`
	ExpectedDelivery   *time.Time      `json:"expected_delivery"`
	OrderStatus        string          `json:"order_status"`
	UnitCost           decimal.Decimal `json:"unit_cost"`
	TotalCost          decimal.Decimal `json:"total_cost"` // quantity_ordered × unit_cost
	PaymentStatus      string          `json:"payment_status"`
	DeliveryTrackingID string          `json:"delivery_tracking_id"`
}

func (o *PartsOrder) RecordKey() string       { return o.PartsOrderID }
func (o *PartsOrder) SetRecordKey(key string) { o.PartsOrderID = key }

// Prepare valida el pedido antes de insertarlo y recalcula TotalCost.
// Un pedido nace en un estado no terminal.
func (o *PartsOrder) Prepare(now time.Time) error {
	var c checker
	c.text("parts_order_id", o.PartsOrderID)
	c.text("part_id", o.PartID)
	c.text("supplier_id", o.SupplierID)
	c.text("order_status", o.OrderStatus)
	c.text("payment_status", o.PaymentStatus)
	c.check("quantity_ordered", o.QuantityOrdered > 0)
	c.check("unit_cost", !o.UnitCost.IsNegative())
	c.oneOf("order_status", o.OrderStatus, []string{OrderStatusPending, OrderStatusConfirmed, OrderStatusInTransit})
	c.oneOf("payment_status", o.PaymentStatus, PartsPaymentStatuses)
	if err := c.err(); err != nil {
		return err
	}
	o.TotalCost = OrderTotal(o.QuantityOrdered, o.UnitCost)
	return nil
}

// Delivered indica si el stock del pedido ya fue acreditado.
func (o PartsOrder) Delivered() bool {
	return o.OrderStatus == OrderStatusDelivered
}

// OrderTotal calcula total_cost = quantity × unit_cost.
func OrderTotal(quantity int, unitCost decimal.Decimal) decimal.Decimal {
	return unitCost.Mul(decimal.NewFromInt(int64(quantity)))
}

// PartsOrderPatch actualización parcial de un pedido. PartID no es modificable.
// TotalCost no viene del cliente: lo fija el caso de uso cuando cambia cantidad o costo.
type PartsOrderPatch struct {
	QuantityOrdered    *int             `json:"quantity_ordered,omitempty"`
	SupplierID         *string          `json:"supplier_id,omitempty"`
	ExpectedDelivery   *time.Time       `json:"expected_delivery,omitempty"`
	OrderStatus        *string          `json:"order_status,omitempty"`
	UnitCost           *decimal.Decimal `json:"unit_cost,omitempty"`
	PaymentStatus      *string          `json:"payment_status,omitempty"`
	DeliveryTrackingID *string          `json:"delivery_tracking_id,omitempty"`
	TotalCost          *decimal.Decimal `json:"-"`
}

func (p PartsOrderPatch) IsEmpty() bool { return p == PartsOrderPatch{} }

func (p PartsOrderPatch) Validate() error {
	var c checker
	c.check("quantity_ordered", p.QuantityOrdered == nil || *p.QuantityOrdered > 0)
	c.check("unit_cost", p.UnitCost == nil || !p.UnitCost.IsNegative())
	c.textPtr("supplier_id", p.SupplierID)
	c.oneOfPtr("order_status", p.OrderStatus, PartsOrderStatuses)
	c.oneOfPtr("payment_status", p.PaymentStatus, PartsPaymentStatuses)
	return c.err()
}

// MarksDelivered indica si el patch mueve el pedido a Delivered.
func (p PartsOrderPatch) MarksDelivered() bool {
	return p.OrderStatus != nil && *p.OrderStatus == OrderStatusDelivered
}

// ChangesCost indica si hay que recalcular total_cost.
func (p PartsOrderPatch) ChangesCost() bool {
	return p.QuantityOrdered != nil || p.UnitCost != nil
}
