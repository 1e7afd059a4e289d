package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	SalesOrderTypes    = []string{"New Vehicle", "Used Vehicle", "Lease", "Fleet"}
	SalesOrderStatuses = []string{"Pending", "Confirmed", "Processing", "Delivered", "Cancelled"}
	SalesPaymentStatus = []string{PaymentStatusPending, PaymentStatusPaid, PaymentStatusPartial, PaymentStatusOverdue, "Refunded"}
)

// SalesOrder orden de venta de vehículo (tabla order_management).
type SalesOrder struct {
	Meta
	OrderID       string          `json:"order_id"`
	CustomerID    string          `json:"customer_id"`
	VehicleVIN    string          `json:"vehicle_vin"`
	OrderDate     time.Time       `json:"order_date"`
	OrderType     string          `json:"order_type"`
	OrderStatus   string          `json:"order_status"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`
	PaymentStatus string          `json:"payment_status"`
	DeliveryDate  *time.Time      `json:"delivery_date"`
	Salesperson   string          `json:"salesperson"`
	Notes         string          `json:"notes"`
}

func (m *SalesOrder) RecordKey() string       { return m.OrderID }
func (m *SalesOrder) SetRecordKey(key string) { m.OrderID = key }

func (m *SalesOrder) Prepare(now time.Time) error {
	m.PaymentStatus = orDefault(m.PaymentStatus, PaymentStatusPending)
	var c checker
	c.text("order_id", m.OrderID)
	c.text("customer_id", m.CustomerID)
	c.text("vehicle_vin", m.VehicleVIN)
	c.date("order_date", m.OrderDate)
	c.text("order_type", m.OrderType)
	c.text("order_status", m.OrderStatus)
	c.present("total_amount", m.TotalAmount.IsPositive())
	c.check("deposit_amount", !m.DepositAmount.IsNegative())
	c.oneOf("order_type", m.OrderType, SalesOrderTypes)
	c.oneOf("order_status", m.OrderStatus, SalesOrderStatuses)
	c.oneOf("payment_status", m.PaymentStatus, SalesPaymentStatus)
	return c.err()
}

type SalesOrderPatch struct {
	CustomerID    *string          `json:"customer_id,omitempty"`
	VehicleVIN    *string          `json:"vehicle_vin,omitempty"`
	OrderDate     *time.Time       `json:"order_date,omitempty"`
	OrderType     *string          `json:"order_type,omitempty"`
	OrderStatus   *string          `json:"order_status,omitempty"`
	TotalAmount   *decimal.Decimal `json:"total_amount,omitempty"`
	DepositAmount *decimal.Decimal `json:"deposit_amount,omitempty"`
	PaymentStatus *string          `json:"payment_status,omitempty"`
	DeliveryDate  *time.Time       `json:"delivery_date,omitempty"`
	Salesperson   *string          `json:"salesperson,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

func (p SalesOrderPatch) IsEmpty() bool { return p == SalesOrderPatch{} }

func (p SalesOrderPatch) Validate() error {
	var c checker
	c.textPtr("customer_id", p.CustomerID)
	c.textPtr("vehicle_vin", p.VehicleVIN)
	c.datePtr("order_date", p.OrderDate)
	c.oneOfPtr("order_type", p.OrderType, SalesOrderTypes)
	c.oneOfPtr("order_status", p.OrderStatus, SalesOrderStatuses)
	c.oneOfPtr("payment_status", p.PaymentStatus, SalesPaymentStatus)
	c.check("total_amount", p.TotalAmount == nil || p.TotalAmount.IsPositive())
	c.check("deposit_amount", p.DepositAmount == nil || !p.DepositAmount.IsNegative())
	return c.err()
}
