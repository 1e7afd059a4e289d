// Package stats calcula agregados de presentación sobre una página ya obtenida de registros.
// Nada se persiste; "vencido" siempre es fecha límite < now y estado no terminal.
package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dealership-api/internal/domain/entity"
)

// Counts conteo por valor de un enumerado.
type Counts map[string]int

func countBy[T any](list []T, key func(T) string) Counts {
	out := Counts{}
	for _, v := range list {
		out[key(v)]++
	}
	return out
}

func sumBy[T any](list []T, value func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range list {
		total = total.Add(value(v))
	}
	return total
}

func countIf[T any](list []T, pred func(T) bool) int {
	n := 0
	for _, v := range list {
		if pred(v) {
			n++
		}
	}
	return n
}

func before(t *time.Time, now time.Time) bool {
	return t != nil && t.Before(now)
}

func notIn(v string, terminal ...string) bool {
	for _, t := range terminal {
		if v == t {
			return false
		}
	}
	return true
}

// AccountingStats ingresos, egresos y saldo neto de movimientos contables.
type AccountingStats struct {
	Count    int             `json:"count"`
	Income   decimal.Decimal `json:"income"`
	Expense  decimal.Decimal `json:"expense"`
	Net      decimal.Decimal `json:"net"`
	ByStatus Counts          `json:"by_status"`
	Overdue  int             `json:"overdue"`
}

// Accounting suma por tipo de transacción y cuenta los movimientos vencidos.
func Accounting(list []entity.Accounting, now time.Time) AccountingStats {
	income := sumBy(list, func(a entity.Accounting) decimal.Decimal {
		if a.TransactionType == entity.TransactionIncome {
			return a.Amount
		}
		return decimal.Zero
	})
	expense := sumBy(list, func(a entity.Accounting) decimal.Decimal {
		if a.TransactionType == entity.TransactionExpense {
			return a.Amount
		}
		return decimal.Zero
	})
	return AccountingStats{
		Count:    len(list),
		Income:   income,
		Expense:  expense,
		Net:      income.Sub(expense),
		ByStatus: countBy(list, func(a entity.Accounting) string { return a.Status }),
		Overdue: countIf(list, func(a entity.Accounting) bool {
			return before(a.DueDate, now) && notIn(a.Status, entity.AccountingCompleted, entity.AccountingCancelled)
		}),
	}
}

// AuditStats auditorías por estado y nivel de riesgo.
type AuditStats struct {
	Count            int    `json:"count"`
	ByStatus         Counts `json:"by_status"`
	ByRiskLevel      Counts `json:"by_risk_level"`
	OverdueFollowUps int    `json:"overdue_follow_ups"`
}

// Audits cuenta por estado y riesgo, y los seguimientos vencidos de auditorías no cerradas.
func Audits(list []entity.Audit, now time.Time) AuditStats {
	return AuditStats{
		Count:       len(list),
		ByStatus:    countBy(list, func(a entity.Audit) string { return a.Status }),
		ByRiskLevel: countBy(list, func(a entity.Audit) string { return a.RiskLevel }),
		OverdueFollowUps: countIf(list, func(a entity.Audit) bool {
			return before(a.FollowUpDate, now) && a.Status != entity.AuditClosed
		}),
	}
}

// CommunicationStats comunicaciones por tipo y estado.
type CommunicationStats struct {
	Count            int    `json:"count"`
	ByType           Counts `json:"by_type"`
	ByStatus         Counts `json:"by_status"`
	PendingFollowUps int    `json:"pending_follow_ups"`
}

// Communications cuenta por tipo y estado, y las que requieren seguimiento.
func Communications(list []entity.Communication, _ time.Time) CommunicationStats {
	return CommunicationStats{
		Count:            len(list),
		ByType:           countBy(list, func(c entity.Communication) string { return c.CommunicationType }),
		ByStatus:         countBy(list, func(c entity.Communication) string { return c.Status }),
		PendingFollowUps: countIf(list, func(c entity.Communication) bool { return c.FollowUpRequired }),
	}
}

// ComplianceStats registros de cumplimiento por estado.
type ComplianceStats struct {
	Count    int    `json:"count"`
	ByStatus Counts `json:"by_status"`
	Overdue  int    `json:"overdue"`
}

// Compliance cuenta por estado y los registros vencidos que no son Compliant.
func Compliance(list []entity.Compliance, now time.Time) ComplianceStats {
	return ComplianceStats{
		Count:    len(list),
		ByStatus: countBy(list, func(c entity.Compliance) string { return c.Status }),
		Overdue: countIf(list, func(c entity.Compliance) bool {
			return c.DueDate.Before(now) && c.Status != entity.ComplianceCompliant
		}),
	}
}

// EngagementStats interacciones por tipo y satisfacción media.
type EngagementStats struct {
	Count               int             `json:"count"`
	ByType              Counts          `json:"by_type"`
	AverageSatisfaction decimal.Decimal `json:"average_satisfaction"`
}

// Engagements promedia solo las interacciones calificadas (score > 0).
func Engagements(list []entity.CustomerEngagement, _ time.Time) EngagementStats {
	rated := countIf(list, func(e entity.CustomerEngagement) bool { return e.SatisfactionScore > 0 })
	avg := decimal.Zero
	if rated > 0 {
		sum := sumBy(list, func(e entity.CustomerEngagement) decimal.Decimal {
			return decimal.NewFromInt(int64(e.SatisfactionScore))
		})
		avg = sum.DivRound(decimal.NewFromInt(int64(rated)), 2)
	}
	return EngagementStats{
		Count:               len(list),
		ByType:              countBy(list, func(e entity.CustomerEngagement) string { return e.EngagementType }),
		AverageSatisfaction: avg,
	}
}

// CustomerServiceStats tickets por estado y prioridad.
type CustomerServiceStats struct {
	Count       int    `json:"count"`
	ByStatus    Counts `json:"by_status"`
	ByPriority  Counts `json:"by_priority"`
	OpenTickets int    `json:"open_tickets"`
}

// CustomerService cuenta por estado y prioridad, y los tickets abiertos.
func CustomerService(list []entity.CustomerServiceTicket, _ time.Time) CustomerServiceStats {
	return CustomerServiceStats{
		Count:      len(list),
		ByStatus:   countBy(list, func(t entity.CustomerServiceTicket) string { return t.Status }),
		ByPriority: countBy(list, func(t entity.CustomerServiceTicket) string { return t.Priority }),
		OpenTickets: countIf(list, func(t entity.CustomerServiceTicket) bool {
			return notIn(t.Status, entity.TicketResolved, entity.TicketClosed)
		}),
	}
}

// SalesOrderStats órdenes de venta por estado con importes.
type SalesOrderStats struct {
	Count          int             `json:"count"`
	ByStatus       Counts          `json:"by_status"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	TotalDeposits  decimal.Decimal `json:"total_deposits"`
	PaymentOverdue int             `json:"payment_overdue"`
}

// SalesOrders suma importes y depósitos y cuenta los pagos vencidos.
func SalesOrders(list []entity.SalesOrder, now time.Time) SalesOrderStats {
	return SalesOrderStats{
		Count:         len(list),
		ByStatus:      countBy(list, func(o entity.SalesOrder) string { return o.OrderStatus }),
		TotalAmount:   sumBy(list, func(o entity.SalesOrder) decimal.Decimal { return o.TotalAmount }),
		TotalDeposits: sumBy(list, func(o entity.SalesOrder) decimal.Decimal { return o.DepositAmount }),
		PaymentOverdue: countIf(list, func(o entity.SalesOrder) bool {
			return before(o.DeliveryDate, now) && o.PaymentStatus != entity.PaymentStatusPaid
		}),
	}
}

// PartStats existencias y valor del inventario de repuestos.
type PartStats struct {
	TotalParts     int             `json:"total_parts"`
	LowStock       int             `json:"low_stock"`
	OutOfStock     int             `json:"out_of_stock"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
}

// Parts cuenta stock bajo y agotado, y valora el inventario a precio unitario.
func Parts(list []entity.Part, _ time.Time) PartStats {
	return PartStats{
		TotalParts: len(list),
		LowStock:   countIf(list, func(p entity.Part) bool { return p.LowStock() }),
		OutOfStock: countIf(list, func(p entity.Part) bool { return p.QuantityAvailable == 0 }),
		InventoryValue: sumBy(list, func(p entity.Part) decimal.Decimal {
			return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.QuantityAvailable)))
		}),
	}
}

// PartsOrderStats pedidos de repuestos por estado, coste total y vencidos.
type PartsOrderStats struct {
	Count             int             `json:"count"`
	ByStatus          Counts          `json:"by_status"`
	ByPaymentStatus   Counts          `json:"by_payment_status"`
	TotalCost         decimal.Decimal `json:"total_cost"`
	OverdueDeliveries int             `json:"overdue_deliveries"`
	OverduePayments   int             `json:"overdue_payments"`
}

// PartsOrders cuenta por estado de pedido y de pago, y las entregas y pagos vencidos.
func PartsOrders(list []entity.PartsOrder, now time.Time) PartsOrderStats {
	return PartsOrderStats{
		Count:           len(list),
		ByStatus:        countBy(list, func(o entity.PartsOrder) string { return o.OrderStatus }),
		ByPaymentStatus: countBy(list, func(o entity.PartsOrder) string { return o.PaymentStatus }),
		TotalCost:       sumBy(list, func(o entity.PartsOrder) decimal.Decimal { return o.TotalCost }),
		OverdueDeliveries: countIf(list, func(o entity.PartsOrder) bool {
			return before(o.ExpectedDelivery, now) &&
				notIn(o.OrderStatus, entity.OrderStatusDelivered, entity.OrderStatusCancelled)
		}),
		OverduePayments: countIf(list, func(o entity.PartsOrder) bool {
			return o.PaymentStatus == entity.PaymentStatusOverdue
		}),
	}
}

// RepairOrderStats órdenes de reparación por estado con costes estimado y real.
type RepairOrderStats struct {
	Count         int             `json:"count"`
	ByStatus      Counts          `json:"by_status"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	ActualCost    decimal.Decimal `json:"actual_cost"`
}

// RepairOrders cuenta por estado y suma los costes.
func RepairOrders(list []entity.RepairOrder, _ time.Time) RepairOrderStats {
	return RepairOrderStats{
		Count:         len(list),
		ByStatus:      countBy(list, func(r entity.RepairOrder) string { return r.Status }),
		EstimatedCost: sumBy(list, func(r entity.RepairOrder) decimal.Decimal { return r.EstimatedCost }),
		ActualCost:    sumBy(list, func(r entity.RepairOrder) decimal.Decimal { return r.ActualCost }),
	}
}

// ServiceHistoryStats historial de servicio por tipo.
type ServiceHistoryStats struct {
	Count           int             `json:"count"`
	ByServiceType   Counts          `json:"by_service_type"`
	TotalCost       decimal.Decimal `json:"total_cost"`
	WarrantyCovered int             `json:"warranty_covered"`
}

// ServiceHistory cuenta por tipo de servicio, suma el coste y cuenta los cubiertos por garantía.
func ServiceHistory(list []entity.ServiceRecord, _ time.Time) ServiceHistoryStats {
	return ServiceHistoryStats{
		Count:           len(list),
		ByServiceType:   countBy(list, func(s entity.ServiceRecord) string { return s.ServiceType }),
		TotalCost:       sumBy(list, func(s entity.ServiceRecord) decimal.Decimal { return s.Cost }),
		WarrantyCovered: countIf(list, func(s entity.ServiceRecord) bool { return s.WarrantyCovered }),
	}
}

// SchedulingStats citas por estado.
type SchedulingStats struct {
	Count    int    `json:"count"`
	ByStatus Counts `json:"by_status"`
	Upcoming int    `json:"upcoming"`
}

// Scheduling cuenta por estado y las citas próximas no cerradas.
func Scheduling(list []entity.Appointment, now time.Time) SchedulingStats {
	return SchedulingStats{
		Count:    len(list),
		ByStatus: countBy(list, func(a entity.Appointment) string { return a.Status }),
		Upcoming: countIf(list, func(a entity.Appointment) bool { return a.Upcoming(now) }),
	}
}

// StockInventoryStats vehículos por estado y condición.
type StockInventoryStats struct {
	Count          int             `json:"count"`
	ByStatus       Counts          `json:"by_status"`
	ByCondition    Counts          `json:"by_condition"`
	AvailableValue decimal.Decimal `json:"available_value"`
}

// StockInventory cuenta por estado y condición, y suma el precio de lista de los disponibles.
func StockInventory(list []entity.Vehicle, _ time.Time) StockInventoryStats {
	return StockInventoryStats{
		Count:       len(list),
		ByStatus:    countBy(list, func(v entity.Vehicle) string { return v.Status }),
		ByCondition: countBy(list, func(v entity.Vehicle) string { return v.Condition }),
		AvailableValue: sumBy(list, func(v entity.Vehicle) decimal.Decimal {
			if v.Status == entity.VehicleAvailable {
				return v.ListPrice
			}
			return decimal.Zero
		}),
	}
}
