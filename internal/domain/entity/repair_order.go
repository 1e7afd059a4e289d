package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	RepairStatuses   = []string{"Open", "In Progress", "Awaiting Parts", "Completed", "Closed"}
	RepairPriorities = []string{"Low", "Normal", "High", "Urgent"}
)

// RepairOrder orden de reparación del taller (tabla repair_orders).
type RepairOrder struct {
	Meta
	RepairOrderID    string          `json:"repair_order_id"`
	CustomerID       string          `json:"customer_id"`
	VehicleVIN       string          `json:"vehicle_vin"`
	IssueDescription string          `json:"issue_description"`
	Diagnosis        string          `json:"diagnosis"`
	Technician       string          `json:"technician"`
	Status           string          `json:"status"`
	Priority         string          `json:"priority"`
	EstimatedCost    decimal.Decimal `json:"estimated_cost"`
	ActualCost       decimal.Decimal `json:"actual_cost"`
	LaborHours       decimal.Decimal `json:"labor_hours"`
	DateIn           time.Time       `json:"date_in"`
	DateCompleted    *time.Time      `json:"date_completed"`
}

func (m *RepairOrder) RecordKey() string       { return m.RepairOrderID }
func (m *RepairOrder) SetRecordKey(key string) { m.RepairOrderID = key }

func (m *RepairOrder) Prepare(now time.Time) error {
	m.Priority = orDefault(m.Priority, "Normal")
	if m.DateIn.IsZero() {
		m.DateIn = now
	}
	var c checker
	c.text("repair_order_id", m.RepairOrderID)
	c.text("customer_id", m.CustomerID)
	c.text("vehicle_vin", m.VehicleVIN)
	c.text("issue_description", m.IssueDescription)
	c.text("status", m.Status)
	c.oneOf("status", m.Status, RepairStatuses)
	c.oneOf("priority", m.Priority, RepairPriorities)
	c.check("estimated_cost", !m.EstimatedCost.IsNegative())
	c.check("actual_cost", !m.ActualCost.IsNegative())
	c.check("labor_hours", !m.LaborHours.IsNegative())
	return c.err()
}

type RepairOrderPatch struct {
	CustomerID       *string          `json:"customer_id,omitempty"`
	VehicleVIN       *string          `json:"vehicle_vin,omitempty"`
	IssueDescription *string          `json:"issue_description,omitempty"`
	Diagnosis        *string          `json:"diagnosis,omitempty"`
	Technician       *string          `json:"technician,omitempty"`
	Status           *string          `json:"status,omitempty"`
	Priority         *string          `json:"priority,omitempty"`
	EstimatedCost    *decimal.Decimal `json:"estimated_cost,omitempty"`
	ActualCost       *decimal.Decimal `json:"actual_cost,omitempty"`
	LaborHours       *decimal.Decimal `json:"labor_hours,omitempty"`
	DateIn           *time.Time       `json:"date_in,omitempty"`
	DateCompleted    *time.Time       `json:"date_completed,omitempty"`
}

func (p RepairOrderPatch) IsEmpty() bool { return p == RepairOrderPatch{} }

func (p RepairOrderPatch) Validate() error {
	var c checker
	c.textPtr("customer_id", p.CustomerID)
	c.textPtr("vehicle_vin", p.VehicleVIN)
	c.textPtr("issue_description", p.IssueDescription)
	c.oneOfPtr("status", p.Status, RepairStatuses)
	c.oneOfPtr("priority", p.Priority, RepairPriorities)
	c.check("estimated_cost", p.EstimatedCost == nil || !p.EstimatedCost.IsNegative())
	c.check("actual_cost", p.ActualCost == nil || !p.ActualCost.IsNegative())
	c.check("labor_hours", p.LaborHours == nil || !p.LaborHours.IsNegative())
	return c.err()
}
