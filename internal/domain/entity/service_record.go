package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceRecord servicio realizado a un vehículo (tabla service_history).
type ServiceRecord struct {
	Meta
	HistoryID       string          `json:"history_id"`
	VehicleVIN      string          `json:"vehicle_vin"`
	CustomerID      string          `json:"customer_id"`
	ServiceDate     time.Time       `json:"service_date"`
	ServiceType     string          `json:"service_type"`
	Mileage         int             `json:"mileage"`
	Technician      string          `json:"technician"`
	Description     string          `json:"description"`
	Cost            decimal.Decimal `json:"cost"`
	WarrantyCovered bool            `json:"warranty_covered"`
	NextServiceDue  *time.Time      `json:"next_service_due"`
}

func (m *ServiceRecord) RecordKey() string       { return m.HistoryID }
func (m *ServiceRecord) SetRecordKey(key string) { m.HistoryID = key }

func (m *ServiceRecord) Prepare(now time.Time) error {
	var c checker
	c.text("history_id", m.HistoryID)
	c.text("vehicle_vin", m.VehicleVIN)
	c.date("service_date", m.ServiceDate)
	c.text("service_type", m.ServiceType)
	c.check("mileage", m.Mileage >= 0)
	c.check("cost", !m.Cost.IsNegative())
	return c.err()
}

type ServiceRecordPatch struct {
	VehicleVIN      *string          `json:"vehicle_vin,omitempty"`
	CustomerID      *string          `json:"customer_id,omitempty"`
	ServiceDate     *time.Time       `json:"service_date,omitempty"`
	ServiceType     *string          `json:"service_type,omitempty"`
	Mileage         *int             `json:"mileage,omitempty"`
	Technician      *string          `json:"technician,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Cost            *decimal.Decimal `json:"cost,omitempty"`
	WarrantyCovered *bool            `json:"warranty_covered,omitempty"`
	NextServiceDue  *time.Time       `json:"next_service_due,omitempty"`
}

func (p ServiceRecordPatch) IsEmpty() bool { return p == ServiceRecordPatch{} }

func (p ServiceRecordPatch) Validate() error {
	var c checker
	c.check("mileage", p.Mileage == nil || *p.Mileage >= 0)
	c.check("cost", p.Cost == nil || !p.Cost.IsNegative())
	c.textPtr("vehicle_vin", p.VehicleVIN)
	c.textPtr("service_type", p.ServiceType)
	c.datePtr("service_date", p.ServiceDate)
	return c.err()
}
