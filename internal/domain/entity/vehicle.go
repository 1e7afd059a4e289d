package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const VehicleAvailable = "Available"

var (
	VehicleConditions = []string{"New", "Used", "Certified Pre-Owned"}
	VehicleStatuses   = []string{VehicleAvailable, "Reserved", "Sold", "In Transit"}
)

// Vehicle unidad en el inventario de vehículos (tabla stock_inventory).
type Vehicle struct {
	Meta
	StockID       string          `json:"stock_id"`
	VIN           string          `json:"vin"`
	Make          string          `json:"make"`
	Model         string          `json:"model"`
	Year          int             `json:"year"`
	Trim          string          `json:"trim"`
	Color         string          `json:"color"`
	Mileage       int             `json:"mileage"`
	Condition     string          `json:"condition"`
	Status        string          `json:"status"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	ListPrice     decimal.Decimal `json:"list_price"`
	Location      string          `json:"location"`
	DateReceived  time.Time       `json:"date_received"`
}

func (m *Vehicle) RecordKey() string       { return m.StockID }
func (m *Vehicle) SetRecordKey(key string) { m.StockID = key }

func (m *Vehicle) Prepare(now time.Time) error {
	if m.DateReceived.IsZero() {
		m.DateReceived = now
	}
	var c checker
	c.text("stock_id", m.StockID)
	c.text("vin", m.VIN)
	c.text("make", m.Make)
	c.text("model", m.Model)
	c.present("year", m.Year != 0)
	c.text("condition", m.Condition)
	c.text("status", m.Status)
	c.present("list_price", m.ListPrice.IsPositive())
	c.check("year", m.Year == 0 || (m.Year >= 1900 && m.Year <= 2100))
	c.check("mileage", m.Mileage >= 0)
	c.check("purchase_price", !m.PurchasePrice.IsNegative())
	c.oneOf("condition", m.Condition, VehicleConditions)
	c.oneOf("status", m.Status, VehicleStatuses)
	return c.err()
}

type VehiclePatch struct {
	VIN           *string          `json:"vin,omitempty"`
	Make          *string          `json:"make,omitempty"`
	Model         *string          `json:"model,omitempty"`
	Year          *int             `json:"year,omitempty"`
	Trim          *string          `json:"trim,omitempty"`
	Color         *string          `json:"color,omitempty"`
	Mileage       *int             `json:"mileage,omitempty"`
	Condition     *string          `json:"condition,omitempty"`
	Status        *string          `json:"status,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	ListPrice     *decimal.Decimal `json:"list_price,omitempty"`
	Location      *string          `json:"location,omitempty"`
	DateReceived  *time.Time       `json:"date_received,omitempty"`
}

func (p VehiclePatch) IsEmpty() bool { return p == VehiclePatch{} }

func (p VehiclePatch) Validate() error {
	var c checker
	c.textPtr("vin", p.VIN)
	c.textPtr("make", p.Make)
	c.textPtr("model", p.Model)
	c.oneOfPtr("condition", p.Condition, VehicleConditions)
	c.oneOfPtr("status", p.Status, VehicleStatuses)
	c.check("year", p.Year == nil || (*p.Year >= 1900 && *p.Year <= 2100))
	c.check("mileage", p.Mileage == nil || *p.Mileage >= 0)
	c.check("list_price", p.ListPrice == nil || p.ListPrice.IsPositive())
	return c.err()
}
