package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part línea de inventario de repuestos (tabla parts_inventory).
// QuantityAvailable solo cambia por edición manual o por la conciliación de entregas; nunca es negativa.
type Part struct {
	Meta
	PartID            string          `json:"part_id"` // generado por el servidor (PRT-...)
	PartName          string          `json:"part_name"`
	PartNumber        string          `json:"part_number"`
	QuantityAvailable int             `json:"quantity_available"`
	ReorderLevel      int             `json:"reorder_level"`
	Location          string          `json:"location"`
	SupplierName      string          `json:"supplier_name"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	PartCategory      string          `json:"part_category"`
	CompatibilityInfo string          `json:"compatibility_info"`
	LastRestockedDate *time.Time      `json:"last_restocked_date"`
}

func (p *Part) RecordKey() string       { return p.PartID }
func (p *Part) SetRecordKey(key string) { p.PartID = key }

// Prepare valida los campos requeridos al crear.
func (p *Part) Prepare(now time.Time) error {
	var c checker
	c.text("part_id", p.PartID)
	c.text("part_name", p.PartName)
	c.text("part_number", p.PartNumber)
	c.text("part_category", p.PartCategory)
	c.check("quantity_available", p.QuantityAvailable >= 0)
	c.check("reorder_level", p.ReorderLevel >= 0)
	c.check("unit_price", !p.UnitPrice.IsNegative())
	return c.err()
}

// LowStock indica si el repuesto está en o por debajo del nivel de reorden.
func (p Part) LowStock() bool {
	return p.QuantityAvailable <= p.ReorderLevel
}

// PartPatch actualización parcial de un repuesto.
type PartPatch struct {
	PartName          *string          `json:"part_name,omitempty"`
	PartNumber        *string          `json:"part_number,omitempty"`
	QuantityAvailable *int             `json:"quantity_available,omitempty"`
	ReorderLevel      *int             `json:"reorder_level,omitempty"`
	Location          *string          `json:"location,omitempty"`
	SupplierName      *string          `json:"supplier_name,omitempty"`
	UnitPrice         *decimal.Decimal `json:"unit_price,omitempty"`
	PartCategory      *string          `json:"part_category,omitempty"`
	CompatibilityInfo *string          `json:"compatibility_info,omitempty"`
	LastRestockedDate *time.Time       `json:"last_restocked_date,omitempty"`
}

func (p PartPatch) IsEmpty() bool { return p == PartPatch{} }

func (p PartPatch) Validate() error {
	var c checker
	c.textPtr("part_name", p.PartName)
	c.textPtr("part_number", p.PartNumber)
	c.textPtr("part_category", p.PartCategory)
	c.check("quantity_available", p.QuantityAvailable == nil || *p.QuantityAvailable >= 0)
	c.check("reorder_level", p.ReorderLevel == nil || *p.ReorderLevel >= 0)
	c.check("unit_price", p.UnitPrice == nil || !p.UnitPrice.IsNegative())
	return c.err()
}
