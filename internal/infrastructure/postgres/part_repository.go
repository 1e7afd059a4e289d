package postgres

import (
	"context"
	"time"

	"github.com/jhoicas/dealership-api/internal/domain/entity"
	"github.com/jhoicas/dealership-api/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

var partTable = &recordTable[entity.Part, entity.PartPatch]{
	name: "parts_inventory",
	columns: []string{"part_id", "part_name", "part_number", "quantity_available", "reorder_level", "location",
		"supplier_name", "unit_price", "part_category", "compatibility_info", "last_restocked_date"},
	fields: func(p *entity.Part) []any {
		return []any{&p.PartID, &p.PartName, &p.PartNumber, &p.QuantityAvailable, &p.ReorderLevel, &p.Location,
			&p.SupplierName, &p.UnitPrice, &p.PartCategory, &p.CompatibilityInfo, &p.LastRestockedDate}
	},
	meta:    func(p *entity.Part) *entity.Meta { return &p.Meta },
	filters: map[string]string{"part_category": "part_category", "supplier_name": "supplier_name", "location": "location"},
	orderBy: "created_at DESC",
	assign: func(p entity.PartPatch) []assignment {
		var s []assignment
		s = setIf(s, "part_name", p.PartName)
		s = setIf(s, "part_number", p.PartNumber)
		s = setIf(s, "quantity_available", p.QuantityAvailable)
		s = setIf(s, "reorder_level", p.ReorderLevel)
		s = setIf(s, "location", p.Location)
		s = setIf(s, "supplier_name", p.SupplierName)
		s = setIf(s, "unit_price", p.UnitPrice)
		s = setIf(s, "part_category", p.PartCategory)
		s = setIf(s, "compatibility_info", p.CompatibilityInfo)
		s = setIf(s, "last_restocked_date", p.LastRestockedDate)
		return s
	},
}

// PartRepo implementación del puerto PartRepository sobre PostgreSQL (usable con pool o tx).
type PartRepo struct {
	*recordRepo[entity.Part, entity.PartPatch]
}

// NewPartRepository construye el adaptador de persistencia para repuestos. Pasar pool o tx (Querier).
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{recordRepo: newRecordRepo(q, partTable)}
}

// AddStock acredita stock en un solo UPDATE; no lee y reescribe la cantidad.
func (r *PartRepo) AddStock(ctx context.Context, partID string, qty int, restockedAt time.Time) (bool, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE parts_inventory
		SET quantity_available = quantity_available + $2, last_restocked_date = $3, updated_at = $3
		WHERE part_id = $1`,
		partID, qty, restockedAt,
	)
	if err != nil {
		return false, wrap("add stock", err)
	}
	return cmd.RowsAffected() > 0, nil
}
