package dto

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dealership-api/internal/domain"
	"github.com/jhoicas/dealership-api/internal/domain/entity"
)

// CreatePartRequest entrada para dar de alta un repuesto. El part_id lo genera el servidor.
// Cantidades y precio son punteros: un 0 enviado es válido, un campo ausente no.
type CreatePartRequest struct {
	PartName          string           `json:"part_name"`
	PartNumber        string           `json:"part_number"`
	QuantityAvailable *int             `json:"quantity_available"`
	ReorderLevel      *int             `json:"reorder_level"`
	Location          string           `json:"location"`
	SupplierName      string           `json:"supplier_name"`
	UnitPrice         *decimal.Decimal `json:"unit_price"`
	PartCategory      string           `json:"part_category"`
	CompatibilityInfo string           `json:"compatibility_info"`
}

// Missing devuelve los campos requeridos que no vienen en el request.
func (in CreatePartRequest) Missing() []string {
	var missing []string
	if strings.TrimSpace(in.PartName) == "" {
		missing = append(missing, "part_name")
	}
	if strings.TrimSpace(in.PartNumber) == "" {
		missing = append(missing, "part_number")
	}
	if in.QuantityAvailable == nil {
		missing = append(missing, "quantity_available")
	}
	if in.ReorderLevel == nil {
		missing = append(missing, "reorder_level")
	}
	if in.UnitPrice == nil {
		missing = append(missing, "unit_price")
	}
	if strings.TrimSpace(in.PartCategory) == "" {
		missing = append(missing, "part_category")
	}
	return missing
}

// ToEntity valida presencia y arma la entidad. Los rangos los valida Part.Prepare.
func (in CreatePartRequest) ToEntity() (*entity.Part, error) {
	if missing := in.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: campos requeridos: %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}
	return &entity.Part{
		PartName:          in.PartName,
		PartNumber:        in.PartNumber,
		QuantityAvailable: *in.QuantityAvailable,
		ReorderLevel:      *in.ReorderLevel,
		Location:          in.Location,
		SupplierName:      in.SupplierName,
		UnitPrice:         *in.UnitPrice,
		PartCategory:      in.PartCategory,
		CompatibilityInfo: in.CompatibilityInfo,
	}, nil
}
