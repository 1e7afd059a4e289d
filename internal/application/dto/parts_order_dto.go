package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dealership-api/internal/domain"
	"github.com/jhoicas/dealership-api/internal/domain/entity"
)

// CreatePartsOrderRequest entrada para crear un pedido de repuestos.
// Los numéricos son punteros para distinguir "ausente" de cero.
type CreatePartsOrderRequest struct {
	PartsOrderID       string           `json:"parts_order_id"`
	PartID             string           `json:"part_id"`
	QuantityOrdered    *int             `json:"quantity_ordered"`
	SupplierID         string           `json:"supplier_id"`
	ExpectedDelivery   *time.Time       `json:"expected_delivery"`
	OrderStatus        string           `json:"order_status"`
	UnitCost           *decimal.Decimal `json:"unit_cost"`
	PaymentStatus      string           `json:"payment_status"`
	DeliveryTrackingID string           `json:"delivery_tracking_id"`
}

// Missing devuelve los campos requeridos que no vienen en el request.
func (in CreatePartsOrderRequest) Missing() []string {
	var missing []string
	if strings.TrimSpace(in.PartID) == "" {
		missing = append(missing, "part_id")
	}
	if in.QuantityOrdered == nil {
		missing = append(missing, "quantity_ordered")
	}
	if strings.TrimSpace(in.SupplierID) == "" {
		missing = append(missing, "supplier_id")
	}
	if in.UnitCost == nil {
		missing = append(missing, "unit_cost")
	}
	if strings.TrimSpace(in.OrderStatus) == "" {
		missing = append(missing, "order_status")
	}
	if strings.TrimSpace(in.PaymentStatus) == "" {
		missing = append(missing, "payment_status")
	}
	return missing
}

// ToEntity valida presencia y arma la entidad. El resto de reglas las aplica Prepare.
func (in CreatePartsOrderRequest) ToEntity() (*entity.PartsOrder, error) {
	if missing := in.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: campos requeridos: %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}
	return &entity.PartsOrder{
		PartsOrderID:       strings.TrimSpace(in.PartsOrderID),
		PartID:             strings.TrimSpace(in.PartID),
		QuantityOrdered:    *in.QuantityOrdered,
		SupplierID:         in.SupplierID,
		ExpectedDelivery:   in.ExpectedDelivery,
		OrderStatus:        in.OrderStatus,
		UnitCost:           *in.UnitCost,
		PaymentStatus:      in.PaymentStatus,
		DeliveryTrackingID: in.DeliveryTrackingID,
	}, nil
}
