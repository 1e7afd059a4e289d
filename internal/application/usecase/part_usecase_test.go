package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dealership-api/internal/application/dto"
	"github.com/jhoicas/dealership-api/internal/domain"
	"github.com/jhoicas/dealership-api/internal/domain/entity"
	"github.com/jhoicas/dealership-api/internal/testutil/memstore"
)

func newPart() *dto.CreatePartRequest {
	return &dto.CreatePartRequest{
		PartName:          "Pastilla de freno",
		PartNumber:        "BP-220",
		QuantityAvailable: ptr(8),
		ReorderLevel:      ptr(2),
		UnitPrice:         ptr(decimal.RequireFromString("35.90")),
		PartCategory:      "Frenos",
	}
}

func TestPartCreate_GeneratesKey(t *testing.T) {
	store := memstore.New()
	uc := NewPartUseCase(store.Parts, store.PartsOrders)

	out, err := uc.Create(context.Background(), newPart())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.PartID, "PRT-"), out.PartID)
}

func TestPartCreate_NegativeStockRejected(t *testing.T) {
	store := memstore.New()
	uc := NewPartUseCase(store.Parts, store.PartsOrders)
	p := newPart()
	p.QuantityAvailable = ptr(-1)

	_, err := uc.Create(context.Background(), p)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPartCreate_StockAndPriceRequired(t *testing.T) {
	store := memstore.New()
	uc := NewPartUseCase(store.Parts, store.PartsOrders)

	_, err := uc.Create(context.Background(), &dto.CreatePartRequest{PartName: "X", PartNumber: "N", PartCategory: "C"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	for _, field := range []string{"quantity_available", "reorder_level", "unit_price"} {
		assert.Contains(t, err.Error(), field)
	}
	assert.Equal(t, 0, store.Parts.Len())

	// Cero explícito sí es válido.
	p := newPart()
	p.QuantityAvailable, p.ReorderLevel, p.UnitPrice = ptr(0), ptr(0), ptr(decimal.Zero)
	out, err := uc.Create(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 0, out.QuantityAvailable)
	assert.True(t, out.UnitPrice.IsZero())
}

func TestPartDelete_ReferentialGuard(t *testing.T) {
	store := memstore.New()
	uc := NewPartUseCase(store.Parts, store.PartsOrders)
	ctx := context.Background()

	referenced, err := uc.Create(ctx, newPart())
	require.NoError(t, err)
	free, err := uc.Create(ctx, newPart())
	require.NoError(t, err)

	store.PartsOrders.Seed(entity.PartsOrder{
		PartsOrderID: "PO-1", PartID: referenced.PartID, QuantityOrdered: 1,
		OrderStatus: entity.OrderStatusPending, PaymentStatus: entity.PaymentStatusPending,
	})

	assert.ErrorIs(t, uc.Delete(ctx, referenced.PartID), domain.ErrPartReferenced)
	got, err := uc.Get(ctx, referenced.PartID)
	require.NoError(t, err)
	assert.NotNil(t, got)

	require.NoError(t, uc.Delete(ctx, free.PartID))
	got, err = uc.Get(ctx, free.PartID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, uc.Delete(ctx, "PRT-404"), domain.ErrNotFound)
}

type racingRefs struct{}

func (racingRefs) CountByPart(context.Context, string) (int, error) { return 0, nil }

func TestPartDelete_ForeignKeyConflictMapped(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()
	// El conteo no ve el pedido, pero la FK del almacén sí.
	uc := NewPartUseCase(store.Parts, racingRefs{})
	p, err := uc.Create(ctx, newPart())
	require.NoError(t, err)
	store.PartsOrders.Seed(entity.PartsOrder{PartsOrderID: "PO-1", PartID: p.PartID, QuantityOrdered: 1})

	assert.ErrorIs(t, uc.Delete(ctx, p.PartID), domain.ErrPartReferenced)
}

func TestPartUpdate_ManualStockEdit(t *testing.T) {
	store := memstore.New()
	uc := NewPartUseCase(store.Parts, store.PartsOrders)
	ctx := context.Background()
	p, err := uc.Create(ctx, newPart())
	require.NoError(t, err)

	out, err := uc.Update(ctx, p.PartID, entity.PartPatch{QuantityAvailable: ptr(0)})
	require.NoError(t, err)
	assert.Equal(t, 0, out.QuantityAvailable)
	assert.True(t, out.LowStock())

	_, err = uc.Update(ctx, p.PartID, entity.PartPatch{QuantityAvailable: ptr(-3)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
