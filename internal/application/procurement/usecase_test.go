package procurement_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dealership-api/internal/application/dto"
	"github.com/jhoicas/dealership-api/internal/application/procurement"
	"github.com/jhoicas/dealership-api/internal/domain"
	"github.com/jhoicas/dealership-api/internal/domain/entity"
	"github.com/jhoicas/dealership-api/internal/domain/repository"
	"github.com/jhoicas/dealership-api/internal/testutil/memstore"
)

var _ procurement.TxRunner = (*memstore.Store)(nil)

func ptr[T any](v T) *T { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func setup(t *testing.T) (*procurement.UseCase, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	created := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	store.Parts.Seed(entity.Part{
		Meta:              entity.Meta{CreatedAt: created, UpdatedAt: created},
		PartID:            "PRT-1",
		PartName:          "Filtro de aceite",
		PartNumber:        "FO-100",
		QuantityAvailable: 10,
		ReorderLevel:      3,
		UnitPrice:         dec("12.50"),
		PartCategory:      "Filtros",
	})
	store.PartsOrders.Seed(entity.PartsOrder{
		Meta:            entity.Meta{CreatedAt: created, UpdatedAt: created},
		PartsOrderID:    "PO-1",
		PartID:          "PRT-1",
		QuantityOrdered: 3,
		SupplierID:      "SUP-9",
		OrderStatus:     entity.OrderStatusPending,
		UnitCost:        dec("100"),
		TotalCost:       dec("300"),
		PaymentStatus:   entity.PaymentStatusPending,
	})
	uc := procurement.NewUseCase(store.PartsOrders, store.Parts, store, nil)
	return uc, store
}

func part(t *testing.T, store *memstore.Store) *entity.Part {
	t.Helper()
	p, err := store.Parts.GetByKey(context.Background(), "PRT-1")
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func TestUpdate_DeliveredCreditsStock(t *testing.T) {
	uc, store := setup(t)
	ctx := context.Background()

	out, err := uc.Update(ctx, "PO-1", entity.PartsOrderPatch{OrderStatus: ptr(entity.OrderStatusDelivered)})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, out.OrderStatus)

	p := part(t, store)
	assert.Equal(t, 13, p.QuantityAvailable)
	require.NotNil(t, p.LastRestockedDate)
	assert.True(t, p.LastRestockedDate.After(time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)))
}

func TestUpdate_DeliveredTwiceCreditsOnce(t *testing.T) {
	uc, store := setup(t)
	ctx := context.Background()
	patch := entity.PartsOrderPatch{OrderStatus: ptr(entity.OrderStatusDelivered)}

	_, err := uc.Update(ctx, "PO-1", patch)
	require.NoError(t, err)
	_, err = uc.Update(ctx, "PO-1", patch)
	require.NoError(t, err)

	assert.Equal(t, 13, part(t, store).QuantityAvailable)
}

func TestUpdate_ConcurrentDeliveredCreditsOnce(t *testing.T) {
	uc, store := setup(t)
	ctx := context.Background()
	patch := entity.PartsOrderPatch{OrderStatus: ptr(entity.OrderStatusDelivered)}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = uc.Update(ctx, "PO-1", patch)
		}()
	}
	wg.Wait()

	assert.Equal(t, 13, part(t, store).QuantityAvailable)
}

func TestUpdate_RollbackWhenOrderUpdateFails(t *testing.T) {
	uc, store := setup(t)
	ctx := context.Background()
	store.InjectFault("parts_orders.update", errors.New("conexión perdida"))

	_, err := uc.Update(ctx, "PO-1", entity.PartsOrderPatch{OrderStatus: ptr(entity.OrderStatusDelivered)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conexión perdida")

	p := part(t, store)
	assert.Equal(t, 10, p.QuantityAvailable)
	assert.Nil(t, p.LastRestockedDate)

	o, err := uc.Get(ctx, "PO-1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, o.OrderStatus)
}

func TestUpdate_MissingPartRollsBack(t *testing.T) {
	store := memstore.New()
	store.PartsOrders.Seed(entity.PartsOrder{
		PartsOrderID: "PO-X", PartID: "PRT-GONE", QuantityOrdered: 2,
		OrderStatus: entity.OrderStatusPending, UnitCost: dec("1"), TotalCost: dec("2"),
		PaymentStatus: entity.PaymentStatusPending,
	})
	uc := procurement.NewUseCase(store.PartsOrders, store.Parts, store, nil)

	_, err := uc.Update(context.Background(), "PO-X", entity.PartsOrderPatch{OrderStatus: ptr(entity.OrderStatusDelivered)})
	assert.ErrorIs(t, err, domain.ErrUnknownPart)

	o, _ := uc.Get(context.Background(), "PO-X")
	assert.Equal(t, entity.OrderStatusPending, o.OrderStatus)
}

func TestUpdate_TotalCostRecomputed(t *testing.T) {
	ctx := context.Background()

	t.Run("solo unit_cost", func(t *testing.T) {
		uc, _ := setup(t)
		out, err := uc.Update(ctx, "PO-1", entity.PartsOrderPatch{UnitCost: ptr(dec("150"))})
		require.NoError(t, err)
		assert.True(t, dec("450").Equal(out.TotalCost), out.TotalCost.String())
	})

	t.Run("solo quantity_ordered", func(t *testing.T) {
		uc, _ := setup(t)
		out, err := uc.Update(ctx, "PO-1", entity.PartsOrderPatch{QuantityOrdered: ptr(5)})
		require.NoError(t, err)
		assert.True(t, dec("500").Equal(out.TotalCost), out.TotalCost.String())
	})

	t.Run("ninguno", func(t *testing.T) {
		uc, _ := setup(t)
		out, err := uc.Update(ctx, "PO-1", entity.PartsOrderPatch{SupplierID: ptr("SUP-2")})
		require.NoError(t, err)
		assert.True(t, dec("300").Equal(out.TotalCost), out.TotalCost.String())
	})
}

func TestUpdate_PartialIsolation(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()
	before, err := uc.Get(ctx, "PO-1")
	require.NoError(t, err)

	after, err := uc.Update(ctx, "PO-1", entity.PartsOrderPatch{PaymentStatus: ptr(entity.PaymentStatusPaid)})
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentStatusPaid, after.PaymentStatus)
	assert.Equal(t, before.OrderStatus, after.OrderStatus)
	assert.Equal(t, before.PartID, after.PartID)
	assert.Equal(t, before.QuantityOrdered, after.QuantityOrdered)
	assert.Equal(t, before.SupplierID, after.SupplierID)
	assert.Equal(t, before.DeliveryTrackingID, after.DeliveryTrackingID)
	assert.True(t, before.UnitCost.Equal(after.UnitCost))
	assert.True(t, before.TotalCost.Equal(after.TotalCost))
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
}

func TestUpdate_Errors(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()

	_, err := uc.Update(ctx, "PO-1", entity.PartsOrderPatch{})
	assert.ErrorIs(t, err, domain.ErrNothingToUpdate)

	_, err = uc.Update(ctx, "PO-404", entity.PartsOrderPatch{SupplierID: ptr("SUP-1")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update(ctx, "PO-1", entity.PartsOrderPatch{QuantityOrdered: ptr(0)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(ctx, "PO-1", entity.PartsOrderPatch{OrderStatus: ptr("Lost")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_DeliveredCannotLeaveStatus(t *testing.T) {
	uc, store := setup(t)
	ctx := context.Background()
	_, err := uc.Update(ctx, "PO-1", entity.PartsOrderPatch{OrderStatus: ptr(entity.OrderStatusDelivered)})
	require.NoError(t, err)

	_, err = uc.Update(ctx, "PO-1", entity.PartsOrderPatch{OrderStatus: ptr(entity.OrderStatusPending)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 13, part(t, store).QuantityAvailable)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("entregado se rechaza", func(t *testing.T) {
		uc, _ := setup(t)
		_, err := uc.Update(ctx, "PO-1", entity.PartsOrderPatch{OrderStatus: ptr(entity.OrderStatusDelivered)})
		require.NoError(t, err)

		err = uc.Delete(ctx, "PO-1")
		assert.ErrorIs(t, err, domain.ErrDeliveredOrder)

		o, err := uc.Get(ctx, "PO-1")
		require.NoError(t, err)
		assert.NotNil(t, o)
	})

	t.Run("pendiente se elimina", func(t *testing.T) {
		uc, _ := setup(t)
		require.NoError(t, uc.Delete(ctx, "PO-1"))
		o, err := uc.Get(ctx, "PO-1")
		require.NoError(t, err)
		assert.Nil(t, o)
	})

	t.Run("inexistente", func(t *testing.T) {
		uc, _ := setup(t)
		assert.ErrorIs(t, uc.Delete(ctx, "PO-404"), domain.ErrNotFound)
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	valid := func() dto.CreatePartsOrderRequest {
		return dto.CreatePartsOrderRequest{
			PartID:          "PRT-1",
			QuantityOrdered: ptr(4),
			SupplierID:      "SUP-1",
			UnitCost:        ptr(dec("25.25")),
			OrderStatus:     entity.OrderStatusConfirmed,
			PaymentStatus:   entity.PaymentStatusPending,
		}
	}

	t.Run("calcula total y genera clave", func(t *testing.T) {
		uc, _ := setup(t)
		out, err := uc.Create(ctx, valid())
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out.PartsOrderID, "PO-"))
		assert.True(t, dec("101").Equal(out.TotalCost))
		assert.False(t, out.CreatedAt.IsZero())
		assert.Equal(t, out.CreatedAt, out.UpdatedAt)
	})

	t.Run("campos faltantes", func(t *testing.T) {
		uc, _ := setup(t)
		in := valid()
		in.QuantityOrdered = nil
		in.SupplierID = ""
		_, err := uc.Create(ctx, in)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), "quantity_ordered")
		assert.Contains(t, err.Error(), "supplier_id")
	})

	t.Run("repuesto desconocido", func(t *testing.T) {
		uc, store := setup(t)
		in := valid()
		in.PartID = "PRT-404"
		_, err := uc.Create(ctx, in)
		assert.ErrorIs(t, err, domain.ErrUnknownPart)
		assert.Equal(t, 1, store.PartsOrders.Len())
	})

	t.Run("no nace entregado", func(t *testing.T) {
		uc, store := setup(t)
		in := valid()
		in.OrderStatus = entity.OrderStatusDelivered
		_, err := uc.Create(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, 10, part(t, store).QuantityAvailable)
	})

	t.Run("clave duplicada", func(t *testing.T) {
		uc, _ := setup(t)
		in := valid()
		in.PartsOrderID = "PO-1"
		_, err := uc.Create(ctx, in)
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})
}

func TestList_Idempotent(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := uc.Create(ctx, dto.CreatePartsOrderRequest{
			PartID: "PRT-1", QuantityOrdered: ptr(i + 1), SupplierID: "SUP-1",
			UnitCost: ptr(dec("1")), OrderStatus: entity.OrderStatusPending, PaymentStatus: entity.PaymentStatusPending,
		})
		require.NoError(t, err)
	}
	q := repository.ListQuery{Filters: map[string]string{"supplier_id": "SUP-1"}, Limit: 2, Offset: 0}

	first, total1, err := uc.List(ctx, q)
	require.NoError(t, err)
	second, total2, err := uc.List(ctx, q)
	require.NoError(t, err)

	assert.Equal(t, 3, total1)
	assert.Equal(t, total1, total2)
	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
}
