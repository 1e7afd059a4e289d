package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dealership-api/internal/domain"
	"github.com/jhoicas/dealership-api/internal/domain/entity"
	"github.com/jhoicas/dealership-api/internal/domain/repository"
	"github.com/jhoicas/dealership-api/internal/testutil/memstore"
)

func ptr[T any](v T) *T { return &v }

func newTicket() *entity.CustomerServiceTicket {
	return &entity.CustomerServiceTicket{
		CustomerID:  "CUST-1",
		IssueType:   "Warranty",
		Priority:    "High",
		Status:      entity.TicketOpen,
		Description: "Ruido en la suspensión",
	}
}

func TestCreate_GeneratesTicketKey(t *testing.T) {
	store := memstore.New()
	uc := NewCustomerServiceUseCase(store.CustomerService)

	in := newTicket()
	in.TicketID = "cliente-no-decide"
	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.TicketID, "CS-"), out.TicketID)
	assert.NotZero(t, out.ID)
	assert.False(t, out.OpenedDate.IsZero())
	assert.Equal(t, out.CreatedAt, out.UpdatedAt)
}

func TestCreate_RequiredFields(t *testing.T) {
	store := memstore.New()
	uc := NewAccountingUseCase(store.Accounting)

	_, err := uc.Create(context.Background(), &entity.Accounting{AccountingID: "ACC-1", TransactionType: "Gift"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	for _, field := range []string{"transaction_date", "account_name", "amount", "transaction_type"} {
		assert.Contains(t, err.Error(), field)
	}
	assert.Equal(t, 0, store.Accounting.Len())
}

func TestCreate_ClientKeyAndDuplicate(t *testing.T) {
	store := memstore.New()
	uc := NewVehicleUseCase(store.StockInventory)
	v := func() *entity.Vehicle {
		return &entity.Vehicle{
			StockID: "STK-1", VIN: "1HGCM82633A004352", Make: "Honda", Model: "Accord", Year: 2023,
			Condition: "New", Status: entity.VehicleAvailable, ListPrice: decimal.NewFromInt(28000),
		}
	}
	out, err := uc.Create(context.Background(), v())
	require.NoError(t, err)
	assert.Equal(t, "STK-1", out.StockID)

	_, err = uc.Create(context.Background(), v())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUpdate_GenericRules(t *testing.T) {
	store := memstore.New()
	uc := NewCustomerServiceUseCase(store.CustomerService)
	ctx := context.Background()
	created, err := uc.Create(ctx, newTicket())
	require.NoError(t, err)

	_, err = uc.Update(ctx, created.TicketID, entity.CustomerServiceTicketPatch{})
	assert.ErrorIs(t, err, domain.ErrNothingToUpdate)

	_, err = uc.Update(ctx, "CS-404", entity.CustomerServiceTicketPatch{Status: ptr(entity.TicketClosed)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update(ctx, created.TicketID, entity.CustomerServiceTicketPatch{Priority: ptr("Whenever")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(ctx, created.TicketID, entity.CustomerServiceTicketPatch{Description: ptr("  ")})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "description")

	resolved := time.Date(2024, 3, 2, 15, 0, 0, 0, time.UTC)
	out, err := uc.Update(ctx, created.TicketID, entity.CustomerServiceTicketPatch{
		Status:       ptr(entity.TicketResolved),
		ResolvedDate: &resolved,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TicketResolved, out.Status)
	assert.True(t, resolved.Equal(*out.ResolvedDate))
	assert.Equal(t, created.Description, out.Description)
	assert.Equal(t, created.Priority, out.Priority)
	assert.False(t, out.UpdatedAt.Before(created.UpdatedAt))
}

func TestGetAndDelete_NotFound(t *testing.T) {
	store := memstore.New()
	uc := NewAuditUseCase(store.Audits)
	ctx := context.Background()

	got, err := uc.Get(ctx, "AUD-404")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, uc.Delete(ctx, "AUD-404"), domain.ErrNotFound)
}

func TestList_FiltersAndPagination(t *testing.T) {
	store := memstore.New()
	uc := NewRepairOrderUseCase(store.RepairOrders)
	ctx := context.Background()
	for i, status := range []string{"Open", "Open", "Completed", "Open"} {
		_, err := uc.Create(ctx, &entity.RepairOrder{
			RepairOrderID:    "RO-" + string(rune('A'+i)),
			CustomerID:       "CUST-1",
			VehicleVIN:       "VIN-1",
			IssueDescription: "Cambio de frenos",
			Status:           status,
		})
		require.NoError(t, err)
	}

	page, total, err := uc.List(ctx, repository.ListQuery{Filters: map[string]string{"status": "Open"}, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, page, 2)

	rest, _, err := uc.List(ctx, repository.ListQuery{Filters: map[string]string{"status": "Open"}, Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, rest, 1)
	assert.NotContains(t, page, rest[0])
}

func TestUpdate_RequiredTextCannotBeBlanked(t *testing.T) {
	store := memstore.New()
	uc := NewCommunicationUseCase(store.Communications)
	ctx := context.Background()
	created, err := uc.Create(ctx, &entity.Communication{
		CommunicationID:   "COM-1",
		CustomerID:        "CUST-1",
		CommunicationType: "Email",
		Subject:           "Recordatorio de servicio",
	})
	require.NoError(t, err)

	_, err = uc.Update(ctx, created.CommunicationID, entity.CommunicationPatch{Subject: ptr(""), CustomerID: ptr("")})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "subject")
	assert.Contains(t, err.Error(), "customer_id")

	got, err := uc.Get(ctx, created.CommunicationID)
	require.NoError(t, err)
	assert.Equal(t, "Recordatorio de servicio", got.Subject)
	assert.Equal(t, "CUST-1", got.CustomerID)

	vehicles := NewVehicleUseCase(store.StockInventory)
	_, err = vehicles.Update(ctx, "STK-1", entity.VehiclePatch{Make: ptr("")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	sales := NewSalesOrderUseCase(store.SalesOrders)
	_, err = sales.Update(ctx, "SO-1", entity.SalesOrderPatch{OrderDate: &time.Time{}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_DateDefaultsUseClock(t *testing.T) {
	store := memstore.New()
	fixed := time.Date(2024, 5, 6, 9, 30, 0, 0, time.UTC)
	ctx := context.Background()

	tickets := NewCustomerServiceUseCase(store.CustomerService)
	tickets.now = func() time.Time { return fixed }
	ticket, err := tickets.Create(ctx, newTicket())
	require.NoError(t, err)
	assert.True(t, fixed.Equal(ticket.OpenedDate))
	assert.True(t, fixed.Equal(ticket.CreatedAt))

	repairs := NewRepairOrderUseCase(store.RepairOrders)
	repairs.now = func() time.Time { return fixed }
	ro, err := repairs.Create(ctx, &entity.RepairOrder{
		RepairOrderID: "RO-1", CustomerID: "CUST-1", VehicleVIN: "VIN-1",
		IssueDescription: "Vibración al frenar", Status: "Open",
	})
	require.NoError(t, err)
	assert.True(t, fixed.Equal(ro.DateIn))

	// Una fecha enviada por el cliente se respeta.
	sent := fixed.Add(-48 * time.Hour)
	comms := NewCommunicationUseCase(store.Communications)
	comms.now = func() time.Time { return fixed }
	com, err := comms.Create(ctx, &entity.Communication{
		CommunicationID: "COM-9", CustomerID: "CUST-1", CommunicationType: "SMS",
		Subject: "Vehículo listo", SentDate: sent,
	})
	require.NoError(t, err)
	assert.True(t, sent.Equal(com.SentDate))
}
