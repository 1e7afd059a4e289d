package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dealership-api/internal/application/procurement"
	"github.com/jhoicas/dealership-api/internal/application/usecase"
	"github.com/jhoicas/dealership-api/internal/domain/entity"
	apphttp "github.com/jhoicas/dealership-api/internal/interfaces/http"
	"github.com/jhoicas/dealership-api/internal/testutil/memstore"
	"github.com/jhoicas/dealership-api/pkg/config"
	"github.com/jhoicas/dealership-api/pkg/logger"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
	Total   int             `json:"total"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func testConfig() *config.Config {
	return &config.Config{
		App:        config.AppConfig{Name: "dealership-api-test", Env: "test"},
		HTTP:       config.HTTPConfig{ReadTimeout: 5 * time.Second, WriteTimeout: 5 * time.Second, CORSOrigins: "*"},
		Pagination: config.PaginationConfig{DefaultLimit: 20, MaxLimit: 100},
	}
}

func newTestApp(t *testing.T, cfg *config.Config, db apphttp.Pinger) (*fiber.App, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	app := apphttp.NewApp(cfg, apphttp.RouterDeps{
		Accounting:          usecase.NewAccountingUseCase(store.Accounting),
		Audits:              usecase.NewAuditUseCase(store.Audits),
		Communications:      usecase.NewCommunicationUseCase(store.Communications),
		Compliance:          usecase.NewComplianceUseCase(store.Compliance),
		CustomerEngagements: usecase.NewCustomerEngagementUseCase(store.CustomerEngagements),
		CustomerService:     usecase.NewCustomerServiceUseCase(store.CustomerService),
		SalesOrders:         usecase.NewSalesOrderUseCase(store.SalesOrders),
		Parts:               usecase.NewPartUseCase(store.Parts, store.PartsOrders),
		PartsOrders:         procurement.NewUseCase(store.PartsOrders, store.Parts, store, nil),
		RepairOrders:        usecase.NewRepairOrderUseCase(store.RepairOrders),
		ServiceHistory:      usecase.NewServiceRecordUseCase(store.ServiceHistory),
		Scheduling:          usecase.NewAppointmentUseCase(store.Scheduling),
		StockInventory:      usecase.NewVehicleUseCase(store.StockInventory),
		DB:                  db,
		Log:                 logger.Nop(),
		JWT:                 cfg.JWT,
		Pagination:          cfg.Pagination,
	})
	return app, store
}

func call(t *testing.T, app *fiber.App, method, path, body string, headers ...string) (int, envelope) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

const partBody = `{"part_name":"Filtro de aire","part_number":"AF-77","quantity_available":10,
	"reorder_level":2,"unit_price":"12.50","part_category":"Filtros"}`

func createPart(t *testing.T, app *fiber.App) entity.Part {
	t.Helper()
	status, env := call(t, app, http.MethodPost, "/api/parts-inventory", partBody)
	require.Equal(t, http.StatusCreated, status, env.Error)
	return decode[entity.Part](t, env.Data)
}

func createOrder(t *testing.T, app *fiber.App, partID string) entity.PartsOrder {
	t.Helper()
	status, env := call(t, app, http.MethodPost, "/api/parts-orders", `{"part_id":"`+partID+`",
		"quantity_ordered":4,"supplier_id":"SUP-1","unit_cost":25,"order_status":"Pending","payment_status":"Pending"}`)
	require.Equal(t, http.StatusCreated, status, env.Error)
	return decode[entity.PartsOrder](t, env.Data)
}

func TestPartsOrders_DeliveryFlow(t *testing.T) {
	app, _ := newTestApp(t, testConfig(), nil)
	part := createPart(t, app)
	order := createOrder(t, app, part.PartID)

	assert.True(t, strings.HasPrefix(order.PartsOrderID, "PO-"))
	assert.True(t, decimal.NewFromInt(100).Equal(order.TotalCost))

	status, env := call(t, app, http.MethodPut, "/api/parts-orders/"+order.PartsOrderID, `{"order_status":"Delivered"}`)
	require.Equal(t, http.StatusOK, status, env.Error)
	assert.Equal(t, entity.OrderStatusDelivered, decode[entity.PartsOrder](t, env.Data).OrderStatus)

	status, env = call(t, app, http.MethodGet, "/api/parts-inventory/"+part.PartID, "")
	require.Equal(t, http.StatusOK, status)
	got := decode[entity.Part](t, env.Data)
	assert.Equal(t, 14, got.QuantityAvailable)
	assert.NotNil(t, got.LastRestockedDate)

	// Delivered: no se puede borrar y sigue consultable.
	status, env = call(t, app, http.MethodDelete, "/api/parts-orders/"+order.PartsOrderID, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.Equal(t, "DELIVERED_ORDER", env.Code)

	status, _ = call(t, app, http.MethodGet, "/api/parts-orders/"+order.PartsOrderID, "")
	assert.Equal(t, http.StatusOK, status)

	// El repuesto tiene un pedido: no se puede borrar.
	status, env = call(t, app, http.MethodDelete, "/api/parts-inventory/"+part.PartID, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "PART_REFERENCED", env.Code)
}

func TestPartsOrders_CreateValidation(t *testing.T) {
	app, _ := newTestApp(t, testConfig(), nil)

	status, env := call(t, app, http.MethodPost, "/api/parts-orders", `{"part_id":"PRT-1"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", env.Code)
	assert.Contains(t, env.Error, "quantity_ordered")

	status, env = call(t, app, http.MethodPost, "/api/parts-orders", `{"part_id":"PRT-404",
		"quantity_ordered":1,"supplier_id":"SUP-1","unit_cost":5,"order_status":"Pending","payment_status":"Pending"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "UNKNOWN_PART", env.Code)

	status, env = call(t, app, http.MethodPost, "/api/parts-orders", `{"part_id":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_BODY", env.Code)
}

func TestParts_CreateRequiresStockAndPrice(t *testing.T) {
	app, store := newTestApp(t, testConfig(), nil)

	status, env := call(t, app, http.MethodPost, "/api/parts-inventory",
		`{"part_name":"Correa","part_number":"TB-1","part_category":"Motor"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", env.Code)
	for _, field := range []string{"quantity_available", "reorder_level", "unit_price"} {
		assert.Contains(t, env.Error, field)
	}
	assert.Equal(t, 0, store.Parts.Len())

	status, env = call(t, app, http.MethodPost, "/api/parts-inventory",
		`{"part_name":"Correa","part_number":"TB-1","part_category":"Motor","quantity_available":0,"reorder_level":0,"unit_price":0}`)
	require.Equal(t, http.StatusCreated, status, env.Error)
	assert.Equal(t, 0, decode[entity.Part](t, env.Data).QuantityAvailable)
}

func TestUpdate_RequiredTextCannotBeBlanked(t *testing.T) {
	app, _ := newTestApp(t, testConfig(), nil)
	part := createPart(t, app)

	status, env := call(t, app, http.MethodPut, "/api/parts-inventory/"+part.PartID, `{"part_category":""}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", env.Code)
	assert.Contains(t, env.Error, "part_category")
}

func TestNotFoundIsDistinct(t *testing.T) {
	app, _ := newTestApp(t, testConfig(), nil)

	patches := map[string]string{
		"/api/parts-orders/":     `{"order_status":"Confirmed"}`,
		"/api/customer-service/": `{"status":"Closed"}`,
		"/api/stock-inventory/":  `{"status":"Sold"}`,
	}
	for base, patch := range patches {
		status, env := call(t, app, http.MethodGet, base+"nope", "")
		assert.Equal(t, http.StatusNotFound, status, base)
		assert.Equal(t, "NOT_FOUND", env.Code)

		status, env = call(t, app, http.MethodPut, base+"nope", patch)
		assert.Equal(t, http.StatusNotFound, status, base)
		assert.Equal(t, "NOT_FOUND", env.Code)

		status, env = call(t, app, http.MethodDelete, base+"nope", "")
		assert.Equal(t, http.StatusNotFound, status, base)
		assert.Equal(t, "NOT_FOUND", env.Code)
	}
}

func TestUpdate_NothingToUpdate(t *testing.T) {
	app, _ := newTestApp(t, testConfig(), nil)
	part := createPart(t, app)

	status, env := call(t, app, http.MethodPut, "/api/parts-inventory/"+part.PartID, `{}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "NOTHING_TO_UPDATE", env.Code)
}

func TestServerErrorCarriesMessage(t *testing.T) {
	app, store := newTestApp(t, testConfig(), nil)
	store.InjectFault("parts_orders.list", errors.New("conexión perdida"))

	status, env := call(t, app, http.MethodGet, "/api/parts-orders", "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.False(t, env.Success)
	assert.Equal(t, "INTERNAL", env.Code)
	assert.Contains(t, env.Error, "conexión perdida")
}

func TestDeliveryRollbackReturns500(t *testing.T) {
	app, store := newTestApp(t, testConfig(), nil)
	part := createPart(t, app)
	order := createOrder(t, app, part.PartID)
	store.InjectFault("parts_orders.update", errors.New("deadlock detected"))

	status, _ := call(t, app, http.MethodPut, "/api/parts-orders/"+order.PartsOrderID, `{"order_status":"Delivered"}`)
	assert.Equal(t, http.StatusInternalServerError, status)

	_, env := call(t, app, http.MethodGet, "/api/parts-inventory/"+part.PartID, "")
	assert.Equal(t, 10, decode[entity.Part](t, env.Data).QuantityAvailable)
	_, env = call(t, app, http.MethodGet, "/api/parts-orders/"+order.PartsOrderID, "")
	assert.Equal(t, entity.OrderStatusPending, decode[entity.PartsOrder](t, env.Data).OrderStatus)
}

func TestList_EnvelopeFiltersAndPages(t *testing.T) {
	app, _ := newTestApp(t, testConfig(), nil)
	for _, priority := range []string{"High", "Low", "High"} {
		status, env := call(t, app, http.MethodPost, "/api/customer-service", `{"customer_id":"CUST-1",
			"issue_type":"Warranty","priority":"`+priority+`","status":"Open","description":"Ruido"}`)
		require.Equal(t, http.StatusCreated, status, env.Error)
	}

	status, env := call(t, app, http.MethodGet, "/api/customer-service?priority=High&limit=1&page=2&unknown=x", "")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
	assert.Equal(t, 2, env.Total)
	assert.Equal(t, 1, env.Limit)
	assert.Equal(t, 1, env.Offset)
	assert.Len(t, decode[[]entity.CustomerServiceTicket](t, env.Data), 1)

	_, again := call(t, app, http.MethodGet, "/api/customer-service?priority=High&limit=1&page=2", "")
	assert.Equal(t, env.Total, again.Total)
	assert.JSONEq(t, string(env.Data), string(again.Data))

	status, env = call(t, app, http.MethodGet, "/api/customer-service?limit=1000", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 100, env.Limit)

	status, env = call(t, app, http.MethodGet, "/api/customer-service?limit=diez", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", env.Code)

	status, env = call(t, app, http.MethodGet, "/api/audits", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestStatsEndpoint(t *testing.T) {
	app, _ := newTestApp(t, testConfig(), nil)
	part := createPart(t, app)
	createOrder(t, app, part.PartID)
	createOrder(t, app, part.PartID)

	status, env := call(t, app, http.MethodGet, "/api/parts-orders/stats", "")
	require.Equal(t, http.StatusOK, status)
	var s struct {
		Count     int             `json:"count"`
		TotalCost decimal.Decimal `json:"total_cost"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &s))
	assert.Equal(t, 2, s.Count)
	assert.True(t, decimal.NewFromInt(200).Equal(s.TotalCost))

	status, env = call(t, app, http.MethodGet, "/api/parts-inventory/stats", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"total_parts":1`)
}

func TestDuplicateKeyIsConflict(t *testing.T) {
	app, _ := newTestApp(t, testConfig(), nil)
	body := `{"stock_id":"STK-9","vin":"1HGCM82633A004352","make":"Honda","model":"Civic","year":2022,
		"condition":"Used","status":"Available","list_price":"18500"}`

	status, env := call(t, app, http.MethodPost, "/api/stock-inventory", body)
	require.Equal(t, http.StatusCreated, status, env.Error)
	status, env = call(t, app, http.MethodPost, "/api/stock-inventory", body)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "DUPLICATE", env.Code)
}

func TestAuthEnabled_DeleteRequiresRole(t *testing.T) {
	cfg := testConfig()
	cfg.JWT = config.JWTConfig{Secret: testJWTSecret, Issuer: testIssuer}
	app, _ := newTestApp(t, cfg, nil)

	status, env := call(t, app, http.MethodGet, "/api/parts-orders", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_TOKEN", env.Code)

	status, _ = call(t, app, http.MethodGet, "/api/parts-orders", "", "Authorization", tokenForRole(t, "staff"))
	assert.Equal(t, http.StatusOK, status)

	status, _ = call(t, app, http.MethodDelete, "/api/parts-orders/PO-1", "", "Authorization", tokenForRole(t, "staff"))
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = call(t, app, http.MethodDelete, "/api/parts-orders/PO-1", "", "Authorization", tokenForRole(t, "manager"))
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t, testConfig(), fakePinger{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
	resp.Body.Close()

	down, _ := newTestApp(t, testConfig(), fakePinger{err: errors.New("connection refused")})
	resp, err = down.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	resp.Body.Close()
}
