// Package memstore implementa los puertos de repositorio en memoria para tests.
// Las transacciones se serializan y guardan una copia del estado al iniciar;
// si el callback falla se restaura la copia. InjectFault permite forzar errores
// en una operación concreta para verificar rollbacks.
package memstore

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/dealership-api/internal/domain"
	"github.com/jhoicas/dealership-api/internal/domain/entity"
	"github.com/jhoicas/dealership-api/internal/domain/repository"
)

type recordPtr[T any] interface {
	*T
	entity.Record
}

// Store agrupa todas las tablas en memoria.
type Store struct {
	mu     sync.Mutex // protege filas, ids y fallas
	txMu   sync.Mutex // serializa transacciones (equivale al FOR UPDATE)
	nextID int64
	faults map[string]error
	tables []snapshotter

	Accounting          *Table[entity.Accounting, *entity.Accounting, entity.AccountingPatch]
	Audits              *Table[entity.Audit, *entity.Audit, entity.AuditPatch]
	Communications      *Table[entity.Communication, *entity.Communication, entity.CommunicationPatch]
	Compliance          *Table[entity.Compliance, *entity.Compliance, entity.CompliancePatch]
	CustomerEngagements *Table[entity.CustomerEngagement, *entity.CustomerEngagement, entity.CustomerEngagementPatch]
	CustomerService     *Table[entity.CustomerServiceTicket, *entity.CustomerServiceTicket, entity.CustomerServiceTicketPatch]
	SalesOrders         *Table[entity.SalesOrder, *entity.SalesOrder, entity.SalesOrderPatch]
	RepairOrders        *Table[entity.RepairOrder, *entity.RepairOrder, entity.RepairOrderPatch]
	ServiceHistory      *Table[entity.ServiceRecord, *entity.ServiceRecord, entity.ServiceRecordPatch]
	Scheduling          *Table[entity.Appointment, *entity.Appointment, entity.AppointmentPatch]
	StockInventory      *Table[entity.Vehicle, *entity.Vehicle, entity.VehiclePatch]
	Parts               *PartTable
	PartsOrders         *PartsOrderTable
}

// New crea un Store vacío.
func New() *Store {
	s := &Store{faults: map[string]error{}}
	s.Accounting = newTable[entity.Accounting, *entity.Accounting, entity.AccountingPatch](s, "accounting")
	s.Audits = newTable[entity.Audit, *entity.Audit, entity.AuditPatch](s, "audits")
	s.Communications = newTable[entity.Communication, *entity.Communication, entity.CommunicationPatch](s, "communication")
	s.Compliance = newTable[entity.Compliance, *entity.Compliance, entity.CompliancePatch](s, "compliance")
	s.CustomerEngagements = newTable[entity.CustomerEngagement, *entity.CustomerEngagement, entity.CustomerEngagementPatch](s, "customer_engagements")
	s.CustomerService = newTable[entity.CustomerServiceTicket, *entity.CustomerServiceTicket, entity.CustomerServiceTicketPatch](s, "customer_service")
	s.SalesOrders = newTable[entity.SalesOrder, *entity.SalesOrder, entity.SalesOrderPatch](s, "order_management")
	s.RepairOrders = newTable[entity.RepairOrder, *entity.RepairOrder, entity.RepairOrderPatch](s, "repair_orders")
	s.ServiceHistory = newTable[entity.ServiceRecord, *entity.ServiceRecord, entity.ServiceRecordPatch](s, "service_history")
	s.Scheduling = newTable[entity.Appointment, *entity.Appointment, entity.AppointmentPatch](s, "service_scheduling")
	s.StockInventory = newTable[entity.Vehicle, *entity.Vehicle, entity.VehiclePatch](s, "stock_inventory")
	s.Parts = &PartTable{Table: newTable[entity.Part, *entity.Part, entity.PartPatch](s, "parts_inventory")}
	s.PartsOrders = &PartsOrderTable{Table: newTable[entity.PartsOrder, *entity.PartsOrder, entity.PartsOrderPatch](s, "parts_orders")}

	// Emula la FK parts_orders.part_id -> parts_inventory.part_id.
	s.PartsOrders.beforeCreate = func(o *entity.PartsOrder) error {
		if _, ok := s.Parts.rows[o.PartID]; !ok {
			return domain.ErrConflict
		}
		return nil
	}
	s.Parts.beforeDelete = func(partID string) error {
		for _, o := range s.PartsOrders.rows {
			if o.PartID == partID {
				return domain.ErrConflict
			}
		}
		return nil
	}
	s.PartsOrders.afterPatch = func(o *entity.PartsOrder, p entity.PartsOrderPatch) {
		if p.TotalCost != nil {
			o.TotalCost = *p.TotalCost
		}
	}
	return s
}

// InjectFault hace que la próxima llamada a op ("tabla.operación", p. ej. "parts_orders.update") devuelva err.
func (s *Store) InjectFault(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[op] = err
}

func (s *Store) fault(op string) error {
	if err, ok := s.faults[op]; ok {
		delete(s.faults, op)
		return err
	}
	return nil
}

// RunProcurement ejecuta fn como una transacción: si devuelve error se restaura el estado previo.
func (s *Store) RunProcurement(ctx context.Context, fn func(
	orders repository.PartsOrderRepository,
	parts repository.PartRepository,
) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	restores := make([]func(), 0, len(s.tables))
	for _, t := range s.tables {
		restores = append(restores, t.snapshot())
	}
	s.mu.Unlock()

	if err := fn(s.PartsOrders, s.Parts); err != nil {
		s.mu.Lock()
		for _, restore := range restores {
			restore()
		}
		s.mu.Unlock()
		return err
	}
	return nil
}

type snapshotter interface {
	snapshot() func()
}

// Table tabla genérica indexada por clave de negocio.
type Table[T any, PT recordPtr[T], P entity.Patch] struct {
	s            *Store
	name         string
	rows         map[string]T
	beforeCreate func(*T) error
	beforeDelete func(key string) error
	afterPatch   func(*T, P)
}

func newTable[T any, PT recordPtr[T], P entity.Patch](s *Store, name string) *Table[T, PT, P] {
	t := &Table[T, PT, P]{s: s, name: name, rows: map[string]T{}}
	s.tables = append(s.tables, t)
	return t
}

func (t *Table[T, PT, P]) snapshot() func() {
	saved := maps.Clone(t.rows)
	return func() { t.rows = saved }
}

// Seed inserta filas tal cual, sin validar (fixtures de tests).
func (t *Table[T, PT, P]) Seed(recs ...T) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for i := range recs {
		t.s.nextID++
		PT(&recs[i]).RecordMeta().ID = t.s.nextID
		t.rows[PT(&recs[i]).RecordKey()] = recs[i]
	}
}

// Len cantidad de filas.
func (t *Table[T, PT, P]) Len() int {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return len(t.rows)
}

func (t *Table[T, PT, P]) List(ctx context.Context, q repository.ListQuery) ([]T, int, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if err := t.s.fault(t.name + ".list"); err != nil {
		return nil, 0, err
	}

	var matched []T
	for _, rec := range t.rows {
		ok, err := matches(rec, q.Filters)
		if err != nil {
			return nil, 0, err
		}
		if ok {
			matched = append(matched, rec)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		mi, mj := PT(&matched[i]).RecordMeta(), PT(&matched[j]).RecordMeta()
		if !mi.CreatedAt.Equal(mj.CreatedAt) {
			return mi.CreatedAt.After(mj.CreatedAt)
		}
		return PT(&matched[i]).RecordKey() < PT(&matched[j]).RecordKey()
	})

	total := len(matched)
	start := min(q.Offset, total)
	end := total
	if q.Limit > 0 {
		end = min(start+q.Limit, total)
	}
	return append([]T{}, matched[start:end]...), total, nil
}

func (t *Table[T, PT, P]) GetByKey(ctx context.Context, key string) (*T, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if err := t.s.fault(t.name + ".get"); err != nil {
		return nil, err
	}
	rec, ok := t.rows[key]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (t *Table[T, PT, P]) Create(ctx context.Context, rec *T) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if err := t.s.fault(t.name + ".create"); err != nil {
		return err
	}
	key := PT(rec).RecordKey()
	if _, exists := t.rows[key]; exists {
		return domain.ErrDuplicate
	}
	if t.beforeCreate != nil {
		if err := t.beforeCreate(rec); err != nil {
			return err
		}
	}
	t.s.nextID++
	PT(rec).RecordMeta().ID = t.s.nextID
	t.rows[key] = *rec
	return nil
}

// Update combina el JSON de la fila con el del patch: los campos omitidos del patch no se tocan.
func (t *Table[T, PT, P]) Update(ctx context.Context, key string, patch P, updatedAt time.Time) (*T, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if err := t.s.fault(t.name + ".update"); err != nil {
		return nil, err
	}
	cur, ok := t.rows[key]
	if !ok {
		return nil, nil
	}
	next, err := merge(cur, patch)
	if err != nil {
		return nil, fmt.Errorf("merge %s: %w", t.name, err)
	}
	if t.afterPatch != nil {
		t.afterPatch(&next, patch)
	}
	PT(&next).RecordMeta().UpdatedAt = updatedAt
	t.rows[key] = next
	return &next, nil
}

func (t *Table[T, PT, P]) Delete(ctx context.Context, key string) (bool, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if err := t.s.fault(t.name + ".delete"); err != nil {
		return false, err
	}
	if _, ok := t.rows[key]; !ok {
		return false, nil
	}
	if t.beforeDelete != nil {
		if err := t.beforeDelete(key); err != nil {
			return false, err
		}
	}
	delete(t.rows, key)
	return true, nil
}

// PartTable inventario de repuestos con acreditación de stock.
type PartTable struct {
	*Table[entity.Part, *entity.Part, entity.PartPatch]
}

func (t *PartTable) AddStock(ctx context.Context, partID string, qty int, restockedAt time.Time) (bool, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if err := t.s.fault(t.name + ".add_stock"); err != nil {
		return false, err
	}
	p, ok := t.rows[partID]
	if !ok {
		return false, nil
	}
	p.QuantityAvailable += qty
	p.LastRestockedDate = &restockedAt
	p.UpdatedAt = restockedAt
	t.rows[partID] = p
	return true, nil
}

// PartsOrderTable pedidos de repuestos.
type PartsOrderTable struct {
	*Table[entity.PartsOrder, *entity.PartsOrder, entity.PartsOrderPatch]
}

// GetForUpdate equivale a GetByKey: el bloqueo lo da la serialización de RunProcurement.
func (t *PartsOrderTable) GetForUpdate(ctx context.Context, id string) (*entity.PartsOrder, error) {
	return t.GetByKey(ctx, id)
}

func (t *PartsOrderTable) CountByPart(ctx context.Context, partID string) (int, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	n := 0
	for _, o := range t.rows {
		if o.PartID == partID {
			n++
		}
	}
	return n, nil
}

var (
	_ repository.PartRepository       = (*PartTable)(nil)
	_ repository.PartsOrderRepository = (*PartsOrderTable)(nil)
	_ repository.AccountingRepository = (*Table[entity.Accounting, *entity.Accounting, entity.AccountingPatch])(nil)
)

func merge[T any, P any](cur T, patch P) (T, error) {
	var out T
	base, err := toMap(cur)
	if err != nil {
		return out, err
	}
	changes, err := toMap(patch)
	if err != nil {
		return out, err
	}
	maps.Copy(base, changes)
	raw, err := json.Marshal(base)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(raw, &out)
	return out, err
}

func toMap(v any) (map[string]json.RawMessage, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	m := map[string]json.RawMessage{}
	err = json.Unmarshal(raw, &m)
	return m, err
}

// matches compara los filtros contra el valor JSON del campo. Filtros desconocidos se ignoran.
func matches[T any](rec T, filters map[string]string) (bool, error) {
	if len(filters) == 0 {
		return true, nil
	}
	m, err := toMap(rec)
	if err != nil {
		return false, err
	}
	for name, want := range filters {
		raw, ok := m[name]
		if !ok {
			continue
		}
		var got any
		if err := json.Unmarshal(raw, &got); err != nil {
			return false, err
		}
		if fmt.Sprint(got) != want {
			return false, nil
		}
	}
	return true, nil
}
