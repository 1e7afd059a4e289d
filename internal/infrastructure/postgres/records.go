package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/dealership-api/internal/domain/entity"
	"github.com/jhoicas/dealership-api/internal/domain/repository"
)

// recordTable describe cómo se mapea una entidad a su tabla.
// columns y fields van en el mismo orden; la primera columna es la clave de negocio.
type recordTable[T any, P entity.Patch] struct {
	name    string
	columns []string
	fields  func(*T) []any // punteros a los campos, sirven para Scan y como argumentos
	meta    func(*T) *entity.Meta
	filters map[string]string // parámetro de consulta -> columna
	orderBy string
	assign  func(P) []assignment
}

func (t *recordTable[T, P]) key() string { return t.columns[0] }

func (t *recordTable[T, P]) scanDest(rec *T) []any {
	m := t.meta(rec)
	dest := append([]any{&m.ID}, t.fields(rec)...)
	return append(dest, &m.CreatedAt, &m.UpdatedAt)
}

// recordRepo implementación genérica de repository.Records sobre PostgreSQL (usable con pool o tx).
type recordRepo[T any, P entity.Patch] struct {
	q     Querier
	table *recordTable[T, P]
}

func newRecordRepo[T any, P entity.Patch](q Querier, table *recordTable[T, P]) *recordRepo[T, P] {
	return &recordRepo[T, P]{q: q, table: table}
}

// List lista con filtros de igualdad, orden fijo y paginación. Devuelve también el total.
func (r *recordRepo[T, P]) List(ctx context.Context, lq repository.ListQuery) ([]T, int, error) {
	t := r.table
	where, args := buildWhere(lq.Filters, t.filters, 1)

	var total int
	if err := r.q.QueryRow(ctx, "SELECT COUNT(*) FROM "+t.name+where, args...).Scan(&total); err != nil {
		return nil, 0, wrap("count "+t.name, err)
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s, %s LIMIT $%d OFFSET $%d",
		selectList(t.columns), t.name, where, t.orderBy, t.key(), len(args)+1, len(args)+2)
	rows, err := r.q.Query(ctx, query, append(args, lq.Limit, lq.Offset)...)
	if err != nil {
		return nil, 0, wrap("list "+t.name, err)
	}
	defer rows.Close()

	list := make([]T, 0, lq.Limit)
	for rows.Next() {
		var rec T
		if err := rows.Scan(t.scanDest(&rec)...); err != nil {
			return nil, 0, wrap("scan "+t.name, err)
		}
		list = append(list, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrap("list "+t.name, err)
	}
	return list, total, nil
}

// GetByKey obtiene una fila por clave de negocio. Nil si no existe.
func (r *recordRepo[T, P]) GetByKey(ctx context.Context, key string) (*T, error) {
	return r.get(ctx, key, "")
}

func (r *recordRepo[T, P]) get(ctx context.Context, key, suffix string) (*T, error) {
	t := r.table
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1%s", selectList(t.columns), t.name, t.key(), suffix)
	var rec T
	if err := r.q.QueryRow(ctx, query, key).Scan(t.scanDest(&rec)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap("get "+t.name, err)
	}
	return &rec, nil
}

// Create inserta la fila y completa el id interno.
func (r *recordRepo[T, P]) Create(ctx context.Context, rec *T) error {
	t := r.table
	m := t.meta(rec)
	args := append(values(t.fields(rec)), m.CreatedAt, m.UpdatedAt)
	if err := r.q.QueryRow(ctx, buildInsert(t.name, t.columns), args...).Scan(&m.ID); err != nil {
		return mapWriteError(err, "insert "+t.name)
	}
	return nil
}

// Update escribe solo las columnas del patch más updated_at. Nil si la fila no existe.
func (r *recordRepo[T, P]) Update(ctx context.Context, key string, patch P, updatedAt time.Time) (*T, error) {
	t := r.table
	query, args := buildUpdate(t.name, t.key(), t.columns, t.assign(patch), updatedAt, key)
	var rec T
	if err := r.q.QueryRow(ctx, query, args...).Scan(t.scanDest(&rec)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapWriteError(err, "update "+t.name)
	}
	return &rec, nil
}

// Delete elimina por clave de negocio. False si no existía.
func (r *recordRepo[T, P]) Delete(ctx context.Context, key string) (bool, error) {
	t := r.table
	cmd, err := r.q.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE %s = $1", t.name, t.key()), key)
	if err != nil {
		return false, mapWriteError(err, "delete "+t.name)
	}
	return cmd.RowsAffected() > 0, nil
}
