package postgres

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

// assignment columna = valor de un UPDATE parcial.
type assignment struct {
	column string
	value  any
}

// setIf agrega la asignación solo si el campo del patch viene informado.
func setIf[V any](list []assignment, column string, v *V) []assignment {
	if v == nil {
		return list
	}
	return append(list, assignment{column: column, value: *v})
}

func selectList(columns []string) string {
	return "id, " + strings.Join(columns, ", ") + ", created_at, updated_at"
}

// buildWhere arma el WHERE con los filtros permitidos en orden estable.
// Los filtros que no están en allowed se ignoran.
func buildWhere(filters map[string]string, allowed map[string]string, next int) (string, []any) {
	names := make([]string, 0, len(filters))
	for name := range filters {
		if _, ok := allowed[name]; ok {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", nil
	}
	sort.Strings(names)
	conds := make([]string, 0, len(names))
	args := make([]any, 0, len(names))
	for _, name := range names {
		conds = append(conds, fmt.Sprintf("%s = $%d", allowed[name], next))
		args = append(args, filters[name])
		next++
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func buildInsert(table string, columns []string) string {
	cols := append(append([]string{}, columns...), "created_at", "updated_at")
	ph := make([]string, len(cols))
	for i := range cols {
		ph[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		table, strings.Join(cols, ", "), strings.Join(ph, ", "))
}

// buildUpdate arma UPDATE ... SET (campos del patch + updated_at) WHERE key RETURNING fila completa.
func buildUpdate(table, keyColumn string, columns []string, set []assignment, updatedAt time.Time, key string) (string, []any) {
	parts := make([]string, 0, len(set)+1)
	args := make([]any, 0, len(set)+2)
	for i, a := range set {
		parts = append(parts, fmt.Sprintf("%s = $%d", a.column, i+1))
		args = append(args, a.value)
	}
	n := len(set)
	parts = append(parts, fmt.Sprintf("updated_at = $%d", n+1))
	args = append(args, updatedAt, key)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d RETURNING %s",
		table, strings.Join(parts, ", "), keyColumn, n+2, selectList(columns))
	return query, args
}

// values desreferencia los punteros de fields para usarlos como argumentos.
func values(ptrs []any) []any {
	out := make([]any, len(ptrs))
	for i, p := range ptrs {
		out[i] = reflect.ValueOf(p).Elem().Interface()
	}
	return out
}

func wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
