package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/dealership-api/internal/domain"
)

// Meta columnas comunes a todas las tablas: id interno y marcas de tiempo.
// Las URLs usan la clave de negocio, nunca el id interno.
type Meta struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordMeta expone Meta a los adaptadores genéricos.
func (m *Meta) RecordMeta() *Meta { return m }

// Stamp fija created_at y updated_at al crear el registro.
func (m *Meta) Stamp(now time.Time) {
	m.CreatedAt = now
	m.UpdatedAt = now
}

// Record contrato de las entidades gestionadas por el CRUD genérico.
type Record interface {
	RecordMeta() *Meta
	RecordKey() string
	SetRecordKey(key string)
	// Prepare aplica valores por defecto (fechas relativas a now) y valida campos requeridos y enumerados.
	Prepare(now time.Time) error
}

// Patch actualización parcial: los campos nil no se modifican.
type Patch interface {
	IsEmpty() bool
	Validate() error
}

// checker acumula errores de validación para devolverlos en un solo mensaje.
type checker struct {
	missing []string
	invalid []string
}

func (c *checker) text(field, v string) {
	if strings.TrimSpace(v) == "" {
		c.missing = append(c.missing, field)
	}
}

func (c *checker) date(field string, t time.Time) {
	if t.IsZero() {
		c.missing = append(c.missing, field)
	}
}

// textPtr rechaza que un patch vacíe un campo de texto requerido.
func (c *checker) textPtr(field string, v *string) {
	if v != nil && strings.TrimSpace(*v) == "" {
		c.invalid = append(c.invalid, field)
	}
}

func (c *checker) datePtr(field string, t *time.Time) {
	if t != nil && t.IsZero() {
		c.invalid = append(c.invalid, field)
	}
}

func (c *checker) present(field string, ok bool) {
	if !ok {
		c.missing = append(c.missing, field)
	}
}

func (c *checker) check(field string, ok bool) {
	if !ok {
		c.invalid = append(c.invalid, field)
	}
}

// oneOf valida un enumerado; el vacío se considera ausente y lo decide text().
func (c *checker) oneOf(field, v string, allowed []string) {
	if v == "" {
		return
	}
	for _, a := range allowed {
		if v == a {
			return
		}
	}
	c.invalid = append(c.invalid, fmt.Sprintf("%s (valores: %s)", field, strings.Join(allowed, ", ")))
}

func (c *checker) oneOfPtr(field string, v *string, allowed []string) {
	if v == nil {
		return
	}
	if *v == "" {
		c.invalid = append(c.invalid, field)
		return
	}
	c.oneOf(field, *v, allowed)
}

func (c *checker) err() error {
	var parts []string
	if len(c.missing) > 0 {
		parts = append(parts, "campos requeridos: "+strings.Join(c.missing, ", "))
	}
	if len(c.invalid) > 0 {
		parts = append(parts, "campos inválidos: "+strings.Join(c.invalid, ", "))
	}
	if len(parts) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(parts, "; "))
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
