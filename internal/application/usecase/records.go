package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/dealership-api/internal/domain"
	"github.com/jhoicas/dealership-api/internal/domain/entity"
	"github.com/jhoicas/dealership-api/internal/domain/repository"
	"github.com/jhoicas/dealership-api/pkg/keygen"
)

// RecordUseCase casos de uso CRUD comunes a todas las entidades sin efectos cruzados.
// PT es *T y permite llamar Prepare/SetRecordKey sobre la entidad.
type RecordUseCase[T any, PT interface {
	*T
	entity.Record
}, P entity.Patch] struct {
	repo      repository.Records[T, P]
	keyPrefix string // vacío: la clave la envía el cliente
	now       func() time.Time
}

// NewRecordUseCase construye el caso de uso. Con keyPrefix la clave de negocio la genera el servidor.
func NewRecordUseCase[T any, PT interface {
	*T
	entity.Record
}, P entity.Patch](repo repository.Records[T, P], keyPrefix string) *RecordUseCase[T, PT, P] {
	return &RecordUseCase[T, PT, P]{repo: repo, keyPrefix: keyPrefix, now: time.Now}
}

// List lista con filtros y paginación. Devuelve también el total.
func (uc *RecordUseCase[T, PT, P]) List(ctx context.Context, q repository.ListQuery) ([]T, int, error) {
	return uc.repo.List(ctx, q)
}

// Get obtiene un registro por clave de negocio. Nil si no existe.
func (uc *RecordUseCase[T, PT, P]) Get(ctx context.Context, key string) (*T, error) {
	return uc.repo.GetByKey(ctx, key)
}

// Create valida, fija marcas de tiempo y persiste.
func (uc *RecordUseCase[T, PT, P]) Create(ctx context.Context, rec *T) (*T, error) {
	p := PT(rec)
	if uc.keyPrefix != "" {
		p.SetRecordKey(keygen.New(uc.keyPrefix))
	}
	now := uc.now().UTC()
	if err := p.Prepare(now); err != nil {
		return nil, err
	}
	p.RecordMeta().Stamp(now)
	if err := uc.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Update aplica el patch. Patch vacío: ErrNothingToUpdate; fila inexistente: ErrNotFound.
func (uc *RecordUseCase[T, PT, P]) Update(ctx context.Context, key string, patch P) (*T, error) {
	if patch.IsEmpty() {
		return nil, domain.ErrNothingToUpdate
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	out, err := uc.repo.Update(ctx, key, patch, uc.now().UTC())
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, domain.ErrNotFound
	}
	return out, nil
}

// Delete elimina por clave de negocio. ErrNotFound si no existe.
func (uc *RecordUseCase[T, PT, P]) Delete(ctx context.Context, key string) error {
	ok, err := uc.repo.Delete(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
