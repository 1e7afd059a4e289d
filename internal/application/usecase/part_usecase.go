package usecase

import (
	"context"
	"errors"

	"github.com/jhoicas/dealership-api/internal/application/dto"
	"github.com/jhoicas/dealership-api/internal/domain"
	"github.com/jhoicas/dealership-api/internal/domain/entity"
	"github.com/jhoicas/dealership-api/internal/domain/repository"
	"github.com/jhoicas/dealership-api/pkg/keygen"
)

// PartReferences consulta si un repuesto tiene pedidos asociados.
type PartReferences interface {
	CountByPart(ctx context.Context, partID string) (int, error)
}

// PartUseCase CRUD del inventario de repuestos. El part_id lo genera el servidor (PRT-...)
// y el borrado se rechaza mientras existan pedidos que lo referencien.
type PartUseCase struct {
	*RecordUseCase[entity.Part, *entity.Part, entity.PartPatch]
	refs PartReferences
}

// NewPartUseCase construye el caso de uso.
func NewPartUseCase(repo repository.PartRepository, refs PartReferences) *PartUseCase {
	return &PartUseCase{
		RecordUseCase: NewRecordUseCase[entity.Part, *entity.Part, entity.PartPatch](repo, keygen.PrefixPart),
		refs:          refs,
	}
}

// Create exige cantidades y precio explícitos; el resto lo aplica el CRUD común.
func (uc *PartUseCase) Create(ctx context.Context, in *dto.CreatePartRequest) (*entity.Part, error) {
	part, err := in.ToEntity()
	if err != nil {
		return nil, err
	}
	return uc.RecordUseCase.Create(ctx, part)
}

// Delete elimina el repuesto si ningún pedido lo referencia.
func (uc *PartUseCase) Delete(ctx context.Context, partID string) error {
	n, err := uc.refs.CountByPart(ctx, partID)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrPartReferenced
	}
	// La FK de parts_orders cubre un pedido creado entre el conteo y el DELETE.
	if err := uc.RecordUseCase.Delete(ctx, partID); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.ErrPartReferenced
		}
		return err
	}
	return nil
}
