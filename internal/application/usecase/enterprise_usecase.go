package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/gregdev/enterprises-api/internal/application/dto"
	"github.com/gregdev/enterprises-api/internal/domain"
	"github.com/gregdev/enterprises-api/internal/domain/entity"
	"github.com/gregdev/enterprises-api/internal/domain/repository"
)

// EnterpriseUseCase orquesta las operaciones sobre empresas. Cada método es una sola operación de
// almacenamiento; la validación de campos requeridos vive en el handler HTTP.
type EnterpriseUseCase struct {
	repo repository.EnterpriseRepository
}

// NewEnterpriseUseCase construye el caso de uso con el puerto de persistencia.
func NewEnterpriseUseCase(repo repository.EnterpriseRepository) *EnterpriseUseCase {
	return &EnterpriseUseCase{repo: repo}
}

// GetAll lista todas las empresas, la más reciente primero.
func (uc *EnterpriseUseCase) GetAll(ctx context.Context) ([]dto.EnterpriseResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EnterpriseResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *entityToEnterpriseResponse(e))
	}
	return items, nil
}

// FindByID devuelve domain.ErrNotFound si no existe.
func (uc *EnterpriseUseCase) FindByID(ctx context.Context, id int) (*dto.EnterpriseResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return entityToEnterpriseResponse(e), nil
}

// FindByUUID devuelve domain.ErrNotFound si no existe.
func (uc *EnterpriseUseCase) FindByUUID(ctx context.Context, id uuid.UUID) (*dto.EnterpriseResponse, error) {
	e, err := uc.repo.GetByUUID(ctx, id)
	if err != nil {
		return nil, err
	}
	return entityToEnterpriseResponse(e), nil
}

// Save persiste una nueva empresa. Los campos nil se guardan como cadena vacía.
// Un uuid recibido que no se puede interpretar devuelve domain.ErrInvalidInput.
func (uc *EnterpriseUseCase) Save(ctx context.Context, in dto.CreateEnterpriseRequest) (*dto.EnterpriseResponse, error) {
	e := &entity.Enterprise{
		RazonSocial: deref(in.RazonSocial),
		RFC:         deref(in.RFC),
		Telefono:    deref(in.Telefono),
		Contacto:    deref(in.Contacto),
		Correo:      deref(in.Correo),
	}
	if in.UUID != nil {
		id, err := uuid.Parse(*in.UUID)
		if err != nil {
			return nil, fmt.Errorf("%w: uuid %q", domain.ErrInvalidInput, *in.UUID)
		}
		e.UUID = id
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return entityToEnterpriseResponse(e), nil
}

// Delete elimina la empresa; propaga domain.ErrNotFound si no existe.
func (uc *EnterpriseUseCase) Delete(ctx context.Context, id int) error {
	return uc.repo.Delete(ctx, id)
}

func entityToEnterpriseResponse(e *entity.Enterprise) *dto.EnterpriseResponse {
	if e == nil {
		return nil
	}
	return &dto.EnterpriseResponse{
		ID:          e.ID,
		UUID:        e.UUID,
		RazonSocial: e.RazonSocial,
		RFC:         e.RFC,
		Telefono:    e.Telefono,
		Contacto:    e.Contacto,
		Correo:      e.Correo,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
