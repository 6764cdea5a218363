package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/gregdev/enterprises-api/internal/domain/entity"
)

// EnterpriseRepository define el puerto de persistencia para Enterprise (DIP).
// Las búsquedas sin resultado devuelven domain.ErrNotFound, nunca (nil, nil).
type EnterpriseRepository interface {
	// Create inserta la empresa; asigna UUID (si falta) e ID generado.
	Create(ctx context.Context, enterprise *entity.Enterprise) error
	GetByID(ctx context.Context, id int) (*entity.Enterprise, error)
	GetByUUID(ctx context.Context, id uuid.UUID) (*entity.Enterprise, error)
	// List devuelve todas las empresas ordenadas por ID descendente.
	List(ctx context.Context) ([]*entity.Enterprise, error)
	Delete(ctx context.Context, id int) error
}
