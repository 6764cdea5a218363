// Package memory implementa los puertos de persistencia en memoria del proceso.
// Se usa con DB_DRIVER=memory (desarrollo local) y en los tests de las capas superiores.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/gregdev/enterprises-api/internal/domain"
	"github.com/gregdev/enterprises-api/internal/domain/entity"
	"github.com/gregdev/enterprises-api/internal/domain/repository"
)

var _ repository.EnterpriseRepository = (*EnterpriseRepo)(nil)

// EnterpriseRepo guarda empresas en un mapa protegido por RWMutex. IDs secuenciales desde 1.
type EnterpriseRepo struct {
	mu     sync.RWMutex
	nextID int
	byID   map[int]entity.Enterprise
	byUUID map[uuid.UUID]int
}

// NewEnterpriseRepository construye un repositorio vacío.
func NewEnterpriseRepository() *EnterpriseRepo {
	return &EnterpriseRepo{
		nextID: 1,
		byID:   make(map[int]entity.Enterprise),
		byUUID: make(map[uuid.UUID]int),
	}
}

// Create asigna UUID (si falta) e ID, y guarda una copia.
func (r *EnterpriseRepo) Create(_ context.Context, e *entity.Enterprise) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e.EnsureUUID()
	if _, ok := r.byUUID[e.UUID]; ok {
		return fmt.Errorf("insert enterprise: %w", domain.ErrDuplicate)
	}
	e.ID = r.nextID
	r.nextID++
	r.byID[e.ID] = *e
	r.byUUID[e.UUID] = e.ID
	return nil
}

func (r *EnterpriseRepo) GetByID(_ context.Context, id int) (*entity.Enterprise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

func (r *EnterpriseRepo) GetByUUID(_ context.Context, id uuid.UUID) (*entity.Enterprise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pk, ok := r.byUUID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	e := r.byID[pk]
	return &e, nil
}

// List devuelve copias ordenadas por ID descendente.
func (r *EnterpriseRepo) List(_ context.Context) ([]*entity.Enterprise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*entity.Enterprise, 0, len(r.byID))
	for _, e := range r.byID {
		e := e
		list = append(list, &e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (r *EnterpriseRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.byUUID, e.UUID)
	return nil
}

// Ping siempre responde; existe para que el health check trate igual ambos drivers.
func (r *EnterpriseRepo) Ping(context.Context) error { return nil }
