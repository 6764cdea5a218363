package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/gregdev/enterprises-api/internal/domain"
	"github.com/gregdev/enterprises-api/internal/domain/entity"
	"github.com/gregdev/enterprises-api/internal/domain/repository"
)

// Asegura que EnterpriseRepo implementa repository.EnterpriseRepository.
var _ repository.EnterpriseRepository = (*EnterpriseRepo)(nil)

const enterpriseColumns = `id, uuid, razon_social, rfc, telefono, contacto, correo`

// EnterpriseRepo implementación del puerto EnterpriseRepository sobre PostgreSQL (usable con pool o tx).
type EnterpriseRepo struct {
	q Querier
}

// NewEnterpriseRepository construye el adaptador de persistencia para empresas. Pasar pool o tx (Querier).
func NewEnterpriseRepository(q Querier) *EnterpriseRepo {
	return &EnterpriseRepo{q: q}
}

// Create persiste una nueva empresa. Genera el UUID si no viene y toma el ID de RETURNING.
func (r *EnterpriseRepo) Create(ctx context.Context, e *entity.Enterprise) error {
	e.EnsureUUID()
	query := `
		INSERT INTO enterprise (uuid, razon_social, rfc, telefono, contacto, correo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		e.UUID, e.RazonSocial, e.RFC, e.Telefono, e.Contacto, e.Correo,
	).Scan(&e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert enterprise: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert enterprise: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por su llave primaria.
func (r *EnterpriseRepo) GetByID(ctx context.Context, id int) (*entity.Enterprise, error) {
	query := `SELECT ` + enterpriseColumns + ` FROM enterprise WHERE id = $1`
	e, err := scanEnterprise(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get enterprise: %w", err)
	}
	return e, nil
}

// GetByUUID obtiene una empresa por su identificador secundario.
func (r *EnterpriseRepo) GetByUUID(ctx context.Context, id uuid.UUID) (*entity.Enterprise, error) {
	query := `SELECT ` + enterpriseColumns + ` FROM enterprise WHERE uuid = $1`
	e, err := scanEnterprise(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get enterprise by uuid: %w", err)
	}
	return e, nil
}

// List devuelve todas las empresas, la más reciente primero.
func (r *EnterpriseRepo) List(ctx context.Context) ([]*entity.Enterprise, error) {
	query := `SELECT ` + enterpriseColumns + ` FROM enterprise ORDER BY id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list enterprises: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Enterprise, 0)
	for rows.Next() {
		e, err := scanEnterprise(rows)
		if err != nil {
			return nil, fmt.Errorf("scan enterprise: %w", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list enterprises: %w", err)
	}
	return list, nil
}

// Delete elimina una empresa por ID. Devuelve domain.ErrNotFound si no existía.
func (r *EnterpriseRepo) Delete(ctx context.Context, id int) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM enterprise WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete enterprise: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanEnterprise(row pgxScanner) (*entity.Enterprise, error) {
	var e entity.Enterprise
	if err := row.Scan(&e.ID, &e.UUID, &e.RazonSocial, &e.RFC, &e.Telefono, &e.Contacto, &e.Correo); err != nil {
		return nil, err
	}
	return &e, nil
}
