package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/trt_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/trt_portal/internal/core/ports/repositories"
	"github.com/SscSPs/trt_portal/internal/models"
	"github.com/SscSPs/trt_portal/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const entityColumns = `entity_id, name, description, code, parent_id,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxEntityRepository struct {
	BaseRepository
}

func newPgxEntityRepository(pool *pgxpool.Pool) portsrepo.EntityRepositoryFacade {
	return &PgxEntityRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EntityRepositoryFacade = (*PgxEntityRepository)(nil)

func scanEntity(row pgx.Row) (models.Entity, error) {
	var m models.Entity
	err := row.Scan(
		&m.EntityID,
		&m.Name,
		&m.Description,
		&m.Code,
		&m.ParentID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxEntityRepository) GetEntity(ctx context.Context, entityID int64) (*domain.Entity, error) {
	query := `SELECT ` + entityColumns + ` FROM entities WHERE entity_id = $1;`
	m, err := scanEntity(r.Pool.QueryRow(ctx, query, entityID))
	if err != nil {
		return nil, mapNotFound(err, fmt.Sprintf("entity %d", entityID))
	}
	entity := mapping.ToDomainEntity(m)
	return &entity, nil
}

func (r *PgxEntityRepository) ListEntities(ctx context.Context) ([]domain.Entity, error) {
	return r.list(ctx, `SELECT `+entityColumns+` FROM entities ORDER BY name, entity_id;`)
}

func (r *PgxEntityRepository) ListChildren(ctx context.Context, parentID int64) ([]domain.Entity, error) {
	return r.list(ctx, `SELECT `+entityColumns+` FROM entities WHERE parent_id = $1 ORDER BY name, entity_id;`, parentID)
}

func (r *PgxEntityRepository) list(ctx context.Context, query string, args ...any) ([]domain.Entity, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entities: %w", err)
	}
	defer rows.Close()

	modelEntities := []models.Entity{}
	for rows.Next() {
		m, err := scanEntity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entity row: %w", err)
		}
		modelEntities = append(modelEntities, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entity rows: %w", err)
	}
	return mapping.ToDomainEntitySlice(modelEntities), nil
}

func (r *PgxEntityRepository) SaveEntity(ctx context.Context, entity domain.Entity) (int64, error) {
	m := mapping.ToModelEntity(entity)
	query := `
		INSERT INTO entities (name, description, code, parent_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING entity_id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.Name,
		m.Description,
		m.Code,
		m.ParentID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(&id)
	if err != nil {
		return 0, mapWriteError(err, "entity "+m.Code)
	}
	return id, nil
}

func (r *PgxEntityRepository) UpdateEntity(ctx context.Context, entity domain.Entity) error {
	m := mapping.ToModelEntity(entity)
	query := `
		UPDATE entities
		SET name = $1, description = $2, code = $3, parent_id = $4, last_updated_at = $5, last_updated_by = $6
		WHERE entity_id = $7;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Description,
		m.Code,
		m.ParentID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.EntityID,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("entity %d", m.EntityID))
	}
	return expectAffected(tag, fmt.Sprintf("entity %d", m.EntityID))
}

func (r *PgxEntityRepository) DeleteEntity(ctx context.Context, entityID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM entities WHERE entity_id = $1;`, entityID)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("entity %d", entityID))
	}
	return expectAffected(tag, fmt.Sprintf("entity %d", entityID))
}
