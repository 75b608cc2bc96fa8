package repositories

import (
	"context"

	"github.com/SscSPs/trt_portal/internal/core/domain"
)

// EntityReader defines read operations for entities.
type EntityReader interface {
	// GetEntity retrieves one entity. It returns apperrors.ErrNotFound when absent.
	GetEntity(ctx context.Context, entityID int64) (*domain.Entity, error)

	// ListEntities retrieves all entities ordered by name.
	ListEntities(ctx context.Context) ([]domain.Entity, error)

	// ListChildren retrieves the direct children of an entity.
	ListChildren(ctx context.Context, parentID int64) ([]domain.Entity, error)
}

// EntityWriter defines write operations for entities.
type EntityWriter interface {
	SaveEntity(ctx context.Context, entity domain.Entity) (int64, error)
	UpdateEntity(ctx context.Context, entity domain.Entity) error
	DeleteEntity(ctx context.Context, entityID int64) error
}

// EntityRepositoryFacade combines all entity-related repository interfaces
type EntityRepositoryFacade interface {
	EntityReader
	EntityWriter
}
