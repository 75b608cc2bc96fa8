package services

import (
	"context"

	"github.com/SscSPs/trt_portal/internal/core/domain"
	"github.com/SscSPs/trt_portal/internal/dto"
)

// EntityReaderSvc defines read operations for entities.
type EntityReaderSvc interface {
	GetEntity(ctx context.Context, entityID int64) (*domain.Entity, error)
	ListEntities(ctx context.Context) ([]domain.Entity, error)
	ListChildren(ctx context.Context, parentID int64) ([]domain.Entity, error)
}

// EntityWriterSvc defines write operations for entities.
type EntityWriterSvc interface {
	CreateEntity(ctx context.Context, req dto.CreateEntityRequest, creatorUserID int64) (*domain.Entity, error)
	// UpdateEntity applies a partial update. A parent change that would create a cycle is rejected.
	UpdateEntity(ctx context.Context, entityID int64, req dto.UpdateEntityRequest, userID int64) (*domain.Entity, error)
	DeleteEntity(ctx context.Context, entityID int64) error
}

// EntitySvcFacade combines all entity-related service interfaces
type EntitySvcFacade interface {
	EntityReaderSvc
	EntityWriterSvc
}
