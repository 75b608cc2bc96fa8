package dto

import (
	"time"

	"github.com/SscSPs/trt_portal/internal/core/domain"
)

// CreateEntityRequest defines the data needed to create an entity.
type CreateEntityRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"max=1000"`
	Code        string `json:"code" binding:"required,max=50"`
	ParentID    *int64 `json:"parentId" binding:"omitempty,gt=0"`
}

// UpdateEntityRequest defines a partial entity update. Set RemoveParent to
// make the entity a root.
type UpdateEntityRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description  *string `json:"description" binding:"omitempty,max=1000"`
	Code         *string `json:"code" binding:"omitempty,min=1,max=50"`
	ParentID     *int64  `json:"parentId" binding:"omitempty,gt=0"`
	RemoveParent bool    `json:"removeParent"`
}

// EntityResponse is the public representation of an entity.
type EntityResponse struct {
	EntityID    int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Code        string    `json:"code"`
	ParentID    *int64    `json:"parentId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListEntitiesResponse wraps a list of entities.
type ListEntitiesResponse struct {
	Entities []EntityResponse `json:"entities"`
}

// ToEntityResponse converts a domain.Entity to its DTO.
func ToEntityResponse(e *domain.Entity) EntityResponse {
	return EntityResponse{
		EntityID:    e.EntityID,
		Name:        e.Name,
		Description: e.Description,
		Code:        e.Code,
		ParentID:    e.ParentID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.LastUpdatedAt,
	}
}

// ToListEntitiesResponse converts a slice of entities to its DTO.
func ToListEntitiesResponse(entities []domain.Entity) ListEntitiesResponse {
	out := make([]EntityResponse, len(entities))
	for i := range entities {
		out[i] = ToEntityResponse(&entities[i])
	}
	return ListEntitiesResponse{Entities: out}
}
