package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/trt_portal/internal/apperrors"
	"github.com/SscSPs/trt_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/trt_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/trt_portal/internal/core/ports/services"
	"github.com/SscSPs/trt_portal/internal/dto"
)

type entityService struct {
	BaseService
	entityRepo portsrepo.EntityRepositoryFacade
}

// NewEntityService creates a new entity service.
func NewEntityService(entityRepo portsrepo.EntityRepositoryFacade) portssvc.EntitySvcFacade {
	return &entityService{entityRepo: entityRepo}
}

var _ portssvc.EntitySvcFacade = (*entityService)(nil)

func (s *entityService) GetEntity(ctx context.Context, entityID int64) (*domain.Entity, error) {
	entity, err := s.entityRepo.GetEntity(ctx, entityID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get entity", slog.Int64("entity_id", entityID))
		}
		return nil, err
	}
	return entity, nil
}

func (s *entityService) ListEntities(ctx context.Context) ([]domain.Entity, error) {
	entities, err := s.entityRepo.ListEntities(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entities")
		return nil, err
	}
	if entities == nil {
		entities = []domain.Entity{}
	}
	return entities, nil
}

func (s *entityService) ListChildren(ctx context.Context, parentID int64) ([]domain.Entity, error) {
	if _, err := s.GetEntity(ctx, parentID); err != nil {
		return nil, err
	}
	children, err := s.entityRepo.ListChildren(ctx, parentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list child entities", slog.Int64("parent_id", parentID))
		return nil, err
	}
	if children == nil {
		children = []domain.Entity{}
	}
	return children, nil
}

func (s *entityService) CreateEntity(ctx context.Context, req dto.CreateEntityRequest, creatorUserID int64) (*domain.Entity, error) {
	if req.ParentID != nil {
		if err := s.requireParent(ctx, *req.ParentID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	entity := domain.Entity{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Code:        strings.TrimSpace(req.Code),
		ParentID:    req.ParentID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	id, err := s.entityRepo.SaveEntity(ctx, entity)
	if err != nil {
		s.LogError(ctx, err, "Failed to save entity", slog.String("code", entity.Code))
		return nil, err
	}
	entity.EntityID = id

	s.LogInfo(ctx, "Entity created successfully", slog.Int64("entity_id", id))
	return &entity, nil
}

func (s *entityService) UpdateEntity(ctx context.Context, entityID int64, req dto.UpdateEntityRequest, userID int64) (*domain.Entity, error) {
	entity, err := s.GetEntity(ctx, entityID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		entity.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		entity.Description = *req.Description
	}
	if req.Code != nil {
		entity.Code = strings.TrimSpace(*req.Code)
	}
	switch {
	case req.RemoveParent:
		entity.ParentID = nil
	case req.ParentID != nil:
		if err := s.checkReparent(ctx, entityID, *req.ParentID); err != nil {
			return nil, err
		}
		entity.ParentID = req.ParentID
	}

	entity.LastUpdatedAt = time.Now()
	entity.LastUpdatedBy = userID
	if err := s.entityRepo.UpdateEntity(ctx, *entity); err != nil {
		s.LogError(ctx, err, "Failed to update entity", slog.Int64("entity_id", entityID))
		return nil, err
	}

	s.LogInfo(ctx, "Entity updated successfully", slog.Int64("entity_id", entityID))
	return entity, nil
}

func (s *entityService) DeleteEntity(ctx context.Context, entityID int64) error {
	children, err := s.entityRepo.ListChildren(ctx, entityID)
	if err != nil {
		return err
	}
	if len(children) > 0 {
		return apperrors.NewValidationFailedError(fmt.Sprintf("entity %d still has %d child entities", entityID, len(children)))
	}
	if err := s.entityRepo.DeleteEntity(ctx, entityID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete entity", slog.Int64("entity_id", entityID))
		}
		return err
	}
	s.LogInfo(ctx, "Entity deleted", slog.Int64("entity_id", entityID))
	return nil
}

func (s *entityService) requireParent(ctx context.Context, parentID int64) error {
	if _, err := s.entityRepo.GetEntity(ctx, parentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationFailedError(fmt.Sprintf("parent entity %d does not exist", parentID))
		}
		return err
	}
	return nil
}

// checkReparent walks up from the new parent and rejects the move if it reaches entityID.
func (s *entityService) checkReparent(ctx context.Context, entityID, parentID int64) error {
	if parentID == entityID {
		return apperrors.NewValidationFailedError("an entity cannot be its own parent")
	}
	visited := map[int64]struct{}{}
	current := &parentID
	for current != nil {
		if *current == entityID {
			return apperrors.NewValidationFailedError(fmt.Sprintf("entity %d is an ancestor of entity %d", entityID, parentID))
		}
		if _, seen := visited[*current]; seen {
			break
		}
		visited[*current] = struct{}{}

		ancestor, err := s.entityRepo.GetEntity(ctx, *current)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) && *current == parentID {
				return apperrors.NewValidationFailedError(fmt.Sprintf("parent entity %d does not exist", parentID))
			}
			return err
		}
		current = ancestor.ParentID
	}
	return nil
}
