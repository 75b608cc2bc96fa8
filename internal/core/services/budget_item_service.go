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
	"github.com/google/uuid"
)

type budgetItemService struct {
	BaseService
	itemRepo   portsrepo.BudgetItemRepositoryFacade
	budgetRepo portsrepo.BudgetReader
	entityRepo portsrepo.EntityReader
}

// NewBudgetItemService creates a new budget item service.
func NewBudgetItemService(itemRepo portsrepo.BudgetItemRepositoryFacade, budgetRepo portsrepo.BudgetReader, entityRepo portsrepo.EntityReader) portssvc.BudgetItemSvcFacade {
	return &budgetItemService{
		itemRepo:   itemRepo,
		budgetRepo: budgetRepo,
		entityRepo: entityRepo,
	}
}

var _ portssvc.BudgetItemSvcFacade = (*budgetItemService)(nil)

func (s *budgetItemService) GetBudgetItem(ctx context.Context, itemID string) (*domain.BudgetItem, error) {
	item, err := s.itemRepo.FindBudgetItemByID(ctx, itemID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find budget item", slog.String("item_id", itemID))
		}
		return nil, err
	}
	return item, nil
}

func (s *budgetItemService) ListBudgetItems(ctx context.Context, filter domain.BudgetItemFilter) ([]domain.BudgetItem, error) {
	items, err := s.itemRepo.ListBudgetItems(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budget items")
		return nil, err
	}
	if items == nil {
		items = []domain.BudgetItem{}
	}
	return items, nil
}

func (s *budgetItemService) CreateBudgetItem(ctx context.Context, req dto.CreateBudgetItemRequest, creatorUserID int64) (*domain.BudgetItem, error) {
	if req.BudgetID <= 0 {
		return nil, apperrors.NewValidationFailedError("budgetId is required")
	}
	if req.Amount.IsNegative() {
		return nil, apperrors.NewValidationFailedError("amount must not be negative")
	}

	budget, err := s.budgetRepo.FindBudgetByID(ctx, req.BudgetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationFailedError(fmt.Sprintf("budget %d does not exist", req.BudgetID))
		}
		return nil, err
	}

	entityID := req.EntityID
	if entityID == nil {
		entityID = budget.EntityID
	} else if err := requireEntity(ctx, s.entityRepo, entityID); err != nil {
		return nil, err
	}

	now := time.Now()
	item := domain.BudgetItem{
		BudgetItemID: uuid.NewString(),
		Description:  strings.TrimSpace(req.Description),
		Category:     normalizeCategory(req.Category),
		Amount:       req.Amount,
		Notes:        req.Notes,
		BudgetID:     budget.BudgetID,
		EntityID:     entityID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.itemRepo.SaveBudgetItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save budget item", slog.Int64("budget_id", budget.BudgetID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget item created successfully",
		slog.String("item_id", item.BudgetItemID),
		slog.Int64("budget_id", item.BudgetID))
	return &item, nil
}

func (s *budgetItemService) UpdateBudgetItem(ctx context.Context, itemID string, req dto.UpdateBudgetItemRequest, userID int64) (*domain.BudgetItem, error) {
	item, err := s.GetBudgetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		item.Description = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil {
		item.Category = normalizeCategory(req.Category)
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, apperrors.NewValidationFailedError("amount must not be negative")
		}
		item.Amount = *req.Amount
	}
	if req.Notes != nil {
		item.Notes = req.Notes
	}
	if req.EntityID != nil {
		if err := requireEntity(ctx, s.entityRepo, req.EntityID); err != nil {
			return nil, err
		}
		item.EntityID = req.EntityID
	}

	item.LastUpdatedAt = time.Now()
	item.LastUpdatedBy = userID
	if err := s.itemRepo.UpdateBudgetItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update budget item", slog.String("item_id", itemID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget item updated successfully", slog.String("item_id", itemID))
	return item, nil
}

func (s *budgetItemService) DeleteBudgetItem(ctx context.Context, itemID string) error {
	if err := s.itemRepo.DeleteBudgetItem(ctx, itemID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete budget item", slog.String("item_id", itemID))
		}
		return err
	}
	s.LogInfo(ctx, "Budget item deleted", slog.String("item_id", itemID))
	return nil
}
