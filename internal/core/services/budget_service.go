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
	"github.com/shopspring/decimal"
)

type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
	entityRepo portsrepo.EntityReader
}

// BudgetServiceOption is a functional option for configuring the budget service
type BudgetServiceOption func(*budgetService)

// WithBudgetEntityReader lets the service verify owning entities on writes.
func WithBudgetEntityReader(repo portsrepo.EntityReader) BudgetServiceOption {
	return func(s *budgetService) {
		s.entityRepo = repo
	}
}

// NewBudgetService creates a new budget service with the provided options.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, options ...BudgetServiceOption) portssvc.BudgetSvcFacade {
	svc := &budgetService{budgetRepo: budgetRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) GetBudget(ctx context.Context, budgetID int64) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find budget", slog.Int64("budget_id", budgetID))
		}
		return nil, err
	}
	return budget, nil
}

func (s *budgetService) ListBudgets(ctx context.Context, filter domain.BudgetFilter) ([]domain.Budget, error) {
	if filter.FiscalYear != nil && !domain.ValidFiscalYear(*filter.FiscalYear) {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("invalid fiscal year %d", *filter.FiscalYear))
	}
	budgets, err := s.budgetRepo.ListBudgets(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets")
		return nil, err
	}
	if budgets == nil {
		budgets = []domain.Budget{}
	}
	return budgets, nil
}

func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, creatorUserID int64) (*domain.Budget, error) {
	if err := validateBudgetFields(req.FiscalYear, req.TotalAmount, req.StartDate, req.EndDate); err != nil {
		return nil, err
	}
	if err := requireEntity(ctx, s.entityRepo, req.EntityID); err != nil {
		return nil, err
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}
	budget := domain.Budget{
		Name:        strings.TrimSpace(req.Name),
		FiscalYear:  req.FiscalYear,
		TotalAmount: req.TotalAmount,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Notes:       req.Notes,
		EntityID:    req.EntityID,
		Items:       make([]domain.BudgetItem, 0, len(req.Items)),
		AuditFields: audit,
	}
	for _, itemReq := range req.Items {
		if itemReq.Amount.IsNegative() {
			return nil, apperrors.NewValidationFailedError("budget item amount must not be negative")
		}
		entityID := itemReq.EntityID
		if entityID == nil {
			entityID = req.EntityID
		}
		budget.Items = append(budget.Items, domain.BudgetItem{
			BudgetItemID: uuid.NewString(),
			Description:  strings.TrimSpace(itemReq.Description),
			Category:     normalizeCategory(itemReq.Category),
			Amount:       itemReq.Amount,
			Notes:        itemReq.Notes,
			EntityID:     entityID,
			AuditFields:  audit,
		})
	}

	id, err := s.budgetRepo.SaveBudget(ctx, budget)
	if err != nil {
		s.LogError(ctx, err, "Failed to save budget", slog.Int("fiscal_year", budget.FiscalYear))
		return nil, err
	}
	budget.BudgetID = id
	for i := range budget.Items {
		budget.Items[i].BudgetID = id
	}

	s.LogInfo(ctx, "Budget created successfully",
		slog.Int64("budget_id", id),
		slog.Int("fiscal_year", budget.FiscalYear),
		slog.Int("items", len(budget.Items)))
	return &budget, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, budgetID int64, req dto.UpdateBudgetRequest, userID int64) (*domain.Budget, error) {
	budget, err := s.GetBudget(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		budget.Name = strings.TrimSpace(*req.Name)
	}
	if req.FiscalYear != nil {
		budget.FiscalYear = *req.FiscalYear
	}
	if req.TotalAmount != nil {
		budget.TotalAmount = *req.TotalAmount
	}
	if req.StartDate != nil {
		budget.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		budget.EndDate = req.EndDate
	}
	if req.Notes != nil {
		budget.Notes = req.Notes
	}
	if req.EntityID != nil {
		if err := requireEntity(ctx, s.entityRepo, req.EntityID); err != nil {
			return nil, err
		}
		budget.EntityID = req.EntityID
	}
	if err := validateBudgetFields(budget.FiscalYear, budget.TotalAmount, budget.StartDate, budget.EndDate); err != nil {
		return nil, err
	}

	budget.LastUpdatedAt = time.Now()
	budget.LastUpdatedBy = userID
	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		s.LogError(ctx, err, "Failed to update budget", slog.Int64("budget_id", budgetID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget updated successfully", slog.Int64("budget_id", budgetID))
	return budget, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, budgetID int64) error {
	if err := s.budgetRepo.DeleteBudget(ctx, budgetID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete budget", slog.Int64("budget_id", budgetID))
		}
		return err
	}
	s.LogInfo(ctx, "Budget deleted", slog.Int64("budget_id", budgetID))
	return nil
}

func validateBudgetFields(fiscalYear int, total decimal.Decimal, start, end *time.Time) error {
	if !domain.ValidFiscalYear(fiscalYear) {
		return apperrors.NewValidationFailedError(fmt.Sprintf("fiscal year must be a 4-digit year, got %d", fiscalYear))
	}
	if total.IsNegative() {
		return apperrors.NewValidationFailedError("total amount must not be negative")
	}
	if start != nil && end != nil && start.After(*end) {
		return apperrors.NewValidationFailedError("start date must not be after end date")
	}
	return nil
}

func normalizeCategory(category *string) *string {
	if category == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*category)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// requireEntity checks that a referenced entity exists. A nil reader skips the check.
func requireEntity(ctx context.Context, repo portsrepo.EntityReader, entityID *int64) error {
	if entityID == nil || repo == nil {
		return nil
	}
	if _, err := repo.GetEntity(ctx, *entityID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationFailedError(fmt.Sprintf("entity %d does not exist", *entityID))
		}
		return err
	}
	return nil
}
