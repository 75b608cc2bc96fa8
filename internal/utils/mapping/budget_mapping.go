package mapping

import (
	"github.com/SscSPs/trt_portal/internal/core/domain"
	"github.com/SscSPs/trt_portal/internal/models"
)

// ToModelBudget converts a domain Budget to a model Budget. Items are mapped separately.
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:    d.BudgetID,
		Name:        d.Name,
		FiscalYear:  d.FiscalYear,
		TotalAmount: d.TotalAmount,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Notes:       d.Notes,
		EntityID:    d.EntityID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudget converts a model Budget and its item rows to a domain Budget
func ToDomainBudget(m models.Budget, items []models.BudgetItem) domain.Budget {
	return domain.Budget{
		BudgetID:    m.BudgetID,
		Name:        m.Name,
		FiscalYear:  m.FiscalYear,
		TotalAmount: m.TotalAmount,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Notes:       m.Notes,
		EntityID:    m.EntityID,
		Items:       ToDomainBudgetItemSlice(items),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBudgetItem converts a domain BudgetItem to a model BudgetItem
func ToModelBudgetItem(d domain.BudgetItem) models.BudgetItem {
	return models.BudgetItem{
		BudgetItemID: d.BudgetItemID,
		BudgetID:     d.BudgetID,
		Description:  d.Description,
		Category:     d.Category,
		Amount:       d.Amount,
		Notes:        d.Notes,
		EntityID:     d.EntityID,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudgetItem converts a model BudgetItem to a domain BudgetItem
func ToDomainBudgetItem(m models.BudgetItem) domain.BudgetItem {
	return domain.BudgetItem{
		BudgetItemID: m.BudgetItemID,
		BudgetID:     m.BudgetID,
		Description:  m.Description,
		Category:     m.Category,
		Amount:       m.Amount,
		Notes:        m.Notes,
		EntityID:     m.EntityID,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBudgetItemSlice converts model BudgetItems to domain BudgetItems. The result is never nil.
func ToDomainBudgetItemSlice(ms []models.BudgetItem) []domain.BudgetItem {
	ds := make([]domain.BudgetItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBudgetItem(m)
	}
	return ds
}
