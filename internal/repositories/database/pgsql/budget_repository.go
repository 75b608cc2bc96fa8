package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SscSPs/trt_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/trt_portal/internal/core/ports/repositories"
	"github.com/SscSPs/trt_portal/internal/models"
	"github.com/SscSPs/trt_portal/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const budgetColumns = `budget_id, name, fiscal_year, total_amount, start_date, end_date, notes, entity_id,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)
	_ portsrepo.TransactionManager     = (*PgxBudgetRepository)(nil)
)

func scanBudget(row pgx.Row) (models.Budget, error) {
	var m models.Budget
	err := row.Scan(
		&m.BudgetID,
		&m.Name,
		&m.FiscalYear,
		&m.TotalAmount,
		&m.StartDate,
		&m.EndDate,
		&m.Notes,
		&m.EntityID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID int64) (*domain.Budget, error) {
	what := "budget " + strconv.FormatInt(budgetID, 10)
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE budget_id = $1;`
	m, err := scanBudget(r.Pool.QueryRow(ctx, query, budgetID))
	if err != nil {
		return nil, mapNotFound(err, what)
	}

	items, err := r.itemsByBudget(ctx, []int64{budgetID})
	if err != nil {
		return nil, err
	}
	budget := mapping.ToDomainBudget(m, items[budgetID])
	return &budget, nil
}

func (r *PgxBudgetRepository) ListBudgets(ctx context.Context, filter domain.BudgetFilter) ([]domain.Budget, error) {
	w := &whereBuilder{}
	if filter.FiscalYear != nil {
		w.add("fiscal_year = ?", *filter.FiscalYear)
	}
	if filter.EntityID != nil {
		w.add("entity_id = ?", *filter.EntityID)
	}

	query := `SELECT ` + budgetColumns + ` FROM budgets` + w.clause() + ` ORDER BY fiscal_year DESC, budget_id ASC;`
	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	var modelBudgets []models.Budget
	for rows.Next() {
		m, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		modelBudgets = append(modelBudgets, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget rows: %w", err)
	}

	budgets := make([]domain.Budget, 0, len(modelBudgets))
	if len(modelBudgets) == 0 {
		return budgets, nil
	}

	ids := make([]int64, len(modelBudgets))
	for i, m := range modelBudgets {
		ids[i] = m.BudgetID
	}
	items, err := r.itemsByBudget(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, m := range modelBudgets {
		budgets = append(budgets, mapping.ToDomainBudget(m, items[m.BudgetID]))
	}
	return budgets, nil
}

// itemsByBudget loads the items of the given budgets in one query, grouped by budget ID.
func (r *PgxBudgetRepository) itemsByBudget(ctx context.Context, budgetIDs []int64) (map[int64][]models.BudgetItem, error) {
	query := `SELECT ` + budgetItemColumns + ` FROM budget_items WHERE budget_id = ANY($1) ORDER BY created_at ASC, budget_item_id ASC;`
	rows, err := r.Pool.Query(ctx, query, budgetIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query budget items: %w", err)
	}
	modelItems, err := collectBudgetItems(rows)
	if err != nil {
		return nil, err
	}

	grouped := make(map[int64][]models.BudgetItem, len(budgetIDs))
	for _, it := range modelItems {
		grouped[it.BudgetID] = append(grouped[it.BudgetID], it)
	}
	return grouped, nil
}

// SaveBudget inserts the budget and its items in a single transaction.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) (int64, error) {
	m := mapping.ToModelBudget(budget)

	var budgetID int64
	err := portsrepo.RunInTx(ctx, r, func(tx pgx.Tx) error {
		query := `
			INSERT INTO budgets (name, fiscal_year, total_amount, start_date, end_date, notes, entity_id,
				created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING budget_id;
		`
		err := tx.QueryRow(ctx, query,
			m.Name,
			m.FiscalYear,
			m.TotalAmount,
			m.StartDate,
			m.EndDate,
			m.Notes,
			m.EntityID,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		).Scan(&budgetID)
		if err != nil {
			return mapWriteError(err, "budget "+m.Name)
		}

		for _, item := range budget.Items {
			item.BudgetID = budgetID
			if err := insertBudgetItem(ctx, tx, mapping.ToModelBudgetItem(item)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return budgetID, nil
}

func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	what := "budget " + strconv.FormatInt(m.BudgetID, 10)
	query := `
		UPDATE budgets
		SET name = $1, fiscal_year = $2, total_amount = $3, start_date = $4, end_date = $5, notes = $6,
			entity_id = $7, last_updated_at = $8, last_updated_by = $9
		WHERE budget_id = $10;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.FiscalYear,
		m.TotalAmount,
		m.StartDate,
		m.EndDate,
		m.Notes,
		m.EntityID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.BudgetID,
	)
	if err != nil {
		return mapWriteError(err, what)
	}
	return expectAffected(tag, what)
}

// DeleteBudget removes the budget; its items go with it through ON DELETE CASCADE.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, budgetID int64) error {
	what := "budget " + strconv.FormatInt(budgetID, 10)
	tag, err := r.Pool.Exec(ctx, `DELETE FROM budgets WHERE budget_id = $1;`, budgetID)
	if err != nil {
		return mapWriteError(err, what)
	}
	return expectAffected(tag, what)
}
