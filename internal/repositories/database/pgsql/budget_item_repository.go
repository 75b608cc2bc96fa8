package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/trt_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/trt_portal/internal/core/ports/repositories"
	"github.com/SscSPs/trt_portal/internal/models"
	"github.com/SscSPs/trt_portal/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const budgetItemColumns = `budget_item_id::text, budget_id, description, category, amount, notes, entity_id,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxBudgetItemRepository struct {
	BaseRepository
}

func newPgxBudgetItemRepository(pool *pgxpool.Pool) portsrepo.BudgetItemRepositoryFacade {
	return &PgxBudgetItemRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetItemRepositoryFacade = (*PgxBudgetItemRepository)(nil)

// execer is satisfied by both *pgxpool.Pool and pgx.Tx.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func scanBudgetItem(row pgx.Row) (models.BudgetItem, error) {
	var m models.BudgetItem
	err := row.Scan(
		&m.BudgetItemID,
		&m.BudgetID,
		&m.Description,
		&m.Category,
		&m.Amount,
		&m.Notes,
		&m.EntityID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func collectBudgetItems(rows pgx.Rows) ([]models.BudgetItem, error) {
	defer rows.Close()
	var out []models.BudgetItem
	for rows.Next() {
		m, err := scanBudgetItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget item row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget item rows: %w", err)
	}
	return out, nil
}

func insertBudgetItem(ctx context.Context, db execer, m models.BudgetItem) error {
	query := `
		INSERT INTO budget_items (budget_item_id, budget_id, description, category, amount, notes, entity_id,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := db.Exec(ctx, query,
		m.BudgetItemID,
		m.BudgetID,
		m.Description,
		m.Category,
		m.Amount,
		m.Notes,
		m.EntityID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "budget item "+m.BudgetItemID)
	}
	return nil
}

func (r *PgxBudgetItemRepository) FindBudgetItemByID(ctx context.Context, itemID string) (*domain.BudgetItem, error) {
	query := `SELECT ` + budgetItemColumns + ` FROM budget_items WHERE budget_item_id::text = $1;`
	m, err := scanBudgetItem(r.Pool.QueryRow(ctx, query, itemID))
	if err != nil {
		return nil, mapNotFound(err, "budget item "+itemID)
	}
	item := mapping.ToDomainBudgetItem(m)
	return &item, nil
}

func (r *PgxBudgetItemRepository) ListBudgetItems(ctx context.Context, filter domain.BudgetItemFilter) ([]domain.BudgetItem, error) {
	w := &whereBuilder{}
	if filter.BudgetID != nil {
		w.add("budget_id = ?", *filter.BudgetID)
	}
	if filter.EntityID != nil {
		w.add("entity_id = ?", *filter.EntityID)
	}

	query := `SELECT ` + budgetItemColumns + ` FROM budget_items` + w.clause() +
		` ORDER BY budget_id ASC, created_at ASC, budget_item_id ASC;`
	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query budget items: %w", err)
	}
	modelItems, err := collectBudgetItems(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainBudgetItemSlice(modelItems), nil
}

func (r *PgxBudgetItemRepository) SaveBudgetItem(ctx context.Context, item domain.BudgetItem) error {
	return insertBudgetItem(ctx, r.Pool, mapping.ToModelBudgetItem(item))
}

func (r *PgxBudgetItemRepository) UpdateBudgetItem(ctx context.Context, item domain.BudgetItem) error {
	m := mapping.ToModelBudgetItem(item)
	what := "budget item " + m.BudgetItemID
	query := `
		UPDATE budget_items
		SET description = $1, category = $2, amount = $3, notes = $4, entity_id = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE budget_item_id::text = $8;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Description,
		m.Category,
		m.Amount,
		m.Notes,
		m.EntityID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.BudgetItemID,
	)
	if err != nil {
		return mapWriteError(err, what)
	}
	return expectAffected(tag, what)
}

func (r *PgxBudgetItemRepository) DeleteBudgetItem(ctx context.Context, itemID string) error {
	what := "budget item " + itemID
	tag, err := r.Pool.Exec(ctx, `DELETE FROM budget_items WHERE budget_item_id::text = $1;`, itemID)
	if err != nil {
		return mapWriteError(err, what)
	}
	return expectAffected(tag, what)
}
