package pgsql

import (
	portsrepo "github.com/SscSPs/trt_portal/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:       newPgxUserRepository(dbPool),
		EntityRepo:     newPgxEntityRepository(dbPool),
		DeviceRepo:     newPgxDeviceRepository(dbPool),
		BudgetRepo:     newPgxBudgetRepository(dbPool),
		BudgetItemRepo: newPgxBudgetItemRepository(dbPool),
	}
}
