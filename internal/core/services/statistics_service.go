package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/SscSPs/trt_portal/internal/apperrors"
	"github.com/SscSPs/trt_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/trt_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/trt_portal/internal/core/ports/services"
	"github.com/SscSPs/trt_portal/internal/utils/budgeting"
	"golang.org/x/sync/errgroup"
)

const defaultResolveConcurrency = 8

type budgetStatisticsService struct {
	BaseService
	budgetRepo  portsrepo.BudgetReader
	entityRepo  portsrepo.EntityReader
	compiler    *budgeting.Compiler
	concurrency int
}

// StatisticsServiceOption is a functional option for configuring the statistics service
type StatisticsServiceOption func(*budgetStatisticsService)

// WithCompiler replaces the default statistics compiler.
func WithCompiler(compiler *budgeting.Compiler) StatisticsServiceOption {
	return func(s *budgetStatisticsService) {
		s.compiler = compiler
	}
}

// WithResolveConcurrency bounds the number of concurrent entity lookups.
func WithResolveConcurrency(n int) StatisticsServiceOption {
	return func(s *budgetStatisticsService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// NewBudgetStatisticsService creates a statistics service reading budgets and entities from the given repositories.
func NewBudgetStatisticsService(budgetRepo portsrepo.BudgetReader, entityRepo portsrepo.EntityReader, options ...StatisticsServiceOption) portssvc.BudgetStatisticsSvc {
	svc := &budgetStatisticsService{
		budgetRepo:  budgetRepo,
		entityRepo:  entityRepo,
		compiler:    budgeting.NewCompiler(),
		concurrency: defaultResolveConcurrency,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BudgetStatisticsSvc = (*budgetStatisticsService)(nil)

func (s *budgetStatisticsService) GetBudgetStatistics(ctx context.Context, entityID *int64) (*domain.BudgetStatistics, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx, domain.BudgetFilter{EntityID: entityID})
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets for statistics")
		return nil, err
	}

	entities, err := s.resolveEntities(ctx, entityIDs(budgets, entityID))
	if err != nil {
		return nil, err
	}

	stats := s.compiler.Compute(s.GetLogger(ctx), budgets, entities, entityID)

	s.LogDebug(ctx, "Budget statistics compiled",
		slog.Int("budgets", len(budgets)),
		slog.Int("entities", len(entities)),
		slog.String("entity_name", stats.EntityName))
	return &stats, nil
}

// resolveEntities looks up entities concurrently. Missing entities are left
// out of the lookup; any other repository error aborts the whole request.
func (s *budgetStatisticsService) resolveEntities(ctx context.Context, ids []int64) (budgeting.EntityLookup, error) {
	lookup := make(budgeting.EntityLookup, len(ids))
	if len(ids) == 0 {
		return lookup, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, id := range ids {
		g.Go(func() error {
			entity, err := s.entityRepo.GetEntity(gctx, id)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					s.LogWarn(ctx, "Budget references unknown entity", slog.Int64("entity_id", id))
					return nil
				}
				return err
			}
			mu.Lock()
			lookup[id] = *entity
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to resolve entities for statistics", slog.Int("entity_count", len(ids)))
		return nil, err
	}
	return lookup, nil
}

// entityIDs returns the distinct entity ids referenced by budgets, plus the filter id, in first-seen order.
func entityIDs(budgets []domain.Budget, filter *int64) []int64 {
	seen := make(map[int64]struct{})
	ids := make([]int64, 0)
	add := func(id *int64) {
		if id == nil {
			return
		}
		if _, ok := seen[*id]; ok {
			return
		}
		seen[*id] = struct{}{}
		ids = append(ids, *id)
	}
	add(filter)
	for _, b := range budgets {
		add(b.EntityID)
	}
	return ids
}
