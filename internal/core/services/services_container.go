package services

import (
	portsrepo "github.com/SscSPs/trt_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/trt_portal/internal/core/ports/services"
	"github.com/SscSPs/trt_portal/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Entity = NewEntityService(repos.EntityRepo)
	container.Device = NewDeviceService(
		repos.DeviceRepo,
		WithDeviceEntityReader(repos.EntityRepo),
	)
	container.Budget = NewBudgetService(
		repos.BudgetRepo,
		WithBudgetEntityReader(repos.EntityRepo),
	)
	container.BudgetItem = NewBudgetItemService(repos.BudgetItemRepo, repos.BudgetRepo, repos.EntityRepo)
	container.BudgetStatistics = NewBudgetStatisticsService(
		repos.BudgetRepo,
		repos.EntityRepo,
		WithResolveConcurrency(cfg.StatsResolveConcurrency),
	)

	container.TokenService = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}
