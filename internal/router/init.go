package router

import (
	groceryapp "github.com/oksasatya/grocery-list/internal/application"
	"github.com/oksasatya/grocery-list/internal/container"
	repo "github.com/oksasatya/grocery-list/internal/domain/repository"
	mongoinfra "github.com/oksasatya/grocery-list/internal/infrastructure/mongodb"
	handlers "github.com/oksasatya/grocery-list/internal/interface/http"
	"github.com/oksasatya/grocery-list/internal/router/modules"
)

type GroceryModuleDeps struct {
	Repo    repo.GroceryRepository
	Service *groceryapp.Service
	Users   *handlers.UserHandler
	Health  *handlers.HealthHandler
}

func buildGroceryDeps() GroceryModuleDeps {
	repository := mongoinfra.NewGroceryRepository(
		mongoinfra.DatabaseSource(container.GetDatabase()),
		container.GetRepoMetrics(),
	)

	service := groceryapp.NewService(repository, container.GetLogger())

	return GroceryModuleDeps{
		Repo:    repository,
		Service: service,
		Users:   handlers.NewUserHandler(service, container.GetLogger()),
		Health:  handlers.NewHealthHandler(mongoinfra.Pinger{Client: container.GetMongo()}),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	deps := buildGroceryDeps()
	r.Add(modules.NewUserModule(deps.Users, container.GetConfig().UserCreateRateLimit))
	r.Add(modules.NewHealthModule(deps.Health))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(container.GetRegistry()))
	}
}
