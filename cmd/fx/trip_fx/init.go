package trip_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"aitrip/internal/api/controllers"
	"aitrip/internal/config"
	"aitrip/internal/repositories"
	"aitrip/internal/services"
)

var Module = fx.Provide(
	provideTripRepo,
	provideExpenseRepo,
	provideTripService,
	provideExpenseService,
	provideTripController,
	provideExpenseController,
)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideExpenseRepo(db *gorm.DB) repositories.ExpenseRepository {
	return repositories.NewExpenseRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	expenseRepo repositories.ExpenseRepository,
	planService services.TripPlanServiceInterface,
	cfg config.Config,
	log *zap.Logger,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, expenseRepo, planService, cfg.DefaultTripBudget, log)
}

func provideExpenseService(expenseRepo repositories.ExpenseRepository, tripRepo repositories.TripRepository, log *zap.Logger) services.ExpenseServiceInterface {
	return services.NewExpenseService(expenseRepo, tripRepo, log)
}

func provideTripController(tripService services.TripServiceInterface, expenseService services.ExpenseServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripService, expenseService)
}

func provideExpenseController(expenseService services.ExpenseServiceInterface) *controllers.ExpenseController {
	return controllers.NewExpenseController(expenseService)
}
