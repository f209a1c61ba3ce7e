package api_key_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"aitrip/internal/api/controllers"
	"aitrip/internal/repositories"
	"aitrip/internal/services"
)

var Module = fx.Provide(
	provideAPIKeyRepo, provideAPIKeyService, provideAPIKeyController)

func provideAPIKeyRepo(db *gorm.DB) repositories.APIKeyRepository {
	return repositories.NewAPIKeyRepository(db)
}

func provideAPIKeyService(repo repositories.APIKeyRepository) services.APIKeyServiceInterface {
	return services.NewAPIKeyService(repo)
}

func provideAPIKeyController(apiKeyService services.APIKeyServiceInterface) *controllers.APIKeyController {
	return controllers.NewAPIKeyController(apiKeyService)
}
