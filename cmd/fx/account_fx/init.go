package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"aitrip/internal/api/controllers"
	"aitrip/internal/config"
	"aitrip/internal/repositories"
	"aitrip/internal/services"
	mem "aitrip/pkg/memcache"
	"aitrip/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo, provideTokenIssuer, provideAccountController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideTokenIssuer(cfg config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiresIn)
}

func provideAccountService(accountRepo repositories.AccountRepository, issuer *utils.TokenIssuer, denylist mem.TokenDenylist, log *zap.Logger) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, issuer, denylist, log)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
