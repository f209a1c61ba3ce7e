package planner_fx

import (
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"aitrip/internal/api/controllers"
	"aitrip/internal/config"
	"aitrip/internal/services"
	"aitrip/pkg/utils"
)

var Module = fx.Provide(
	ProvideTextGenerator,
	ProvideTripPlanService,
	ProvideVoiceExtractor,
	ProvideAIController)

// ProvideTextGenerator builds the generative client selected by LLM_PROVIDER.
func ProvideTextGenerator(cfg config.Config, log *zap.Logger) (utils.TextGenerator, error) {
	generator, err := utils.NewTextGenerator(cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.LLM.Provider, err)
	}
	if cfg.LLM.APIKey == "" {
		log.Warn("no LLM API key configured; every plan will use the fallback", zap.String("provider", cfg.LLM.Provider))
	}
	log.Info("generative client ready",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model),
		zap.Duration("timeout", cfg.LLM.Timeout))
	return generator, nil
}

func ProvideTripPlanService(generator utils.TextGenerator, log *zap.Logger) services.TripPlanServiceInterface {
	return services.NewTripPlanService(generator, log)
}

func ProvideVoiceExtractor() services.SlotFiller {
	return services.NewVoiceExtractor()
}

func ProvideAIController(planService services.TripPlanServiceInterface, slotFiller services.SlotFiller, cfg config.Config) *controllers.AIController {
	return controllers.NewAIController(planService, slotFiller, cfg.DefaultTripBudget)
}
