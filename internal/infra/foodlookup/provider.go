package foodlookup

import (
	"context"
	"log/slog"

	"myetician/config"
	"myetician/internal/domain/constants"
	"myetician/internal/domain/service"
	"myetician/internal/errors"
)

// New returns the food lookup selected by foodLookup.provider.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.FoodLookupService, error) {
	lookup := cfg.FoodLookup
	if lookup == nil || lookup.Provider == "" || lookup.Provider == constants.FoodLookupProviderNone {
		logger.Info("Food lookup disabled")

		return NewDisabled(), nil
	}

	switch lookup.Provider {
	case constants.FoodLookupProviderGemini:
		if lookup.APIKey == "" {
			return nil, errors.New("foodLookup.apiKey is required for the gemini provider")
		}
		logger.Info("Using Gemini food lookup", slog.String("model", lookup.Model))

		client, err := NewGeminiClient(ctx, lookup.APIKey, lookup.Model, lookup.BaseURL, lookup.Timeout, logger)
		if err != nil {
			return nil, err
		}

		return client, nil
	default:
		return nil, errors.Errorf("unknown food lookup provider: %s", lookup.Provider)
	}
}
