package config

import (
	"github.com/reviewlens/review-sentiment-api/pkg/logger"
)

// LogResolved logs the effective configuration with secrets masked
func LogResolved(cfg *Config) {
	logger.GetLogger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Server.Port).
		Str("db_driver", cfg.Database.Driver).
		Str("ai_base_url", cfg.AI.BaseURL).
		Str("ai_model", cfg.AI.Model).
		Dur("ai_timeout", cfg.AI.Timeout).
		Bool("ai_key_set", cfg.AI.APIKey != "").
		Bool("redis_enabled", cfg.Redis.Enabled).
		Str("timezone", cfg.App.Timezone).
		Msg("config resolved")
}
