package config

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"vocalwork/src/internal/gateway/generation"
	"vocalwork/src/pkg/log"
)

// NewGenerationClient wires the Gemini-backed gateway. Without an API key,
// or when the SDK fails to initialize, the gateway runs fallback-only, which
// keeps admin flows working offline.
func NewGenerationClient(v *viper.Viper, redisClient redis.UniversalClient, logger log.Log) *generation.Client {
	var generator generation.TextGenerator

	apiKey := v.GetString("generation.api_key")
	if apiKey != "" {
		gemini, err := generation.NewGeminiGenerator(context.Background(), apiKey)
		if err != nil {
			logger.Warn("generation-config", fmt.Sprintf("gemini init failed, running fallback-only: %v", err), "NewGenerationClient", "")
		} else {
			generator = gemini
		}
	} else {
		logger.Info("generation-config", "no generation API key configured, running fallback-only", "NewGenerationClient", "")
	}

	return generation.NewClient(generator, redisClient, logger)
}
