package config

import "github.com/spf13/viper"

// AI is optional: with an empty key the draft assistant endpoint
// reports AI_DISABLED.
type AIConfig struct {
	Key                  string  `mapstructure:"key"`
	Model                string  `mapstructure:"model"`
	MaxRequestsPerMinute float32 `mapstructure:"max_requests_per_minute"`
}

func (config AIConfig) Enabled() bool {
	return config.Key != ""
}

func (config AIConfig) bindEnvironmentVariables() error {
	if err := viper.BindEnv("ai.key", "AI_KEY"); err != nil {
		return err
	}
	return viper.BindEnv("ai.model", "AI_MODEL")
}
