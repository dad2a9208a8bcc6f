package config

import "github.com/spf13/viper"

type MediaConfig struct {
	BaseURL              string  `mapstructure:"base_url"`
	APIKey               string  `mapstructure:"api_key"`
	MaxRequestsPerSecond float32 `mapstructure:"max_requests_per_second"`
}

func (config MediaConfig) bindEnvironmentVariables() error {
	if err := viper.BindEnv("media.base_url", "MEDIA_BASE_URL"); err != nil {
		return err
	}
	return viper.BindEnv("media.api_key", "MEDIA_API_KEY")
}
