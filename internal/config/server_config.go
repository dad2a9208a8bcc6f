package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port        int    `mapstructure:"port"`
	CorsOrigins string `mapstructure:"cors_origins"`
}

func (config ServerConfig) validate() error {
	if config.Port <= 0 || config.Port > 65535 {
		return fmt.Errorf("invalid port: %d", config.Port)
	}
	return nil
}

func (config ServerConfig) bindEnvironmentVariables() error {
	if err := viper.BindEnv("server.port", "PORT"); err != nil {
		return err
	}
	return viper.BindEnv("server.cors_origins", "CORS_ORIGINS")
}
