package config

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"db"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Media    MediaConfig    `mapstructure:"media"`
	Notifier NotifierConfig `mapstructure:"notifier"`
	AI       AIConfig       `mapstructure:"ai"`
}

var configFile = "./configs/config.yaml"

func Get() *Config {

	if value, _ := os.LookupEnv("CONFIG_PATH"); value != "" {
		configFile = value
	}

	config, err := loadConfig(configFile)
	if err != nil {
		log.Fatal(err)
	}

	return config
}

func loadConfig(file string) (*Config, error) {

	viper.SetConfigFile(file)
	viper.AutomaticEnv()

	if err := bindEnvironmentVariables(); err != nil {
		return nil, err
	}

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}

	config := Config{}
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func bindEnvironmentVariables() error {
	var errs []error

	sections := []interface{ bindEnvironmentVariables() error }{
		ServerConfig{}, DBConfig{}, AuthConfig{}, LoggerConfig{},
		MediaConfig{}, NotifierConfig{}, AIConfig{},
	}

	for _, section := range sections {
		if err := section.bindEnvironmentVariables(); err != nil {
			errs = append(errs, fmt.Errorf("%T: %w", section, err))
		}
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}

func (config Config) validate() error {
	var errs []error

	sections := map[string]interface{ validate() error }{
		"ServerConfig": config.Server,
		"DBConfig":     config.DB,
		"AuthConfig":   config.Auth,
		"LoggerConfig": config.Logger,
	}

	for name, section := range sections {
		if err := section.validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}

func createMultiError(errs []error) error {
	return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
}
