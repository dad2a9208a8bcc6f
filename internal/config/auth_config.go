package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type AuthConfig struct {
	JWTSecret     string        `mapstructure:"jwt_secret"`
	TokenTTL      time.Duration `mapstructure:"token_ttl"`
	AdminName     string        `mapstructure:"admin_name"`
	AdminEmail    string        `mapstructure:"admin_email"`
	AdminPassword string        `mapstructure:"admin_password"`
}

func (config AuthConfig) validate() error {

	var missingFields []string

	if config.JWTSecret == "" {
		missingFields = append(missingFields, "jwt_secret")
	}

	if config.AdminEmail == "" {
		missingFields = append(missingFields, "admin_email")
	}

	if config.AdminPassword == "" {
		missingFields = append(missingFields, "admin_password")
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required variables: %s", strings.Join(missingFields, ", "))
	}

	if config.TokenTTL <= 0 {
		return fmt.Errorf("token_ttl must be greater than zero")
	}

	return nil
}

func (config AuthConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("auth.jwt_secret", "JWT_SECRET"); err != nil {
		errs = append(errs, err)
	}
	if err := viper.BindEnv("auth.admin_email", "ADMIN_EMAIL"); err != nil {
		errs = append(errs, err)
	}
	if err := viper.BindEnv("auth.admin_password", "ADMIN_PASSWORD"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
