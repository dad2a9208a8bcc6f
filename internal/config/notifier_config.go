package config

import "github.com/spf13/viper"

// Notifier is optional: with an empty token the telegram notifier is
// simply not started.
type NotifierConfig struct {
	TgToken  string `mapstructure:"tg_token"`
	TgChatID int64  `mapstructure:"tg_chat_id"`
}

func (config NotifierConfig) Enabled() bool {
	return config.TgToken != "" && config.TgChatID != 0
}

func (config NotifierConfig) bindEnvironmentVariables() error {
	if err := viper.BindEnv("notifier.tg_token", "TG_TOKEN"); err != nil {
		return err
	}
	return viper.BindEnv("notifier.tg_chat_id", "TG_CHAT_ID")
}
