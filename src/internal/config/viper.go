package config

import (
	"strings"

	"github.com/spf13/viper"
)

// NewViper reads config.json when present; env vars override file values
// (APP_NAME, WEB_PORT, ...).
func NewViper() *viper.Viper {
	config := viper.New()
	config.SetConfigName("config")
	config.SetConfigType("json")
	config.AddConfigPath("./")
	config.AddConfigPath("./../")
	_ = config.ReadInConfig()
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()
	return config
}
