package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration, read from configs/app.env and
// overridable through environment variables.
type Config struct {
	ServerAddress   string        `mapstructure:"SERVER_ADDRESS"`
	DataFile        string        `mapstructure:"DATA_FILE"`
	RateLimitQuota  int           `mapstructure:"RATE_LIMIT_QUOTA"`
	RateLimitWindow time.Duration `mapstructure:"RATE_LIMIT_WINDOW"`
}

// LoadConfig reads configuration from app.env in the given directory
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("DATA_FILE", "./data/cities15000.txt")
	v.SetDefault("RATE_LIMIT_QUOTA", 10)
	v.SetDefault("RATE_LIMIT_WINDOW", time.Minute)

	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		return
	}

	err = v.Unmarshal(&config)
	return
}
