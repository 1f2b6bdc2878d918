package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config carries the settings that do not live in the database: where the
// database file is, and how to reach the food-lookup service.
type Config struct {
	DBPath string
	AI     AIConfig
}

type AIConfig struct {
	APIKey   string
	BaseURL  string
	Model    string
	Language string
}

// Load reads caloritons.yaml (current directory or ~/.caloritons) merged
// with CALORITONS_* environment variables. A missing config file is fine;
// everything has a default except the AI API key, which is only required
// once a lookup is attempted.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("caloritons")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.caloritons")

	v.SetDefault("ai.model", "gpt-4o-mini")
	v.SetDefault("ai.language", "en-US")

	v.SetEnvPrefix("caloritons")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	cfg.DBPath = v.GetString("db_path")
	cfg.AI.APIKey = v.GetString("ai.api_key")
	cfg.AI.BaseURL = v.GetString("ai.base_url")
	cfg.AI.Model = v.GetString("ai.model")
	cfg.AI.Language = v.GetString("ai.language")
	return cfg, nil
}
