package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Database DatabaseConfig `mapstructure:"database"`
	Data     DataConfig     `mapstructure:"data"`
	LLM      LLMConfig      `mapstructure:"llm"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// StorageConfig selects the persistence backend. Driver is "file" (flat JSON
// documents under Dir) or "mongo".
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
	Dir    string `mapstructure:"dir"`
}

// DatabaseConfig applies only when the mongo storage driver is selected.
type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// DataConfig points at the reference-data directory holding exercises.json,
// gyms.json and supplements.json.
type DataConfig struct {
	Dir string `mapstructure:"dir"`
}

// LLMConfig describes the text-generation collaborator endpoint.
type LLMConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()
	// Nested keys map to env vars with underscores: storage.driver -> STORAGE_DRIVER.
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("storage.driver", "file")
	viper.SetDefault("storage.dir", "storage")
	viper.SetDefault("database.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.name", "fitflow")
	viper.SetDefault("data.dir", "data")
	viper.SetDefault("llm.base_url", "http://localhost:11434")
	viper.SetDefault("llm.model", "llama3.1")
	viper.SetDefault("llm.timeout", "2m")

	err = viper.ReadInConfig()
	// The binary runs on defaults and env vars alone; a missing file is fine.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
