// Package config loads and validates process-wide configuration at startup.
package config

// Config is the main application configuration struct. OpenAI credentials
// come from the environment, everything else from configs/config.yaml.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	OpenAI  OpenAIConfig  `mapstructure:"openai"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// OpenAIConfig scopes the upstream document search. VectorStoreID comes
// from the config file; APIKey and Debug come from the environment and are
// never written back to disk.
type OpenAIConfig struct {
	VectorStoreID string `mapstructure:"vector_store_id"`
	APIKey        string `mapstructure:"-"`
	Debug         bool   `mapstructure:"-"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}
