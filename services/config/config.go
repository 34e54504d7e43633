package config

import (
	"github.com/ava-labs/ava-explorer/config"
)

type Config struct {
	Logger   config.LoggerConfig      `yaml:"logger"`
	Explorer config.ExplorerAPIConfig `yaml:"explorer"`
	Chain    config.ChainConfig       `yaml:"chain"`
	Metrics  config.MetricsConfig     `yaml:"metrics"`
	Services ServicesConfig           `yaml:"services"`
}

type ServicesConfig struct {
	Address string `yaml:"address" envconfig:"SERVICES_ADDRESS"`
}

func newConfig() *Config {
	return &Config{
		Logger: config.LoggerConfig{
			Level:   "INFO",
			Console: true,
		},
		Chain: config.ChainConfig{
			AssetCacheSize: 1000,
		},
		Services: ServicesConfig{
			Address: "localhost:8000",
		},
	}
}

func (c Config) LoggerConfig() config.LoggerConfig {
	return c.Logger
}

func BuildConfig() (*Config, error) {
	cfg := newConfig()
	err := config.ParseConfigFile(cfg, config.CONFIG_FILE, false)
	if err != nil {
		return nil, err
	}
	err = config.ParseConfigFile(cfg, config.LOCAL_CONFIG_FILE, true)
	if err != nil {
		return nil, err
	}
	err = config.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
