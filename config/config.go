package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	CONFIG_FILE       string = "config.yml"
	LOCAL_CONFIG_FILE string = "config.local.yml"
)

var (
	GlobalConfigCallback ConfigCallback[GlobalConfig] = ConfigCallback[GlobalConfig]{}
)

type GlobalConfig interface {
	LoggerConfig() LoggerConfig
}

type LoggerConfig struct {
	Level   string `yaml:"level" envconfig:"LOGGER_LEVEL"`
	File    string `yaml:"file" envconfig:"LOGGER_FILE"`
	Console bool   `yaml:"console" envconfig:"LOGGER_CONSOLE"`
}

// Configuration of the upstream indexing API delivering raw transactions,
// UTXOs and asset metadata
type ExplorerAPIConfig struct {
	TxURL     string        `yaml:"tx_url" envconfig:"EXPLORER_TX_URL"`
	AssetsURL string        `yaml:"assets_url" envconfig:"EXPLORER_ASSETS_URL"`
	Timeout   time.Duration `yaml:"timeout" envconfig:"EXPLORER_TIMEOUT"`
}

type ChainConfig struct {
	// Asset id of the chain's native token, the one transaction fees are paid in
	AvaxAssetID string `yaml:"avax_asset_id" envconfig:"CHAIN_AVAX_ASSET_ID"`

	// Max number of cached asset metadata entries
	AssetCacheSize int `yaml:"asset_cache_size" envconfig:"CHAIN_ASSET_CACHE_SIZE"`
}

type MetricsConfig struct {
	PrometheusAddress string `yaml:"prometheus_address" envconfig:"METRICS_PROMETHEUS_ADDRESS"`
}

func ParseConfigFile(cfg interface{}, fileName string, allowMissing bool) error {
	f, err := os.Open(fileName)
	if err != nil {
		if allowMissing && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error opening config file: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(cfg)
	if err != nil {
		return fmt.Errorf("error parsing config file: %w", err)
	}
	return nil
}

func ReadEnv(cfg interface{}) error {
	err := envconfig.Process("", cfg)
	if err != nil {
		return fmt.Errorf("error reading env config: %w", err)
	}
	return nil
}
