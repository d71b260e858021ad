// Package config 以 viper 載入設定：YAML 檔（可選）+ VENDING_ 前綴環境變數 + 預設值。
package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Inventory InventoryConfig `mapstructure:"inventory"`
	TxLog     TxLogConfig     `mapstructure:"txlog"`
	Machine   MachineConfig   `mapstructure:"machine"`
	Log       LogConfig       `mapstructure:"log"`
}

type InventoryConfig struct {
	Driver string `mapstructure:"driver"` // json | sqlite
	Path   string `mapstructure:"path"`
	// SeedFrom 為 JSON 庫存檔；當 Path 尚無庫存時用來初始化。
	SeedFrom string `mapstructure:"seed_from"`
}

type TxLogConfig struct {
	Path   string `mapstructure:"path"`
	Header string `mapstructure:"header"`
}

type MachineConfig struct {
	Currency string `mapstructure:"currency"`
}

type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	Level string `mapstructure:"level"` // zap level when debug is off
}

// Load reads config from the given YAML file path. An empty path uses
// defaults and environment variables only.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("VENDING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("inventory.driver", "json")
	v.SetDefault("inventory.path", "inventory.json")
	v.SetDefault("inventory.seed_from", "")
	v.SetDefault("txlog.path", "vending_machine_log.txt")
	v.SetDefault("txlog.header", "Vending Machine Transaction Log")
	v.SetDefault("machine.currency", "$")
	v.SetDefault("log.debug", false)
	v.SetDefault("log.level", "warn")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
