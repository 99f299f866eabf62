package internal

import (
	"fmt"

	"github.com/spf13/viper"
)

type ClusterdictConfig struct {
	AppName string `mapstructure:"app_name"`

	Snapshot struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"snapshot"`

	Log struct {
		SeqURL string `mapstructure:"seq_url"`
		Debug  bool   `mapstructure:"debug"`
	} `mapstructure:"log"`
}

func LoadConfig(path string) (*ClusterdictConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg ClusterdictConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
