package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config настройки сервиса
type Config struct {
	HTTP struct {
		Addr string `yaml:"addr"`
	} `yaml:"http"`
	Remote struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"remote"`
	Orders struct {
		// пауза перед перечитыванием истории после закрытия окна заказа,
		// чтобы сервер успел проиндексировать новый заказ
		HistoryRefreshDelayMS int `yaml:"history_refresh_delay_ms"`
	} `yaml:"orders"`
}

// Default значения, используемые при отсутствии файла или ключа
func Default() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = ":9091"
	cfg.Remote.BaseURL = "https://norma.nomoreparties.space/api"
	cfg.Remote.TimeoutSeconds = 10
	cfg.Orders.HistoryRefreshDelayMS = 1000
	return cfg
}

func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) RemoteTimeout() time.Duration {
	return time.Duration(c.Remote.TimeoutSeconds) * time.Second
}

func (c *Config) HistoryRefreshDelay() time.Duration {
	return time.Duration(c.Orders.HistoryRefreshDelayMS) * time.Millisecond
}
