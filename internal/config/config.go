// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	API     APIConfig     `yaml:"api"`
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
	Refresh RefreshConfig `yaml:"refresh"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	Host string `yaml:"host"`
}

type APIConfig struct {
	BaseURL string   `yaml:"base_url"`
	Timeout Duration `yaml:"timeout"`
}

type StorageConfig struct {
	TokenPath string `yaml:"token_path"`
}

type LoggingConfig struct {
	Development bool `yaml:"development"`
}

type RefreshConfig struct {
	Enabled  bool     `yaml:"enabled"`
	Interval Duration `yaml:"interval"`
}

// Duration - обёртка, чтобы в config.yml писать "10s", а не наносекунды
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("разбор длительности %q: %w", node.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func Load() (*Config, error) {
	file, err := os.Open("config.yml")
	if err != nil {
		return nil, fmt.Errorf("не могу открыть config.yml: %w", err)
	}
	defer file.Close()

	var cfg Config
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга config.yml: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default - конфигурация без файла, для локального запуска
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "3000"
	}
	if c.Server.Host == "" {
		c.Server.Host = "localhost"
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = "http://localhost:8080/api"
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = Duration(10 * time.Second)
	}
	if c.Storage.TokenPath == "" {
		c.Storage.TokenPath = "./data/token"
	}
	if c.Refresh.Interval <= 0 {
		c.Refresh.Interval = Duration(time.Minute)
	}
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
