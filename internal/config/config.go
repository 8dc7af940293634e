package config

import (
	"fmt"
	"net/url"
	"os"

	"go.yaml.in/yaml/v3"
)

// Драйверы БД
const (
	DriverPostgres = "postgres"
	DriverPGX      = "pgx"
	DriverSQLite   = "sqlite"
)

// Config представляет конфигурацию из YAML (+ переопределения из env)
type Config struct {
	Database struct {
		Driver   string `yaml:"driver"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		SSLMode  string `yaml:"ssl_mode"`
		Path     string `yaml:"path"`
	} `yaml:"database"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// LoadYamlConfig загружает конфигурацию из YAML файла поверх значений по умолчанию
func LoadYamlConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := GetDefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// GetDefaultConfig возвращает конфигурацию по умолчанию
func GetDefaultConfig() *Config {
	cfg := &Config{}
	cfg.Database.Driver = DriverPostgres
	cfg.Database.Host = "localhost"
	cfg.Database.Port = 5432
	cfg.Database.User = "postgres"
	cfg.Database.Password = "postgres"
	cfg.Database.Name = "medicine_catalog"
	cfg.Database.SSLMode = "disable"
	cfg.Database.Path = "./medicine-catalog.db"
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "json"
	return cfg
}

// DSN возвращает строку подключения для database/sql (lib/pq, pgx или путь к файлу SQLite)
func (c *Config) DSN() string {
	if c.Database.Driver == DriverSQLite {
		return c.Database.Path
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.User, c.Database.Password, c.Database.Name, c.Database.SSLMode)
}

// DatabaseURL возвращает URL для golang-migrate
func (c *Config) DatabaseURL() string {
	if c.Database.Driver == DriverSQLite {
		return "sqlite://" + c.Database.Path
	}
	pass := url.QueryEscape(c.Database.Password)
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User, pass, c.Database.Host, c.Database.Port, c.Database.Name, c.Database.SSLMode)
}
