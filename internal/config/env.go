package config

import (
	"os"
	"strconv"
)

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// ApplyEnvOverrides применяет переменные окружения поверх конфига (env переопределяет YAML)
func ApplyEnvOverrides(cfg *Config) {
	if v := getEnv("DB_DRIVER", ""); v != "" {
		cfg.Database.Driver = v
	}
	if v := getEnv("DB_HOST", ""); v != "" {
		cfg.Database.Host = v
	}
	if p := getEnvInt("DB_PORT", 0); p != 0 {
		cfg.Database.Port = p
	}
	if v := getEnv("DB_USER", ""); v != "" {
		cfg.Database.User = v
	}
	if v := getEnv("DB_PASSWORD", ""); v != "" {
		cfg.Database.Password = v
	}
	if v := getEnv("DB_DATABASE", ""); v != "" {
		cfg.Database.Name = v
	}
	if v := getEnv("DB_NAME", ""); v != "" {
		cfg.Database.Name = v
	}
	if v := getEnv("DB_SSLMODE", ""); v != "" {
		cfg.Database.SSLMode = v
	}
	if v := getEnv("DB_PATH", ""); v != "" {
		cfg.Database.Path = v
	}

	if v := getEnv("LOG_LEVEL", ""); v != "" {
		cfg.Logging.Level = v
	}
	if v := getEnv("LOG_FORMAT", ""); v != "" {
		cfg.Logging.Format = v
	}
}

// LoadConfigFromEnv собирает конфиг только из переменных окружения (для работы без YAML)
func LoadConfigFromEnv() *Config {
	cfg := GetDefaultConfig()
	ApplyEnvOverrides(cfg)
	return cfg
}
