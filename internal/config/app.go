package config

import (
	"errors"
	"io/fs"
)

// LoadConfig загружает конфигурацию: сначала YAML (если файл есть), затем применяет переопределения из .env.
// Отсутствующий файл не ошибка — конфиг собирается из env и дефолтов.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return LoadConfigFromEnv(), nil
	}
	cfg, err := LoadYamlConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		return LoadConfigFromEnv(), nil
	}
	if err != nil {
		return nil, err
	}
	ApplyEnvOverrides(cfg)
	return cfg, nil
}
