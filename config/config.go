package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string

	// Пороги конвейера маски растительности
	SaturateThreshold  int
	MaxPixelVal        int
	SmallAreaThreshold int
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
	}

	var err error
	if cfg.SaturateThreshold, err = envInt("SATURATE_THRESHOLD", 245); err != nil {
		return nil, err
	}
	if cfg.MaxPixelVal, err = envInt("MAX_PIXEL_VAL", 255); err != nil {
		return nil, err
	}
	if cfg.SmallAreaThreshold, err = envInt("SMALL_AREA_THRESHOLD", 200); err != nil {
		return nil, err
	}

	return cfg, nil
}

// envInt читает целочисленную переменную окружения со значением по умолчанию.
func envInt(name string, def int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, raw, err)
	}
	return v, nil
}
