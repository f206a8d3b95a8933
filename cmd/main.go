package main

import (
	"log"

	"canopy-bot/config"
	telegram "canopy-bot/internal/api"
	"canopy-bot/internal/container"
	"canopy-bot/internal/infrastructure/storage"
	"canopy-bot/internal/infrastructure/vision"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_TOKEN is required")
	}

	// Создаём хранилище пользователей
	userRepo := storage.NewMemoryUserRepository()

	// Конвейер маски растительности с порогами из окружения
	enhancer := vision.NewEnhancer(cfg.SaturateThreshold, cfg.MaxPixelVal, cfg.SmallAreaThreshold)

	// Собираем сервисы приложения
	appContainer := container.New(userRepo, enhancer)

	// Создаём бота
	bot, err := telegram.NewBot(cfg.TelegramToken, userRepo, appContainer)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	log.Println("Bot is running...")
	if err := bot.Run(); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
}
