package telegram

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	app "canopy-bot/internal/application"
	"canopy-bot/internal/container"
	"canopy-bot/internal/domain/entity"
	"canopy-bot/internal/domain/port"
)

const (
	msgStart = `👋 Привет! Я бот для оценки растительного покрытия делянки по фото.

📸 Отправьте мне фото делянки сверху, и я посчитаю долю растительности и вырежу фон.

📋 Команды:
/check — начать оценку делянки
/last — последний результат
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте фото делянки, снятое сверху
2️⃣ Бот отбракует нечёткие и пересвеченные снимки
3️⃣ Вы получите долю покрытия и фото с вырезанным фоном

💡 Рекомендации:
• Снимайте при ровном дневном освещении
• Держите камеру строго над делянкой
• Фото должно быть чётким

📋 Команды:
/check — начать оценку
/last — последний результат
/cancel — отменить операцию`

	msgAwaitingPhoto   = "📸 Отправьте фото делянки для оценки покрытия."
	msgCancelled       = "❌ Операция отменена. Отправьте /check для новой оценки."
	msgSendPhoto       = "📸 Пожалуйста, отправьте фото делянки для оценки покрытия."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Обрабатываю изображение..."
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте сделать другое фото."
	msgNoLastResult    = "📭 Измерений ещё не было. Отправьте /check, чтобы начать."
)

// rejectMessages — пояснения для снимков, отклонённых по качеству.
var rejectMessages = map[entity.RejectReason]string{
	entity.ReasonLowPixels: "🌑 На снимке слишком много тёмных пикселей (%.0f%%). Попробуйте снять при лучшем освещении.",
	entity.ReasonTooDark:   "🌑 Снимок слишком тёмный (средняя яркость %.0f). Попробуйте снять при лучшем освещении.",
	entity.ReasonTooBright: "☀️ Снимок слишком светлый (средняя яркость %.0f). Попробуйте снять без прямого солнца.",
	entity.ReasonBlurry:    "📷 Снимок нечёткий (резкость %.1f). Попробуйте сфокусироваться и снять ещё раз.",
}

// Bot представляет Telegram-бота
type Bot struct {
	api      *tgbotapi.BotAPI
	userRepo port.UserRepository
	services *container.Container
}

// NewBot создаёт нового бота
func NewBot(token string, userRepo port.UserRepository, services *container.Container) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:      api,
		userRepo: userRepo,
		services: services,
	}, nil
}

// Run запускает основной цикл обработки сообщений
func (b *Bot) Run() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	ctx := context.Background()

	for update := range updates {
		if update.Message == nil {
			continue
		}

		b.handleMessage(ctx, update.Message)
	}

	return nil
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	user, err := b.userRepo.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		log.Printf("Error getting user: %v", err)
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg, user)
		return
	}

	// Обработка фото
	if msg.Photo != nil && len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg, user)
		return
	}

	// Текстовое сообщение (не команда)
	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	switch msg.Command() {
	case "start":
		user.SetState(entity.StateMainMenu)
		b.userRepo.Save(ctx, user)
		b.sendMessage(msg.Chat.ID, msgStart)

	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)

	case "check":
		if _, err := b.services.EnhancementService.AcceptFieldPhoto(ctx, user.ID, user.ChatID); err != nil {
			log.Printf("Error updating user state: %v", err)
		}
		b.sendMessage(msg.Chat.ID, msgAwaitingPhoto)

	case "last":
		if user.HasResult {
			b.sendMessage(msg.Chat.ID, fmt.Sprintf("🌱 Последнее измерение: покрытие %.1f%%", user.LastRatio*100))
		} else {
			b.sendMessage(msg.Chat.ID, msgNoLastResult)
		}

	case "cancel":
		user.SetState(entity.StateMainMenu)
		b.userRepo.Save(ctx, user)
		b.sendMessage(msg.Chat.ID, msgCancelled)

	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

// handlePhoto обрабатывает входящее фото делянки
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	// Устанавливаем состояние "обработка"
	user.SetState(entity.StateProcessing)
	b.userRepo.Save(ctx, user)

	b.sendMessage(msg.Chat.ID, msgProcessing)

	// Получаем файл с максимальным разрешением
	photo := msg.Photo[len(msg.Photo)-1]

	imageData, err := b.downloadFile(photo.FileID)
	if err != nil {
		log.Printf("Error downloading photo: %v", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		user.SetState(entity.StateMainMenu)
		b.userRepo.Save(ctx, user)
		return
	}

	output, err := b.services.EnhancementService.ProcessFieldPhoto(ctx, imageData)
	if err != nil {
		log.Printf("Error processing photo: %v", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		user.SetState(entity.StateMainMenu)
		b.userRepo.Save(ctx, user)
		return
	}

	b.sendOutcome(msg.Chat.ID, output)

	if output.Outcome.Accepted {
		user.RecordCover(output.Outcome.Result.Ratio)
	}

	// Возвращаем в главное меню
	user.SetState(entity.StateMainMenu)
	b.userRepo.Save(ctx, user)
}

// sendOutcome отправляет пользователю итог конвейера
func (b *Bot) sendOutcome(chatID int64, output *app.EnhancementOutput) {
	outcome := output.Outcome

	if !outcome.Accepted {
		b.sendMessage(chatID, rejectText(outcome))
		return
	}

	b.sendMessage(chatID, fmt.Sprintf("🌱 Растительное покрытие: %.1f%%", outcome.Result.Ratio*100))

	if len(output.MaskedJPEG) > 0 {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{
			Name:  "masked.jpg",
			Bytes: output.MaskedJPEG,
		})
		photo.Caption = "Снимок с вырезанным фоном"
		if _, err := b.api.Send(photo); err != nil {
			log.Printf("Error sending masked photo: %v", err)
		}
	}
}

// rejectText подбирает пояснение к отклонённому снимку
func rejectText(outcome *entity.EnhanceOutcome) string {
	tmpl, ok := rejectMessages[outcome.Reason]
	if !ok {
		return msgProcessingError
	}

	switch outcome.Reason {
	case entity.ReasonLowPixels:
		return fmt.Sprintf(tmpl, outcome.Scores.LowRate*100)
	case entity.ReasonBlurry:
		return fmt.Sprintf(tmpl, outcome.Scores.Focus)
	default:
		return fmt.Sprintf(tmpl, outcome.Scores.Brightness)
	}
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	fileURL := file.Link(b.api.Token)

	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}
