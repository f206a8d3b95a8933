package entity

// UserState состояние пользователя в диалоге
type UserState string

const (
	StateMainMenu           UserState = "main_menu"            // В главном меню
	StateAwaitingFieldPhoto UserState = "awaiting_field_photo" // Ожидание фото делянки
	StateProcessing         UserState = "processing"           // Обработка изображения
)

// User представляет пользователя бота
type User struct {
	ID        int64     // Telegram User ID
	ChatID    int64     // Telegram Chat ID
	State     UserState // Текущее состояние пользователя
	LastRatio float64   // Последняя посчитанная доля покрытия
	HasResult bool      // Было ли хоть одно успешное измерение
}

// RecordCover запоминает последний успешный результат измерения
func (u *User) RecordCover(ratio float64) {
	u.LastRatio = ratio
	u.HasResult = true
}

// NewUser создаёт нового пользователя с начальным состоянием
func NewUser(userID, chatID int64) *User {
	return &User{
		ID:     userID,
		ChatID: chatID,
		State:  StateMainMenu,
	}
}

// SetState обновляет состояние пользователя
func (u *User) SetState(state UserState) {
	u.State = state
}
